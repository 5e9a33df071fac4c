package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the MongoDB-backed Gateway
type Mongo struct {
	db *mongo.Database
}

// NewMongo wraps a connected database handle
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// Create inserts doc and returns the generated identifier as hex
func (s *Mongo) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

// FindOne decodes the first match into out
func (s *Mongo) FindOne(ctx context.Context, collection string, filter Filter, out interface{}) error {
	err := s.db.Collection(collection).FindOne(ctx, filter.BSON()).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoDocument
	}
	if err != nil {
		return fmt.Errorf("find %s: %w", collection, err)
	}
	return nil
}

// FindMany decodes up to limit matches into out
func (s *Mongo) FindMany(ctx context.Context, collection string, filter Filter, limit int64, out interface{}) error {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.db.Collection(collection).Find(ctx, filter.BSON(), opts)
	if err != nil {
		return fmt.Errorf("find %s: %w", collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// UpdateOne applies patch with $set to the first match
func (s *Mongo) UpdateOne(ctx context.Context, collection string, filter Filter, patch Patch) error {
	res, err := s.db.Collection(collection).UpdateOne(ctx, filter.BSON(), bson.M{"$set": bson.M(patch)})
	if err != nil {
		return fmt.Errorf("update %s: %w", collection, err)
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

// Ping checks connectivity to the primary
func (s *Mongo) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// Name returns the database name
func (s *Mongo) Name() string {
	return s.db.Name()
}

// CollectionNames lists the collections of the database
func (s *Mongo) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}
