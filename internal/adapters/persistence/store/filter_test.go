package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilterBSON_Empty(t *testing.T) {
	assert.Equal(t, bson.D{}, Where().BSON())
}

func TestFilterBSON_ID(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, bson.D{{Key: "_id", Value: oid}}, ByID(oid.Hex()).BSON())

	assert.Equal(t, bson.D{matchNothing}, ByID("not-an-object-id").BSON())
}

func TestFilterBSON_RangeMergesBounds(t *testing.T) {
	got := Where().Eq("is_available", true).Gte("price", 100).Lte("price", 200).BSON()

	want := bson.D{
		{Key: "is_available", Value: true},
		{Key: "price", Value: bson.D{{Key: "$gte", Value: 100.0}, {Key: "$lte", Value: 200.0}}},
	}
	assert.Equal(t, want, got)
}

func TestFilterBSON_Before(t *testing.T) {
	cutoff := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	got := Where().Eq("receipt_id", nil).Before("created_at", cutoff).BSON()

	want := bson.D{
		{Key: "receipt_id", Value: nil},
		{Key: "created_at", Value: bson.D{{Key: "$lt", Value: cutoff}}},
	}
	assert.Equal(t, want, got)
}

func TestFilterBSON_ContainsEscapesPattern(t *testing.T) {
	got := Where().AnyOf(
		Where().Contains("title", "a+b"),
		Where().Contains("facilities", "a+b"),
	).BSON()

	want := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "title", Value: primitive.Regex{Pattern: `a\+b`, Options: "i"}}},
		bson.D{{Key: "facilities", Value: primitive.Regex{Pattern: `a\+b`, Options: "i"}}},
	}}}
	assert.Equal(t, want, got)
}

func TestFilterBSON_MultipleAnyOfUseAnd(t *testing.T) {
	got := Where().AnyOf(Where().Eq("a", 1)).AnyOf(Where().Eq("b", 2)).BSON()

	assert.Len(t, got, 1)
	assert.Equal(t, "$and", got[0].Key)
	assert.Len(t, got[0].Value, 2)
}

func TestFilterBSON_In(t *testing.T) {
	got := Where().In("listing_id", []string{"x", "y"}).BSON()
	assert.Equal(t, bson.D{{Key: "listing_id", Value: bson.D{{Key: "$in", Value: []string{"x", "y"}}}}}, got)
}

func TestFilterBuilderDoesNotAlias(t *testing.T) {
	base := Where().Eq("a", 1)
	left := base.Eq("b", 2)
	right := base.Eq("c", 3)

	assert.Len(t, base.conds, 1)
	assert.Equal(t, "b", left.conds[1].field)
	assert.Equal(t, "c", right.conds[1].field)
}
