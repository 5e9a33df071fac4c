// Package store is the persistence gateway: create/find/update against named
// document collections, with identifiers handed out as strings.
package store

import (
	"context"
	"errors"
)

// Collection names
const (
	Users        = "user"
	Listings     = "listing"
	Applications = "application"
	Payments     = "payment"
	Receipts     = "receipt"
)

// IDField is the identifier field of every document
const IDField = "_id"

// ErrNoDocument is returned when a filter matches nothing
var ErrNoDocument = errors.New("store: no document matched")

// Patch is a set of field values merged into a document
type Patch map[string]interface{}

// Gateway abstracts the document store of record.
// Create assigns the identifier; documents should leave their `_id` field empty.
type Gateway interface {
	Create(ctx context.Context, collection string, doc interface{}) (string, error)
	// FindOne decodes the first match into out or returns ErrNoDocument
	FindOne(ctx context.Context, collection string, filter Filter, out interface{}) error
	// FindMany decodes at most limit matches, in storage order, into out (a pointer to a slice)
	FindMany(ctx context.Context, collection string, filter Filter, limit int64, out interface{}) error
	// UpdateOne merges patch into the first match or returns ErrNoDocument
	UpdateOne(ctx context.Context, collection string, filter Filter, patch Patch) error
}

// Inspector is implemented by gateways that can report on the underlying store
type Inspector interface {
	Ping(ctx context.Context) error
	Name() string
	CollectionNames(ctx context.Context) ([]string, error)
}
