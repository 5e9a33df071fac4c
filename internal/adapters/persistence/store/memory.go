package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Gateway. Documents go through the same BSON encoding
// as the MongoDB gateway, so models decode identically from either one.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

// NewMemory creates an empty in-memory gateway
func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]bson.M)}
}

// Create stores doc with a freshly generated identifier
func (m *Memory) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	stored, err := toM(doc)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}
	oid := primitive.NewObjectID()
	stored[IDField] = oid

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], stored)
	m.mu.Unlock()

	return oid.Hex(), nil
}

// FindOne decodes the first matching document into out
func (m *Memory) FindOne(ctx context.Context, collection string, filter Filter, out interface{}) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			return decode(doc, out)
		}
	}
	return ErrNoDocument
}

// FindMany decodes up to limit matching documents, in insertion order, into out
func (m *Memory) FindMany(ctx context.Context, collection string, filter Filter, limit int64, out interface{}) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("store: FindMany needs a pointer to a slice, got %T", out)
	}
	slice := rv.Elem()
	result := reflect.MakeSlice(slice.Type(), 0, 0)

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.collections[collection] {
		if limit > 0 && int64(result.Len()) >= limit {
			break
		}
		if !matches(doc, filter) {
			continue
		}
		elem := reflect.New(slice.Type().Elem())
		if err := decode(doc, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}

	slice.Set(result)
	return nil
}

// UpdateOne merges patch into the first matching document
func (m *Memory) UpdateOne(ctx context.Context, collection string, filter Filter, patch Patch) error {
	values, err := toM(map[string]interface{}(patch))
	if err != nil {
		return fmt.Errorf("encode %s patch: %w", collection, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			for k, v := range values {
				doc[k] = v
			}
			return nil
		}
	}
	return ErrNoDocument
}

// Ping always succeeds
func (m *Memory) Ping(ctx context.Context) error { return nil }

// Name identifies the store in diagnostics
func (m *Memory) Name() string { return "memory" }

// CollectionNames lists collections holding at least one document
func (m *Memory) CollectionNames(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name, docs := range m.collections {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	return names, nil
}

func toM(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decode(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

// normalize encodes a filter operand the way it would be stored
func normalize(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	m, err := toM(bson.M{"v": v})
	if err != nil {
		return v
	}
	return m["v"]
}

func matches(doc bson.M, f Filter) bool {
	for _, c := range f.conds {
		if !matchCond(doc, c) {
			return false
		}
	}
	return true
}

func matchCond(doc bson.M, c cond) bool {
	switch c.op {
	case opEq:
		want := c.value
		if c.field == IDField {
			oid, ok := objectID(want)
			if !ok {
				return false
			}
			want = oid
		}
		got, present := doc[c.field]
		if want == nil {
			return !present || got == nil
		}
		return equal(got, normalize(want))
	case opIn:
		got := doc[c.field]
		for _, v := range c.value.([]string) {
			if equal(got, v) {
				return true
			}
		}
		return false
	case opGte, opLte:
		got, ok := toFloat(doc[c.field])
		if !ok {
			return false
		}
		bound := c.value.(float64)
		if c.op == opGte {
			return got >= bound
		}
		return got <= bound
	case opBefore:
		got, ok := toTime(doc[c.field])
		if !ok {
			return false
		}
		return got.Before(c.value.(time.Time))
	case opContains:
		needle := strings.ToLower(c.value.(string))
		switch got := doc[c.field].(type) {
		case string:
			return strings.Contains(strings.ToLower(got), needle)
		case primitive.A:
			for _, el := range got {
				if s, ok := el.(string); ok && strings.Contains(strings.ToLower(s), needle) {
					return true
				}
			}
		}
		return false
	case opAnyOf:
		for _, sub := range c.any {
			if matches(doc, sub) {
				return true
			}
		}
		return false
	}
	return false
}

func equal(got, want interface{}) bool {
	if gf, ok := toFloat(got); ok {
		if wf, ok := toFloat(want); ok {
			return gf == wf
		}
		return false
	}
	if got == nil || want == nil {
		return got == want
	}
	if !reflect.TypeOf(got).Comparable() || !reflect.TypeOf(want).Comparable() {
		return false
	}
	return got == want
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func toTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time(), true
	case time.Time:
		return t, true
	}
	return time.Time{}, false
}
