package store

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type op int

const (
	opEq op = iota
	opIn
	opGte
	opLte
	opBefore
	opContains
	opAnyOf
)

type cond struct {
	field string
	op    op
	value interface{}
	any   []Filter
}

// Filter is a conjunction of field conditions. The zero value matches every document.
// Builder methods return a new Filter and never modify the receiver.
type Filter struct {
	conds []cond
}

// Where starts an empty filter
func Where() Filter {
	return Filter{}
}

// ByID matches the document with the given identifier
func ByID(id string) Filter {
	return Where().Eq(IDField, id)
}

func (f Filter) with(c cond) Filter {
	conds := make([]cond, len(f.conds), len(f.conds)+1)
	copy(conds, f.conds)
	return Filter{conds: append(conds, c)}
}

// Eq matches documents whose field equals v. A nil v also matches a missing field.
func (f Filter) Eq(field string, v interface{}) Filter {
	return f.with(cond{field: field, op: opEq, value: v})
}

// In matches documents whose field equals any of values
func (f Filter) In(field string, values []string) Filter {
	return f.with(cond{field: field, op: opIn, value: values})
}

// Gte matches documents whose numeric field is >= v
func (f Filter) Gte(field string, v float64) Filter {
	return f.with(cond{field: field, op: opGte, value: v})
}

// Lte matches documents whose numeric field is <= v
func (f Filter) Lte(field string, v float64) Filter {
	return f.with(cond{field: field, op: opLte, value: v})
}

// Before matches documents whose time field is strictly earlier than t
func (f Filter) Before(field string, t time.Time) Filter {
	return f.with(cond{field: field, op: opBefore, value: t})
}

// Contains matches a case-insensitive literal substring in a string field or in any element of a string array field
func (f Filter) Contains(field, substr string) Filter {
	return f.with(cond{field: field, op: opContains, value: substr})
}

// AnyOf matches documents satisfying at least one of the given filters
func (f Filter) AnyOf(filters ...Filter) Filter {
	return f.with(cond{op: opAnyOf, any: filters})
}

// objectID converts identifier values to ObjectIDs. ok is false for strings that
// are not valid identifiers; such a condition can never match.
func objectID(v interface{}) (interface{}, bool) {
	s, isString := v.(string)
	if !isString {
		return v, true
	}
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return nil, false
	}
	return oid, true
}

// matchNothing is a condition no document satisfies
var matchNothing = bson.E{Key: "$expr", Value: false}

// BSON renders the filter as a MongoDB query document
func (f Filter) BSON() bson.D {
	out := bson.D{}
	ranges := map[string]bson.D{}
	var rangeOrder []string
	var ors []bson.D

	for _, c := range f.conds {
		switch c.op {
		case opEq:
			v := c.value
			if c.field == IDField {
				oid, ok := objectID(v)
				if !ok {
					out = append(out, matchNothing)
					continue
				}
				v = oid
			}
			out = append(out, bson.E{Key: c.field, Value: v})
		case opIn:
			out = append(out, bson.E{Key: c.field, Value: bson.D{{Key: "$in", Value: c.value}}})
		case opGte, opLte, opBefore:
			key := "$gte"
			switch c.op {
			case opLte:
				key = "$lte"
			case opBefore:
				key = "$lt"
			}
			if _, seen := ranges[c.field]; !seen {
				rangeOrder = append(rangeOrder, c.field)
			}
			ranges[c.field] = append(ranges[c.field], bson.E{Key: key, Value: c.value})
		case opContains:
			pattern := regexp.QuoteMeta(c.value.(string))
			out = append(out, bson.E{Key: c.field, Value: primitive.Regex{Pattern: pattern, Options: "i"}})
		case opAnyOf:
			alts := bson.A{}
			for _, sub := range c.any {
				alts = append(alts, sub.BSON())
			}
			if len(alts) == 0 {
				out = append(out, matchNothing)
				continue
			}
			ors = append(ors, bson.D{{Key: "$or", Value: alts}})
		}
	}

	switch len(ors) {
	case 0:
	case 1:
		out = append(out, ors[0][0])
	default:
		all := bson.A{}
		for _, or := range ors {
			all = append(all, or)
		}
		out = append(out, bson.E{Key: "$and", Value: all})
	}

	for _, field := range rangeOrder {
		out = append(out, bson.E{Key: field, Value: ranges[field]})
	}
	return out
}
