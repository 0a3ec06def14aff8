// Package document adapts bson documents and lists into the small lookup surface
// the shape converters need. Documents produced by this module are always bson.D so
// key order survives into the wire form.
package document

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson"
)

// D is an ordered document.
type D = bson.D

// A is an ordered list value.
type A = bson.A

// ErrNotNumeric is returned by Float for values that are not numbers.
var ErrNotNumeric = errors.New("value is not numeric")

// IsDocument reports whether v is a key/value document.
func IsDocument(v any) bool {
	switch v.(type) {
	case bson.D, bson.M, map[string]any:
		return true
	default:
		return false
	}
}

// Get returns the value stored under key and whether the key is present.
// A present key may hold nil.
func Get(doc any, key string) (any, bool) {
	switch d := doc.(type) {
	case bson.D:
		for _, e := range d {
			if e.Key == key {
				return e.Value, true
			}
		}
	case bson.M:
		v, ok := d[key]
		return v, ok
	case map[string]any:
		v, ok := d[key]
		return v, ok
	}
	return nil, false
}

// Has reports whether key is present in doc.
func Has(doc any, key string) bool {
	_, ok := Get(doc, key)
	return ok
}

// Len returns the number of keys in doc, zero for non-documents.
func Len(doc any) int {
	switch d := doc.(type) {
	case bson.D:
		return len(d)
	case bson.M:
		return len(d)
	case map[string]any:
		return len(d)
	default:
		return 0
	}
}

// Keys returns the keys of doc. Order is preserved for bson.D only.
func Keys(doc any) []string {
	switch d := doc.(type) {
	case bson.D:
		keys := make([]string, 0, len(d))
		for _, e := range d {
			keys = append(keys, e.Key)
		}
		return keys
	case bson.M:
		return mapKeys(d)
	case map[string]any:
		return mapKeys(d)
	default:
		return nil
	}
}

func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// List returns v as a list of values. Documents, strings and byte slices are not lists.
func List(v any) ([]any, bool) {
	switch l := v.(type) {
	case nil, bson.D, []byte, string:
		return nil, false
	case bson.A:
		return l, true
	case []any:
		return l, true
	}

	// typed slices such as []float64 or [][]float64 built by hand
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Float coerces a numeric document value into float64.
// Strings and booleans are rejected even when cast could parse them.
func Float(v any) (float64, error) {
	switch v.(type) {
	case nil:
		return 0, errors.Wrap(ErrNotNumeric, "nil")
	case string, bool:
		return 0, errors.Wrapf(ErrNotNumeric, "%T", v)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, errors.Wrapf(ErrNotNumeric, "%T: %v", v, err)
	}
	return f, nil
}

// String returns v as a string when it holds one.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Stringify renders any non-nil value as a string.
func Stringify(v any) string {
	return cast.ToString(v)
}
