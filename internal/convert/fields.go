package convert

import (
	"github.com/woozymasta/geodoc/internal/document"

	"go.mongodb.org/mongo-driver/bson"
)

// Document field names of both dialects.
const (
	fieldX           = "x"
	fieldY           = "y"
	fieldFirst       = "first"
	fieldSecond      = "second"
	fieldCenter      = "center"
	fieldRadius      = "radius"
	fieldMetric      = "metric"
	fieldPoints      = "points"
	fieldType        = "type"
	fieldCoordinates = "coordinates"
)

// isNil treats typed nil documents and lists like a nil source.
func isNil(source any) bool {
	switch v := source.(type) {
	case nil:
		return true
	case bson.D:
		return v == nil
	case bson.M:
		return v == nil
	case map[string]any:
		return v == nil
	case bson.A:
		return v == nil
	case []any:
		return v == nil
	default:
		return false
	}
}

// hasGeoJSONType reports whether source is a document whose type field equals typ.
func hasGeoJSONType(source any, typ string) bool {
	v, ok := document.Get(source, fieldType)
	if !ok {
		return false
	}
	s, ok := document.String(v)
	return ok && s == typ
}
