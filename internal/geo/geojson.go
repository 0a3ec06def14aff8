package geo

import "github.com/pkg/errors"

// GeoJSON geometry type names.
const (
	TypePoint   = "Point"
	TypePolygon = "Polygon"
)

// TypedGeometry is implemented by geometries that carry their own GeoJSON type
// name and coordinates. The encoder passes both through verbatim.
type TypedGeometry interface {
	GeoJSONType() string
	GeoJSONCoordinates() any
}

// GeoJSON tags a geometry with its GeoJSON type name.
type GeoJSON struct {
	Geometry Shape  `json:"geometry" yaml:"geometry"`
	Type     string `json:"type" yaml:"type"`
}

// GeoJSONGeometry is a free-form geometry, e.g. a LineString, kept as type plus coordinates.
// It follows the standard GeoJSON structure.
type GeoJSONGeometry struct {
	Coordinates any    `json:"coordinates" yaml:"coordinates"`
	Type        string `json:"type" yaml:"type"`
}

// GeoJSONType implements TypedGeometry.
func (g GeoJSONGeometry) GeoJSONType() string { return g.Type }

// GeoJSONCoordinates implements TypedGeometry.
func (g GeoJSONGeometry) GeoJSONCoordinates() any { return g.Coordinates }

// GeoJSONPoint returns a GeoJSON point at x, y.
func GeoJSONPoint(x, y float64) GeoJSON {
	return GeoJSON{Type: TypePoint, Geometry: NewPoint(x, y)}
}

// GeoJSONPolygon returns a GeoJSON polygon.
func GeoJSONPolygon(p Polygon) GeoJSON {
	return GeoJSON{Type: TypePolygon, Geometry: p}
}

// GeoJSONOf wraps a shape with the GeoJSON type it encodes to.
// Circles and spheres have no GeoJSON form.
func GeoJSONOf(s Shape) (GeoJSON, error) {
	switch v := s.(type) {
	case Point, Coordinates:
		return GeoJSON{Type: TypePoint, Geometry: v}, nil
	case Box, Polygon:
		return GeoJSON{Type: TypePolygon, Geometry: v}, nil
	case Custom:
		if v.Geometry == nil {
			return GeoJSON{}, errors.Wrap(ErrInvalidArgument, "custom geometry must not be nil")
		}
		return GeoJSON{Type: v.Geometry.GeoJSONType(), Geometry: v}, nil
	default:
		return GeoJSON{}, errors.Wrapf(ErrInvalidArgument, "unknown GeoJson type %T", s)
	}
}
