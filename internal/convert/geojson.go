package convert

import (
	"github.com/woozymasta/geodoc/internal/document"
	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// EncodeGeoJSON writes the wrapped geometry as {type, coordinates}.
//
// Boxes become a closed five point polygon ring and open polygons are closed by
// repeating their first point. Custom geometries pass their own type and
// coordinates through. Circles and spheres have no GeoJSON form.
func EncodeGeoJSON(g *geo.GeoJSON) (bson.D, error) {
	if g == nil {
		return nil, nil
	}

	switch v := g.Geometry.(type) {
	case geo.Point:
		return geoJSONDocument(geo.TypePoint, PointToList(v)), nil

	case geo.Coordinates:
		if len(v) != 2 {
			return nil, errors.Wrapf(ErrInvalidArgument, "point coordinates need to have x and y value, got %d values", len(v))
		}
		return geoJSONDocument(geo.TypePoint, PointToList(geo.NewPoint(v[0], v[1]))), nil

	case geo.Box:
		c := v.Corners()
		return geoJSONDocument(geo.TypePolygon, CoordinateList(c[0], c[1], c[2], c[3], c[0])), nil

	case geo.Polygon:
		if len(v.Points) == 0 {
			return nil, errors.Wrap(ErrInvalidArgument, "polygon must contain at least one point")
		}
		return geoJSONDocument(geo.TypePolygon, CoordinateList(v.Ring()...)), nil

	case geo.Custom:
		if v.Geometry == nil {
			return nil, errors.Wrap(ErrInvalidArgument, "custom geometry must not be nil")
		}
		return bson.D{
			{Key: fieldType, Value: v.Geometry.GeoJSONType()},
			{Key: fieldCoordinates, Value: v.Geometry.GeoJSONCoordinates()},
		}, nil

	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown GeoJson type %T", g.Geometry)
	}
}

// DecodeGeoJSON reads a {type, coordinates} document of type Point or Polygon.
// Only the first polygon ring is read and its closing point is kept.
func DecodeGeoJSON(source any) (*geo.GeoJSON, error) {
	if isNil(source) {
		return nil, nil
	}
	if !document.IsDocument(source) {
		return nil, errors.Wrapf(ErrInvalidArgument, "GeoJson source must be a document, got %T", source)
	}

	rawType, ok := document.Get(source, fieldType)
	if !ok {
		return nil, errors.Wrap(ErrInvalidArgument, "GeoJson needs to specify type")
	}
	typ := document.Stringify(rawType)

	switch typ {
	case geo.TypePoint:
		coordinates, err := coordinatesField(source)
		if err != nil {
			return nil, err
		}
		p, err := pointFromList(coordinates)
		if err != nil {
			return nil, err
		}
		return &geo.GeoJSON{Type: geo.TypePoint, Geometry: *p}, nil

	case geo.TypePolygon:
		coordinates, err := coordinatesField(source)
		if err != nil {
			return nil, err
		}
		if len(coordinates) == 0 || isNil(coordinates[0]) {
			return nil, errors.Wrap(ErrInvalidShape, "polygon coordinates must contain a ring")
		}
		ring, ok := document.List(coordinates[0])
		if !ok {
			return nil, errors.Wrapf(ErrInvalidShape, "polygon ring must be a list, got %T", coordinates[0])
		}
		points, err := decodePoints(ring)
		if err != nil {
			return nil, err
		}
		if len(points) == 0 {
			return nil, errors.Wrap(ErrInvalidShape, "polygon ring must contain at least one point")
		}
		return &geo.GeoJSON{Type: geo.TypePolygon, Geometry: geo.Polygon{Points: points}}, nil

	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown GeoJson type %q", typ)
	}
}

func geoJSONDocument(typ string, coordinates bson.A) bson.D {
	return bson.D{
		{Key: fieldType, Value: typ},
		{Key: fieldCoordinates, Value: coordinates},
	}
}

func coordinatesField(source any) ([]any, error) {
	raw, ok := document.Get(source, fieldCoordinates)
	if !ok || isNil(raw) {
		return nil, errors.Wrap(ErrInvalidShape, "coordinates must not be null")
	}
	list, ok := document.List(raw)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidShape, "coordinates must be a list, got %T", raw)
	}
	return list, nil
}
