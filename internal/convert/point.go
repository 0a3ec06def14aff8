package convert

import (
	"github.com/woozymasta/geodoc/internal/document"
	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// EncodePoint writes a point as {x, y}.
func EncodePoint(p *geo.Point) bson.D {
	if p == nil {
		return nil
	}
	return bson.D{
		{Key: fieldX, Value: p.X},
		{Key: fieldY, Value: p.Y},
	}
}

// DecodePoint reads a point from a two element list, a GeoJSON point document,
// or a legacy document holding exactly the keys x and y.
func DecodePoint(source any) (*geo.Point, error) {
	if isNil(source) {
		return nil, nil
	}

	if list, ok := document.List(source); ok {
		return pointFromList(list)
	}

	if !document.IsDocument(source) {
		return nil, errors.Wrapf(ErrInvalidShape, "point source must be a document or list, got %T", source)
	}

	if hasGeoJSONType(source, geo.TypePoint) {
		g, err := DecodeGeoJSON(source)
		if err != nil {
			return nil, err
		}
		p, ok := g.Geometry.(geo.Point)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidShape, "GeoJson point decoded as %T", g.Geometry)
		}
		return &p, nil
	}

	if n := document.Len(source); n != 2 {
		return nil, errors.Wrapf(ErrInvalidShape, "source must contain 2 elements, got %d", n)
	}

	x, err := coordinate(source, fieldX)
	if err != nil {
		return nil, err
	}
	y, err := coordinate(source, fieldY)
	if err != nil {
		return nil, err
	}

	return &geo.Point{X: x, Y: y}, nil
}

func pointFromList(list []any) (*geo.Point, error) {
	if len(list) != 2 {
		return nil, errors.Wrapf(ErrInvalidShape, "point list must contain 2 elements, got %d", len(list))
	}

	x, err := document.Float(list[0])
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidShape, "x: %v", err)
	}
	y, err := document.Float(list[1])
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidShape, "y: %v", err)
	}

	return &geo.Point{X: x, Y: y}, nil
}

func coordinate(source any, key string) (float64, error) {
	v, ok := document.Get(source, key)
	if !ok || v == nil {
		return 0, errors.Wrapf(ErrInvalidShape, "%s must not be null", key)
	}
	f, err := document.Float(v)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidShape, "%s: %v", key, err)
	}
	return f, nil
}

// decodePoints decodes every element of a point list in order.
func decodePoints(list []any) ([]geo.Point, error) {
	points := make([]geo.Point, 0, len(list))
	for i, element := range list {
		if isNil(element) {
			return nil, errors.Wrapf(ErrInvalidShape, "point elements of polygon must not be null (index %d)", i)
		}
		p, err := DecodePoint(element)
		if err != nil {
			return nil, errors.WithMessagef(err, "index %d", i)
		}
		points = append(points, *p)
	}
	return points, nil
}
