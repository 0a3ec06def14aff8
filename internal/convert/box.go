package convert

import (
	"github.com/woozymasta/geodoc/internal/document"
	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// EncodeBox writes a box as {first, second} point documents.
func EncodeBox(b *geo.Box) bson.D {
	if b == nil {
		return nil
	}
	return bson.D{
		{Key: fieldFirst, Value: EncodePoint(&b.First)},
		{Key: fieldSecond, Value: EncodePoint(&b.Second)},
	}
}

// DecodeBox reads a legacy {first, second} document or a GeoJSON polygon ring.
// A ring is expected in the order EncodeGeoJSON writes it, so points 0 and 2
// are the opposite corners.
func DecodeBox(source any) (*geo.Box, error) {
	if isNil(source) {
		return nil, nil
	}
	if !document.IsDocument(source) {
		return nil, errors.Wrapf(ErrInvalidShape, "box source must be a document, got %T", source)
	}

	if hasGeoJSONType(source, geo.TypePolygon) {
		return boxFromGeoJSON(source)
	}

	first, err := pointField(source, fieldFirst)
	if err != nil {
		return nil, err
	}
	second, err := pointField(source, fieldSecond)
	if err != nil {
		return nil, err
	}

	return &geo.Box{First: *first, Second: *second}, nil
}

func boxFromGeoJSON(source any) (*geo.Box, error) {
	g, err := DecodeGeoJSON(source)
	if err != nil {
		return nil, err
	}
	polygon, ok := g.Geometry.(geo.Polygon)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidShape, "GeoJson polygon decoded as %T", g.Geometry)
	}
	if len(polygon.Points) < 3 {
		return nil, errors.Wrapf(ErrInvalidShape, "box ring needs at least 3 points, got %d", len(polygon.Points))
	}

	return &geo.Box{First: polygon.Points[0], Second: polygon.Points[2]}, nil
}

// pointField decodes a required nested point document.
func pointField(source any, key string) (*geo.Point, error) {
	v, _ := document.Get(source, key)
	p, err := DecodePoint(v)
	if err != nil {
		return nil, errors.WithMessage(err, key)
	}
	if p == nil {
		return nil, errors.Wrapf(ErrInvalidShape, "%s must not be null", key)
	}
	return p, nil
}
