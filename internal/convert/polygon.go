package convert

import (
	"github.com/woozymasta/geodoc/internal/document"
	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// EncodePolygon writes {points: [{x, y}, ...]} keeping point order.
func EncodePolygon(p *geo.Polygon) bson.D {
	if p == nil {
		return nil
	}

	points := make(bson.A, 0, len(p.Points))
	for i := range p.Points {
		points = append(points, EncodePoint(&p.Points[i]))
	}

	return bson.D{{Key: fieldPoints, Value: points}}
}

// DecodePolygon reads a legacy {points} document or a GeoJSON polygon.
func DecodePolygon(source any) (*geo.Polygon, error) {
	if isNil(source) {
		return nil, nil
	}
	if !document.IsDocument(source) {
		return nil, errors.Wrapf(ErrInvalidShape, "polygon source must be a document, got %T", source)
	}

	if hasGeoJSONType(source, geo.TypePolygon) {
		g, err := DecodeGeoJSON(source)
		if err != nil {
			return nil, err
		}
		polygon, ok := g.Geometry.(geo.Polygon)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidShape, "GeoJson polygon decoded as %T", g.Geometry)
		}
		return &polygon, nil
	}

	raw, ok := document.Get(source, fieldPoints)
	if !ok || isNil(raw) {
		return nil, errors.Wrap(ErrInvalidShape, "points must not be null")
	}
	list, ok := document.List(raw)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidShape, "points must be a list, got %T", raw)
	}

	points, err := decodePoints(list)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, errors.Wrap(ErrInvalidShape, "polygon must contain at least one point")
	}

	return &geo.Polygon{Points: points}, nil
}
