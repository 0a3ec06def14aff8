package convert

import (
	"github.com/woozymasta/geodoc/internal/document"
	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// EncodeCircle writes {center, radius, metric}. The radius is the normalized distance.
func EncodeCircle(c *geo.Circle) bson.D {
	if c == nil {
		return nil
	}
	return encodeRound(c.Center, c.Radius)
}

// DecodeCircle reads {center, radius[, metric]}.
func DecodeCircle(source any) (*geo.Circle, error) {
	if isNil(source) {
		return nil, nil
	}
	center, radius, err := decodeRound(source)
	if err != nil {
		return nil, errors.WithMessage(err, "circle")
	}
	return &geo.Circle{Center: center, Radius: radius}, nil
}

// EncodeSphere writes {center, radius, metric}. The radius is the normalized distance.
func EncodeSphere(s *geo.Sphere) bson.D {
	if s == nil {
		return nil
	}
	return encodeRound(s.Center, s.Radius)
}

// DecodeSphere reads {center, radius[, metric]}.
func DecodeSphere(source any) (*geo.Sphere, error) {
	if isNil(source) {
		return nil, nil
	}
	center, radius, err := decodeRound(source)
	if err != nil {
		return nil, errors.WithMessage(err, "sphere")
	}
	return &geo.Sphere{Center: center, Radius: radius}, nil
}

func encodeRound(center geo.Point, radius geo.Distance) bson.D {
	return bson.D{
		{Key: fieldCenter, Value: EncodePoint(&center)},
		{Key: fieldRadius, Value: radius.Normalized()},
		{Key: fieldMetric, Value: radius.Unit().Name},
	}
}

func decodeRound(source any) (geo.Point, geo.Distance, error) {
	if !document.IsDocument(source) {
		return geo.Point{}, geo.Distance{}, errors.Wrapf(ErrInvalidShape, "source must be a document, got %T", source)
	}

	center, ok := document.Get(source, fieldCenter)
	if !ok || isNil(center) {
		return geo.Point{}, geo.Distance{}, errors.Wrap(ErrInvalidShape, "center must not be null")
	}
	rawRadius, ok := document.Get(source, fieldRadius)
	if !ok || rawRadius == nil {
		return geo.Point{}, geo.Distance{}, errors.Wrap(ErrInvalidShape, "radius must not be null")
	}

	radius, err := document.Float(rawRadius)
	if err != nil {
		return geo.Point{}, geo.Distance{}, errors.Wrapf(ErrInvalidShape, "radius: %v", err)
	}
	distance := geo.NewDistance(radius)

	if rawMetric, ok := document.Get(source, fieldMetric); ok {
		if rawMetric == nil {
			return geo.Point{}, geo.Distance{}, errors.Wrap(ErrInvalidShape, "metric must not be null")
		}
		name, ok := document.String(rawMetric)
		if !ok {
			return geo.Point{}, geo.Distance{}, errors.Wrapf(ErrInvalidShape, "metric must be a string, got %T", rawMetric)
		}
		metric, err := geo.ParseMetric(name)
		if err != nil {
			return geo.Point{}, geo.Distance{}, err
		}
		distance = distance.In(metric)
	}

	p, err := DecodePoint(center)
	if err != nil {
		return geo.Point{}, geo.Distance{}, errors.WithMessage(err, fieldCenter)
	}

	return *p, distance, nil
}
