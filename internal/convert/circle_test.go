package convert

import (
	"testing"

	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEncodeCircle(t *testing.T) {
	circle := geo.NewCircle(geo.NewPoint(1, 2), geo.NewDistance(3))

	require.Equal(t, bson.D{
		{Key: "center", Value: bson.D{{Key: "x", Value: 1.0}, {Key: "y", Value: 2.0}}},
		{Key: "radius", Value: 3.0},
		{Key: "metric", Value: "NEUTRAL"},
	}, EncodeCircle(&circle))

	require.Nil(t, EncodeCircle(nil))
	require.Nil(t, EncodeSphere(nil))
}

func TestEncodeCircleNormalizesRadius(t *testing.T) {
	circle := geo.NewCircle(geo.NewPoint(0, 0), geo.NewDistanceIn(6378.137, geo.Kilometers))

	doc := EncodeCircle(&circle)
	require.Equal(t, bson.E{Key: "radius", Value: 1.0}, doc[1])
	require.Equal(t, bson.E{Key: "metric", Value: "KILOMETERS"}, doc[2])
}

func TestCircleRoundTrip(t *testing.T) {
	circle := geo.NewCircle(geo.NewPoint(-73.99, 40.73), geo.NewDistance(0.5))

	decoded, err := DecodeCircle(EncodeCircle(&circle))
	require.NoError(t, err)
	require.Equal(t, circle, *decoded)
}

func TestSphereRoundTrip(t *testing.T) {
	sphere := geo.NewSphere(geo.NewPoint(2.2945, 48.8584), geo.NewDistance(0.01))

	decoded, err := DecodeSphere(EncodeSphere(&sphere))
	require.NoError(t, err)
	require.Equal(t, sphere, *decoded)
}

func TestCircleMetricRoundTrip(t *testing.T) {
	for _, metric := range []geo.Metric{geo.Kilometers, geo.Miles} {
		t.Run(metric.Name, func(t *testing.T) {
			circle := geo.NewCircle(geo.NewPoint(1, 1), geo.NewDistanceIn(10, metric))

			decoded, err := DecodeCircle(EncodeCircle(&circle))
			require.NoError(t, err)
			require.Equal(t, circle.Center, decoded.Center)
			require.Equal(t, metric, decoded.Radius.Metric)
			require.InDelta(t, 10, decoded.Radius.Value, 1e-9)
		})
	}
}

func TestDecodeCircleWithoutMetric(t *testing.T) {
	doc := bson.D{
		{Key: "center", Value: bson.D{{Key: "x", Value: 1.0}, {Key: "y", Value: 2.0}}},
		{Key: "radius", Value: 0.25},
	}

	circle, err := DecodeCircle(doc)
	require.NoError(t, err)
	require.Equal(t, geo.NewDistance(0.25), circle.Radius)
	require.Equal(t, geo.Neutral, circle.Radius.Unit())
}

func TestDecodeCircleErrors(t *testing.T) {
	center := bson.D{{Key: "x", Value: 1.0}, {Key: "y", Value: 2.0}}

	tests := []struct {
		target error
		source bson.D
		name   string
	}{
		{
			name:   "missing radius",
			source: bson.D{{Key: "center", Value: center}},
			target: ErrInvalidShape,
		},
		{
			name:   "missing center",
			source: bson.D{{Key: "radius", Value: 1.0}},
			target: ErrInvalidShape,
		},
		{
			name:   "null center",
			source: bson.D{{Key: "center", Value: nil}, {Key: "radius", Value: 1.0}},
			target: ErrInvalidShape,
		},
		{
			name:   "null metric",
			source: bson.D{{Key: "center", Value: center}, {Key: "radius", Value: 1.0}, {Key: "metric", Value: nil}},
			target: ErrInvalidShape,
		},
		{
			name:   "unknown metric",
			source: bson.D{{Key: "center", Value: center}, {Key: "radius", Value: 1.0}, {Key: "metric", Value: "FURLONGS"}},
			target: ErrUnknownMetric,
		},
		{
			name:   "bad center",
			source: bson.D{{Key: "center", Value: bson.D{{Key: "x", Value: 1.0}}}, {Key: "radius", Value: 1.0}},
			target: ErrInvalidShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCircle(tt.source)
			require.ErrorIs(t, err, tt.target)

			_, err = DecodeSphere(tt.source)
			require.ErrorIs(t, err, tt.target)
		})
	}
}
