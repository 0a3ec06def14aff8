package convert

import (
	"testing"

	"github.com/woozymasta/geodoc/internal/document"
	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEncodePoint(t *testing.T) {
	doc := EncodePoint(&geo.Point{X: 1.5, Y: -2})
	require.Equal(t, bson.D{{Key: "x", Value: 1.5}, {Key: "y", Value: -2.0}}, doc)

	require.Nil(t, EncodePoint(nil))
}

func TestPointRoundTrip(t *testing.T) {
	points := []geo.Point{
		{X: 0, Y: 0},
		{X: -122.083506, Y: 37.4259518},
		{X: 1e9, Y: -1e-9},
	}

	for _, p := range points {
		decoded, err := DecodePoint(EncodePoint(&p))
		require.NoError(t, err)
		require.Equal(t, p, *decoded)
	}
}

func TestDecodePoint(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		p, err := DecodePoint(bson.A{3.0, 4.0})
		require.NoError(t, err)
		require.Equal(t, geo.NewPoint(3, 4), *p)

		p, err = DecodePoint([]float64{5, 6})
		require.NoError(t, err)
		require.Equal(t, geo.NewPoint(5, 6), *p)
	})

	t.Run("geojson", func(t *testing.T) {
		doc := bson.D{{Key: "type", Value: "Point"}, {Key: "coordinates", Value: bson.A{7.0, 8.0}}}
		p, err := DecodePoint(doc)
		require.NoError(t, err)
		require.Equal(t, geo.NewPoint(7, 8), *p)
	})

	t.Run("unordered map", func(t *testing.T) {
		p, err := DecodePoint(bson.M{"y": 2.0, "x": 1.0})
		require.NoError(t, err)
		require.Equal(t, geo.NewPoint(1, 2), *p)
	})

	t.Run("integer values from extended json", func(t *testing.T) {
		doc, err := document.FromJSON([]byte(`{"x": 1, "y": 2}`))
		require.NoError(t, err)

		p, err := DecodePoint(doc)
		require.NoError(t, err)
		require.Equal(t, geo.NewPoint(1, 2), *p)
	})

	t.Run("nil", func(t *testing.T) {
		p, err := DecodePoint(nil)
		require.NoError(t, err)
		require.Nil(t, p)

		var doc bson.D
		p, err = DecodePoint(doc)
		require.NoError(t, err)
		require.Nil(t, p)
	})
}

func TestDecodePointErrors(t *testing.T) {
	tests := []struct {
		source any
		name   string
	}{
		{name: "three keys", source: bson.D{{Key: "x", Value: 1.0}, {Key: "y", Value: 2.0}, {Key: "z", Value: 3.0}}},
		{name: "one key", source: bson.D{{Key: "x", Value: 1.0}}},
		{name: "wrong keys", source: bson.D{{Key: "a", Value: 1.0}, {Key: "b", Value: 2.0}}},
		{name: "null coordinate", source: bson.D{{Key: "x", Value: nil}, {Key: "y", Value: 2.0}}},
		{name: "string coordinate", source: bson.D{{Key: "x", Value: "1"}, {Key: "y", Value: 2.0}}},
		{name: "short list", source: bson.A{1.0}},
		{name: "long list", source: bson.A{1.0, 2.0, 3.0}},
		{name: "scalar", source: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePoint(tt.source)
			require.ErrorIs(t, err, ErrInvalidShape)
		})
	}
}

func TestCoordinateList(t *testing.T) {
	list := CoordinateList(geo.NewPoint(1, 2), geo.NewPoint(3, 4))
	require.Equal(t, bson.A{bson.A{bson.A{1.0, 2.0}, bson.A{3.0, 4.0}}}, list)

	require.Equal(t, bson.A{bson.A{}}, CoordinateList())
	require.Equal(t, bson.A{5.0, 6.0}, PointToList(geo.NewPoint(5, 6)))
}
