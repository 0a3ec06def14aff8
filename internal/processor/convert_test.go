package processor

import (
	"testing"

	"github.com/woozymasta/geodoc/internal/convert"
	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestConvertAllToGeoJSON(t *testing.T) {
	sources := []any{
		bson.D{{Key: "x", Value: 1.0}, {Key: "y", Value: 2.0}},
		nil,
		bson.D{
			{Key: "first", Value: bson.D{{Key: "x", Value: 0.0}, {Key: "y", Value: 0.0}}},
			{Key: "second", Value: bson.D{{Key: "x", Value: 2.0}, {Key: "y", Value: 2.0}}},
		},
	}

	items, err := ConvertAll(sources, Options{Kind: convert.KindAuto, Dialect: convert.DialectGeoJSON})
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.Equal(t, geo.Point{X: 1, Y: 2}, items[0].Shape)
	require.Equal(t, bson.D{
		{Key: "type", Value: "Point"},
		{Key: "coordinates", Value: bson.A{1.0, 2.0}},
	}, items[0].Document)

	require.Equal(t, geo.NewBox(geo.Point{}, geo.Point{X: 2, Y: 2}), items[1].Shape)
	require.Equal(t, "Polygon", items[1].Document[0].Value)
}

func TestConvertAllReportsIndex(t *testing.T) {
	sources := []any{
		bson.A{1.0, 2.0},
		bson.D{{Key: "center", Value: nil}, {Key: "radius", Value: 1.0}},
	}

	_, err := ConvertAll(sources, Options{Kind: convert.KindAuto, Dialect: convert.DialectLegacy})
	require.ErrorIs(t, err, convert.ErrInvalidShape)
	require.Contains(t, err.Error(), "document 1")
}

func TestConvertOneCommand(t *testing.T) {
	circle := bson.D{
		{Key: "center", Value: bson.D{{Key: "x", Value: 1.0}, {Key: "y", Value: 2.0}}},
		{Key: "radius", Value: 3.0},
	}

	item, err := ConvertOne(circle, Options{Kind: convert.KindSphere, Command: CommandDefault})
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "$centerSphere", Value: bson.A{bson.A{1.0, 2.0}, 3.0}}}, item.Document)

	item, err = ConvertOne(circle, Options{Kind: convert.KindAuto, Command: "$within"})
	require.NoError(t, err)
	require.Equal(t, "$within", item.Document[0].Key)

	_, err = Command(CommandDefault, geo.Point{X: 1, Y: 2})
	require.ErrorIs(t, err, convert.ErrInvalidArgument)
}
