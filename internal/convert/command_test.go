package convert

import (
	"testing"

	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEncodeGeoCommandBox(t *testing.T) {
	cmd := geo.NewGeoCommand("$geoWithin", geo.NewBox(geo.NewPoint(0, 0), geo.NewPoint(1, 1)))

	doc, err := EncodeGeoCommand(&cmd)
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "$geoWithin", Value: bson.A{bson.A{0.0, 0.0}, bson.A{1.0, 1.0}}}}, doc)
}

func TestEncodeGeoCommandRound(t *testing.T) {
	circle := geo.CommandFor(geo.NewCircle(geo.NewPoint(1, 2), geo.NewDistanceIn(6378.137, geo.Kilometers)))
	doc, err := EncodeGeoCommand(&circle)
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "$center", Value: bson.A{bson.A{1.0, 2.0}, 1.0}}}, doc)

	sphere := geo.CommandFor(geo.NewSphere(geo.NewPoint(1, 2), geo.NewDistance(0.5)))
	doc, err = EncodeGeoCommand(&sphere)
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "$centerSphere", Value: bson.A{bson.A{1.0, 2.0}, 0.5}}}, doc)
}

func TestEncodeGeoCommandPolygon(t *testing.T) {
	cmd := geo.CommandFor(geo.NewPolygon(geo.NewPoint(0, 0), geo.NewPoint(3, 0), geo.NewPoint(3, 3)))

	doc, err := EncodeGeoCommand(&cmd)
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "$polygon", Value: bson.A{
		bson.A{0.0, 0.0}, bson.A{3.0, 0.0}, bson.A{3.0, 3.0},
	}}}, doc)
}

func TestEncodeGeoCommandErrors(t *testing.T) {
	point := geo.NewGeoCommand("$near", geo.NewPoint(1, 2))
	_, err := EncodeGeoCommand(&point)
	require.ErrorIs(t, err, ErrInvalidArgument)

	unnamed := geo.NewGeoCommand("", geo.NewBox(geo.NewPoint(0, 0), geo.NewPoint(1, 1)))
	_, err = EncodeGeoCommand(&unnamed)
	require.ErrorIs(t, err, ErrInvalidArgument)

	doc, err := EncodeGeoCommand(nil)
	require.NoError(t, err)
	require.Nil(t, doc)
}
