package convert

import (
	"reflect"
	"testing"

	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestConverters(t *testing.T) {
	converters := Converters()
	require.Len(t, converters, 13)

	seen := make(map[string]bool)
	pairs := make(map[[2]reflect.Type]bool)
	for _, c := range converters {
		require.False(t, seen[c.Name()], "duplicate name %s", c.Name())
		seen[c.Name()] = true

		key := [2]reflect.Type{c.Source(), c.Target()}
		require.False(t, pairs[key], "duplicate pair %v", key)
		pairs[key] = true
	}
}

func TestRegistryFind(t *testing.T) {
	r := NewRegistry()

	c, ok := r.Find(reflect.TypeOf((**geo.Box)(nil)).Elem(), reflect.TypeOf((*bson.D)(nil)).Elem())
	require.True(t, ok)
	require.Equal(t, "BoxToDocument", c.Name())

	c, ok = r.Find(reflect.TypeOf((*bson.D)(nil)).Elem(), reflect.TypeOf((**geo.GeoJSON)(nil)).Elem())
	require.True(t, ok)
	require.Equal(t, "DocumentToGeoJSON", c.Name())

	_, ok = r.Find(reflect.TypeOf((**geo.GeoCommand)(nil)).Elem(), reflect.TypeOf((**geo.Box)(nil)).Elem())
	require.False(t, ok)

	require.Len(t, r.All(), 13)
}

func TestRegistryConvert(t *testing.T) {
	r := NewRegistry()
	box := geo.NewBox(geo.NewPoint(0, 0), geo.NewPoint(2, 2))

	doc, err := r.Convert(&box, reflect.TypeOf((*bson.D)(nil)).Elem())
	require.NoError(t, err)
	require.Equal(t, EncodeBox(&box), doc)

	back, err := r.Convert(doc, reflect.TypeOf((**geo.Box)(nil)).Elem())
	require.NoError(t, err)
	require.Equal(t, &box, back)

	point, err := r.Convert(bson.A{1.0, 2.0}, reflect.TypeOf((**geo.Point)(nil)).Elem())
	require.NoError(t, err)
	require.Equal(t, &geo.Point{X: 1, Y: 2}, point)

	out, err := r.Convert(nil, reflect.TypeOf((**geo.Box)(nil)).Elem())
	require.NoError(t, err)
	require.Nil(t, out)

	_, err = r.Convert(&box, reflect.TypeOf((**geo.Polygon)(nil)).Elem())
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestConverterRejectsWrongSource(t *testing.T) {
	r := NewRegistry()
	c, ok := r.Find(reflect.TypeOf((**geo.Circle)(nil)).Elem(), reflect.TypeOf((*bson.D)(nil)).Elem())
	require.True(t, ok)

	_, err := c.Convert(&geo.Sphere{})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
