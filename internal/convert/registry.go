package convert

import (
	"reflect"

	"github.com/woozymasta/geodoc/internal/document"
	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

var documentType = reflect.TypeOf((*bson.D)(nil)).Elem()

// Converter turns values of Source into values of Target.
// A nil source converts to a nil target.
type Converter interface {
	Name() string
	Source() reflect.Type
	Target() reflect.Type
	Convert(source any) (any, error)
}

// encoder writes a shape into a document.
type encoder[S any] struct {
	encode func(S) (bson.D, error)
	name   string
}

func (e encoder[S]) Name() string         { return e.name }
func (e encoder[S]) Source() reflect.Type { return reflect.TypeOf((*S)(nil)).Elem() }
func (e encoder[S]) Target() reflect.Type { return documentType }

func (e encoder[S]) Convert(source any) (any, error) {
	if source == nil {
		return nil, nil
	}
	s, ok := source.(S)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s: cannot convert %T", e.name, source)
	}
	doc, err := e.encode(s)
	if err != nil || doc == nil {
		return nil, err
	}
	return doc, nil
}

// decoder reads a shape from any document or list value.
type decoder[T any] struct {
	decode func(any) (T, error)
	name   string
}

func (d decoder[T]) Name() string         { return d.name }
func (d decoder[T]) Source() reflect.Type { return documentType }
func (d decoder[T]) Target() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (d decoder[T]) Convert(source any) (any, error) {
	if isNil(source) {
		return nil, nil
	}
	v, err := d.decode(source)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func infallible[S any](fn func(S) bson.D) func(S) (bson.D, error) {
	return func(s S) (bson.D, error) { return fn(s), nil }
}

// Converters returns every converter a conversion framework should register.
func Converters() []Converter {
	return []Converter{
		encoder[*geo.Box]{name: "BoxToDocument", encode: infallible(EncodeBox)},
		encoder[*geo.Polygon]{name: "PolygonToDocument", encode: infallible(EncodePolygon)},
		encoder[*geo.Circle]{name: "CircleToDocument", encode: infallible(EncodeCircle)},
		encoder[*geo.Sphere]{name: "SphereToDocument", encode: infallible(EncodeSphere)},
		decoder[*geo.Box]{name: "DocumentToBox", decode: DecodeBox},
		decoder[*geo.Polygon]{name: "DocumentToPolygon", decode: DecodePolygon},
		decoder[*geo.Circle]{name: "DocumentToCircle", decode: DecodeCircle},
		decoder[*geo.Sphere]{name: "DocumentToSphere", decode: DecodeSphere},
		decoder[*geo.Point]{name: "DocumentToPoint", decode: DecodePoint},
		encoder[*geo.Point]{name: "PointToDocument", encode: infallible(EncodePoint)},
		encoder[*geo.GeoCommand]{name: "GeoCommandToDocument", encode: EncodeGeoCommand},
		encoder[*geo.GeoJSON]{name: "GeoJSONToDocument", encode: EncodeGeoJSON},
		decoder[*geo.GeoJSON]{name: "DocumentToGeoJSON", decode: DecodeGeoJSON},
	}
}

type pair struct {
	source reflect.Type
	target reflect.Type
}

// Registry indexes converters by source and target type.
type Registry struct {
	byPair     map[pair]Converter
	converters []Converter
}

// NewRegistry returns a registry holding Converters().
func NewRegistry() *Registry {
	converters := Converters()
	r := &Registry{
		byPair:     make(map[pair]Converter, len(converters)),
		converters: converters,
	}
	for _, c := range converters {
		r.byPair[pair{source: c.Source(), target: c.Target()}] = c
	}

	log.Debug().Int("converters", len(converters)).Msg("Converter registry initialized")

	return r
}

// All returns the registered converters in registration order.
func (r *Registry) All() []Converter {
	out := make([]Converter, len(r.converters))
	copy(out, r.converters)
	return out
}

// Find returns the converter between two types.
func (r *Registry) Find(source, target reflect.Type) (Converter, bool) {
	c, ok := r.byPair[pair{source: source, target: target}]
	return c, ok
}

// Convert converts source into target. Any document or list source is looked up
// as a document.
func (r *Registry) Convert(source any, target reflect.Type) (any, error) {
	if source == nil {
		return nil, nil
	}

	st := reflect.TypeOf(source)
	if document.IsDocument(source) {
		st = documentType
	} else if _, ok := document.List(source); ok {
		st = documentType
	}

	c, ok := r.Find(st, target)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "no converter from %v to %v", st, target)
	}
	return c.Convert(source)
}
