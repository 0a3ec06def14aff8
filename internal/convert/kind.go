package convert

import (
	"strings"

	"github.com/woozymasta/geodoc/internal/document"
	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// Kind names the shape a document is decoded as.
type Kind string

// Supported kinds. KindAuto detects the kind from the document layout.
const (
	KindAuto    Kind = "auto"
	KindPoint   Kind = "point"
	KindBox     Kind = "box"
	KindCircle  Kind = "circle"
	KindSphere  Kind = "sphere"
	KindPolygon Kind = "polygon"
	KindGeoJSON Kind = "geojson"
)

// Kinds lists every kind accepted by ParseKind.
func Kinds() []Kind {
	return []Kind{KindAuto, KindPoint, KindBox, KindCircle, KindSphere, KindPolygon, KindGeoJSON}
}

// ParseKind parses a case-insensitive kind name. An empty name is KindAuto.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KindAuto, nil
	}
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidArgument, "unknown kind %q", s)
}

// Dialect selects the document layout shapes are written in.
type Dialect string

// Supported dialects.
const (
	DialectLegacy  Dialect = "legacy"
	DialectGeoJSON Dialect = "geojson"
)

// ParseDialect parses a case-insensitive dialect name. An empty name is DialectLegacy.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(DialectLegacy):
		return DialectLegacy, nil
	case string(DialectGeoJSON):
		return DialectGeoJSON, nil
	default:
		return "", errors.Wrapf(ErrInvalidArgument, "unknown dialect %q", s)
	}
}

// Detect infers the kind of a document from its fields.
// Circles and spheres share a layout, so {center, radius} is reported as a circle.
func Detect(source any) (Kind, error) {
	if _, ok := document.List(source); ok {
		return KindPoint, nil
	}
	if !document.IsDocument(source) {
		return "", errors.Wrapf(ErrInvalidShape, "cannot detect shape of %T", source)
	}

	switch {
	case document.Has(source, fieldType):
		return KindGeoJSON, nil
	case document.Has(source, fieldX) && document.Has(source, fieldY):
		return KindPoint, nil
	case document.Has(source, fieldFirst) && document.Has(source, fieldSecond):
		return KindBox, nil
	case document.Has(source, fieldCenter) && document.Has(source, fieldRadius):
		return KindCircle, nil
	case document.Has(source, fieldPoints):
		return KindPolygon, nil
	default:
		return "", errors.Wrapf(ErrInvalidShape, "cannot detect shape from keys %v", document.Keys(source))
	}
}

// Decode reads source as kind. GeoJSON documents yield their wrapped geometry.
func Decode(kind Kind, source any) (geo.Shape, error) {
	if isNil(source) {
		return nil, nil
	}

	if kind == KindAuto || kind == "" {
		detected, err := Detect(source)
		if err != nil {
			return nil, err
		}
		kind = detected
	}

	switch kind {
	case KindPoint:
		p, err := DecodePoint(source)
		if err != nil || p == nil {
			return nil, err
		}
		return *p, nil
	case KindBox:
		b, err := DecodeBox(source)
		if err != nil || b == nil {
			return nil, err
		}
		return *b, nil
	case KindCircle:
		c, err := DecodeCircle(source)
		if err != nil || c == nil {
			return nil, err
		}
		return *c, nil
	case KindSphere:
		s, err := DecodeSphere(source)
		if err != nil || s == nil {
			return nil, err
		}
		return *s, nil
	case KindPolygon:
		p, err := DecodePolygon(source)
		if err != nil || p == nil {
			return nil, err
		}
		return *p, nil
	case KindGeoJSON:
		g, err := DecodeGeoJSON(source)
		if err != nil || g == nil {
			return nil, err
		}
		return g.Geometry, nil
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown kind %q", kind)
	}
}

// Encode writes shape in the requested dialect.
// Custom geometries only have a GeoJSON form, circles and spheres only a legacy one.
func Encode(shape geo.Shape, dialect Dialect) (bson.D, error) {
	if shape == nil {
		return nil, nil
	}

	if dialect == DialectGeoJSON {
		g, err := geo.GeoJSONOf(shape)
		if err != nil {
			return nil, err
		}
		return EncodeGeoJSON(&g)
	}

	switch v := shape.(type) {
	case geo.Point:
		return EncodePoint(&v), nil
	case geo.Coordinates:
		if len(v) != 2 {
			return nil, errors.Wrapf(ErrInvalidArgument, "point coordinates need to have x and y value, got %d values", len(v))
		}
		return EncodePoint(&geo.Point{X: v[0], Y: v[1]}), nil
	case geo.Box:
		return EncodeBox(&v), nil
	case geo.Circle:
		return EncodeCircle(&v), nil
	case geo.Sphere:
		return EncodeSphere(&v), nil
	case geo.Polygon:
		return EncodePolygon(&v), nil
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "no legacy form for %T", shape)
	}
}
