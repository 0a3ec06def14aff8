package processor

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"io"
	"strings"

	"github.com/woozymasta/geodoc/internal/document"
	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/pkg/errors"
	"github.com/tdewolff/minify/v2"
	minjson "github.com/tdewolff/minify/v2/json"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkt"
	"go.mongodb.org/mongo-driver/bson"
)

// Format is an output encoding.
type Format string

// Supported output formats. WKT and WKB write the shapes, the others the documents.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatBSON Format = "bson"
	FormatWKT  Format = "wkt"
	FormatWKB  Format = "wkb"
)

const mimeJSON = "application/json"

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatBSON, FormatWKT, FormatWKB}
}

// ParseFormat parses a case-insensitive format name. An empty name is FormatJSON.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatJSON, nil
	}
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Wrapf(geo.ErrInvalidArgument, "unknown output format %q", s)
}

// ContentType returns the media type of data written in f.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return mimeJSON
	case FormatYAML:
		return "application/yaml"
	case FormatBSON:
		return "application/bson"
	default:
		return "text/plain; charset=utf-8"
	}
}

// WriteOptions tune the textual document formats.
type WriteOptions struct {
	Format Format
	Indent string
	Minify bool
}

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(mimeJSON, minjson.Minify)
	return m
}

// Write encodes items to w. A single item is written as a document, several as a list.
func Write(w io.Writer, items []Item, opts WriteOptions) error {
	data, err := Marshal(items, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Marshal encodes items in the requested format.
func Marshal(items []Item, opts WriteOptions) ([]byte, error) {
	switch opts.Format {
	case FormatJSON, "":
		return marshalJSON(items, opts)
	case FormatYAML:
		return marshalYAML(items)
	case FormatBSON:
		return marshalBSON(items)
	case FormatWKT:
		return marshalLines(items, func(s geo.Shape) (string, error) {
			g, err := geo.ToGeom(s)
			if err != nil {
				return "", err
			}
			return wkt.Marshal(g)
		})
	case FormatWKB:
		return marshalLines(items, func(s geo.Shape) (string, error) {
			g, err := geo.ToGeom(s)
			if err != nil {
				return "", err
			}
			data, err := wkb.Marshal(g, binary.LittleEndian)
			if err != nil {
				return "", err
			}
			return hex.EncodeToString(data), nil
		})
	default:
		return nil, errors.Wrapf(geo.ErrInvalidArgument, "unknown output format %q", opts.Format)
	}
}

func marshalJSON(items []Item, opts WriteOptions) ([]byte, error) {
	var buf bytes.Buffer

	if len(items) != 1 {
		buf.WriteByte('[')
	}
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if len(items) != 1 && opts.Indent != "" {
			buf.WriteByte('\n')
		}
		data, err := document.ToJSON(item.Document, opts.Indent)
		if err != nil {
			return nil, errors.WithMessagef(err, "document %d", i)
		}
		buf.Write(data)
	}
	if len(items) != 1 {
		if opts.Indent != "" && len(items) > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteByte(']')
	}

	if opts.Minify {
		out, err := minifier.Bytes(mimeJSON, buf.Bytes())
		if err != nil {
			return nil, errors.Wrap(err, "minify json")
		}
		return append(out, '\n'), nil
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func marshalYAML(items []Item) ([]byte, error) {
	if len(items) == 1 {
		return document.ToYAML(items[0].Document)
	}

	list := make(bson.A, 0, len(items))
	for _, item := range items {
		list = append(list, item.Document)
	}
	return document.ToYAML(list)
}

func marshalBSON(items []Item) ([]byte, error) {
	var buf bytes.Buffer
	for i, item := range items {
		data, err := document.ToBSON(item.Document)
		if err != nil {
			return nil, errors.WithMessagef(err, "document %d", i)
		}
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

func marshalLines(items []Item, encode func(geo.Shape) (string, error)) ([]byte, error) {
	var buf bytes.Buffer
	for i, item := range items {
		line, err := encode(item.Shape)
		if err != nil {
			return nil, errors.WithMessagef(err, "shape %d", i)
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
