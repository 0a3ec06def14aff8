package processor

import (
	"github.com/woozymasta/geodoc/internal/convert"
	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// CommandDefault selects the default legacy operator of each shape.
const CommandDefault = "default"

// Options control how source documents are converted.
type Options struct {
	Kind    convert.Kind
	Dialect convert.Dialect
	// Command wraps every shape into a geo command of this name instead of
	// re-encoding it. CommandDefault picks the operator per shape.
	Command string
}

// Item is one converted source.
type Item struct {
	Shape    geo.Shape
	Document bson.D
}

// Shapes returns the decoded shapes of items.
func Shapes(items []Item) []geo.Shape {
	shapes := make([]geo.Shape, 0, len(items))
	for _, item := range items {
		shapes = append(shapes, item.Shape)
	}
	return shapes
}

// ConvertAll decodes every source and encodes it again as configured.
// Null sources are skipped. The first failure aborts with the index of the source.
func ConvertAll(sources []any, opts Options) ([]Item, error) {
	items := make([]Item, 0, len(sources))
	for i, source := range sources {
		item, err := ConvertOne(source, opts)
		if err != nil {
			return nil, errors.WithMessagef(err, "document %d", i)
		}
		if item.Shape == nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// ConvertOne decodes source and encodes the resulting shape.
func ConvertOne(source any, opts Options) (Item, error) {
	shape, err := convert.Decode(opts.Kind, source)
	if err != nil || shape == nil {
		return Item{}, err
	}

	var doc bson.D
	if opts.Command != "" {
		doc, err = Command(opts.Command, shape)
	} else {
		doc, err = convert.Encode(shape, opts.Dialect)
	}
	if err != nil {
		return Item{}, err
	}

	return Item{Shape: shape, Document: doc}, nil
}

// Command encodes shape as a geo command document.
func Command(name string, shape geo.Shape) (bson.D, error) {
	cmd := geo.NewGeoCommand(name, shape)
	if name == CommandDefault {
		cmd = geo.CommandFor(shape)
		if cmd.Command == "" {
			return nil, errors.Wrapf(convert.ErrInvalidArgument, "no default command for %T", shape)
		}
	}
	return convert.EncodeGeoCommand(&cmd)
}
