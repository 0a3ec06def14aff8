package convert

import (
	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// EncodeGeoCommand writes {<command>: arguments} for a legacy geospatial query.
// Boxes give two corner pairs, circles and spheres a center pair and normalized
// radius, polygons one pair per point. There is no decode direction.
func EncodeGeoCommand(c *geo.GeoCommand) (bson.D, error) {
	if c == nil {
		return nil, nil
	}
	if c.Command == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "command name must not be empty")
	}

	args, err := commandArguments(c.Shape)
	if err != nil {
		return nil, errors.WithMessage(err, c.Command)
	}

	return bson.D{{Key: c.Command, Value: args}}, nil
}

func commandArguments(shape geo.Shape) (bson.A, error) {
	switch v := shape.(type) {
	case geo.Box:
		return bson.A{PointToList(v.First), PointToList(v.Second)}, nil

	case geo.Circle:
		return bson.A{PointToList(v.Center), v.Radius.Normalized()}, nil

	case geo.Sphere:
		return bson.A{PointToList(v.Center), v.Radius.Normalized()}, nil

	case geo.Polygon:
		args := make(bson.A, 0, len(v.Points))
		for _, p := range v.Points {
			args = append(args, PointToList(p))
		}
		return args, nil

	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "no geo command arguments for %T", shape)
	}
}
