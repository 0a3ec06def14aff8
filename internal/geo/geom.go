package geo

import (
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

// ToGeom converts a shape into a go-geom geometry for WKT/WKB encoding.
// Boxes become closed five point rings and polygons are closed when open.
// Circles and spheres have no planar geometry equivalent.
func ToGeom(s Shape) (geom.T, error) {
	switch v := s.(type) {
	case Point:
		return geom.NewPointFlat(geom.XY, []float64{v.X, v.Y}), nil
	case Coordinates:
		if len(v) != 2 {
			return nil, errors.Wrapf(ErrInvalidArgument, "point coordinates need x and y, got %d values", len(v))
		}
		return geom.NewPointFlat(geom.XY, []float64{v[0], v[1]}), nil
	case Box:
		c := v.Corners()
		return ringPolygon([]Point{c[0], c[1], c[2], c[3], c[0]})
	case Polygon:
		if len(v.Points) == 0 {
			return nil, errors.Wrap(ErrInvalidArgument, "polygon must contain at least one point")
		}
		return ringPolygon(v.Ring())
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "no geometry equivalent for %T", s)
	}
}

// FromGeom converts a go-geom point or polygon back into a shape.
// Only the exterior ring of a polygon is kept.
func FromGeom(g geom.T) (Shape, error) {
	switch v := g.(type) {
	case *geom.Point:
		return NewPoint(v.X(), v.Y()), nil
	case *geom.Polygon:
		if v.NumLinearRings() == 0 {
			return nil, errors.Wrap(ErrInvalidShape, "polygon has no rings")
		}
		coords := v.LinearRing(0).Coords()
		points := make([]Point, 0, len(coords))
		for _, c := range coords {
			points = append(points, NewPoint(c.X(), c.Y()))
		}
		return Polygon{Points: points}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "unsupported geometry %T", g)
	}
}

func ringPolygon(ring []Point) (geom.T, error) {
	coords := make([]geom.Coord, 0, len(ring))
	for _, p := range ring {
		coords = append(coords, geom.Coord{p.X, p.Y})
	}
	polygon, err := geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{coords})
	if err != nil {
		return nil, err
	}
	return polygon, nil
}
