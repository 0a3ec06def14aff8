package convert

import (
	"github.com/woozymasta/geodoc/internal/geo"

	"go.mongodb.org/mongo-driver/bson"
)

// PointToList returns the [x, y] pair of a point.
func PointToList(p geo.Point) bson.A {
	return bson.A{p.X, p.Y}
}

// CoordinateList nests points the way GeoJSON nests a ring inside a polygon:
// [[ [x1,y1], [x2,y2], ... ]].
func CoordinateList(points ...geo.Point) bson.A {
	ring := make(bson.A, 0, len(points))
	for _, p := range points {
		ring = append(ring, PointToList(p))
	}
	return bson.A{ring}
}
