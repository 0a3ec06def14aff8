// Package geo holds the geometric value types exchanged with the document converters.
package geo

// Shape is the closed set of geometries the converters understand.
// Implementations outside this package enter the set through Custom.
type Shape interface {
	shape()
}

// Point is a two dimensional coordinate without unit or CRS semantics.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Coordinates is a raw coordinate array. Only arrays of length 2 are valid geometries.
type Coordinates []float64

// Box is an axis-aligned rectangle spanned by two opposite corners.
type Box struct {
	First  Point `json:"first" yaml:"first"`
	Second Point `json:"second" yaml:"second"`
}

// Circle is a center point with a radius distance.
type Circle struct {
	Center Point    `json:"center" yaml:"center"`
	Radius Distance `json:"radius" yaml:"radius"`
}

// Sphere has the same layout as Circle but selects spherical query semantics.
type Sphere struct {
	Center Point    `json:"center" yaml:"center"`
	Radius Distance `json:"radius" yaml:"radius"`
}

// Polygon is an ordered, non-empty walk of boundary points.
type Polygon struct {
	Points []Point `json:"points" yaml:"points" validate:"min=1"`
}

// Custom wraps a geometry that describes itself through TypedGeometry.
type Custom struct {
	Geometry TypedGeometry
}

func (Point) shape()       {}
func (Coordinates) shape() {}
func (Box) shape()         {}
func (Circle) shape()      {}
func (Sphere) shape()      {}
func (Polygon) shape()     {}
func (Custom) shape()      {}

// NewPoint returns a point at x, y.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// NewBox returns the box spanned by first and second.
func NewBox(first, second Point) Box {
	return Box{First: first, Second: second}
}

// NewCircle returns a circle around center.
func NewCircle(center Point, radius Distance) Circle {
	return Circle{Center: center, Radius: radius}
}

// NewSphere returns a sphere around center.
func NewSphere(center Point, radius Distance) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// NewPolygon copies points into a new polygon.
func NewPolygon(points ...Point) Polygon {
	p := make([]Point, len(points))
	copy(p, points)
	return Polygon{Points: p}
}

// Corners returns the four corners of the box in ring order:
// first, (first.X, second.Y), second, (second.X, first.Y).
func (b Box) Corners() [4]Point {
	return [4]Point{
		b.First,
		{X: b.First.X, Y: b.Second.Y},
		b.Second,
		{X: b.Second.X, Y: b.First.Y},
	}
}

// Closed reports whether the first and last point of the polygon are equal.
func (p Polygon) Closed() bool {
	if len(p.Points) == 0 {
		return false
	}
	return p.Points[0] == p.Points[len(p.Points)-1]
}

// Ring returns the polygon points with the first point appended when the walk is open.
// The receiver is left untouched.
func (p Polygon) Ring() []Point {
	ring := make([]Point, 0, len(p.Points)+1)
	ring = append(ring, p.Points...)
	if len(ring) > 0 && !p.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}
