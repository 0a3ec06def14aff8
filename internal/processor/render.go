package processor

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/woozymasta/geodoc/internal/geo"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/vector"
)

const (
	previewPadding  = 16
	circleSegments  = 64
	pointMarkerSize = 3
)

var (
	previewBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	previewFill       = color.RGBA{R: 0x1f, G: 0x6f, B: 0xb4, A: 0x80}
	previewMarker     = color.RGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}
)

// outline is a shape flattened into points of the drawing plane.
type outline struct {
	points []geo.Point
	marker bool
}

// Render draws shapes onto a square canvas of size pixels, scaled to fit.
// Circles and spheres are drawn with their radius converted to degrees.
func Render(shapes []geo.Shape, size int) (*image.RGBA, error) {
	if size <= 2*previewPadding {
		return nil, errors.Wrapf(geo.ErrInvalidArgument, "preview size %d is too small", size)
	}

	outlines := make([]outline, 0, len(shapes))
	for i, s := range shapes {
		o, err := outlineOf(s)
		if err != nil {
			return nil, errors.WithMessagef(err, "shape %d", i)
		}
		outlines = append(outlines, o)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(previewBackground), image.Point{}, draw.Src)
	if len(outlines) == 0 {
		return img, nil
	}

	project := projection(outlines, size)
	z := vector.NewRasterizer(size, size)

	for _, o := range outlines {
		if o.marker {
			x, y := project(o.points[0])
			r := image.Rect(int(x)-pointMarkerSize, int(y)-pointMarkerSize, int(x)+pointMarkerSize+1, int(y)+pointMarkerSize+1)
			draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(previewMarker), image.Point{}, draw.Src)
			continue
		}

		z.Reset(size, size)
		z.DrawOp = draw.Over
		for i, p := range o.points {
			x, y := project(p)
			if i == 0 {
				z.MoveTo(x, y)
			} else {
				z.LineTo(x, y)
			}
		}
		z.ClosePath()
		z.Draw(img, img.Bounds(), image.NewUniform(previewFill), image.Point{})
	}

	return img, nil
}

// WritePreview renders shapes and encodes the image as lossless webp.
func WritePreview(w io.Writer, shapes []geo.Shape, size int) error {
	img, err := Render(shapes, size)
	if err != nil {
		return err
	}
	return webp.Encode(w, img, &webp.Options{Lossless: true})
}

func outlineOf(s geo.Shape) (outline, error) {
	switch v := s.(type) {
	case geo.Point:
		return outline{points: []geo.Point{v}, marker: true}, nil
	case geo.Coordinates:
		if len(v) != 2 {
			return outline{}, errors.Wrapf(geo.ErrInvalidArgument, "point coordinates need x and y, got %d values", len(v))
		}
		return outline{points: []geo.Point{{X: v[0], Y: v[1]}}, marker: true}, nil
	case geo.Box:
		c := v.Corners()
		return outline{points: c[:]}, nil
	case geo.Circle:
		return outline{points: circlePoints(v.Center, v.Radius.Degrees())}, nil
	case geo.Sphere:
		return outline{points: circlePoints(v.Center, v.Radius.Degrees())}, nil
	case geo.Polygon:
		if len(v.Points) == 0 {
			return outline{}, errors.Wrap(geo.ErrInvalidShape, "polygon has no points")
		}
		return outline{points: v.Points}, nil
	default:
		return outline{}, errors.Wrapf(geo.ErrInvalidArgument, "cannot render %T", s)
	}
}

func circlePoints(center geo.Point, radius float64) []geo.Point {
	points := make([]geo.Point, circleSegments)
	for i := range points {
		a := 2 * math.Pi * float64(i) / circleSegments
		points[i] = geo.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return points
}

// projection maps shape coordinates to pixels. The y axis points up.
func projection(outlines []outline, size int) func(geo.Point) (float32, float32) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, o := range outlines {
		for _, p := range o.points {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}

	extent := math.Max(maxX-minX, maxY-minY)
	if extent == 0 {
		extent = 1
	}
	scale := float64(size-2*previewPadding) / extent

	// center the drawing on the shorter axis
	offX := (extent - (maxX - minX)) * scale / 2
	offY := (extent - (maxY - minY)) * scale / 2

	return func(p geo.Point) (float32, float32) {
		x := previewPadding + offX + (p.X-minX)*scale
		y := float64(size) - previewPadding - offY - (p.Y-minY)*scale
		return float32(x), float32(y)
	}
}
