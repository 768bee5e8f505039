package layout

import (
	"image"
	"math"
)

// CanonicalSize is the edge of the design grid every shape literal is defined on.
const CanonicalSize = 128

// Scaler maps canonical coordinates onto a Size×Size pixel grid.
type Scaler struct {
	Size  int
	Scale float64
}

func NewScaler(size int) Scaler {
	return Scaler{Size: size, Scale: float64(size) / CanonicalSize}
}

// Px scales a canonical length and truncates it to whole pixels.
func (s Scaler) Px(v float64) int { return int(v * s.Scale) }

// Pt scales a canonical point.
func (s Scaler) Pt(x, y float64) image.Point { return image.Pt(s.Px(x), s.Px(y)) }

// CenterX is the unscaled horizontal center of the canvas.
func (s Scaler) CenterX() int { return s.Size / 2 }

// Stroke scales a canonical stroke width, rounds it, and floors the result at minPx.
func (s Scaler) Stroke(width float64, minPx int) int {
	px := int(math.Round(width * s.Scale))
	if px < minPx {
		px = minPx
	}
	return px
}

// Offset returns a copy of points translated by d.
func Offset(points []image.Point, d image.Point) []image.Point {
	out := make([]image.Point, len(points))
	for i, p := range points {
		out[i] = p.Add(d)
	}
	return out
}

// Bounds returns the smallest rectangle containing every point.
// Max is exclusive, so a single point yields a 1×1 rectangle.
func Bounds(points []image.Point) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}
	rect := image.Rectangle{Min: points[0], Max: points[0].Add(image.Pt(1, 1))}
	for _, p := range points[1:] {
		rect = rect.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return rect
}

// Centroid is the vertex average of points, truncated to whole pixels.
func Centroid(points []image.Point) image.Point {
	if len(points) == 0 {
		return image.Point{}
	}
	var sx, sy int
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	return image.Pt(sx/len(points), sy/len(points))
}

// Inside reports whether every point lies within rect.
func Inside(points []image.Point, rect image.Rectangle) bool {
	for _, p := range points {
		if !p.In(rect) {
			return false
		}
	}
	return true
}
