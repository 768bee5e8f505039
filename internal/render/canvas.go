package render

import (
	"image"
	"image/color"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
)

// Canvas is an offscreen RGBA surface that starts fully transparent.
// Every primitive is anti-aliased and composited Over what is already drawn.
// Integer coordinates address pixel centers.
type Canvas struct {
	img     *image.RGBA
	rast    *raster.Rasterizer
	painter *raster.RGBAPainter
}

func NewCanvas(size int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	rast := raster.NewRasterizer(size, size)
	rast.UseNonZeroWinding = true
	return &Canvas{img: img, rast: rast, painter: raster.NewRGBAPainter(img)}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

// FillPolygon fills the closed polygon through points.
func (c *Canvas) FillPolygon(points []image.Point, col color.Color) {
	if len(points) < 3 {
		return
	}
	c.rast.Clear()
	c.rast.Start(pixelCenter(points[0]))
	for _, p := range points[1:] {
		c.rast.Add1(pixelCenter(p))
	}
	c.rast.Add1(pixelCenter(points[0]))
	c.paint(col)
}

// StrokePolygon outlines the closed polygon through points, centered on its edges.
func (c *Canvas) StrokePolygon(points []image.Point, width int, col color.Color) {
	if len(points) < 2 {
		return
	}
	closed := append(append([]image.Point(nil), points...), points[0])
	c.stroke(closed, width, raster.RoundCapper, col)
}

// StrokePolyline strokes the open path through points as one continuous stroke.
func (c *Canvas) StrokePolyline(points []image.Point, width int, col color.Color) {
	c.stroke(points, width, raster.ButtCapper, col)
}

// Line strokes the segment a-b. A zero-length segment paints a width×width dot.
func (c *Canvas) Line(a, b image.Point, width int, col color.Color) {
	c.stroke([]image.Point{a, b}, width, raster.ButtCapper, col)
}

func (c *Canvas) stroke(points []image.Point, width int, capper raster.Capper, col color.Color) {
	points = dedupe(points)
	if len(points) == 0 || width <= 0 {
		return
	}
	if len(points) == 1 {
		c.dot(points[0], width, col)
		return
	}
	var path raster.Path
	path.Start(pixelCenter(points[0]))
	for _, p := range points[1:] {
		path.Add1(pixelCenter(p))
	}
	c.rast.Clear()
	c.rast.AddStroke(path, fixed.I(width), capper, raster.RoundJoiner)
	c.paint(col)
}

func (c *Canvas) dot(p image.Point, width int, col color.Color) {
	center := pixelCenter(p)
	half := fixed.I(width) / 2
	minX, minY := center.X-half, center.Y-half
	maxX, maxY := center.X+half, center.Y+half
	c.rast.Clear()
	c.rast.Start(fixed.Point26_6{X: minX, Y: minY})
	c.rast.Add1(fixed.Point26_6{X: maxX, Y: minY})
	c.rast.Add1(fixed.Point26_6{X: maxX, Y: maxY})
	c.rast.Add1(fixed.Point26_6{X: minX, Y: maxY})
	c.rast.Add1(fixed.Point26_6{X: minX, Y: minY})
	c.paint(col)
}

func (c *Canvas) paint(col color.Color) {
	c.painter.SetColor(col)
	c.rast.Rasterize(c.painter)
}

func pixelCenter(p image.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.I(p.X) + 32, Y: fixed.I(p.Y) + 32}
}

// dedupe drops consecutive repeated points; the stroker has no direction for a zero-length segment.
func dedupe(points []image.Point) []image.Point {
	out := make([]image.Point, 0, len(points))
	for i, p := range points {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
