package render

import (
	"image"

	"github.com/rook-computer/shieldicon/internal/render/layout"
)

// SparkleMark is a cross of one horizontal and one vertical segment.
type SparkleMark struct {
	Center image.Point
	Radius int
}

// Segments returns the horizontal and vertical segments of the cross.
func (m SparkleMark) Segments() (horizontal, vertical [2]image.Point) {
	c, r := m.Center, m.Radius
	horizontal = [2]image.Point{image.Pt(c.X-r, c.Y), image.Pt(c.X+r, c.Y)}
	vertical = [2]image.Point{image.Pt(c.X, c.Y-r), image.Pt(c.X, c.Y+r)}
	return horizontal, vertical
}

// Geometry holds every shape of the icon scaled to one pixel size.
type Geometry struct {
	Size      int
	Shadow    []image.Point
	Shield    []image.Point
	Highlight []image.Point
	Check     []image.Point
	Sparkles  []SparkleMark

	OutlineWidth int
	CheckWidth   int
	SparkleWidth int
}

// NewGeometry scales the 128-unit design to size×size pixels.
func NewGeometry(size int) (Geometry, error) {
	if size <= 0 {
		return Geometry{}, ErrInvalidSize
	}
	s := layout.NewScaler(size)
	cx := s.CenterX()

	shield := []image.Point{
		image.Pt(cx, s.Px(10)),
		s.Pt(108, 25),
		s.Pt(108, 70),
		image.Pt(cx, s.Px(118)),
		s.Pt(20, 70),
		s.Pt(20, 25),
	}
	shadowOffset := s.Px(3)

	return Geometry{
		Size:   size,
		Shadow: layout.Offset(shield, image.Pt(shadowOffset, shadowOffset)),
		Shield: shield,
		Highlight: []image.Point{
			image.Pt(cx, s.Px(18)),
			s.Pt(98, 30),
			s.Pt(98, 50),
			image.Pt(cx, s.Px(45)),
			s.Pt(30, 50),
			s.Pt(30, 30),
		},
		Check: []image.Point{
			s.Pt(40, 65),
			s.Pt(55, 85),
			s.Pt(90, 45),
		},
		Sparkles: []SparkleMark{
			{Center: s.Pt(95, 20), Radius: s.Px(4)},
			{Center: s.Pt(25, 35), Radius: s.Px(3)},
			{Center: s.Pt(100, 55), Radius: s.Px(3)},
		},
		OutlineWidth: s.Stroke(2, 1),
		CheckWidth:   s.Stroke(6, 2),
		SparkleWidth: s.Stroke(1.5, 1),
	}, nil
}
