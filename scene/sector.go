package scene

import (
	"math"

	"github.com/midbel/svg"
)

const fullCircle = 2 * math.Pi

// Sector is an annular slice of a circle. Angles are in radians, clockwise
// on screen starting from the positive x axis. An Inner radius of zero
// gives a plain pie slice.
type Sector struct {
	Base
	X     float64
	Y     float64
	Start float64
	Size  float64
	Outer float64
	Inner float64
	Fill  string
}

func NewSector(fill string) *Sector {
	return &Sector{Fill: fill}
}

func (s *Sector) Point(angle, radius float64) (float64, float64) {
	return s.X + radius*math.Cos(angle), s.Y + radius*math.Sin(angle)
}

func (s *Sector) AsElement() svg.Element {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill(s.Fill)

	size := math.Min(s.Size, fullCircle)
	if size <= 0 {
		return pat.AsElement()
	}
	if size >= fullCircle {
		// a single arc can not close on itself
		s.arc(&pat, s.Start, math.Pi, true)
		s.arc(&pat, s.Start+math.Pi, math.Pi, false)
		pat.ClosePath()
		return pat.AsElement()
	}
	s.arc(&pat, s.Start, size, true)
	pat.ClosePath()
	return pat.AsElement()
}

func (s *Sector) arc(pat *svg.Path, start, size float64, move bool) {
	var (
		end   = start + size
		large = size > math.Pi
		pos   = func(a, r float64) svg.Pos {
			x, y := s.Point(a, r)
			return svg.NewPos(x, y)
		}
	)
	if move {
		pat.AbsMoveTo(pos(start, s.Outer))
	} else {
		pat.AbsLineTo(pos(start, s.Outer))
	}
	pat.AbsArcTo(pos(end, s.Outer), s.Outer, s.Outer, 0, large, true)
	if s.Inner <= 0 {
		pat.AbsLineTo(pos(end, 0))
		return
	}
	pat.AbsLineTo(pos(end, s.Inner))
	pat.AbsArcTo(pos(start, s.Inner), s.Inner, s.Inner, 0, large, false)
	pat.AbsLineTo(pos(start, s.Outer))
}
