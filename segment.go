package dataviz

import (
	"math"

	"github.com/midbel/dataviz/scene"
)

const (
	fullcircle = 2 * math.Pi
	halfcircle = math.Pi
	quarter    = math.Pi / 2
)

// Segment is one slice of a pie or a donut.
type Segment struct {
	show  bool
	group *scene.Group
	arc   *scene.Sector
	label label
}

func NewSegment(cfg Config, cx, cy, outer, inner float64, fill string, font float64) *Segment {
	s := Segment{
		group: scene.NewGroup("segment"),
		arc:   scene.NewSector(fill),
		label: newLabel(cfg, TextInner, font),
	}
	s.arc.X, s.arc.Y = cx, cy
	s.arc.Outer, s.arc.Inner = outer, inner
	s.label.text.Color = ColorInner
	s.group.Append(s.arc)
	s.group.Append(s.label.text)
	return &s
}

func (s *Segment) Node() scene.Node {
	return s.group
}

func (s *Segment) Start() float64 {
	return s.arc.Start
}

func (s *Segment) Size() float64 {
	return s.arc.Size
}

func (s *Segment) Fill() string {
	return s.arc.Fill
}

func (s *Segment) SetStart(angle float64) {
	s.arc.Start = angle
}

func (s *Segment) SetLabel(str string) {
	s.label.set(str)
}

func (s *Segment) LabelVisible() bool {
	return s.label.Visible()
}

func (s *Segment) Draw() {
	s.Update(s.arc.Size, s.show)
}

func (s *Segment) Update(size float64, show bool) {
	s.show = show
	s.arc.Size = math.Max(0, size)
	s.arc.Show(s.arc.Size > 0)

	t := s.label.text
	if !show || t.Content == "" || s.arc.Size == 0 {
		t.Show(false)
		return
	}
	var (
		dim    = s.label.measurer.Measure(t.Content, t.Size)
		pl, ok = PlaceSegmentLabel(s.arc.Start, s.arc.Size, s.arc.Inner, s.arc.Outer, dim)
	)
	if ok {
		t.X, t.Y = s.arc.X+pl.X, s.arc.Y+pl.Y
		t.Anchor, t.Baseline = pl.Anchor, pl.Baseline
	}
	t.Show(ok)
}

// PlaceSegmentLabel positions a label relative to the center of a slice.
// Slices whose mid angle lies in the half of a quadrant closest to the
// horizontal axis use radial anchoring: the text runs along the radius and
// its height must fit the chord. Otherwise the text runs along the chord
// and its width must fit it.
func PlaceSegmentLabel(start, size, inner, outer float64, text scene.Size) (Placement, bool) {
	var (
		pl     Placement
		mid    = normalizeAngle(start + size/2)
		radius = outer * 0.65
		ring   = outer
	)
	if inner > 0 {
		radius = (inner + outer) / 2
		ring = outer - inner
	}
	pl.X = radius * math.Cos(mid)
	pl.Y = radius * math.Sin(mid)
	pl.Anchor = scene.AnchorMiddle
	pl.Baseline = scene.BaselineMiddle

	chord := 2 * radius
	if size < halfcircle {
		chord = 2 * radius * math.Sin(size/2)
	}
	var (
		quadrant = int(mid/quarter) % 4
		within   = mid - float64(quadrant)*quarter
		radial   = (quadrant%2 == 0 && within < quarter/2) || (quadrant%2 == 1 && within >= quarter/2)
	)
	if radial {
		return pl, text.Height <= chord && text.Width <= ring
	}
	return pl, text.Width <= chord && text.Height <= ring
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, fullcircle)
	if a < 0 {
		a += fullcircle
	}
	return a
}
