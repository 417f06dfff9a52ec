package dataviz

import (
	"math"
	"sort"

	"github.com/midbel/dataviz/node"
	"github.com/midbel/dataviz/scene"
)

type MarkerShape int

const (
	MarkerTick MarkerShape = iota
	MarkerCircle
)

// Marker points at a single value across the band of a category.
type Marker struct {
	along     Direction
	shape     MarkerShape
	offset    float64
	thickness float64
	pos       float64

	line   *scene.Line
	circle *scene.Circle
}

func NewMarker(shape MarkerShape, along Direction, offset, thickness float64, fill string) *Marker {
	m := Marker{
		along:     along,
		shape:     shape,
		offset:    offset,
		thickness: thickness,
	}
	if shape == MarkerCircle {
		m.circle = scene.NewCircle(fill)
		m.circle.Radius = thickness / 4
	} else {
		m.line = scene.NewLine(fill, 2)
	}
	return &m
}

func (m *Marker) Node() scene.Node {
	if m.shape == MarkerCircle {
		return m.circle
	}
	return m.line
}

func (m *Marker) Position() float64 {
	return m.pos
}

func (m *Marker) Draw() {
	m.Update(m.pos, m.Node().Visible())
}

func (m *Marker) Update(pos float64, show bool) {
	m.pos = pos
	if m.shape == MarkerCircle {
		if m.along == Vertical {
			m.circle.X, m.circle.Y = m.offset+m.thickness/2, pos
		} else {
			m.circle.X, m.circle.Y = pos, m.offset+m.thickness/2
		}
		m.circle.Show(show)
		return
	}
	if m.along == Vertical {
		m.line.Set(m.offset, pos, m.offset+m.thickness, pos)
	} else {
		m.line.Set(pos, m.offset, pos, m.offset+m.thickness)
	}
	m.line.Show(show)
}

// Target is what a target graph draws for one category: three reference
// bands behind a current bar, a plan tick and a circle for the last value.
type Target struct {
	group   *scene.Group
	bands   []Rectangle
	current Rectangle
	plan    *Marker
	last    *Marker
}

var bandColors = []string{
	ColorBandGreen,
	ColorBandYellow,
	ColorBandRed,
}

func NewTarget(cfg Config, along Direction, start, offset, thickness float64, pos TextPosition, font float64) *Target {
	t := Target{
		group:   scene.NewGroup("target"),
		current: newRectangle(cfg, along, offset+thickness/4, thickness/2, ColorCurrent, pos, font),
		plan:    NewMarker(MarkerTick, along, offset+thickness/8, thickness*3/4, ColorText),
		last:    NewMarker(MarkerCircle, along, offset, thickness, ColorLast),
	}
	for _, fill := range bandColors {
		r := newRectangle(cfg, along, offset, thickness, fill, TextInner, font)
		r.SetStart(start)
		t.bands = append(t.bands, r)
		t.group.Append(r.Node())
	}
	t.current.SetStart(start)
	t.group.Append(t.current.Node())
	t.group.Append(t.plan.Node())
	t.group.Append(t.last.Node())
	return &t
}

func (t *Target) Node() scene.Node {
	return t.group
}

// SetBands gives the extents of the green, yellow and red bands. The widest
// band is drawn first.
func (t *Target) SetBands(extents []float64) error {
	if err := checkCount(len(t.bands), len(extents)); err != nil {
		return err
	}
	order := make([]int, len(extents))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return math.Abs(extents[order[i]]) > math.Abs(extents[order[j]])
	})
	for i, j := range order {
		t.bands[i].SetFill(bandColors[j])
		t.bands[i].Update(extents[j], false)
	}
	return nil
}

// TargetChart compares the current value of each category with its plan,
// its last value and three reference ranges.
type TargetChart struct {
	base
	targets []*Target
}

func buildTarget(dir Direction) builder {
	return func(cfg Config, n *node.Node) (composite, error) {
		b, err := newDirectedBase(cfg, n, dir, "target")
		if err != nil {
			return nil, err
		}
		c := TargetChart{
			base: b,
		}
		if err := c.allocate(n); err != nil {
			return nil, err
		}
		return &c, nil
	}
}

func (c *TargetChart) allocate(n *node.Node) error {
	if err := c.layout(n.Children); err != nil {
		return err
	}
	a := read(n)
	pos := a.position("label", c.outer())
	if err := a.Err(); err != nil {
		return err
	}
	for i := range n.Children {
		off, size := c.band(i)
		t := NewTarget(c.cfg, c.geo.Direction, c.start(), off, size, pos, c.font())
		t.current.SetRoom(c.geo.Room())
		c.targets = append(c.targets, t)
		c.data.Append(t.Node())
	}
	return nil
}

func (c *TargetChart) refresh(n *node.Node) error {
	return zip(n.Children, c.targets, func(_ int, child *node.Node, t *Target) error {
		var (
			a       = read(child)
			last    = a.float("val_last")
			current = a.float("val_current")
			plan    = a.float("val_plan")
			green   = a.float("range_green")
			yellow  = a.float("range_yellow")
			red     = a.float("range_red")
		)
		if err := a.Err(); err != nil {
			return err
		}
		ceil, err := c.ceiling(n, child)
		if err != nil {
			return err
		}
		bands := []float64{
			c.extent(green),
			c.extent(yellow),
			c.extent(red),
		}
		if err := t.SetBands(bands); err != nil {
			return err
		}
		done := revealed(current, ceil)
		t.current.SetLabel(c.cfg.Format(current))
		t.current.Update(c.extent(reveal(current, ceil)), done)
		t.plan.Update(c.geo.Position(plan), true)
		t.last.Update(c.geo.Position(last), true)
		return nil
	})
}
