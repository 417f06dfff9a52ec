package dataviz

import (
	"github.com/midbel/dataviz/node"
	"github.com/midbel/dataviz/scene"
	"github.com/midbel/slices"
)

// Stack is the fixed sequence of segments drawn for one category. Each
// segment starts where the previous one ends.
type Stack struct {
	along Direction
	start float64
	ends  []float64
	group *scene.Group
	items []Rectangle
}

func NewStack(cfg Config, along Direction, start, offset, thickness float64, count int, font float64) *Stack {
	s := Stack{
		along: along,
		start: start,
		group: scene.NewGroup("stack"),
	}
	for i := 0; i < count; i++ {
		r := newRectangle(cfg, along, offset, thickness, cfg.Palette.At(i), TextInner, font)
		r.SetStart(start)
		s.items = append(s.items, r)
		s.group.Append(r.Node())
	}
	return &s
}

func (s *Stack) Node() scene.Node {
	return s.group
}

func (s *Stack) Len() int {
	return len(s.items)
}

func (s *Stack) At(i int) Rectangle {
	return s.items[i]
}

func (s *Stack) SetLabels(labels []string) error {
	if err := checkCount(len(s.items), len(labels)); err != nil {
		return err
	}
	for i := range s.items {
		s.items[i].SetLabel(labels[i])
	}
	return nil
}

// Update sets the extent of every segment. show is the label state of each
// segment; a nil slice hides all of them.
func (s *Stack) Update(extents []float64, show []bool) error {
	if err := checkCount(len(s.items), len(extents)); err != nil {
		return err
	}
	s.ends = s.ends[:0]
	pos := s.start
	for i, r := range s.items {
		r.SetStart(pos)
		r.Update(extents[i], i < len(show) && show[i])
		pos = s.along.advance(pos, extents[i])
		s.ends = append(s.ends, pos)
	}
	return nil
}

// End is the position where the last segment ends.
func (s *Stack) End() float64 {
	if len(s.ends) == 0 {
		return s.start
	}
	return slices.Lst(s.ends)
}

// StackedChart piles up the values of each category.
type StackedChart struct {
	base
	normalized bool
	stacks     []*Stack
}

func buildStacked(dir Direction) builder {
	return func(cfg Config, n *node.Node) (composite, error) {
		b, err := newDirectedBase(cfg, n, dir, "stacked")
		if err != nil {
			return nil, err
		}
		c := StackedChart{
			base: b,
		}
		if err := c.allocate(n); err != nil {
			return nil, err
		}
		return &c, nil
	}
}

func (c *StackedChart) allocate(n *node.Node) error {
	a := read(n)
	c.normalized = a.flag("normalized")
	if err := a.Err(); err != nil {
		return err
	}
	if err := c.layout(n.Children); err != nil {
		return err
	}
	for i, child := range n.Children {
		a := read(child)
		values := a.floats("values")
		if err := a.Err(); err != nil {
			return err
		}
		off, size := c.band(i)
		s := NewStack(c.cfg, c.geo.Direction, c.start(), off, size, len(values), c.font())
		c.stacks = append(c.stacks, s)
		c.data.Append(s.Node())
	}
	return nil
}

func (c *StackedChart) refresh(n *node.Node) error {
	return zip(n.Children, c.stacks, func(_ int, child *node.Node, s *Stack) error {
		a := read(child)
		values := a.floats("values")
		if err := a.Err(); err != nil {
			return err
		}
		ceil, err := c.ceiling(n, child)
		if err != nil {
			return err
		}
		labels := make([]string, len(values))
		for i := range values {
			labels[i] = c.cfg.Format(values[i])
		}
		if err := s.SetLabels(labels); err != nil {
			return err
		}
		extents, show := c.partition(values, ceil)
		return s.Update(extents, show)
	})
}

// partition computes the extent of each segment. The end of segment i is
// the position of the cumulated values up to i, clipped by the ceiling.
// Normalized stacks are rescaled after clipping.
func (c *StackedChart) partition(values []float64, ceil *float64) ([]float64, []bool) {
	var (
		extents = make([]float64, len(values))
		show    = make([]bool, len(values))
		factor  = c.factor(values)
		origin  = c.geo.Scale.Domain.Clamp(0)
		prev    = origin
		cum     float64
	)
	for i, v := range values {
		cum += v
		end := origin + reveal(cum, ceil)*factor
		extents[i] = c.between(prev, end)
		show[i] = revealed(cum, ceil)
		prev = end
	}
	return extents, show
}

// factor spreads the values of a category over the whole domain when the
// chart stacks in percent.
func (c *StackedChart) factor(values []float64) float64 {
	if !c.normalized {
		return 1
	}
	var total float64
	for _, v := range values {
		total += v
	}
	if total == 0 {
		return 1
	}
	return (c.geo.Scale.Domain.Max - c.geo.Scale.Domain.Clamp(0)) / total
}
