package dataviz

import (
	"fmt"
	"math"

	"github.com/midbel/dataviz/node"
	"github.com/midbel/slices"
)

const (
	stepResult   = "result"
	stepVariance = "variance"
)

// Step is one bar of a waterfall. A result step is anchored on the axis
// origin, a variance step on the end of the step before it.
type Step struct {
	Rectangle
	along  Direction
	result bool
	start  float64
}

func NewStep(cfg Config, along Direction, offset, thickness float64, font float64) *Step {
	return &Step{
		Rectangle: newRectangle(cfg, along, offset, thickness, ColorResult, TextRight, font),
		along:     along,
	}
}

func (s *Step) Start() float64 {
	return s.start
}

func (s *Step) End() float64 {
	return s.along.advance(s.start, s.Extent())
}

func (s *Step) SetStart(start float64) {
	s.start = start
	s.Rectangle.SetStart(start)
}

func (s *Step) update(extent float64, show bool) {
	fill := ColorResult
	if !s.result {
		fill = ColorPositive
		if extent < 0 {
			fill = ColorNegative
		}
	}
	s.SetFill(fill)
	s.SetPosition(pinPosition(s.along, extent))
	s.Update(extent, show)
}

// WaterfallChart draws a sequence of results and the variances leading from
// one to the next.
type WaterfallChart struct {
	base
	steps []*Step
	links []*Line
}

func buildWaterfall(dir Direction) builder {
	return func(cfg Config, n *node.Node) (composite, error) {
		b, err := newDirectedBase(cfg, n, dir, "waterfall")
		if err != nil {
			return nil, err
		}
		c := WaterfallChart{
			base: b,
		}
		if err := c.allocate(n); err != nil {
			return nil, err
		}
		return &c, nil
	}
}

func (c *WaterfallChart) allocate(n *node.Node) error {
	if err := c.layout(n.Children); err != nil {
		return err
	}
	for i := range n.Children {
		if i > 0 {
			link := NewLine(ColorText, 1)
			c.links = append(c.links, link)
			c.data.Append(link.Node())
		}
		off, size := c.band(i)
		s := NewStep(c.cfg, c.geo.Direction, off, size, c.font())
		s.SetStart(c.start())
		s.SetRoom(c.geo.Room())
		c.steps = append(c.steps, s)
		c.data.Append(s.Node())
	}
	return nil
}

func (c *WaterfallChart) refresh(n *node.Node) error {
	line, err := c.currentLine(n)
	if err != nil {
		return err
	}
	var (
		origin = c.geo.Scale.Domain.Clamp(0)
		total  = origin
	)
	err = zip(n.Children, c.steps, func(i int, child *node.Node, s *Step) error {
		var (
			a     = read(child)
			kind  = a.text("type")
			value = a.float("value")
		)
		if err := a.Err(); err != nil {
			return err
		}
		ceil, err := c.ceiling(n, child)
		if err != nil {
			return err
		}
		from := total
		switch kind {
		case stepResult:
			s.result, from = true, origin
			total = value
		case stepVariance:
			s.result = false
			total += value
		default:
			return fmt.Errorf("type: %w (%s)", node.ErrMalformedDataNode, kind)
		}
		visible := i <= line
		s.SetStart(c.geo.Position(from))
		s.SetLabel(c.cfg.Format(value))
		s.update(c.between(from, from+reveal(total-from, ceil)), visible && revealed(total-from, ceil))
		s.Show(visible)
		return nil
	})
	if err != nil {
		return err
	}
	c.connect(line)
	return nil
}

// connect joins the end of each step to the start of the next one. Links
// reaching a hidden step are hidden too.
func (c *WaterfallChart) connect(line int) {
	if len(c.steps) == 0 {
		return
	}
	prev := slices.Fst(c.steps)
	for i, s := range slices.Rest(c.steps) {
		var (
			link = c.links[i]
			pos  = prev.End()
			a    = prev.Box()
			b    = s.Box()
		)
		if c.geo.Direction == Vertical {
			link.Update(a.Right(), pos, b.X, pos, i+1 <= line)
		} else {
			link.Update(pos, a.Bottom(), pos, b.Y, i+1 <= line)
		}
		prev = s
	}
}

// currentLine is the index of the last visible step. Without the attribute
// every step is shown.
func (c *WaterfallChart) currentLine(n *node.Node) (int, error) {
	v, ok, err := n.Lookup("current_line")
	if err != nil {
		return 0, err
	}
	if !ok {
		return math.MaxInt, nil
	}
	return int(v), nil
}
