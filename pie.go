package dataviz

import (
	"github.com/midbel/dataviz/node"
	"github.com/midbel/dataviz/scene"
	"github.com/midbel/slices"
)

// PieChart draws each child as a slice sized by its fraction of the whole.
// A donut leaves an empty disk of half the radius in the middle.
type PieChart struct {
	geo      RadialGeometry
	cfg      Config
	root     *scene.Group
	colors   *Keyed
	segments []*Segment
}

func buildPie(donut bool) builder {
	return func(cfg Config, n *node.Node) (composite, error) {
		geo, err := computeRadialGeometry(n)
		if err != nil {
			return nil, err
		}
		kind := "pie"
		if donut {
			kind = "donut"
		}
		c := PieChart{
			geo:    geo,
			cfg:    cfg.scaled(geo.Ratio),
			root:   scene.NewGroup("chart", kind),
			colors: cfg.Palette.Keyed(),
		}
		var inner float64
		if donut {
			inner = geo.Radius / 2
		}
		if err := c.allocate(n, inner); err != nil {
			return nil, err
		}
		return &c, nil
	}
}

func (c *PieChart) Root() *scene.Group {
	return c.root
}

func (c *PieChart) allocate(n *node.Node, inner float64) error {
	if c.geo.Title != "" {
		t := scene.NewText(c.geo.Title, c.geo.FontSize*1.2)
		t.X = c.geo.CX
		t.Y = c.geo.CY - c.geo.Radius - c.geo.FontSize*1.5
		t.Anchor = scene.AnchorMiddle
		t.Baseline = scene.BaselineHanging
		c.root.Append(t)
	}
	for _, child := range n.Children {
		a := read(child)
		name := a.text("name")
		if err := a.Err(); err != nil {
			return err
		}
		s := NewSegment(c.cfg, c.geo.CX, c.geo.CY, c.geo.Radius, inner, c.colors.Color(name), c.geo.FontSize)
		c.segments = append(c.segments, s)
		c.root.Append(s.Node())
	}
	return nil
}

// refresh lays the slices one after the other. The optional current_val of
// the chart is the fraction of the circle already revealed.
func (c *PieChart) refresh(n *node.Node) error {
	a := read(n)
	ceil := a.optional("current_val")
	if err := a.Err(); err != nil {
		return err
	}
	var (
		bounds = []float64{0}
		cum    float64
	)
	return zip(n.Children, c.segments, func(_ int, child *node.Node, s *Segment) error {
		a := read(child)
		val := a.float("val")
		if err := a.Err(); err != nil {
			return err
		}
		cum += val
		var (
			prev = slices.Lst(bounds)
			end  = reveal(cum, ceil)
		)
		s.SetStart(prev * fullcircle)
		s.SetLabel(FormatPercent(val))
		s.Update((end-prev)*fullcircle, revealed(cum, ceil))
		bounds = append(bounds, end)
		return nil
	})
}
