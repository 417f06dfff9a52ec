package dataviz

import (
	"math"

	"github.com/midbel/dataviz/node"
)

// SimpleChart draws one bar or one column per category.
type SimpleChart struct {
	base
	items []Rectangle
}

func buildBar(dir Direction) builder {
	return func(cfg Config, n *node.Node) (composite, error) {
		b, err := newDirectedBase(cfg, n, dir, "simple")
		if err != nil {
			return nil, err
		}
		c := SimpleChart{
			base: b,
		}
		if err := c.allocate(n); err != nil {
			return nil, err
		}
		return &c, nil
	}
}

func (c *SimpleChart) allocate(n *node.Node) error {
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
		r := newRectangle(c.cfg, c.geo.Direction, off, size, ColorBar, pos, c.font())
		r.SetStart(c.start())
		r.SetRoom(c.geo.Room())
		c.items = append(c.items, r)
		c.data.Append(r.Node())
	}
	return nil
}

func (c *SimpleChart) refresh(n *node.Node) error {
	return zip(n.Children, c.items, func(_ int, child *node.Node, r Rectangle) error {
		a := read(child)
		value := a.float("value")
		if err := a.Err(); err != nil {
			return err
		}
		ceil, err := c.ceiling(n, child)
		if err != nil {
			return err
		}
		r.SetLabel(c.cfg.Format(value))
		r.Update(c.extent(reveal(value, ceil)), revealed(value, ceil))
		return nil
	})
}

// revealed tells whether v is shown in full under the ceiling.
func revealed(v float64, ceil *float64) bool {
	return ceil == nil || math.Abs(v) <= *ceil
}
