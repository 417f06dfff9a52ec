package dataviz

import (
	"github.com/midbel/dataviz/node"
)

// PinChart draws signed values as pins growing from the axis origin.
type PinChart struct {
	base
	pins []*Pin
}

func buildPin(dir Direction) builder {
	return func(cfg Config, n *node.Node) (composite, error) {
		b, err := newDirectedBase(cfg, n, dir, "pin")
		if err != nil {
			return nil, err
		}
		c := PinChart{
			base: b,
		}
		if err := c.allocate(n); err != nil {
			return nil, err
		}
		return &c, nil
	}
}

func (c *PinChart) allocate(n *node.Node) error {
	if err := c.layout(n.Children); err != nil {
		return err
	}
	for i := range n.Children {
		off, size := c.band(i)
		p := NewPin(c.cfg, c.geo.Direction, off, size, c.font())
		p.SetStart(c.start())
		p.SetRoom(c.geo.Room())
		c.pins = append(c.pins, p)
		c.data.Append(p.Node())
	}
	return nil
}

func (c *PinChart) refresh(n *node.Node) error {
	return zip(n.Children, c.pins, func(_ int, child *node.Node, p *Pin) error {
		a := read(child)
		value := a.float("value")
		if err := a.Err(); err != nil {
			return err
		}
		ceil, err := c.ceiling(n, child)
		if err != nil {
			return err
		}
		p.SetLabel(c.cfg.Format(value))
		p.Update(c.extent(reveal(value, ceil)), revealed(value, ceil))
		return nil
	})
}
