package dataviz

import (
	"github.com/midbel/dataviz/node"
	"github.com/midbel/dataviz/scene"
)

// Cluster splits the band of a category evenly between its values. All its
// shapes start at the axis origin.
type Cluster struct {
	group *scene.Group
	items []Rectangle
}

func NewCluster(cfg Config, along Direction, start, offset, thickness float64, count int, pos TextPosition, font float64) *Cluster {
	c := Cluster{
		group: scene.NewGroup("cluster"),
	}
	if count == 0 {
		return &c
	}
	size := thickness / float64(count)
	for i := 0; i < count; i++ {
		r := newRectangle(cfg, along, offset+float64(i)*size, size, cfg.Palette.At(i), pos, font)
		r.SetStart(start)
		c.items = append(c.items, r)
		c.group.Append(r.Node())
	}
	return &c
}

func (c *Cluster) Node() scene.Node {
	return c.group
}

func (c *Cluster) Len() int {
	return len(c.items)
}

func (c *Cluster) At(i int) Rectangle {
	return c.items[i]
}

func (c *Cluster) SetRoom(room Range) {
	for _, r := range c.items {
		r.SetRoom(room)
	}
}

func (c *Cluster) SetLabels(labels []string) error {
	if err := checkCount(len(c.items), len(labels)); err != nil {
		return err
	}
	for i := range c.items {
		c.items[i].SetLabel(labels[i])
	}
	return nil
}

func (c *Cluster) Update(extents []float64, show []bool) error {
	if err := checkCount(len(c.items), len(extents)); err != nil {
		return err
	}
	for i, r := range c.items {
		r.Update(extents[i], i < len(show) && show[i])
	}
	return nil
}

// GroupedChart draws the values of a category side by side.
type GroupedChart struct {
	base
	clusters []*Cluster
}

func buildGrouped(dir Direction) builder {
	return func(cfg Config, n *node.Node) (composite, error) {
		b, err := newDirectedBase(cfg, n, dir, "grouped")
		if err != nil {
			return nil, err
		}
		c := GroupedChart{
			base: b,
		}
		if err := c.allocate(n); err != nil {
			return nil, err
		}
		return &c, nil
	}
}

func (c *GroupedChart) allocate(n *node.Node) error {
	if err := c.layout(n.Children); err != nil {
		return err
	}
	a := read(n)
	pos := a.position("label", c.outer())
	if err := a.Err(); err != nil {
		return err
	}
	for i, child := range n.Children {
		a := read(child)
		values := a.floats("values")
		if err := a.Err(); err != nil {
			return err
		}
		off, size := c.band(i)
		g := NewCluster(c.cfg, c.geo.Direction, c.start(), off, size, len(values), pos, c.font())
		g.SetRoom(c.geo.Room())
		c.clusters = append(c.clusters, g)
		c.data.Append(g.Node())
	}
	return nil
}

func (c *GroupedChart) refresh(n *node.Node) error {
	return zip(n.Children, c.clusters, func(_ int, child *node.Node, g *Cluster) error {
		a := read(child)
		values := a.floats("values")
		if err := a.Err(); err != nil {
			return err
		}
		ceil, err := c.ceiling(n, child)
		if err != nil {
			return err
		}
		var (
			labels  = make([]string, len(values))
			extents = make([]float64, len(values))
			show    = make([]bool, len(values))
		)
		for i, v := range values {
			labels[i] = c.cfg.Format(v)
			extents[i] = c.extent(reveal(v, ceil))
			show[i] = revealed(v, ceil)
		}
		if err := g.SetLabels(labels); err != nil {
			return err
		}
		return g.Update(extents, show)
	})
}
