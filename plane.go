package dataviz

import (
	"github.com/midbel/dataviz/node"
	"github.com/midbel/dataviz/scene"
	"github.com/midbel/slices"
)

// PlaneChart places each child at its (x, y) coordinates. The line variant
// joins consecutive points in document order.
type PlaneChart struct {
	geo   PlaneGeometry
	cfg   Config
	root  *scene.Group
	dots  []*Dot
	links []*Line
}

func buildPlane(line bool) builder {
	return func(cfg Config, n *node.Node) (composite, error) {
		geo, err := computePlaneGeometry(n, cfg)
		if err != nil {
			return nil, err
		}
		kind := "scatter"
		if line {
			kind = "line"
		}
		c := PlaneChart{
			geo:  geo,
			cfg:  cfg.scaled(geo.Ratio),
			root: scene.NewGroup("chart", kind),
		}
		c.allocate(n, line)
		return &c, nil
	}
}

func (c *PlaneChart) Root() *scene.Group {
	return c.root
}

func (c *PlaneChart) allocate(n *node.Node, line bool) {
	var (
		axis = scene.NewGroup("axis")
		data = scene.NewGroup("data")
	)
	c.root.Append(axis)
	c.root.Append(data)
	c.drawAxis(axis)

	fill := c.cfg.Palette.At(0)
	for i := range n.Children {
		if line && i > 0 {
			link := NewLine(fill, c.geo.Ratio)
			c.links = append(c.links, link)
			data.Append(link.Node())
		}
		d := NewDot(fill, DefaultSize*c.geo.Ratio)
		c.dots = append(c.dots, d)
		data.Append(d.Node())
	}
}

func (c *PlaneChart) drawAxis(axis *scene.Group) {
	var (
		x0, y0 = c.geo.Position(c.geo.XScale.Domain.Min, c.geo.YScale.Domain.Min)
		x1, y1 = c.geo.Position(c.geo.XScale.Domain.Max, c.geo.YScale.Domain.Max)
		xaxis  = Axis{
			Orientation: OrientBottom,
			X:           x0,
			Y:           y0,
			Length:      x1 - x0,
			FontSize:    c.geo.FontSize,
			Gap:         c.geo.Gap,
		}
		yaxis = Axis{
			Orientation: OrientLeft,
			X:           x0,
			Y:           y1,
			Length:      y0 - y1,
			FontSize:    c.geo.FontSize,
			Gap:         c.geo.Gap,
		}
	)
	if c.geo.Title != "" {
		t := scene.NewText(c.geo.Title, c.geo.FontSize*1.2)
		t.X, t.Y = c.geo.X, c.geo.Y
		t.Baseline = scene.BaselineHanging
		axis.Append(t)
	}
	for _, t := range makeTicks(c.geo.XScale, c.cfg.Ticks, c.cfg.Format) {
		px, _ := c.geo.Position(t.Value, c.geo.YScale.Domain.Min)
		t.Pos = px - x0
		xaxis.Ticks = append(xaxis.Ticks, t)
	}
	for _, t := range makeTicks(c.geo.YScale, c.cfg.Ticks, c.cfg.Format) {
		_, py := c.geo.Position(c.geo.XScale.Domain.Min, t.Value)
		t.Pos = py - y1
		yaxis.Ticks = append(yaxis.Ticks, t)
	}
	xaxis.Draw(axis)
	yaxis.Draw(axis)
}

// refresh moves the dots. Points beyond the optional current_x of the chart
// are hidden, so are the links touching them.
func (c *PlaneChart) refresh(n *node.Node) error {
	a := read(n)
	ceil := a.optional("current_x")
	if err := a.Err(); err != nil {
		return err
	}
	err := zip(n.Children, c.dots, func(_ int, child *node.Node, d *Dot) error {
		var (
			a = read(child)
			x = a.float("x")
			y = a.float("y")
		)
		if err := a.Err(); err != nil {
			return err
		}
		px, py := c.geo.Position(x, y)
		d.Update(px, py, ceil == nil || x <= *ceil)
		return nil
	})
	if err != nil {
		return err
	}
	c.connect()
	return nil
}

func (c *PlaneChart) connect() {
	if len(c.links) == 0 {
		return
	}
	prev := slices.Fst(c.dots)
	for i, d := range slices.Rest(c.dots) {
		var (
			x1, y1 = prev.Position()
			x2, y2 = d.Position()
		)
		c.links[i].Update(x1, y1, x2, y2, prev.Visible() && d.Visible())
		prev = d
	}
}
