package dataviz

import (
	"fmt"

	"github.com/midbel/dataviz/node"
	"github.com/midbel/dataviz/scene"
)

// HeatmapChart is a grid of cells placed once at allocation. Refreshing only
// recolors them.
type HeatmapChart struct {
	cfg   Config
	root  *scene.Group
	cells []*HeatmapNode
}

type grid struct {
	x, y   float64
	width  float64
	height float64
	xdom   Domain
	ydom   Domain
}

func (g grid) cell(x, y float64) Box {
	return Box{
		X: g.x + (x-g.xdom.Min)*g.width,
		Y: g.y + (y-g.ydom.Min)*g.height,
		W: g.width,
		H: g.height,
	}
}

func buildHeatmap(cfg Config, n *node.Node) (composite, error) {
	var (
		a     = read(n)
		ratio = a.float("scale")
		g     = grid{
			x:      a.float("x") * ratio,
			y:      a.float("y") * ratio,
			width:  a.float("cell_width") * ratio,
			height: a.float("cell_height") * ratio,
			xdom:   NewDomain(a.float("domain_x_min"), a.float("domain_x_max")),
			ydom:   NewDomain(a.float("domain_y_min"), a.float("domain_y_max")),
		}
		pxs = a.optional("pxs")
	)
	if err := a.Err(); err != nil {
		return nil, err
	}
	if err := checkRatio(ratio); err != nil {
		return nil, err
	}
	if g.xdom.Min > g.xdom.Max || g.ydom.Min > g.ydom.Max {
		return nil, fmt.Errorf("heatmap: %w", ErrDegenerateDomain)
	}
	c := HeatmapChart{
		cfg:  cfg.scaled(ratio),
		root: scene.NewGroup("chart", "heatmap"),
	}
	font := cfg.FontSize * ratio
	if pxs != nil {
		font = *pxs * ratio
	}
	for _, child := range n.Children {
		var (
			a = read(child)
			x = a.float("x")
			y = a.float("y")
		)
		if err := a.Err(); err != nil {
			return nil, err
		}
		h := NewHeatmapNode(c.cfg, g.cell(x, y), font)
		c.cells = append(c.cells, h)
		c.root.Append(h.Node())
	}
	return &c, nil
}

func (c *HeatmapChart) Root() *scene.Group {
	return c.root
}

func (c *HeatmapChart) refresh(n *node.Node) error {
	return zip(n.Children, c.cells, func(_ int, child *node.Node, h *HeatmapNode) error {
		var (
			a     = read(child)
			fill  = a.text("fill")
			value = a.text("value")
		)
		if err := a.Err(); err != nil {
			return err
		}
		h.Update(fill, value, true)
		return nil
	})
}
