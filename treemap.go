package dataviz

import (
	"github.com/midbel/dataviz/node"
	"github.com/midbel/dataviz/scene"
)

// TreemapChart renders rectangles laid out upstream. It only multiplies
// their geometry by the pixel ratio.
type TreemapChart struct {
	cfg   Config
	ratio float64
	x     float64
	y     float64
	root  *scene.Group
	nodes []*TreemapNode
}

func buildTreemap(cfg Config, n *node.Node) (composite, error) {
	var (
		a     = read(n)
		ratio = a.float("scale")
		x     = a.optional("x")
		y     = a.optional("y")
		pxs   = a.optional("pxs")
	)
	if err := a.Err(); err != nil {
		return nil, err
	}
	if err := checkRatio(ratio); err != nil {
		return nil, err
	}
	c := TreemapChart{
		cfg:   cfg.scaled(ratio),
		ratio: ratio,
		root:  scene.NewGroup("chart", "treemap"),
	}
	if x != nil {
		c.x = *x * ratio
	}
	if y != nil {
		c.y = *y * ratio
	}
	font := cfg.FontSize * ratio
	if pxs != nil {
		font = *pxs * ratio
	}
	for range n.Children {
		t := NewTreemapNode(c.cfg, font)
		c.nodes = append(c.nodes, t)
		c.root.Append(t.Node())
	}
	return &c, nil
}

func (c *TreemapChart) Root() *scene.Group {
	return c.root
}

func (c *TreemapChart) refresh(n *node.Node) error {
	return zip(n.Children, c.nodes, func(_ int, child *node.Node, t *TreemapNode) error {
		var (
			a    = read(child)
			left = a.float("left")
			top  = a.float("top")
			w    = a.float("width")
			h    = a.float("height")
			fill = a.text("background")
			name = a.text("name")
		)
		if err := a.Err(); err != nil {
			return err
		}
		box := Box{
			X: c.x + left*c.ratio,
			Y: c.y + top*c.ratio,
			W: w * c.ratio,
			H: h * c.ratio,
		}
		t.SetLabel(name)
		t.Update(box, fill, true)
		return nil
	})
}
