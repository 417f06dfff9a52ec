package dataviz

import (
	"errors"
	"io"

	"github.com/midbel/dataviz/node"
	"github.com/midbel/dataviz/scene"
)

// Page holds every chart described by the children of one root node. A
// chart that fails is replaced by a placeholder and never prevents the
// others from being drawn.
type Page struct {
	cfg    Config
	doc    *scene.Document
	slots  []*slot
	errors []error
}

type slot struct {
	kind  string
	chart *Chart
	group *scene.Group
	err   error
}

func NewPage(cfg Config, root *node.Node) *Page {
	cfg = cfg.normalize()
	p := Page{
		cfg: cfg,
		doc: scene.NewDocument(cfg.Width, cfg.Height),
	}
	for i, n := range root.Children {
		s := slot{
			kind:  chartKind(n),
			group: scene.NewGroup("slot"),
		}
		s.chart, s.err = New(s.kind, cfg)
		if s.err != nil {
			s.err = &ChartError{Kind: s.kind, Index: i, Err: s.err}
		}
		p.slots = append(p.slots, &s)
		p.doc.Root.Append(s.group)
	}
	return &p
}

// chartKind is the name of the element, or its type attribute for generic
// chart elements.
func chartKind(n *node.Node) string {
	if n.Name == "chart" {
		if k, ok := n.Attr("type"); ok {
			return k
		}
	}
	return n.Name
}

func (p *Page) Len() int {
	return len(p.slots)
}

// Chart returns the i-th chart of the page, nil if it could not be created.
func (p *Page) Chart(i int) *Chart {
	return p.slots[i].chart
}

// Errors returns the failures of the last update, one per failing chart.
func (p *Page) Errors() []error {
	return p.errors
}

// Err joins the failures of the last update.
func (p *Page) Err() error {
	return errors.Join(p.errors...)
}

// Update allocates or refreshes every chart of the page with the children
// of root. The children must match the ones the page was created with.
func (p *Page) Update(root *node.Node) error {
	if err := checkCount(len(p.slots), len(root.Children)); err != nil {
		return err
	}
	p.errors = nil
	for i, s := range p.slots {
		n := root.Children[i]
		if s.chart != nil {
			if err := s.chart.Update(n); err != nil {
				s.err = &ChartError{Kind: s.kind, Index: i, Err: err}
			} else {
				s.err = nil
			}
		}
		s.group.Reset()
		if s.err != nil {
			Logger().Warn("chart replaced by placeholder", "kind", s.kind, "index", i, "err", s.err)
			p.errors = append(p.errors, s.err)
			s.group.Append(placeholder(n))
			continue
		}
		s.group.Append(s.chart.Node())
	}
	return nil
}

func (p *Page) Render(w io.Writer) error {
	return p.doc.Render(w)
}

// placeholder covers the area the chart would have used. Attributes that can
// not be read give an empty rectangle.
func placeholder(n *node.Node) scene.Node {
	get := func(attr string) float64 {
		v, _, _ := n.Lookup(attr)
		return v
	}
	ratio := get("scale")
	if ratio <= 0 {
		ratio = 1
	}
	r := scene.NewRect(ColorPlaceholder)
	r.Set(get("x")*ratio, get("y")*ratio, get("max_width")*ratio, get("max_height")*ratio)
	r.Title = chartKind(n)
	return r
}
