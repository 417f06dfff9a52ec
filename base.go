package dataviz

import (
	"github.com/midbel/dataviz/node"
	"github.com/midbel/dataviz/scene"
)

const bandFill = 0.7

// base is the part every category chart shares: the geometry, the scene
// layers and the category labels. Labels live in their own layer so that
// refreshing data never touches them.
type base struct {
	geo ChartGeometry
	cfg Config

	root   *scene.Group
	axis   *scene.Group
	labels *scene.Group
	data   *scene.Group

	slots []float64
}

func newBase(cfg Config, geo ChartGeometry, kind string) base {
	b := base{
		geo:    geo,
		cfg:    cfg.scaled(geo.Ratio),
		root:   scene.NewGroup("chart", kind),
		axis:   scene.NewGroup("axis"),
		labels: scene.NewGroup("labels"),
		data:   scene.NewGroup("data"),
	}
	b.root.Append(b.axis)
	b.root.Append(b.data)
	b.root.Append(b.labels)
	return b
}

func newHorizontalBase(cfg Config, n *node.Node, kind string) (base, error) {
	geo, err := computeHorizontalGeometry(n, cfg)
	if err != nil {
		return base{}, err
	}
	return newBase(cfg, geo, kind), nil
}

func newVerticalBase(cfg Config, n *node.Node, kind string) (base, error) {
	geo, err := computeVerticalGeometry(n, cfg)
	if err != nil {
		return base{}, err
	}
	return newBase(cfg, geo, kind), nil
}

func newDirectedBase(cfg Config, n *node.Node, dir Direction, kind string) (base, error) {
	if dir == Vertical {
		return newVerticalBase(cfg, n, kind)
	}
	return newHorizontalBase(cfg, n, kind)
}

func (b *base) Root() *scene.Group {
	return b.root
}

// layout creates the title, the axis and one label per category. It runs
// once, when the chart is allocated.
func (b *base) layout(children []*node.Node) error {
	b.slots = make([]float64, 0, len(children))
	for i, c := range children {
		a := read(c)
		name := a.text("category_name")
		off := float64(i) * b.geo.Category
		attr := "y"
		if b.geo.Direction == Vertical {
			attr = "x"
		}
		if pos := a.optional(attr); pos != nil {
			off = *pos * b.geo.Ratio
		}
		if err := a.Err(); err != nil {
			return err
		}
		b.slots = append(b.slots, off)
		b.labels.Append(b.categoryLabel(name, off))
	}
	b.drawTitle()
	b.drawAxis()
	return nil
}

// slot returns the screen position where the band of category i begins on
// the category axis.
func (b *base) slot(i int) float64 {
	x, y := b.geo.Origin()
	if b.geo.Direction == Vertical {
		return x + b.slots[i]
	}
	return y + b.slots[i]
}

// band returns the offset and thickness of the shape drawn in category i.
func (b *base) band(i int) (float64, float64) {
	size := b.geo.Category * bandFill
	return b.slot(i) + (b.geo.Category-size)/2, size
}

func (b *base) span() float64 {
	var max float64
	for _, s := range b.slots {
		if s > max {
			max = s
		}
	}
	if len(b.slots) == 0 {
		return 0
	}
	return max + b.geo.Category
}

func (b *base) categoryLabel(name string, off float64) *scene.Text {
	var (
		text = scene.NewText(name, b.geo.FontSize)
		x, y = b.geo.Origin()
	)
	if b.geo.Direction == Vertical {
		text.X = x + off + b.geo.Category/2
		text.Y = y + b.geo.Length() + b.geo.Gap
		text.Anchor = scene.AnchorMiddle
		text.Baseline = scene.BaselineHanging
	} else {
		text.X = x - b.geo.Gap
		text.Y = y + off + b.geo.Category/2
		text.Anchor = scene.AnchorEnd
		text.Baseline = scene.BaselineMiddle
	}
	return text
}

func (b *base) drawTitle() {
	if b.geo.Title == "" {
		return
	}
	t := scene.NewText(b.geo.Title, b.geo.FontSize*1.2)
	t.X, t.Y = b.geo.X, b.geo.Y
	t.Baseline = scene.BaselineHanging
	b.labels.Append(t)
}

// drawAxis draws the value axis with grid lines over the categories and
// the baseline the categories sit on.
func (b *base) drawAxis() {
	var (
		x, y   = b.geo.Origin()
		span   = b.span()
		length = b.geo.Length()
		line   = scene.NewLine(ColorText, 1)
		axis   = Axis{
			X:        x,
			Y:        y,
			Length:   length,
			Grid:     span,
			FontSize: b.geo.FontSize,
			Gap:      b.geo.Gap,
			Ticks:    b.geo.Ticks,
		}
	)
	if b.geo.Direction == Vertical {
		axis.Orientation = OrientLeft
		axis.Ticks = make([]Tick, len(b.geo.Ticks))
		for i, t := range b.geo.Ticks {
			t.Pos = length - t.Pos
			axis.Ticks[i] = t
		}
		line.Set(x, y+length, x+span, y+length)
	} else {
		axis.Orientation = OrientBottom
		axis.Y = y + span
		line.Set(x, y, x, y+span)
	}
	axis.Draw(b.axis)
	b.axis.Append(line)
}

// start is the screen position of the value axis origin.
func (b *base) start() float64 {
	return b.geo.screen(b.geo.Scale.Origin())
}

// extent is the signed length in pixels of a shape going from the origin
// to v.
func (b *base) extent(v float64) float64 {
	return b.between(b.geo.Scale.Domain.Clamp(0), v)
}

func (b *base) between(from, to float64) float64 {
	return b.geo.Scale.Scale(to) - b.geo.Scale.Scale(from)
}

// ceiling returns the reveal ceiling of a child: its own attribute or the
// one of the chart.
func (b *base) ceiling(chart, child *node.Node) (*float64, error) {
	attr := "current_width"
	if b.geo.Direction == Vertical {
		attr = "current_height"
	}
	for _, n := range []*node.Node{child, chart} {
		v, ok, err := n.Lookup(attr)
		if err != nil {
			return nil, err
		}
		if ok {
			return &v, nil
		}
	}
	return nil, nil
}

// outer is the default position of labels drawn after the end of a shape.
func (b *base) outer() TextPosition {
	if b.geo.Direction == Vertical {
		return TextTop
	}
	return TextRight
}

// font is the size of value labels.
func (b *base) font() float64 {
	return b.geo.FontSize * 0.9
}
