package dataviz

import (
	"github.com/midbel/dataviz/scene"
)

// TreemapNode is a rectangle laid out upstream. Its name is written inside
// when it fits both ways.
type TreemapNode struct {
	show  bool
	group *scene.Group
	rect  *scene.Rect
	label label
}

func NewTreemapNode(cfg Config, font float64) *TreemapNode {
	n := TreemapNode{
		group: scene.NewGroup("treemap-node"),
		rect:  scene.NewRect(ColorBar),
		label: newLabel(cfg, TextInner, font),
	}
	n.label.text.Color = ColorInner
	n.group.Append(n.rect)
	n.group.Append(n.label.text)
	return &n
}

func (n *TreemapNode) Node() scene.Node {
	return n.group
}

func (n *TreemapNode) Box() Box {
	return Box{
		X: n.rect.X,
		Y: n.rect.Y,
		W: n.rect.Width,
		H: n.rect.Height,
	}
}

func (n *TreemapNode) SetLabel(str string) {
	n.label.set(str)
	n.rect.Title = str
}

func (n *TreemapNode) LabelVisible() bool {
	return n.label.Visible()
}

func (n *TreemapNode) Draw() {
	n.Update(n.Box(), n.rect.Fill, n.show)
}

func (n *TreemapNode) Update(box Box, fill string, show bool) {
	n.show = show
	n.rect.Set(box.X, box.Y, box.W, box.H)
	n.rect.Fill = fill
	n.placeLabel(box, show)
}

func (n *TreemapNode) placeLabel(box Box, show bool) {
	t := n.label.text
	if !show || t.Content == "" {
		t.Show(false)
		return
	}
	var (
		dim = n.label.measurer.Measure(t.Content, t.Size)
		gap = n.label.gap
		ok  = dim.Width+2*gap <= box.W && dim.Height+2*gap <= box.H
	)
	if ok {
		t.X, t.Y = box.X+gap, box.Y+gap
		t.Anchor, t.Baseline = scene.AnchorStart, scene.BaselineHanging
	}
	t.Show(ok)
}

// HeatmapNode is a grid cell whose geometry is fixed at creation. Only its
// color and value change afterwards.
type HeatmapNode struct {
	show  bool
	group *scene.Group
	rect  *scene.Rect
	label label
}

func NewHeatmapNode(cfg Config, box Box, font float64) *HeatmapNode {
	n := HeatmapNode{
		group: scene.NewGroup("heatmap-node"),
		rect:  scene.NewRect(ColorPlaceholder),
		label: newLabel(cfg, TextInner, font),
	}
	n.rect.Set(box.X, box.Y, box.W, box.H)
	n.group.Append(n.rect)
	n.group.Append(n.label.text)
	return &n
}

func (n *HeatmapNode) Node() scene.Node {
	return n.group
}

func (n *HeatmapNode) Box() Box {
	return Box{
		X: n.rect.X,
		Y: n.rect.Y,
		W: n.rect.Width,
		H: n.rect.Height,
	}
}

func (n *HeatmapNode) Fill() string {
	return n.rect.Fill
}

func (n *HeatmapNode) LabelVisible() bool {
	return n.label.Visible()
}

func (n *HeatmapNode) Draw() {
	n.Update(n.rect.Fill, n.label.text.Content, n.show)
}

func (n *HeatmapNode) Update(fill, value string, show bool) {
	n.show = show
	n.rect.Fill = fill
	n.label.set(value)
	// cells are centered both ways: treat the label as a horizontal inner one
	// but anchored in the middle of the cell
	n.label.place(n.Box(), Horizontal, Range{}, show)
	if n.label.Visible() {
		b := n.Box()
		n.label.text.X = b.CenterX()
		n.label.text.Anchor = scene.AnchorMiddle
	}
}
