// Package scene is a small retained-mode scene graph. Charts create nodes
// once and mutate their geometry and visibility afterwards; the tree is
// serialized on demand.
package scene

import (
	"github.com/midbel/svg"
)

type Node interface {
	Visible() bool
	AsElement() svg.Element
}

type Base struct {
	ID     string
	Class  []string
	Hidden bool
}

func (b *Base) Visible() bool {
	return !b.Hidden
}

func (b *Base) Show(show bool) {
	b.Hidden = !show
}

type Group struct {
	Base
	X        float64
	Y        float64
	Children []Node
}

func NewGroup(class ...string) *Group {
	g := Group{}
	g.Class = class
	return &g
}

func (g *Group) Append(n Node) {
	g.Children = append(g.Children, n)
}

func (g *Group) Len() int {
	return len(g.Children)
}

// Reset drops all children. Only the page uses it to swap a failing chart
// with its placeholder.
func (g *Group) Reset() {
	g.Children = g.Children[:0]
}

func (g *Group) AsElement() svg.Element {
	grp := svg.NewGroup(svg.WithTranslate(g.X, g.Y))
	grp.Class = g.Class
	grp.Id = g.ID
	for _, c := range g.Children {
		if c == nil || !c.Visible() {
			continue
		}
		grp.Append(c.AsElement())
	}
	return grp.AsElement()
}

type Rect struct {
	Base
	X      float64
	Y      float64
	Width  float64
	Height float64
	Fill   string
	Title  string
}

func NewRect(fill string) *Rect {
	return &Rect{Fill: fill}
}

func (r *Rect) Set(x, y, w, h float64) {
	r.X, r.Y, r.Width, r.Height = x, y, w, h
}

func (r *Rect) AsElement() svg.Element {
	var el svg.Rect
	el.Pos = svg.NewPos(r.X, r.Y)
	el.Dim = svg.NewDim(r.Width, r.Height)
	el.Fill = svg.NewFill(r.Fill)
	el.Title = r.Title
	return el.AsElement()
}

type Circle struct {
	Base
	X      float64
	Y      float64
	Radius float64
	Fill   string
}

func NewCircle(fill string) *Circle {
	return &Circle{Fill: fill}
}

func (c *Circle) AsElement() svg.Element {
	var el svg.Circle
	el.Pos = svg.NewPos(c.X, c.Y)
	el.Radius = c.Radius
	el.Fill = svg.NewFill(c.Fill)
	return el.AsElement()
}

type Line struct {
	Base
	X1     float64
	Y1     float64
	X2     float64
	Y2     float64
	Stroke string
	Width  float64
}

func NewLine(stroke string, width float64) *Line {
	return &Line{
		Stroke: stroke,
		Width:  width,
	}
}

func (i *Line) Set(x1, y1, x2, y2 float64) {
	i.X1, i.Y1, i.X2, i.Y2 = x1, y1, x2, y2
}

func (i *Line) AsElement() svg.Element {
	li := svg.NewLine(svg.NewPos(i.X1, i.Y1), svg.NewPos(i.X2, i.Y2))
	li.Stroke = svg.NewStroke(i.Stroke, i.Width)
	return li.AsElement()
}

type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

type Baseline string

const (
	BaselineAuto    Baseline = "auto"
	BaselineMiddle  Baseline = "middle"
	BaselineHanging Baseline = "hanging"
)

type Text struct {
	Base
	X        float64
	Y        float64
	Content  string
	Size     float64
	Color    string
	Anchor   Anchor
	Baseline Baseline
}

func NewText(content string, size float64) *Text {
	return &Text{
		Content:  content,
		Size:     size,
		Anchor:   AnchorStart,
		Baseline: BaselineAuto,
	}
}

func (t *Text) AsElement() svg.Element {
	txt := svg.NewText(t.Content)
	txt.Pos = svg.NewPos(t.X, t.Y)
	txt.Font = svg.NewFont(t.Size)
	txt.Anchor = string(t.Anchor)
	txt.Baseline = string(t.Baseline)
	if t.Color == "" {
		return txt.AsElement()
	}
	var g svg.Group
	g.Fill = svg.NewFill(t.Color)
	g.Append(txt.AsElement())
	return g.AsElement()
}
