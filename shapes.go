package dataviz

import (
	"github.com/midbel/dataviz/scene"
)

var DefaultSize float64 = 4

// Dot is a point of a two axis chart.
type Dot struct {
	circle *scene.Circle
}

func NewDot(fill string, size float64) *Dot {
	if size <= 0 {
		size = DefaultSize
	}
	d := Dot{
		circle: scene.NewCircle(fill),
	}
	d.circle.Radius = size / 2
	return &d
}

func (d *Dot) Node() scene.Node {
	return d.circle
}

func (d *Dot) Position() (float64, float64) {
	return d.circle.X, d.circle.Y
}

func (d *Dot) Visible() bool {
	return d.circle.Visible()
}

func (d *Dot) Draw() {
	d.Update(d.circle.X, d.circle.Y, d.circle.Visible())
}

func (d *Dot) Update(x, y float64, show bool) {
	d.circle.X, d.circle.Y = x, y
	d.circle.Show(show)
}

// Line joins two consecutive dots.
type Line struct {
	line *scene.Line
}

func NewLine(stroke string, width float64) *Line {
	return &Line{
		line: scene.NewLine(stroke, width),
	}
}

func (i *Line) Node() scene.Node {
	return i.line
}

func (i *Line) Visible() bool {
	return i.line.Visible()
}

func (i *Line) Points() (float64, float64, float64, float64) {
	return i.line.X1, i.line.Y1, i.line.X2, i.line.Y2
}

func (i *Line) Draw() {
	i.Update(i.line.X1, i.line.Y1, i.line.X2, i.line.Y2, i.line.Visible())
}

func (i *Line) Update(x1, y1, x2, y2 float64, show bool) {
	i.line.Set(x1, y1, x2, y2)
	i.line.Show(show)
}
