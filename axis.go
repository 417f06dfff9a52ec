package dataviz

import (
	"github.com/midbel/dataviz/scene"
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

// Axis draws a value axis: its domain line, one tick per value with its
// label, and optional grid lines running across the plot.
type Axis struct {
	Orientation

	X      float64
	Y      float64
	Length float64
	// Grid is how far tick lines extend inside the plot area.
	Grid     float64
	FontSize float64
	Gap      float64

	// Pos of each tick is its offset from (X, Y) along the axis.
	Ticks []Tick
}

func (a Axis) Draw(g *scene.Group) {
	g.Append(a.domainLine())
	size := a.FontSize * 0.4
	for _, t := range a.Ticks {
		g.Append(a.lineTick(t.Pos, size))
		g.Append(a.tickText(t.Label, t.Pos, size))
	}
}

func (a Axis) domainLine() *scene.Line {
	d := scene.NewLine(ColorText, 1)
	if a.Vertical() {
		d.Set(a.X, a.Y, a.X, a.Y+a.Length)
	} else {
		d.Set(a.X, a.Y, a.X+a.Length, a.Y)
	}
	return d
}

func (a Axis) lineTick(offset, size float64) *scene.Line {
	tick := scene.NewLine(ColorAxis, 1)
	switch {
	case a.Vertical() && !a.Reverse():
		tick.Set(a.X-size, a.Y+offset, a.X+a.Grid, a.Y+offset)
	case a.Vertical() && a.Reverse():
		tick.Set(a.X-a.Grid, a.Y+offset, a.X+size, a.Y+offset)
	case !a.Vertical() && a.Reverse():
		tick.Set(a.X+offset, a.Y-size, a.X+offset, a.Y+a.Grid)
	default:
		tick.Set(a.X+offset, a.Y-a.Grid, a.X+offset, a.Y+size)
	}
	return tick
}

func (a Axis) tickText(str string, offset, size float64) *scene.Text {
	text := scene.NewText(str, a.FontSize*0.8)
	switch {
	case a.Vertical() && !a.Reverse():
		text.X, text.Y = a.X-size-a.Gap, a.Y+offset
		text.Anchor, text.Baseline = scene.AnchorEnd, scene.BaselineMiddle
	case a.Vertical() && a.Reverse():
		text.X, text.Y = a.X+size+a.Gap, a.Y+offset
		text.Anchor, text.Baseline = scene.AnchorStart, scene.BaselineMiddle
	case !a.Vertical() && a.Reverse():
		text.X, text.Y = a.X+offset, a.Y-size-a.Gap
		text.Anchor, text.Baseline = scene.AnchorMiddle, scene.BaselineAuto
	default:
		text.X, text.Y = a.X+offset, a.Y+size+a.Gap
		text.Anchor, text.Baseline = scene.AnchorMiddle, scene.BaselineHanging
	}
	return text
}

// makeTicks builds the ticks of a scale, positioned by the scale itself.
func makeTicks(s Scale, count int, format func(float64) string) []Tick {
	var list []Tick
	for _, v := range s.Ticks(count) {
		t := Tick{
			Value: v,
			Pos:   s.Scale(v),
			Label: format(v),
		}
		list = append(list, t)
	}
	return list
}
