package dataviz

import (
	"github.com/midbel/dataviz/scene"
)

// Pin is a thin stick from the axis origin ending with a round head. The
// sign of its extent picks both the color and the side of the label.
type Pin struct {
	along  Direction
	radius float64
	room   Range
	show   bool

	group *scene.Group
	stick Rectangle
	head  *scene.Circle
	label label
}

func NewPin(cfg Config, along Direction, offset, thickness float64, font float64) *Pin {
	p := Pin{
		along:  along,
		radius: thickness,
		group:  scene.NewGroup("pin"),
		stick:  newRectangle(cfg, along, offset+thickness/3, thickness/3, ColorPositive, TextInner, font),
		head:   scene.NewCircle(ColorPositive),
		label:  newLabel(cfg, TextRight, font),
	}
	p.head.Radius = p.radius / 2
	p.group.Append(p.stick.Node())
	p.group.Append(p.head)
	p.group.Append(p.label.text)
	return &p
}

func (p *Pin) Node() scene.Node {
	return p.group
}

func (p *Pin) SetStart(start float64) {
	p.stick.SetStart(start)
}

func (p *Pin) SetLabel(str string) {
	p.label.set(str)
}

func (p *Pin) SetRoom(room Range) {
	p.room = room
}

func (p *Pin) Extent() float64 {
	return p.stick.Extent()
}

func (p *Pin) Fill() string {
	return p.head.Fill
}

func (p *Pin) Position() TextPosition {
	return pinPosition(p.along, p.Extent())
}

func (p *Pin) LabelVisible() bool {
	return p.label.Visible()
}

func (p *Pin) Draw() {
	p.Update(p.Extent(), p.show)
}

func (p *Pin) Update(extent float64, show bool) {
	p.show = show
	fill := ColorPositive
	if extent < 0 {
		fill = ColorNegative
	}
	p.stick.SetFill(fill)
	p.stick.Update(extent, false)
	p.head.Fill = fill

	var (
		box = p.stick.Box()
		pos = pinPosition(p.along, extent)
	)
	switch pos {
	case TextRight:
		p.head.X, p.head.Y = box.Right(), box.CenterY()
		box.W += p.head.Radius
	case TextLeft:
		p.head.X, p.head.Y = box.X, box.CenterY()
		box.X -= p.head.Radius
		box.W += p.head.Radius
	case TextTop:
		p.head.X, p.head.Y = box.CenterX(), box.Y
		box.Y -= p.head.Radius
		box.H += p.head.Radius
	case TextBottom:
		p.head.X, p.head.Y = box.CenterX(), box.Bottom()
		box.H += p.head.Radius
	}
	box = p.widen(box)
	p.label.placeAt(pos, box, p.along, p.room, show)
}

// widen gives the label box the thickness of the head.
func (p *Pin) widen(box Box) Box {
	if p.along == Horizontal {
		box.Y = box.CenterY() - p.radius/2
		box.H = p.radius
	} else {
		box.X = box.CenterX() - p.radius/2
		box.W = p.radius
	}
	return box
}

func pinPosition(along Direction, extent float64) TextPosition {
	switch {
	case along == Horizontal && extent < 0:
		return TextLeft
	case along == Horizontal:
		return TextRight
	case extent < 0:
		return TextBottom
	default:
		return TextTop
	}
}
