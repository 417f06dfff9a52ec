package dataviz

import (
	"fmt"

	"github.com/midbel/dataviz/scene"
)

type TextPosition int

const (
	TextInner TextPosition = iota
	TextLeft
	TextRight
	TextTop
	TextBottom
)

func (p TextPosition) String() string {
	switch p {
	case TextInner:
		return "inner"
	case TextLeft:
		return "left"
	case TextRight:
		return "right"
	case TextTop:
		return "top"
	case TextBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

func ParseTextPosition(str string) (TextPosition, error) {
	switch str {
	case "inner":
		return TextInner, nil
	case "left":
		return TextLeft, nil
	case "right":
		return TextRight, nil
	case "top":
		return TextTop, nil
	case "bottom":
		return TextBottom, nil
	default:
		return 0, fmt.Errorf("%s: unknown text position", str)
	}
}

// Direction tells along which axis a shape is proportional to its value.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

func (b Box) Right() float64 {
	return b.X + b.W
}

func (b Box) Bottom() float64 {
	return b.Y + b.H
}

func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

func (b Box) CenterY() float64 {
	return b.Y + b.H/2
}

type Placement struct {
	X        float64
	Y        float64
	Anchor   scene.Anchor
	Baseline scene.Baseline
}

// PlaceLabel computes where a label of the given size goes relative to box.
// It returns false when the label does not fit the room available in the
// direction the shape grows: inside the box for inner and perpendicular
// positions, between the box and the room bounds for outer positions. A
// room of zero length is unbounded.
func PlaceLabel(box Box, text scene.Size, pos TextPosition, along Direction, room Range, gap float64) (Placement, bool) {
	var (
		pl      Placement
		bounded = room.Len() > 0
	)
	switch pos {
	case TextInner:
		pl.X, pl.Y = box.CenterX(), box.CenterY()
		pl.Anchor, pl.Baseline = scene.AnchorMiddle, scene.BaselineMiddle
		if along == Horizontal {
			pl.X, pl.Anchor = box.Right()-gap, scene.AnchorEnd
			return pl, text.Width+2*gap <= box.W && text.Height <= box.H
		}
		pl.Y, pl.Baseline = box.Y+gap, scene.BaselineHanging
		return pl, text.Height+2*gap <= box.H && text.Width <= box.W
	case TextRight:
		pl.X, pl.Y = box.Right()+gap, box.CenterY()
		pl.Anchor, pl.Baseline = scene.AnchorStart, scene.BaselineMiddle
		if along == Vertical {
			return pl, text.Height <= box.H
		}
		return pl, !bounded || pl.X+text.Width <= room.T
	case TextLeft:
		pl.X, pl.Y = box.X-gap, box.CenterY()
		pl.Anchor, pl.Baseline = scene.AnchorEnd, scene.BaselineMiddle
		if along == Vertical {
			return pl, text.Height <= box.H
		}
		return pl, !bounded || pl.X-text.Width >= room.F
	case TextTop:
		pl.X, pl.Y = box.CenterX(), box.Y-gap
		pl.Anchor, pl.Baseline = scene.AnchorMiddle, scene.BaselineAuto
		if along == Horizontal {
			return pl, text.Width <= box.W
		}
		return pl, !bounded || pl.Y-text.Height >= room.F
	case TextBottom:
		pl.X, pl.Y = box.CenterX(), box.Bottom()+gap
		pl.Anchor, pl.Baseline = scene.AnchorMiddle, scene.BaselineHanging
		if along == Horizontal {
			return pl, text.Width <= box.W
		}
		return pl, !bounded || pl.Y+text.Height <= room.T
	default:
		return pl, false
	}
}

// label is the optional value text attached to a primitive.
type label struct {
	text     *scene.Text
	position TextPosition
	measurer scene.Measurer
	gap      float64
}

func newLabel(cfg Config, pos TextPosition, size float64) label {
	t := scene.NewText("", size)
	t.Show(false)
	return label{
		text:     t,
		position: pos,
		measurer: cfg.Measurer,
		gap:      cfg.Gap,
	}
}

func (i *label) set(str string) {
	i.text.Content = str
}

// place shows the label at its configured position when requested and when
// it fits, hides it otherwise.
func (i *label) place(box Box, along Direction, room Range, show bool) bool {
	return i.placeAt(i.position, box, along, room, show)
}

func (i *label) placeAt(pos TextPosition, box Box, along Direction, room Range, show bool) bool {
	if !show || i.text.Content == "" {
		i.text.Show(false)
		return false
	}
	size := i.measurer.Measure(i.text.Content, i.text.Size)
	pl, ok := PlaceLabel(box, size, pos, along, room, i.gap)
	if ok {
		i.text.X, i.text.Y = pl.X, pl.Y
		i.text.Anchor, i.text.Baseline = pl.Anchor, pl.Baseline
	}
	i.text.Show(ok)
	return ok
}

func (i *label) Visible() bool {
	return i.text.Visible()
}
