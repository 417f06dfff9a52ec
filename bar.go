package dataviz

import (
	"math"

	"github.com/midbel/dataviz/scene"
)

// shape is the rectangle shared by bars and columns. The start is the
// position on the value axis where the shape is anchored; the extent is
// signed and may grow either way.
type shape struct {
	along     Direction
	start     float64
	offset    float64
	thickness float64
	extent    float64
	room      Range
	show      bool

	group *scene.Group
	rect  *scene.Rect
	label label
}

func newShape(cfg Config, along Direction, offset, thickness float64, fill string, pos TextPosition, font float64) shape {
	s := shape{
		along:     along,
		offset:    offset,
		thickness: thickness,
		group:     scene.NewGroup(),
		rect:      scene.NewRect(fill),
		label:     newLabel(cfg, pos, font),
	}
	s.group.Append(s.rect)
	s.group.Append(s.label.text)
	return s
}

func (s *shape) Node() scene.Node {
	return s.group
}

func (s *shape) Extent() float64 {
	return s.extent
}

func (s *shape) SetStart(start float64) {
	s.start = start
}

func (s *shape) SetFill(fill string) {
	s.rect.Fill = fill
}

func (s *shape) SetLabel(str string) {
	s.label.set(str)
}

func (s *shape) SetPosition(pos TextPosition) {
	s.label.position = pos
}

// SetRoom bounds the space outer labels may use on the value axis.
func (s *shape) SetRoom(room Range) {
	s.room = room
}

func (s *shape) LabelVisible() bool {
	return s.label.Visible()
}

func (s *shape) Show(show bool) {
	s.group.Show(show)
}

func (s *shape) update(extent float64, show bool, box func() Box) {
	s.extent = extent
	s.show = show
	b := box()
	s.rect.Set(b.X, b.Y, b.W, b.H)
	s.label.place(b, s.along, s.room, show && b.W > 0 && b.H > 0)
}

// Bar grows from left to right along the x axis.
type Bar struct {
	shape
}

func NewBar(cfg Config, y, thickness float64, fill string, pos TextPosition, font float64) *Bar {
	return &Bar{
		shape: newShape(cfg, Horizontal, y, thickness, fill, pos, font),
	}
}

func (b *Bar) Box() Box {
	return Box{
		X: math.Min(b.start, b.start+b.extent),
		Y: b.offset,
		W: math.Abs(b.extent),
		H: b.thickness,
	}
}

func (b *Bar) Draw() {
	b.Update(b.extent, b.show)
}

func (b *Bar) Update(extent float64, show bool) {
	b.update(extent, show, b.Box)
}

// Column grows from bottom to top. Its start is the baseline position on
// screen, where y grows downward.
type Column struct {
	shape
}

func NewColumn(cfg Config, x, thickness float64, fill string, pos TextPosition, font float64) *Column {
	return &Column{
		shape: newShape(cfg, Vertical, x, thickness, fill, pos, font),
	}
}

func (c *Column) Box() Box {
	return Box{
		X: c.offset,
		Y: math.Min(c.start, c.start-c.extent),
		W: c.thickness,
		H: math.Abs(c.extent),
	}
}

func (c *Column) Draw() {
	c.Update(c.extent, c.show)
}

func (c *Column) Update(extent float64, show bool) {
	c.update(extent, show, c.Box)
}

// Rectangle is the behaviour shared by Bar and Column that composites rely
// on.
type Rectangle interface {
	Node() scene.Node
	Box() Box
	Extent() float64
	Draw()
	Update(float64, bool)
	SetStart(float64)
	SetFill(string)
	SetLabel(string)
	SetRoom(Range)
	SetPosition(TextPosition)
	LabelVisible() bool
	Show(bool)
}

// advance returns where a shape following one of the given extent starts.
func (d Direction) advance(pos, extent float64) float64 {
	if d == Vertical {
		return pos - extent
	}
	return pos + extent
}

func newRectangle(cfg Config, along Direction, offset, thickness float64, fill string, pos TextPosition, font float64) Rectangle {
	if along == Vertical {
		return NewColumn(cfg, offset, thickness, fill, pos, font)
	}
	return NewBar(cfg, offset, thickness, fill, pos, font)
}
