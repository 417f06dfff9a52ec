package dataviz

import (
	"fmt"

	"github.com/midbel/dataviz/node"
)

func checkRatio(ratio float64) error {
	if ratio <= 0 {
		return fmt.Errorf("scale: %w (%g)", node.ErrMalformedDataNode, ratio)
	}
	return nil
}

type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// ChartGeometry holds everything a category chart derives from its node
// before any data is read: position and sizes in device pixels, the value
// scale and its ticks.
type ChartGeometry struct {
	Direction

	X        float64
	Y        float64
	Ratio    float64
	FontSize float64
	Gap      float64
	Title    string

	// Category is the row height of horizontal charts, the column width of
	// vertical ones. Reserve is the room kept for the category labels.
	Category float64
	Reserve  float64
	Margin   float64

	Scale Scale
	Ticks []Tick
}

// Origin is the top left corner of the plotting area.
func (g ChartGeometry) Origin() (float64, float64) {
	if g.Direction == Vertical {
		return g.X, g.Y + g.Margin
	}
	return g.X + g.Reserve + g.Gap, g.Y + g.Margin
}

// Length is the size of the plotting area along the value axis.
func (g ChartGeometry) Length() float64 {
	return g.Scale.Len()
}

// Position converts a value into a screen coordinate on the value axis.
func (g ChartGeometry) Position(v float64) float64 {
	return g.screen(g.Scale.Scale(v))
}

// screen converts an offset along the value axis into a screen coordinate.
func (g ChartGeometry) screen(offset float64) float64 {
	x, y := g.Origin()
	if g.Direction == Vertical {
		return y + g.Length() - offset
	}
	return x + offset
}

// Room is the span of screen coordinates available on the value axis.
func (g ChartGeometry) Room() Range {
	x, y := g.Origin()
	if g.Direction == Vertical {
		return NewRange(g.Y+g.titleHeight(), y+g.Length())
	}
	return NewRange(x, x+g.Length())
}

func (g ChartGeometry) titleHeight() float64 {
	if g.Title == "" {
		return 0
	}
	return g.FontSize * 1.5
}

func computeHorizontalGeometry(n *node.Node, cfg Config) (ChartGeometry, error) {
	g, max, err := computeCommon(n, cfg, Horizontal, "max_width")
	if err != nil {
		return g, err
	}
	a := read(n)
	g.Category = a.float("category_height") * g.Ratio
	g.Reserve = a.float("category_label_width") * g.Ratio
	if err := a.Err(); err != nil {
		return g, err
	}
	g.Margin = g.titleHeight()
	return g, g.setScale(n, cfg, max-g.Reserve-g.Gap)
}

func computeVerticalGeometry(n *node.Node, cfg Config) (ChartGeometry, error) {
	g, max, err := computeCommon(n, cfg, Vertical, "max_height")
	if err != nil {
		return g, err
	}
	a := read(n)
	g.Category = a.float("category_width") * g.Ratio
	g.Reserve = a.float("category_label_height") * g.Ratio
	if err := a.Err(); err != nil {
		return g, err
	}
	// top margin keeps room for the title and for labels above the tallest
	// column
	g.Margin = g.titleHeight() + g.FontSize + g.Gap
	return g, g.setScale(n, cfg, max-g.Margin-g.Reserve)
}

func computeCommon(n *node.Node, cfg Config, dir Direction, size string) (ChartGeometry, float64, error) {
	var (
		g ChartGeometry
		a = read(n)
	)
	g.Direction = dir
	g.Ratio = a.float("scale")
	g.X = a.float("x") * g.Ratio
	g.Y = a.float("y") * g.Ratio
	g.FontSize = a.float("pxs") * g.Ratio
	g.Title = a.textOr("title", "")
	max := a.float(size) * g.Ratio
	if err := a.Err(); err != nil {
		return g, 0, err
	}
	if err := checkRatio(g.Ratio); err != nil {
		return g, 0, err
	}
	g.Gap = cfg.Gap * g.Ratio
	return g, max, nil
}

func (g *ChartGeometry) setScale(n *node.Node, cfg Config, length float64) error {
	a := read(n)
	dom := NewDomain(a.float("domain_min"), a.float("domain_max"))
	count := cfg.Ticks
	if c := a.optional("ticks"); c != nil {
		count = int(*c)
	}
	if err := a.Err(); err != nil {
		return err
	}
	s, err := NewScale(dom, NewRange(0, length))
	if err != nil {
		return err
	}
	g.Scale = s
	g.Ticks = makeTicks(s, count, cfg.Format)
	return nil
}

// PlaneGeometry is the layout of charts with two value axes.
type PlaneGeometry struct {
	X        float64
	Y        float64
	Ratio    float64
	FontSize float64
	Gap      float64
	Title    string
	Margin   float64

	XScale Scale
	YScale Scale
}

func (g PlaneGeometry) Position(x, y float64) (float64, float64) {
	var (
		px = g.X + g.XScale.Scale(x)
		py = g.Y + g.Margin + g.YScale.Scale(y)
	)
	return px, py
}

func computePlaneGeometry(n *node.Node, cfg Config) (PlaneGeometry, error) {
	var (
		g PlaneGeometry
		a = read(n)
	)
	g.Ratio = a.float("scale")
	g.X = a.float("x") * g.Ratio
	g.Y = a.float("y") * g.Ratio
	g.FontSize = a.float("pxs") * g.Ratio
	g.Title = a.textOr("title", "")
	var (
		width  = a.float("max_width") * g.Ratio
		height = a.float("max_height") * g.Ratio
		xdom   = NewDomain(a.float("domain_x_min"), a.float("domain_x_max"))
		ydom   = NewDomain(a.float("domain_y_min"), a.float("domain_y_max"))
	)
	if err := a.Err(); err != nil {
		return g, err
	}
	g.Gap = cfg.Gap * g.Ratio
	if g.Title != "" {
		g.Margin = g.FontSize * 1.5
	}
	var err error
	if g.XScale, err = NewScale(xdom, NewRange(0, width)); err != nil {
		return g, fmt.Errorf("x axis: %w", err)
	}
	if g.YScale, err = NewScale(ydom, NewRange(0, height-g.Margin)); err != nil {
		return g, fmt.Errorf("y axis: %w", err)
	}
	g.YScale = g.YScale.Reverse()
	return g, nil
}

// RadialGeometry is the layout of pies and donuts.
type RadialGeometry struct {
	CX       float64
	CY       float64
	Ratio    float64
	FontSize float64
	Title    string
	Radius   float64
}

func computeRadialGeometry(n *node.Node) (RadialGeometry, error) {
	var (
		g RadialGeometry
		a = read(n)
	)
	g.Ratio = a.float("scale")
	var (
		x      = a.float("x") * g.Ratio
		y      = a.float("y") * g.Ratio
		width  = a.float("max_width") * g.Ratio
		height = a.float("max_height") * g.Ratio
	)
	g.FontSize = a.float("pxs") * g.Ratio
	g.Title = a.textOr("title", "")
	if err := a.Err(); err != nil {
		return g, err
	}
	var top float64
	if g.Title != "" {
		top = g.FontSize * 1.5
	}
	size := width
	if h := height - top; h < size {
		size = h
	}
	if size <= 0 {
		return g, fmt.Errorf("radius: %w (%g)", node.ErrMalformedDataNode, size)
	}
	g.Radius = size / 2
	g.CX = x + width/2
	g.CY = y + top + (height-top)/2
	return g, nil
}
