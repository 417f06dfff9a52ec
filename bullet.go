package dataviz

import (
	"math"

	"github.com/midbel/dataviz/node"
	"github.com/midbel/dataviz/scene"
)

const (
	bulletTicks = 8
	bulletGap   = 10
)

// BulletChart is the single row bullet graph: three qualitative ranges, the
// plan, the current value and a mark for the last value, over an axis. It
// reads everything from the chart node itself.
type BulletChart struct {
	x      float64
	y      float64
	height float64
	scale  Scale

	root    *scene.Group
	ranges  []*scene.Rect
	plan    *scene.Rect
	current *scene.Rect
	last    *scene.Rect
	ticks   []*scene.Rect
	values  []float64
}

func buildBullet(cfg Config, n *node.Node) (composite, error) {
	var (
		a       = read(n)
		ratio   = a.float("scale")
		x       = a.float("x") * ratio
		y       = a.float("y") * ratio
		height  = a.float("height") * ratio
		title   = a.textOr("title", "")
		twidth  = a.float("title_width") * ratio
		width   = a.float("max_width") * ratio
		measure = []float64{
			a.float("val_last"),
			a.float("val_current"),
			a.float("val_plan"),
			a.float("range_green"),
		}
		pxs = a.optional("pxs")
	)
	if err := a.Err(); err != nil {
		return nil, err
	}
	if err := checkRatio(ratio); err != nil {
		return nil, err
	}
	max := measure[0]
	for _, v := range measure[1:] {
		max = math.Max(max, v)
	}
	s, err := NewScale(NewDomain(0, max), NewRange(0, width-twidth))
	if err != nil {
		return nil, err
	}
	font := cfg.FontSize * ratio
	if pxs != nil {
		font = *pxs * ratio
	}
	c := BulletChart{
		x:      x + twidth + bulletGap,
		y:      y,
		height: height,
		scale:  s,
		root:   scene.NewGroup("chart", "bullet"),
	}
	if title != "" {
		t := scene.NewText(title, font)
		t.X, t.Y = x+twidth, y+height/2
		t.Anchor, t.Baseline = scene.AnchorEnd, scene.BaselineMiddle
		c.root.Append(t)
	}
	for _, fill := range bandColors {
		r := scene.NewRect(fill)
		c.ranges = append(c.ranges, r)
		c.root.Append(r)
	}
	c.plan = scene.NewRect(ColorPlan)
	c.current = scene.NewRect(ColorCurrent)
	c.last = scene.NewRect(ColorLast)
	c.root.Append(c.plan)
	c.root.Append(c.current)
	c.root.Append(c.last)

	c.values = s.Ticks(bulletTicks)
	for _, v := range c.values {
		var (
			pos  = c.x + c.width(v)
			mark = scene.NewRect(ColorAxis)
			text = scene.NewText(cfg.Format(v), font)
		)
		mark.Set(pos-1, y+height, 2, height*0.2)
		text.X, text.Y = math.Floor(pos), math.Floor(y+height*1.2)
		text.Anchor, text.Baseline = scene.AnchorMiddle, scene.BaselineHanging
		c.ticks = append(c.ticks, mark)
		c.root.Append(mark)
		c.root.Append(text)
	}
	return &c, nil
}

func (c *BulletChart) Root() *scene.Group {
	return c.root
}

// width converts a value into a whole number of pixels.
func (c *BulletChart) width(v float64) float64 {
	return math.Floor(c.scale.Scale(v))
}

func (c *BulletChart) refresh(n *node.Node) error {
	var (
		a       = read(n)
		last    = a.float("val_last")
		current = a.float("val_current")
		plan    = a.float("val_plan")
		ranges  = []float64{
			a.float("range_green"),
			a.float("range_yellow"),
			a.float("range_red"),
		}
		ceil = a.optional("width")
	)
	if err := a.Err(); err != nil {
		return err
	}
	for i, r := range c.ranges {
		r.Set(c.x, c.y, c.width(ranges[i]), c.height)
	}
	var (
		top   = c.y + c.height*0.25
		thick = c.height * 0.5
	)
	c.plan.Set(c.x, top, c.width(plan), thick)
	c.current.Set(c.x, top, c.width(reveal(current, ceil)), thick)
	c.last.Set(c.x+c.width(last), c.y+c.height*0.15, 2, c.height*0.7)
	return nil
}
