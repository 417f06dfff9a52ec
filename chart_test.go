package dataviz

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/midbel/dataviz/node"
	"github.com/midbel/dataviz/scene"
)

const (
	labelWidth  = 50
	labelHeight = 20
)

func testConfig() Config {
	cfg := Default()
	cfg.Gap = 5
	cfg.Measurer = scene.FixedMeasurer{Advance: 0.6}
	return cfg
}

// categoryNode describes a chart whose value axis is exactly length pixels
// long with testConfig.
func categoryNode(kind string, dir Direction, length float64) *node.Node {
	n := node.New(kind).
		Set("x", "0").
		Set("y", "0").
		Set("scale", "1").
		Set("pxs", "10").
		Set("domain_min", "0").
		Set("domain_max", "100")
	if dir == Vertical {
		n.SetFloat("max_height", length+10+5+labelHeight)
		n.SetFloat("category_width", 40)
		n.SetFloat("category_label_height", labelHeight)
	} else {
		n.SetFloat("max_width", length+labelWidth+5)
		n.SetFloat("category_height", 40)
		n.SetFloat("category_label_width", labelWidth)
	}
	return n
}

func category(name string) *node.Node {
	return node.New("item").Set("category_name", name)
}

func mustUpdate(t *testing.T, kind string, n *node.Node) *Chart {
	t.Helper()
	c, err := New(kind, testConfig())
	if err != nil {
		t.Fatalf("new %s: %s", kind, err)
	}
	if err := c.Update(n); err != nil {
		t.Fatalf("update %s: %s", kind, err)
	}
	return c
}

func countNodes(n scene.Node) int {
	count := 1
	if g, ok := n.(*scene.Group); ok {
		for _, c := range g.Children {
			count += countNodes(c)
		}
	}
	return count
}

func render(t *testing.T, c *Chart) string {
	t.Helper()
	doc := scene.NewDocument(800, 600)
	doc.Root.Append(c.Node())
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("render: %s", err)
	}
	return buf.String()
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestChart_Lifecycle(t *testing.T) {
	if _, err := New("radar", testConfig()); !errors.Is(err, ErrUnknownChart) {
		t.Errorf("expected unknown chart error, got %v", err)
	}
	c, err := New("bar", testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	n := categoryNode("bar", Horizontal, 200)
	n.Append(category("a").Set("value", "10"))

	if err := c.Refresh(n); !errors.Is(err, ErrNotReady) {
		t.Errorf("refresh before allocation: expected not ready error, got %v", err)
	}
	if c.State() != Uninitialized || c.Node() != nil {
		t.Errorf("chart should not be allocated yet")
	}
	if err := c.Update(n); err != nil {
		t.Fatalf("update: %s", err)
	}
	if c.State() != Ready {
		t.Errorf("state: want ready, got %s", c.State())
	}
	if err := c.Allocate(n); err == nil {
		t.Errorf("second allocation accepted")
	}
}

func TestChart_MissingAttribute(t *testing.T) {
	n := categoryNode("column", Vertical, 200)
	delete(n.Attrs, "domain_max")
	c, _ := New("column", testConfig())
	err := c.Update(n)
	if !errors.Is(err, node.ErrMissingAttribute) {
		t.Fatalf("expected missing attribute error, got %v", err)
	}
	var attr *node.AttributeError
	if !errors.As(err, &attr) || attr.Attr != "domain_max" {
		t.Errorf("attribute error should name domain_max: %v", err)
	}

	n = categoryNode("column", Vertical, 200)
	n.Append(category("a").Set("value", "ten"))
	c, _ = New("column", testConfig())
	if err := c.Update(n); !errors.Is(err, node.ErrMalformedDataNode) {
		t.Errorf("expected malformed data node error, got %v", err)
	}

	n = categoryNode("bar", Horizontal, 200)
	n.SetFloat("max_width", labelWidth/2)
	c, _ = New("bar", testConfig())
	if err := c.Update(n); !errors.Is(err, node.ErrMalformedDataNode) {
		t.Errorf("no room for the value axis: expected malformed data node error, got %v", err)
	}
}

func TestSimple_Reveal(t *testing.T) {
	for _, kind := range []string{"bar", "column"} {
		dir := Horizontal
		if kind == "column" {
			dir = Vertical
		}
		n := categoryNode(kind, dir, 200)
		n.Append(category("a").Set("value", "80"))

		c, _ := New(kind, testConfig())
		var prev float64
		for ceil := 0.0; ceil <= 100; ceil += 10 {
			n.SetFloat("current_width", ceil)
			n.SetFloat("current_height", ceil)
			if err := c.Update(n); err != nil {
				t.Fatalf("%s: update: %s", kind, err)
			}
			r := c.impl.(*SimpleChart).items[0]
			if r.Extent() < prev {
				t.Errorf("%s: extent decreases at ceiling %g: %g < %g", kind, ceil, r.Extent(), prev)
			}
			prev = r.Extent()
			if want := ceil >= 80; r.LabelVisible() != want {
				t.Errorf("%s: label at ceiling %g: want %t, got %t", kind, ceil, want, r.LabelVisible())
			}
		}
		if prev != 160 {
			t.Errorf("%s: full extent: want 160, got %g", kind, prev)
		}
	}
}

func TestSimple_ChildCeiling(t *testing.T) {
	n := categoryNode("bar", Horizontal, 200)
	n.SetFloat("current_width", 100)
	n.Append(category("a").Set("value", "80").Set("current_width", "25"))
	c := mustUpdate(t, "bar", n)
	if got := c.impl.(*SimpleChart).items[0].Extent(); got != 50 {
		t.Errorf("extent: want 50, got %g", got)
	}
}

func TestStacked_Partition(t *testing.T) {
	n := categoryNode("stacked-bar", Horizontal, 300)
	n.Append(category("a").Set("values", "10,20,30"))

	c := mustUpdate(t, "stacked-bar", n)
	var (
		chart = c.impl.(*StackedChart)
		stack = chart.stacks[0]
		want  = []float64{30, 60, 90}
		sum   float64
	)
	for i := 0; i < stack.Len(); i++ {
		got := stack.At(i).Extent()
		if !almostEqual(got, want[i]) {
			t.Errorf("segment %d: want %g, got %g", i, want[i], got)
		}
		sum += got
	}
	if s := chart.geo.Scale.Scale(60); !almostEqual(sum, s) {
		t.Errorf("sum of segments: want %g, got %g", s, sum)
	}
	if end := stack.End() - chart.start(); !almostEqual(end, 180) {
		t.Errorf("cumulative end: want 180, got %g", end)
	}
	for i := 1; i < stack.Len(); i++ {
		prev, curr := stack.At(i-1).Box(), stack.At(i).Box()
		if !almostEqual(prev.Right(), curr.X) {
			t.Errorf("segment %d starts at %g, previous ends at %g", i, curr.X, prev.Right())
		}
	}
}

func TestStacked_Normalized(t *testing.T) {
	n := categoryNode("stacked-column", Vertical, 300)
	n.Set("normalized", "true")
	n.Append(category("a").Set("values", "10,20,30"))

	var (
		c     = mustUpdate(t, "stacked-column", n)
		stack = c.impl.(*StackedChart).stacks[0]
		want  = []float64{50, 100, 150}
	)
	for i := range want {
		if got := stack.At(i).Extent(); !almostEqual(got, want[i]) {
			t.Errorf("segment %d: want %g, got %g", i, want[i], got)
		}
	}
}

func TestStacked_NormalizedCeiling(t *testing.T) {
	data := []struct {
		Ceiling float64
		Want    []float64
		Show    []bool
	}{
		{Ceiling: 60, Want: []float64{50, 100, 150}, Show: []bool{true, true, true}},
		{Ceiling: 100, Want: []float64{50, 100, 150}, Show: []bool{true, true, true}},
		{Ceiling: 30, Want: []float64{50, 100, 0}, Show: []bool{true, true, false}},
	}
	for _, d := range data {
		n := categoryNode("stacked-column", Vertical, 300)
		n.Set("normalized", "true")
		n.SetFloat("current_height", d.Ceiling)
		n.Append(category("a").Set("values", "10,20,30"))

		stack := mustUpdate(t, "stacked-column", n).impl.(*StackedChart).stacks[0]
		for i := range d.Want {
			if got := stack.At(i).Extent(); !almostEqual(got, d.Want[i]) {
				t.Errorf("ceiling %g: segment %d: want %g, got %g", d.Ceiling, i, d.Want[i], got)
			}
			if got := stack.At(i).LabelVisible(); got != d.Show[i] {
				t.Errorf("ceiling %g: segment %d: label visible: want %t, got %t", d.Ceiling, i, d.Show[i], got)
			}
		}
	}
}

func TestStacked_RevealClips(t *testing.T) {
	n := categoryNode("stacked-bar", Horizontal, 300)
	n.SetFloat("current_width", 20)
	n.Append(category("a").Set("values", "10,20,30"))

	var (
		c     = mustUpdate(t, "stacked-bar", n)
		stack = c.impl.(*StackedChart).stacks[0]
		want  = []float64{30, 30, 0}
	)
	for i := range want {
		if got := stack.At(i).Extent(); !almostEqual(got, want[i]) {
			t.Errorf("segment %d: want %g, got %g", i, want[i], got)
		}
	}
	if stack.At(1).LabelVisible() || stack.At(2).LabelVisible() {
		t.Errorf("clipped segments should not show their label")
	}
}

func TestStacked_CountMismatch(t *testing.T) {
	n := categoryNode("stacked-bar", Horizontal, 300)
	n.Append(category("a").Set("values", "10,20,30"))
	c := mustUpdate(t, "stacked-bar", n)

	n.Children[0].Set("values", "10,20")
	err := c.Update(n)
	if !errors.Is(err, ErrChildCountMismatch) {
		t.Fatalf("expected count mismatch, got %v", err)
	}
	var cerr *CountError
	if !errors.As(err, &cerr) || cerr.Want != 3 || cerr.Got != 2 {
		t.Errorf("count error: want 3/2, got %v", err)
	}

	n.Children[0].Set("values", "10,20,30")
	n.Append(category("b").Set("values", "1,2,3"))
	if err := c.Update(n); !errors.Is(err, ErrChildCountMismatch) {
		t.Errorf("new child: expected count mismatch, got %v", err)
	}

	stack := c.impl.(*StackedChart).stacks[0]
	if err := stack.Update([]float64{1, 2, 3, 4}, nil); !errors.Is(err, ErrChildCountMismatch) {
		t.Errorf("stack update: expected count mismatch, got %v", err)
	}
}

func TestGrouped_Split(t *testing.T) {
	n := categoryNode("grouped-bar", Horizontal, 200)
	n.Append(category("a").Set("values", "50,100"))
	var (
		c       = mustUpdate(t, "grouped-bar", n)
		cluster = c.impl.(*GroupedChart).clusters[0]
		first   = cluster.At(0).Box()
		second  = cluster.At(1).Box()
	)
	if first.H != second.H || !almostEqual(first.H*2, 40*bandFill) {
		t.Errorf("sub bands: unexpected heights %g and %g", first.H, second.H)
	}
	if !almostEqual(first.Bottom(), second.Y) {
		t.Errorf("sub bands should be adjacent: %g != %g", first.Bottom(), second.Y)
	}
	if first.X != second.X {
		t.Errorf("grouped values should start at the origin")
	}
	if first.W != 100 || second.W != 200 {
		t.Errorf("widths: want 100/200, got %g/%g", first.W, second.W)
	}
}

func TestPin_Negative(t *testing.T) {
	data := []struct {
		Kind string
		Dir  Direction
		Want TextPosition
	}{
		{Kind: "pin-bar", Dir: Horizontal, Want: TextLeft},
		{Kind: "pin-column", Dir: Vertical, Want: TextBottom},
	}
	for _, d := range data {
		n := categoryNode(d.Kind, d.Dir, 200)
		n.Set("domain_min", "-10").Set("domain_max", "10")
		n.Append(category("a").Set("value", "-5"))
		n.Append(category("b").Set("value", "5"))

		var (
			c    = mustUpdate(t, d.Kind, n)
			pins = c.impl.(*PinChart).pins
		)
		if fill := pins[0].Fill(); fill != ColorNegative {
			t.Errorf("%s: negative fill: want %s, got %s", d.Kind, ColorNegative, fill)
		}
		if pos := pins[0].Position(); pos != d.Want {
			t.Errorf("%s: negative label: want %s, got %s", d.Kind, d.Want, pos)
		}
		if fill := pins[1].Fill(); fill != ColorPositive {
			t.Errorf("%s: positive fill: want %s, got %s", d.Kind, ColorPositive, fill)
		}
		if pins[0].Extent() != -50 || pins[1].Extent() != 50 {
			t.Errorf("%s: extents: want -50/50, got %g/%g", d.Kind, pins[0].Extent(), pins[1].Extent())
		}
	}
}

func TestPin_RevealKeepsSign(t *testing.T) {
	n := categoryNode("pin-bar", Horizontal, 200)
	n.Set("domain_min", "-10").Set("domain_max", "10").Set("current_width", "2")
	n.Append(category("a").Set("value", "-5"))
	c := mustUpdate(t, "pin-bar", n)
	p := c.impl.(*PinChart).pins[0]
	if p.Extent() != -20 {
		t.Errorf("clamped extent: want -20, got %g", p.Extent())
	}
	if p.LabelVisible() {
		t.Errorf("label should wait for the full value")
	}
}

func TestWaterfall_Anchoring(t *testing.T) {
	n := categoryNode("waterfall-bar", Horizontal, 200)
	n.Set("domain_max", "200")
	n.Append(category("start").Set("type", "result").Set("value", "100"))
	n.Append(category("up").Set("type", "variance").Set("value", "20"))
	n.Append(category("down").Set("type", "variance").Set("value", "-30"))
	n.Append(category("end").Set("type", "result").Set("value", "90"))

	var (
		c      = mustUpdate(t, "waterfall-bar", n)
		chart  = c.impl.(*WaterfallChart)
		steps  = chart.steps
		origin = chart.start()
	)
	for i, s := range steps {
		if s.result {
			if s.Start() != origin {
				t.Errorf("step %d: result should start at origin %g, got %g", i, origin, s.Start())
			}
			continue
		}
		if prev := steps[i-1].End(); s.Start() != prev {
			t.Errorf("step %d: variance should start at %g, got %g", i, prev, s.Start())
		}
	}
	if steps[1].End() != origin+120 || steps[2].End() != origin+90 {
		t.Errorf("unexpected ends: %g and %g", steps[1].End(), steps[2].End())
	}
}

func TestWaterfall_CurrentLine(t *testing.T) {
	n := categoryNode("waterfall-column", Vertical, 200)
	n.Set("current_line", "1")
	n.Append(category("start").Set("type", "result").Set("value", "50"))
	n.Append(category("up").Set("type", "variance").Set("value", "10"))
	n.Append(category("down").Set("type", "variance").Set("value", "-5"))

	var (
		c     = mustUpdate(t, "waterfall-column", n)
		chart = c.impl.(*WaterfallChart)
	)
	for i, s := range chart.steps {
		if want := i <= 1; s.Node().Visible() != want {
			t.Errorf("step %d: visible: want %t, got %t", i, want, s.Node().Visible())
		}
	}
	if !chart.links[0].Visible() || chart.links[1].Visible() {
		t.Errorf("links should follow the visible steps")
	}

	n.Set("current_line", "-1")
	if err := c.Update(n); err != nil {
		t.Fatalf("update: %s", err)
	}
	for i, s := range chart.steps {
		if s.Node().Visible() {
			t.Errorf("step %d should be hidden before the first line", i)
		}
	}

	n.Children[1].Set("type", "delta")
	if err := c.Update(n); !errors.Is(err, node.ErrMalformedDataNode) {
		t.Errorf("unknown step type: expected malformed data node, got %v", err)
	}
}

func TestTarget_Bands(t *testing.T) {
	n := categoryNode("target-bar", Horizontal, 200)
	n.Append(category("a").
		Set("val_last", "40").
		Set("val_current", "60").
		Set("val_plan", "70").
		Set("range_green", "50").
		Set("range_yellow", "80").
		Set("range_red", "100"))

	var (
		c      = mustUpdate(t, "target-bar", n)
		target = c.impl.(*TargetChart).targets[0]
		start  = c.impl.(*TargetChart).start()
	)
	for i := 1; i < len(target.bands); i++ {
		if target.bands[i-1].Extent() < target.bands[i].Extent() {
			t.Errorf("band %d is wider than the band drawn before it", i)
		}
	}
	if got := target.current.Extent(); got != 120 {
		t.Errorf("current: want 120, got %g", got)
	}
	if got := target.plan.Position(); got != start+140 {
		t.Errorf("plan: want %g, got %g", start+140, got)
	}
	if got := target.last.Position(); got != start+80 {
		t.Errorf("last: want %g, got %g", start+80, got)
	}
}

func pieNode(kind string, values ...string) *node.Node {
	n := node.New(kind).
		Set("x", "0").
		Set("y", "0").
		Set("scale", "1").
		Set("pxs", "10").
		Set("max_width", "200").
		Set("max_height", "200")
	for i, v := range values {
		c := node.New("segment").Set("val", v).Set("name", string(rune('a'+i)))
		n.Append(c)
	}
	return n
}

func TestPie_Angles(t *testing.T) {
	var (
		c      = mustUpdate(t, "pie", pieNode("pie", "0.25", "0.25", "0.5"))
		segs   = c.impl.(*PieChart).segments
		starts = []float64{0, 0.25 * fullcircle, 0.5 * fullcircle}
		sizes  = []float64{0.25 * fullcircle, 0.25 * fullcircle, 0.5 * fullcircle}
	)
	for i, s := range segs {
		if !almostEqual(s.Start(), starts[i]) {
			t.Errorf("segment %d: start: want %g, got %g", i, starts[i], s.Start())
		}
		if !almostEqual(s.Size(), sizes[i]) {
			t.Errorf("segment %d: size: want %g, got %g", i, sizes[i], s.Size())
		}
	}
	if segs[0].Fill() == segs[1].Fill() {
		t.Errorf("distinct names should get distinct colors")
	}
	if segs[0].label.text.Content != "25%" {
		t.Errorf("label: want 25%%, got %s", segs[0].label.text.Content)
	}
}

func TestPie_Donut(t *testing.T) {
	n := pieNode("donut", "0.5", "0.5")
	n.Set("current_val", "0.75")
	var (
		c    = mustUpdate(t, "donut", n)
		segs = c.impl.(*PieChart).segments
	)
	if segs[0].arc.Inner != segs[0].arc.Outer/2 {
		t.Errorf("donut hole: want %g, got %g", segs[0].arc.Outer/2, segs[0].arc.Inner)
	}
	if !almostEqual(segs[1].Size(), 0.25*fullcircle) {
		t.Errorf("revealed size: want %g, got %g", 0.25*fullcircle, segs[1].Size())
	}
	if segs[1].LabelVisible() {
		t.Errorf("label of a partial slice should be hidden")
	}
}

func planeNode(kind string) *node.Node {
	n := node.New(kind).
		Set("x", "0").
		Set("y", "0").
		Set("scale", "1").
		Set("pxs", "10").
		Set("max_width", "100").
		Set("max_height", "100").
		Set("domain_x_min", "0").
		Set("domain_x_max", "10").
		Set("domain_y_min", "0").
		Set("domain_y_max", "10")
	for i := 0; i < 4; i++ {
		c := node.New("point").SetFloat("x", float64(i*3)).SetFloat("y", float64(i))
		n.Append(c)
	}
	return n
}

func TestPlane_Line(t *testing.T) {
	n := planeNode("line")
	n.Set("current_x", "5")
	var (
		c     = mustUpdate(t, "line", n)
		chart = c.impl.(*PlaneChart)
	)
	if len(chart.links) != 3 {
		t.Fatalf("links: want 3, got %d", len(chart.links))
	}
	x, y := chart.dots[1].Position()
	if !almostEqual(x, 30) || !almostEqual(y, 90) {
		t.Errorf("dot position: want (30, 90), got (%g, %g)", x, y)
	}
	for i, d := range chart.dots {
		if want := i < 2; d.Visible() != want {
			t.Errorf("dot %d: visible: want %t, got %t", i, want, d.Visible())
		}
	}
	if !chart.links[0].Visible() || chart.links[1].Visible() {
		t.Errorf("links should be hidden once a dot is hidden")
	}
	if s := mustUpdate(t, "scatter", planeNode("scatter")); len(s.impl.(*PlaneChart).links) != 0 {
		t.Errorf("scatter should not join its dots")
	}
}

func TestTreemap(t *testing.T) {
	n := node.New("treemap").Set("scale", "2")
	n.Append(node.New("node").
		Set("left", "10").
		Set("top", "5").
		Set("width", "100").
		Set("height", "50").
		Set("background", "#123456").
		Set("name", "sales"))
	var (
		c    = mustUpdate(t, "treemap", n)
		tm   = c.impl.(*TreemapChart).nodes[0]
		want = Box{X: 20, Y: 10, W: 200, H: 100}
	)
	if tm.Box() != want {
		t.Errorf("box: want %+v, got %+v", want, tm.Box())
	}
	if !tm.LabelVisible() {
		t.Errorf("label should fit")
	}
}

func TestHeatmap_UpdateKeepsGeometry(t *testing.T) {
	n := node.New("heatmap").
		Set("x", "0").
		Set("y", "0").
		Set("scale", "1").
		Set("cell_width", "20").
		Set("cell_height", "10").
		Set("domain_x_min", "0").
		Set("domain_x_max", "4").
		Set("domain_y_min", "0").
		Set("domain_y_max", "4")
	n.Append(node.New("cell").Set("x", "2").Set("y", "3").Set("fill", "#ff0000").Set("value", "7"))

	var (
		c    = mustUpdate(t, "heatmap", n)
		cell = c.impl.(*HeatmapChart).cells[0]
		want = Box{X: 40, Y: 30, W: 20, H: 10}
	)
	if cell.Box() != want {
		t.Fatalf("box: want %+v, got %+v", want, cell.Box())
	}
	n.Children[0].Set("x", "0").Set("fill", "#00ff00")
	if err := c.Update(n); err != nil {
		t.Fatalf("update: %s", err)
	}
	if cell.Box() != want {
		t.Errorf("geometry changed on update: %+v", cell.Box())
	}
	if cell.Fill() != "#00ff00" {
		t.Errorf("fill: want #00ff00, got %s", cell.Fill())
	}
}

func TestBullet(t *testing.T) {
	n := node.New("bullet").
		Set("x", "0").
		Set("y", "0").
		Set("scale", "1").
		Set("height", "20").
		Set("title", "revenue").
		Set("title_width", "50").
		Set("max_width", "250").
		Set("val_last", "70").
		Set("val_current", "90").
		Set("val_plan", "100").
		Set("range_green", "80").
		Set("range_yellow", "60").
		Set("range_red", "30").
		Set("width", "45")
	var (
		c      = mustUpdate(t, "bullet", n)
		bullet = c.impl.(*BulletChart)
	)
	if got := bullet.current.Width; got != 90 {
		t.Errorf("current: want 90, got %g", got)
	}
	if got := bullet.plan.Width; got != 200 {
		t.Errorf("plan: want 200, got %g", got)
	}
	if got := bullet.last.X; got != bullet.x+140 {
		t.Errorf("last: want %g, got %g", bullet.x+140, got)
	}
	if len(bullet.ticks) == 0 || len(bullet.ticks) > bulletTicks {
		t.Errorf("unexpected number of ticks: %d", len(bullet.ticks))
	}
	for _, r := range append(bullet.ranges, bullet.plan, bullet.current) {
		if r.Width != math.Floor(r.Width) {
			t.Errorf("width %g is not a whole number of pixels", r.Width)
		}
	}
}

func TestUpdate_NoReallocation(t *testing.T) {
	nodes := map[string]*node.Node{
		"column":         categoryNode("column", Vertical, 200).Append(category("a").Set("value", "10")),
		"stacked-column": categoryNode("stacked-column", Vertical, 200).Append(category("a").Set("values", "1,2")),
		"pie":            pieNode("pie", "0.3", "0.7"),
		"line":           planeNode("line"),
	}
	for kind, n := range nodes {
		c := mustUpdate(t, kind, n)
		var (
			root  = c.Node()
			count = countNodes(root)
			first = render(t, c)
		)
		for i := 0; i < 3; i++ {
			if err := c.Update(n); err != nil {
				t.Fatalf("%s: update: %s", kind, err)
			}
		}
		if c.Node() != root {
			t.Errorf("%s: root replaced", kind)
		}
		if got := countNodes(c.Node()); got != count {
			t.Errorf("%s: scene nodes: want %d, got %d", kind, count, got)
		}
		if got := render(t, c); got != first {
			t.Errorf("%s: repeated updates changed the output", kind)
		}
	}
}

func TestBase_StartAtOrigin(t *testing.T) {
	data := []struct {
		Kind string
		Dir  Direction
		Want float64
	}{
		{Kind: "pin-column", Dir: Vertical, Want: 115},
		{Kind: "pin-bar", Dir: Horizontal, Want: 155},
	}
	for _, d := range data {
		n := categoryNode(d.Kind, d.Dir, 200)
		n.Set("domain_min", "-100")
		n.Append(category("a").Set("value", "10"))
		chart := mustUpdate(t, d.Kind, n).impl.(*PinChart)
		if got := chart.start(); !almostEqual(got, d.Want) {
			t.Errorf("%s: start: want %g, got %g", d.Kind, d.Want, got)
		}
	}
}
