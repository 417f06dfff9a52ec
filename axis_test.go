package dataviz

import (
	"testing"

	"github.com/midbel/dataviz/scene"
)

func TestAxis_Draw(t *testing.T) {
	data := []struct {
		Name   string
		Orient Orientation
		X1, Y1 float64
		X2, Y2 float64
		Anchor scene.Anchor
	}{
		{Name: "left", Orient: OrientLeft, X1: 96, Y1: 50, X2: 150, Y2: 50, Anchor: scene.AnchorEnd},
		{Name: "right", Orient: OrientRight, X1: 50, Y1: 50, X2: 104, Y2: 50, Anchor: scene.AnchorStart},
		{Name: "bottom", Orient: OrientBottom, X1: 130, Y1: -30, X2: 130, Y2: 24, Anchor: scene.AnchorMiddle},
		{Name: "top", Orient: OrientTop, X1: 130, Y1: 16, X2: 130, Y2: 70, Anchor: scene.AnchorMiddle},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			var (
				g = scene.NewGroup()
				a = Axis{
					Orientation: d.Orient,
					X:           100,
					Y:           20,
					Length:      200,
					Grid:        50,
					FontSize:    10,
					Gap:         2,
					Ticks: []Tick{
						{Value: 0, Pos: 10, Label: "0"},
						{Value: 50, Pos: 30, Label: "50"},
					},
				}
			)
			a.Draw(g)
			if g.Len() != 5 {
				t.Fatalf("nodes: want 5, got %d", g.Len())
			}
			tick, ok := g.Children[3].(*scene.Line)
			if !ok {
				t.Fatalf("expected tick line, got %T", g.Children[3])
			}
			if tick.X1 != d.X1 || tick.Y1 != d.Y1 || tick.X2 != d.X2 || tick.Y2 != d.Y2 {
				t.Errorf("tick: want (%g, %g, %g, %g), got (%g, %g, %g, %g)", d.X1, d.Y1, d.X2, d.Y2, tick.X1, tick.Y1, tick.X2, tick.Y2)
			}
			text, ok := g.Children[4].(*scene.Text)
			if !ok {
				t.Fatalf("expected tick label, got %T", g.Children[4])
			}
			if text.Content != "50" || text.Anchor != d.Anchor {
				t.Errorf("label: got %q anchored %s", text.Content, text.Anchor)
			}
		})
	}
}
