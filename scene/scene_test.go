package scene

import (
	"bytes"
	"strings"
	"testing"
)

func TestDocument_Render(t *testing.T) {
	doc := NewDocument(200, 100)

	bar := NewRect("steelblue")
	bar.Set(10, 10, 50, 20)
	doc.Root.Append(bar)

	hidden := NewText("hidden-label", 12)
	hidden.Show(false)
	doc.Root.Append(hidden)

	label := NewText("visible-label", 12)
	doc.Root.Append(label)

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("render: %s", err)
	}
	out := buf.String()
	if !strings.Contains(out, "visible-label") {
		t.Errorf("visible text not rendered")
	}
	if strings.Contains(out, "hidden-label") {
		t.Errorf("hidden text rendered")
	}
}

func TestFixedMeasurer(t *testing.T) {
	m := FixedMeasurer{Advance: 0.5}
	got := m.Measure("abcd", 10)
	if got.Width != 20 || got.Height != 10 {
		t.Errorf("unexpected size %+v", got)
	}
}

func TestDefaultMeasurer(t *testing.T) {
	m := DefaultMeasurer()
	short := m.Measure("1", 12)
	long := m.Measure("1000", 12)
	if short.Width <= 0 || short.Height <= 0 {
		t.Fatalf("empty measure for single rune: %+v", short)
	}
	if long.Width <= short.Width {
		t.Errorf("longer string should be wider: %f <= %f", long.Width, short.Width)
	}
	if big := m.Measure("1000", 24); big.Width <= long.Width {
		t.Errorf("bigger font should be wider: %f <= %f", big.Width, long.Width)
	}
}

func TestSector_Point(t *testing.T) {
	s := Sector{X: 10, Y: 10}
	x, y := s.Point(0, 5)
	if x != 15 || y != 10 {
		t.Errorf("angle 0: want (15, 10), got (%f, %f)", x, y)
	}
}
