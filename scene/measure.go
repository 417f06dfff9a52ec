package scene

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Size struct {
	Width  float64
	Height float64
}

type Measurer interface {
	Measure(str string, size float64) Size
}

// FontMeasurer measures strings with an OpenType font, keeping one face per
// requested size. It is safe for concurrent use.
type FontMeasurer struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

func NewFontMeasurer(data []byte) (*FontMeasurer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	m := FontMeasurer{
		font:  f,
		faces: make(map[float64]font.Face),
	}
	return &m, nil
}

var (
	defaultOnce     sync.Once
	defaultMeasurer Measurer
)

// DefaultMeasurer measures text set in Go Regular. If the embedded font can
// not be loaded, it falls back to a fixed advance per rune.
func DefaultMeasurer() Measurer {
	defaultOnce.Do(func() {
		m, err := NewFontMeasurer(goregular.TTF)
		if err != nil {
			defaultMeasurer = FixedMeasurer{Advance: 0.6}
			return
		}
		defaultMeasurer = m
	})
	return defaultMeasurer
}

func (m *FontMeasurer) Measure(str string, size float64) Size {
	face, err := m.face(size)
	if err != nil {
		return FixedMeasurer{Advance: 0.6}.Measure(str, size)
	}
	var (
		width   = font.MeasureString(face, str)
		metrics = face.Metrics()
	)
	return Size{
		Width:  toFloat(width),
		Height: toFloat(metrics.Ascent + metrics.Descent),
	}
}

func (m *FontMeasurer) face(size float64) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	opts := opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}
	f, err := opentype.NewFace(m.font, &opts)
	if err != nil {
		return nil, err
	}
	m.faces[size] = f
	return f, nil
}

// FixedMeasurer gives every rune the same advance, expressed as a fraction
// of the font size.
type FixedMeasurer struct {
	Advance float64
}

func (m FixedMeasurer) Measure(str string, size float64) Size {
	n := len([]rune(str))
	return Size{
		Width:  float64(n) * m.Advance * size,
		Height: size,
	}
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
