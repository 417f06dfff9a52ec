package dataviz

import (
	"strconv"

	"github.com/midbel/dataviz/scene"
)

var (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultGap    = 4.0
	DefaultFont   = 12.0
)

type Config struct {
	Width  float64
	Height float64

	// Gap between a shape and its label, in unscaled pixels.
	Gap float64
	// Font size used when a chart does not declare pxs.
	FontSize float64
	Ticks    int

	Palette  Palette
	Measurer scene.Measurer
	Format   func(float64) string
}

func Default() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Gap:      DefaultGap,
		FontSize: DefaultFont,
		Ticks:    defaultTicks,
		Palette:  Category10,
		Measurer: scene.DefaultMeasurer(),
		Format:   FormatNumber,
	}
}

// scaled returns a copy of the configuration with pixel values multiplied
// by the device pixel ratio.
func (c Config) scaled(ratio float64) Config {
	x := c.normalize()
	x.Gap *= ratio
	return x
}

func (c Config) normalize() Config {
	def := Default()
	if c.Gap <= 0 {
		c.Gap = def.Gap
	}
	if c.FontSize <= 0 {
		c.FontSize = def.FontSize
	}
	if c.Ticks <= 0 {
		c.Ticks = def.Ticks
	}
	if len(c.Palette) == 0 {
		c.Palette = def.Palette
	}
	if c.Measurer == nil {
		c.Measurer = def.Measurer
	}
	if c.Format == nil {
		c.Format = def.Format
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	return c
}

func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func FormatPercent(f float64) string {
	return strconv.FormatFloat(f*100, 'f', 0, 64) + "%"
}
