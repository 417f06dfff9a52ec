package dataviz

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/midbel/dataviz/node"
	"github.com/midbel/slices"
)

const defaultTicks = 5

type Domain struct {
	Min float64
	Max float64
}

func NewDomain(min, max float64) Domain {
	return Domain{
		Min: min,
		Max: max,
	}
}

func (d Domain) Extend() float64 {
	return d.Max - d.Min
}

func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

func (d Domain) Clamp(v float64) float64 {
	return math.Max(d.Min, math.Min(d.Max, v))
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

// Scale maps a numeric domain linearly onto a pixel range. Values outside
// the domain are extrapolated, never clamped.
type Scale struct {
	Domain
	Range

	linear   scale.Linear
	reversed bool
}

func NewScale(dom Domain, rg Range) (Scale, error) {
	if math.IsNaN(dom.Min) || math.IsNaN(dom.Max) || dom.Min >= dom.Max {
		return Scale{}, fmt.Errorf("%w: [%g, %g]", ErrDegenerateDomain, dom.Min, dom.Max)
	}
	if math.IsNaN(rg.F) || math.IsNaN(rg.T) || rg.F > rg.T {
		return Scale{}, fmt.Errorf("range [%g, %g]: %w", rg.F, rg.T, node.ErrMalformedDataNode)
	}
	s := Scale{
		Domain: dom,
		Range:  rg,
		linear: scale.Linear{
			Min: dom.Min,
			Max: dom.Max,
		},
	}
	return s, nil
}

func (s Scale) Scale(v float64) float64 {
	if s.reversed {
		return s.T - s.linear.Map(v)*s.Len()
	}
	return s.F + s.linear.Map(v)*s.Len()
}

// Origin gives the position of zero, or of the domain bound nearest to it.
func (s Scale) Origin() float64 {
	return s.Scale(s.Domain.Clamp(0))
}

// Ticks returns round values inside the domain suited for an axis. count is
// the maximum number of ticks wanted.
func (s Scale) Ticks(count int) []float64 {
	if count <= 0 {
		count = defaultTicks
	}
	var (
		lin      = s.linear
		major, _ = lin.Ticks(scale.TickOptions{Max: count})
		ticks    = make([]float64, 0, len(major))
	)
	for _, t := range major {
		if !s.Domain.Contains(t) {
			continue
		}
		if n := len(ticks); n > 0 && t <= slices.Lst(ticks) {
			continue
		}
		ticks = append(ticks, t)
	}
	if len(ticks) == 0 {
		ticks = append(ticks, s.Domain.Min, s.Domain.Max)
	}
	return ticks
}

// Reverse maps the domain onto the range in the other direction, for screen
// axes growing downward.
func (s Scale) Reverse() Scale {
	s.reversed = !s.reversed
	return s
}

// reveal clamps v to the ceiling, keeping its sign. A nil ceiling leaves v
// untouched.
func reveal(v float64, ceil *float64) float64 {
	if ceil == nil {
		return v
	}
	c := math.Max(0, *ceil)
	if math.Abs(v) <= c {
		return v
	}
	return math.Copysign(c, v)
}
