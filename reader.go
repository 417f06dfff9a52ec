package dataviz

import (
	"fmt"

	"github.com/midbel/dataviz/node"
)

// attrs reads attributes of one node and keeps the first error, so that a
// chart can read everything it needs and check once.
type attrs struct {
	node *node.Node
	err  error
}

func read(n *node.Node) *attrs {
	return &attrs{node: n}
}

func (a *attrs) Err() error {
	return a.err
}

func (a *attrs) float(name string) float64 {
	if a.err != nil {
		return 0
	}
	v, err := a.node.Float(name)
	a.err = err
	return v
}

func (a *attrs) floats(name string) []float64 {
	if a.err != nil {
		return nil
	}
	v, err := a.node.Floats(name)
	a.err = err
	return v
}

func (a *attrs) integer(name string) int {
	if a.err != nil {
		return 0
	}
	v, err := a.node.Int(name)
	a.err = err
	return v
}

func (a *attrs) text(name string) string {
	if a.err != nil {
		return ""
	}
	v, err := a.node.String(name)
	a.err = err
	return v
}

// optional returns nil when the attribute is absent.
func (a *attrs) optional(name string) *float64 {
	if a.err != nil {
		return nil
	}
	v, ok, err := a.node.Lookup(name)
	if err != nil {
		a.err = err
		return nil
	}
	if !ok {
		return nil
	}
	return &v
}

func (a *attrs) textOr(name, def string) string {
	if v, ok := a.node.Attr(name); ok {
		return v
	}
	return def
}

func (a *attrs) flag(name string) bool {
	if a.err != nil {
		return false
	}
	v, err := a.node.Bool(name)
	a.err = err
	return v
}

func (a *attrs) position(name string, def TextPosition) TextPosition {
	v, ok := a.node.Attr(name)
	if !ok || a.err != nil {
		return def
	}
	pos, err := ParseTextPosition(v)
	if err != nil {
		a.err = fmt.Errorf("attribute %q: %w (%s)", name, node.ErrMalformedDataNode, err)
	}
	return pos
}
