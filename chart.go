package dataviz

import (
	"errors"
	"fmt"
	"sort"

	"github.com/midbel/dataviz/node"
	"github.com/midbel/dataviz/scene"
)

type State int

const (
	Uninitialized State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "uninitialized"
}

// composite is implemented by every chart type. A composite is built once
// from the first node it sees (allocation) and only refreshed afterwards.
type composite interface {
	Root() *scene.Group
	refresh(*node.Node) error
}

type builder func(Config, *node.Node) (composite, error)

var registry = map[string]builder{
	"bar":              buildBar(Horizontal),
	"column":           buildBar(Vertical),
	"stacked-bar":      buildStacked(Horizontal),
	"stacked-column":   buildStacked(Vertical),
	"grouped-bar":      buildGrouped(Horizontal),
	"grouped-column":   buildGrouped(Vertical),
	"target-bar":       buildTarget(Horizontal),
	"target-column":    buildTarget(Vertical),
	"pin-bar":          buildPin(Horizontal),
	"pin-column":       buildPin(Vertical),
	"waterfall-bar":    buildWaterfall(Horizontal),
	"waterfall-column": buildWaterfall(Vertical),
	"pie":              buildPie(false),
	"donut":            buildPie(true),
	"scatter":          buildPlane(false),
	"line":             buildPlane(true),
	"treemap":          buildTreemap,
	"heatmap":          buildHeatmap,
	"bullet":           buildBullet,
}

func Kinds() []string {
	var list []string
	for k := range registry {
		list = append(list, k)
	}
	sort.Strings(list)
	return list
}

// Chart binds one chart type to the node it is drawn from. The first call
// to Update allocates the primitives, later calls only refresh them.
type Chart struct {
	Kind string

	cfg   Config
	build builder
	impl  composite
	state State
}

func New(kind string, cfg Config) (*Chart, error) {
	b, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChart, kind)
	}
	c := Chart{
		Kind:  kind,
		cfg:   cfg.normalize(),
		build: b,
	}
	return &c, nil
}

func (c *Chart) State() State {
	return c.state
}

// Node returns the scene of the chart, nil before allocation.
func (c *Chart) Node() *scene.Group {
	if c.impl == nil {
		return nil
	}
	return c.impl.Root()
}

func (c *Chart) Allocate(n *node.Node) error {
	if c.state != Uninitialized {
		return fmt.Errorf("%s: chart already allocated", c.Kind)
	}
	impl, err := c.build(c.cfg, n)
	if err != nil {
		return err
	}
	c.impl = impl
	c.state = Ready
	Logger().Debug("chart allocated", "kind", c.Kind, "children", n.Len())
	return nil
}

func (c *Chart) Refresh(n *node.Node) error {
	if c.state != Ready {
		return fmt.Errorf("%s: %w", c.Kind, ErrNotReady)
	}
	return c.impl.refresh(n)
}

func (c *Chart) Update(n *node.Node) error {
	if c.state == Uninitialized {
		if err := c.Allocate(n); err != nil {
			return err
		}
	}
	return c.Refresh(n)
}

// zip walks children and the items allocated for them side by side. It
// fails if their counts diverge.
func zip[T any](children []*node.Node, items []T, fn func(int, *node.Node, T) error) error {
	if err := checkCount(len(items), len(children)); err != nil {
		return err
	}
	var errs []error
	for i := range items {
		if err := fn(i, children[i], items[i]); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
