package main

import (
	"math"

	"github.com/midbel/dataviz/node"
)

// reveal returns a copy of doc where the reveal attributes of each chart are
// set to show the given fraction of its values.
func reveal(doc *node.Node, frac float64) *node.Node {
	doc = doc.Clone()
	for _, c := range doc.Children {
		kind := c.Name
		if k, ok := c.Attr("type"); ok && kind == "chart" {
			kind = k
		}
		switch kind {
		case "pie", "donut":
			c.SetFloat("current_val", frac*sum(c.Children, "val"))
		case "scatter", "line":
			lo, _, _ := c.Lookup("domain_x_min")
			hi, _, _ := c.Lookup("domain_x_max")
			c.SetFloat("current_x", lo+frac*(hi-lo))
		case "waterfall-bar", "waterfall-column":
			c.SetFloat("current_line", math.Round(frac*float64(c.Len()))-1)
		case "bullet":
			v, _, _ := c.Lookup("val_current")
			c.SetFloat("width", frac*v)
		case "treemap", "heatmap":
		default:
			ceil := frac * largest(c.Children)
			for _, x := range c.Children {
				delete(x.Attrs, "current_width")
				delete(x.Attrs, "current_height")
			}
			c.SetFloat("current_width", ceil)
			c.SetFloat("current_height", ceil)
		}
	}
	return doc
}

func sum(list []*node.Node, attr string) float64 {
	var total float64
	for _, n := range list {
		v, _, _ := n.Lookup(attr)
		total += v
	}
	return total
}

// largest is the greatest magnitude a category chart has to reveal: a value,
// the sum of a stack or the current value of a target.
func largest(list []*node.Node) float64 {
	var max float64
	for _, n := range list {
		for _, attr := range []string{"value", "val_current"} {
			v, _, _ := n.Lookup(attr)
			max = math.Max(max, math.Abs(v))
		}
		vs, _ := n.Floats("values")
		var total float64
		for _, v := range vs {
			total += math.Abs(v)
		}
		max = math.Max(max, total)
	}
	return max
}
