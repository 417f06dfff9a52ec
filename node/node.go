// Package node holds the data-node tree charts are bound to: named string
// attributes and ordered children, with typed accessors that fail instead of
// silently producing NaN.
package node

import (
	"math"
	"strconv"
	"strings"
)

type Node struct {
	Name     string
	Attrs    map[string]string
	Children []*Node
}

func New(name string) *Node {
	return &Node{
		Name:  name,
		Attrs: make(map[string]string),
	}
}

func (n *Node) Set(name, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
	return n
}

func (n *Node) SetFloat(name string, value float64) *Node {
	return n.Set(name, strconv.FormatFloat(value, 'f', -1, 64))
}

func (n *Node) Append(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

func (n *Node) Len() int {
	return len(n.Children)
}

func (n *Node) Attr(name string) (string, bool) {
	if n == nil || n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

func (n *Node) String(name string) (string, error) {
	v, ok := n.Attr(name)
	if !ok {
		return "", missing(n, name)
	}
	return v, nil
}

func (n *Node) Float(name string) (float64, error) {
	v, ok := n.Attr(name)
	if !ok {
		return 0, missing(n, name)
	}
	return parseFloat(n, name, v)
}

// Lookup reads an optional numeric attribute. An absent attribute is not an
// error but a present one must still parse.
func (n *Node) Lookup(name string) (float64, bool, error) {
	v, ok := n.Attr(name)
	if !ok {
		return 0, false, nil
	}
	f, err := parseFloat(n, name, v)
	return f, err == nil, err
}

func (n *Node) Floats(name string) ([]float64, error) {
	v, ok := n.Attr(name)
	if !ok {
		return nil, missing(n, name)
	}
	var (
		parts = strings.Split(v, ",")
		list  = make([]float64, 0, len(parts))
	)
	for _, p := range parts {
		f, err := parseFloat(n, name, p)
		if err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, nil
}

func (n *Node) Int(name string) (int, error) {
	v, ok := n.Attr(name)
	if !ok {
		return 0, missing(n, name)
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, malformed(n, name, v, err)
	}
	return i, nil
}

func (n *Node) Bool(name string) (bool, error) {
	v, ok := n.Attr(name)
	if !ok {
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, malformed(n, name, v, err)
	}
	return b, nil
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := New(n.Name)
	for k, v := range n.Attrs {
		c.Attrs[k] = v
	}
	for _, x := range n.Children {
		c.Children = append(c.Children, x.Clone())
	}
	return c
}

func parseFloat(n *Node, name, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, malformed(n, name, value, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, malformed(n, name, value, nil)
	}
	return f, nil
}
