package node

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAttribute  = errors.New("missing attribute")
	ErrMalformedDataNode = errors.New("malformed data node")
)

type AttributeError struct {
	Node  string
	Attr  string
	Value string
	Err   error
	cause error
}

func (e *AttributeError) Error() string {
	if errors.Is(e.Err, ErrMissingAttribute) {
		return fmt.Sprintf("%s: attribute %q not found", e.Node, e.Attr)
	}
	return fmt.Sprintf("%s: attribute %q: invalid value %q", e.Node, e.Attr, e.Value)
}

func (e *AttributeError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.cause}
}

func missing(n *Node, attr string) error {
	return &AttributeError{
		Node: nodeName(n),
		Attr: attr,
		Err:  ErrMissingAttribute,
	}
}

func malformed(n *Node, attr, value string, cause error) error {
	return &AttributeError{
		Node:  nodeName(n),
		Attr:  attr,
		Value: value,
		Err:   ErrMalformedDataNode,
		cause: cause,
	}
}

func nodeName(n *Node) string {
	if n == nil || n.Name == "" {
		return "node"
	}
	return n.Name
}
