package node

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Decode reads a markup document and returns its root element as a tree of
// nodes. Character data is ignored, only elements and attributes matter.
func Decode(r io.Reader) (*Node, error) {
	var (
		dec   = xml.NewDecoder(r)
		stack []*Node
		root  *Node
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			n := New(tok.Name.Local)
			for _, a := range tok.Attr {
				n.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) > 0 {
				stack[len(stack)-1].Append(n)
			} else if root == nil {
				root = n
			} else {
				return nil, fmt.Errorf("decode: multiple root elements (%s)", n.Name)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, fmt.Errorf("decode: empty document")
	}
	return root, nil
}

func DecodeString(str string) (*Node, error) {
	return Decode(strings.NewReader(str))
}
