package scene

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

type Document struct {
	Width  float64
	Height float64
	Root   *Group
}

func NewDocument(width, height float64) *Document {
	return &Document{
		Width:  width,
		Height: height,
		Root:   NewGroup("page"),
	}
}

func (d *Document) Render(w io.Writer) error {
	el := svg.NewSVG(svg.WithDimension(d.Width, d.Height))
	el.OmitProlog = true
	if d.Root != nil && d.Root.Visible() {
		el.Append(d.Root.AsElement())
	}

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}
