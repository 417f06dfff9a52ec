package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/dataviz"
	"github.com/midbel/dataviz/node"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	outputDir string
	frames    int
	ratio     float64
	sheet     string
	width     float64
	height    float64
	verbose   bool
)

func main() {
	root := &cobra.Command{
		Use:   "draw [file...]",
		Short: "Render chart descriptions to SVG",
		Long: `draw reads chart descriptions (xml or xlsx) and writes one svg per
input. With --frames, the values are revealed progressively and one svg is
written per step.`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	root.Flags().IntVarP(&frames, "frames", "f", 0, "number of reveal steps")
	root.Flags().Float64VarP(&ratio, "scale", "s", 0, "device pixel ratio (overrides the scale attribute)")
	root.Flags().StringVar(&sheet, "sheet", "", "worksheet to read from xlsx inputs")
	root.Flags().Float64Var(&width, "width", dataviz.DefaultWidth, "page width")
	root.Flags().Float64Var(&height, "height", dataviz.DefaultHeight, "page height")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	dataviz.SetLogger(logger)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	cfg := dataviz.Default()
	cfg.Width = width
	cfg.Height = height

	g, ctx := errgroup.WithContext(context.Background())
	for _, file := range args {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := render(cfg, file); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			logger.Info("rendered", "file", file)
			return nil
		})
	}
	return g.Wait()
}

func render(cfg dataviz.Config, file string) error {
	doc, err := load(file)
	if err != nil {
		return err
	}
	if ratio > 0 {
		rescale(doc, ratio)
	}
	var (
		base = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		page = dataviz.NewPage(cfg, doc)
	)
	if frames <= 0 {
		return write(page, doc, filepath.Join(outputDir, base+".svg"))
	}
	for i := 0; i <= frames; i++ {
		var (
			step = reveal(doc, float64(i)/float64(frames))
			name = fmt.Sprintf("%s-%03d.svg", base, i)
		)
		if err := write(page, step, filepath.Join(outputDir, name)); err != nil {
			return err
		}
	}
	return nil
}

func write(page *dataviz.Page, doc *node.Node, file string) error {
	if err := page.Update(doc); err != nil {
		return err
	}
	if errs := page.Errors(); len(errs) > 0 {
		dataviz.Logger().Info("placeholders drawn", "file", file, "count", len(errs))
	}
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := page.Render(w); err != nil {
		return err
	}
	return w.Close()
}

// load reads a page from file. A file describing a single chart is wrapped
// in a page of its own.
func load(file string) (*node.Node, error) {
	var (
		doc *node.Node
		err error
	)
	switch strings.ToLower(filepath.Ext(file)) {
	case ".xlsx":
		doc, err = node.LoadSheet(file, sheet)
	default:
		var r *os.File
		if r, err = os.Open(file); err != nil {
			return nil, err
		}
		defer r.Close()
		doc, err = node.Decode(r)
	}
	if err != nil {
		return nil, err
	}
	if isChart(doc) {
		doc = node.New("page").Append(doc)
	}
	return doc, nil
}

func isChart(n *node.Node) bool {
	if n.Name == "chart" {
		return true
	}
	for _, k := range dataviz.Kinds() {
		if k == n.Name {
			return true
		}
	}
	return false
}

func rescale(doc *node.Node, ratio float64) {
	for _, c := range doc.Children {
		c.SetFloat("scale", ratio)
	}
}
