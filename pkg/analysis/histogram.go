package analysis

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveHistogram plots the edge length distribution to path. The image
// format follows the file extension (png, svg, pdf, ...).
func (r *EdgeReport) SaveHistogram(path string, bins int) error {
	if len(r.Edges) == 0 {
		return errors.New("no edges to plot")
	}
	if bins <= 0 {
		bins = 20
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Edge lengths (%d edges)", len(r.Edges))
	p.X.Label.Text = "length"
	p.Y.Label.Text = "edges"

	h, err := plotter.NewHist(plotter.Values(r.Lengths()), bins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save histogram: %w", err)
	}
	return nil
}
