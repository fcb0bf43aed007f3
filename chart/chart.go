// Package chart builds embeddable chart markup from tabular data.
//
// Generated charts use the first two columns of a Dataset as x/y (the
// histogram bins the first column) and render to SVG, which drops straight
// into the dashboard page. Prebuilt figures from any backend plug in
// through the Embedder interface.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/user/adash-go/dataset"
)

// ErrUnsupportedKind is returned for chart kinds outside the enumerated set.
var ErrUnsupportedKind = errors.New("unsupported chart kind")

// Kind enumerates the chart types that can be generated from a Dataset.
type Kind int

const (
	Line Kind = iota
	Bar
	Scatter
	Histogram
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Bar:
		return "bar"
	case Scatter:
		return "scatter"
	case Histogram:
		return "histogram"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a kind name to its Kind value.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "line":
		return Line, nil
	case "bar":
		return Bar, nil
	case "scatter":
		return Scatter, nil
	case "histogram":
		return Histogram, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
}

var seriesColor = color.RGBA{B: 255, A: 255}

func init() {
	plot.DefaultFont = font.Font{Typeface: "Liberation", Variant: "Sans"}
	plotter.DefaultFont = font.Font{Typeface: "Liberation", Variant: "Sans"}
}

// New builds a chart of the given kind from ds and returns it as
// embeddable SVG markup. Line, bar and scatter charts need at least two
// columns with a numeric second column; the histogram bins the first
// column's numeric values.
func New(ds *dataset.Dataset, kind Kind, title string) (string, error) {
	p := plot.New()
	p.Title.Text = title

	switch kind {
	case Line:
		pts, labels, numericX, err := xyPoints(ds)
		if err != nil {
			return "", err
		}
		ln, err := plotter.NewLine(pts)
		if err != nil {
			return "", fmt.Errorf("creating line plot: %w", err)
		}
		ln.Color = seriesColor
		ln.LineStyle.Width = vg.Points(2)
		p.Add(ln, plotter.NewGrid())
		labelAxes(p, ds)
		if !numericX {
			p.NominalX(labels...)
		}

	case Scatter:
		pts, labels, numericX, err := xyPoints(ds)
		if err != nil {
			return "", err
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return "", fmt.Errorf("creating scatter plot: %w", err)
		}
		sc.GlyphStyle.Color = seriesColor
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(sc, plotter.NewGrid())
		labelAxes(p, ds)
		if !numericX {
			p.NominalX(labels...)
		}

	case Bar:
		if ds.NumCols() < 2 {
			return "", fmt.Errorf("dataset has %d columns, need at least 2 for a bar chart", ds.NumCols())
		}
		ys, err := ds.Floats(1)
		if err != nil {
			return "", err
		}
		bars, err := plotter.NewBarChart(plotter.Values(ys), vg.Points(20))
		if err != nil {
			return "", fmt.Errorf("creating bar chart: %w", err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = seriesColor
		p.Add(bars)
		p.NominalX(ds.Column(0)...)
		p.Y.Label.Text = ds.Columns()[1]

	case Histogram:
		vals, err := ds.Floats(0)
		if err != nil {
			return "", err
		}
		h, err := plotter.NewHist(plotter.Values(vals), 16)
		if err != nil {
			return "", fmt.Errorf("creating histogram: %w", err)
		}
		h.FillColor = seriesColor
		p.Add(h)
		p.X.Label.Text = ds.Columns()[0]
		p.Y.Label.Text = "Count"

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}

	return renderSVG(p)
}

// xyPoints pairs the first two columns as x/y. When the x column is not
// numeric throughout, row order is used as the x position and the raw
// values are returned as axis labels.
func xyPoints(ds *dataset.Dataset) (plotter.XYs, []string, bool, error) {
	if ds.NumCols() < 2 {
		return nil, nil, false, fmt.Errorf("dataset has %d columns, need at least 2", ds.NumCols())
	}
	ys, err := ds.Floats(1)
	if err != nil {
		return nil, nil, false, err
	}
	pts := make(plotter.XYs, len(ys))
	if xs, err := ds.Floats(0); err == nil {
		for i := range pts {
			pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
		}
		return pts, nil, true, nil
	}
	for i := range pts {
		pts[i] = plotter.XY{X: float64(i), Y: ys[i]}
	}
	return pts, ds.Column(0), false, nil
}

func labelAxes(p *plot.Plot, ds *dataset.Dataset) {
	cols := ds.Columns()
	p.X.Label.Text = cols[0]
	p.Y.Label.Text = cols[1]
}

// renderSVG captures the plot as SVG markup.
func renderSVG(p *plot.Plot) (string, error) {
	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", fmt.Errorf("creating plot writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("rendering plot: %w", err)
	}
	return buf.String(), nil
}
