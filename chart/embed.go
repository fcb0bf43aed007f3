package chart

import (
	"bytes"
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
)

// Embedder is anything that can render itself as embeddable HTML markup.
// It decouples the dashboard builder from any one charting library's
// object model.
type Embedder interface {
	EmbedHTML() (string, error)
}

// Figure wraps a caller-built gonum plot as an Embedder.
type Figure struct {
	p *plot.Plot
}

// Plot adapts a gonum plot so it can be added to a dashboard as a prebuilt
// figure.
func Plot(p *plot.Plot) Figure {
	return Figure{p: p}
}

// EmbedHTML renders the wrapped plot as SVG markup.
func (f Figure) EmbedHTML() (string, error) {
	return renderSVG(f.p)
}

// goChartRenderable matches the Render method shared by go-chart's chart
// types (Chart, BarChart, PieChart, ...).
type goChartRenderable interface {
	Render(rp gochart.RendererProvider, w io.Writer) error
}

// FromGoChart wraps a go-chart chart as an Embedder rendering to SVG.
func FromGoChart(c goChartRenderable) Embedder {
	return goChartFigure{c: c}
}

type goChartFigure struct {
	c goChartRenderable
}

func (f goChartFigure) EmbedHTML() (string, error) {
	var buf bytes.Buffer
	if err := f.c.Render(gochart.SVG, &buf); err != nil {
		return "", fmt.Errorf("rendering go-chart figure: %w", err)
	}
	return buf.String(), nil
}
