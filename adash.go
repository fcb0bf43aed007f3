// Package adash assembles tabular data, charts, and text blocks into a
// single static HTML dashboard page.
//
// A Builder accumulates fragments and renders them in fixed category
// order: all tables first, then all text blocks, then all charts, each
// category in insertion order.
//
//	b := adash.NewBuilder()
//	if err := b.Load("metrics.csv", dataset.SourceCSV); err != nil {
//	    // handle error
//	}
//	b.SetLayout(2)
//	b.AddTable()
//	b.AddChart(adash.ChartOptions{Kind: chart.Line, Title: "Trend"})
//	b.Save("dashboard.html")
package adash

import (
	"errors"
	"fmt"
	"os"

	"github.com/user/adash-go/chart"
	"github.com/user/adash-go/dataset"
)

// DefaultTitle is the page title used when none is supplied.
const DefaultTitle = "Adash Dashboard"

// ErrMissingData is returned when an operation needs a loaded Dataset and
// none is present.
var ErrMissingData = errors.New("no data loaded")

// Builder accumulates dashboard fragments. It holds at most one live
// Dataset; the fragment sequences are append-only. A Builder is not safe
// for concurrent use.
type Builder struct {
	data   *dataset.Dataset
	layout *Layout
	tables []string
	texts  []string
	charts []chartFragment
}

type chartFragment struct {
	markup   string
	title    string
	position Position
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetData replaces the current Dataset with an in-memory one.
func (b *Builder) SetData(ds *dataset.Dataset) {
	b.data = ds
}

// Load reads a Dataset from path according to kind and makes it the
// current data. On failure the previous Dataset is kept.
func (b *Builder) Load(path string, kind dataset.SourceKind) error {
	ds, err := dataset.Read(path, kind)
	if err != nil {
		return err
	}
	b.data = ds
	return nil
}

// SetLayout replaces the layout with counts[i] chart slots in row i.
// Negative counts fail with ErrInvalidLayout.
func (b *Builder) SetLayout(counts ...int) error {
	l, err := NewLayout(counts...)
	if err != nil {
		return err
	}
	b.layout = l
	return nil
}

// ChartOptions describes one chart request.
type ChartOptions struct {
	// Figure, when set, is embedded as-is and Kind is ignored.
	Figure chart.Embedder
	// Kind selects the chart generated from the current Dataset when no
	// Figure is supplied.
	Kind chart.Kind
	// Title, when non-empty, renders as a heading above the chart.
	Title string
	// Position aligns the title. Chart titles recognize only Left and
	// Right; anything else centers.
	Position Position
}

// AddChart appends chart fragments. With a prebuilt Figure it appends
// exactly one fragment. Otherwise it generates one chart of opts.Kind per
// layout slot from the current Dataset's first two columns, failing with
// ErrMissingData when no data is loaded and chart.ErrUnsupportedKind for
// kinds outside the enumerated set. With no layout set the slot loop runs
// zero times and the call appends nothing.
func (b *Builder) AddChart(opts ChartOptions) error {
	if opts.Figure != nil {
		markup, err := opts.Figure.EmbedHTML()
		if err != nil {
			return fmt.Errorf("embedding figure: %w", err)
		}
		b.charts = append(b.charts, chartFragment{markup: markup, title: opts.Title, position: opts.Position})
		return nil
	}
	if b.data == nil {
		return fmt.Errorf("%w: load data before adding generated charts", ErrMissingData)
	}
	var pending []chartFragment
	for _, row := range b.layoutRows() {
		for range row.Columns {
			markup, err := chart.New(b.data, opts.Kind, opts.Title)
			if err != nil {
				return err
			}
			pending = append(pending, chartFragment{markup: markup, title: opts.Title, position: opts.Position})
		}
	}
	b.charts = append(b.charts, pending...)
	return nil
}

func (b *Builder) layoutRows() []Row {
	if b.layout == nil {
		return nil
	}
	return b.layout.Rows
}

// AddTable renders the current Dataset as a table fragment. It fails with
// ErrMissingData when no data is loaded.
func (b *Builder) AddTable() error {
	if b.data == nil {
		return fmt.Errorf("%w: load data before adding a table", ErrMissingData)
	}
	b.tables = append(b.tables, b.data.ToHTML())
	return nil
}

// AddTableData renders an explicit Dataset as a table fragment, leaving
// the current data untouched.
func (b *Builder) AddTableData(ds *dataset.Dataset) {
	b.tables = append(b.tables, ds.ToHTML())
}

// AddTableFile loads a tabular file by extension (.csv, .html, .htm) and
// renders it as a table fragment. Other extensions fail with
// dataset.ErrUnsupportedSource.
func (b *Builder) AddTableFile(path string) error {
	ds, err := dataset.ReadFile(path)
	if err != nil {
		return err
	}
	b.tables = append(b.tables, ds.ToHTML())
	return nil
}

// Save renders the dashboard with the default title and writes it to path,
// overwriting any existing file. Write failures propagate to the caller.
func (b *Builder) Save(path string) error {
	doc, err := b.Render(DefaultTitle)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("writing dashboard to %s: %w", path, err)
	}
	return nil
}
