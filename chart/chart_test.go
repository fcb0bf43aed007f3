package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gochart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"

	"github.com/user/adash-go/dataset"
)

func numericDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(
		[]string{"x", "y"},
		[][]string{
			{"1", "10"},
			{"2", "25"},
			{"3", "15"},
			{"4", "30"},
		},
	)
	require.NoError(t, err)
	return ds
}

func categoricalDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(
		[]string{"Category", "Count"},
		[][]string{
			{"alpha", "3"},
			{"beta", "7"},
			{"gamma", "5"},
		},
	)
	require.NoError(t, err)
	return ds
}

func TestNewGeneratesSVG(t *testing.T) {
	ds := numericDataset(t)
	for _, kind := range []Kind{Line, Bar, Scatter, Histogram} {
		t.Run(kind.String(), func(t *testing.T) {
			markup, err := New(ds, kind, "My Chart")
			require.NoError(t, err)
			assert.Contains(t, markup, "<svg")
			assert.Contains(t, markup, "</svg>")
		})
	}
}

func TestNewCategoricalX(t *testing.T) {
	ds := categoricalDataset(t)
	for _, kind := range []Kind{Line, Bar, Scatter} {
		t.Run(kind.String(), func(t *testing.T) {
			markup, err := New(ds, kind, "")
			require.NoError(t, err)
			assert.Contains(t, markup, "<svg")
		})
	}
}

func TestNewUnsupportedKind(t *testing.T) {
	_, err := New(numericDataset(t), Kind(42), "")
	require.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestNewNeedsTwoColumns(t *testing.T) {
	ds, err := dataset.New([]string{"only"}, [][]string{{"1"}, {"2"}, {"4"}, {"4"}})
	require.NoError(t, err)

	_, err = New(ds, Line, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2")

	// The histogram only needs the first column.
	markup, err := New(ds, Histogram, "")
	require.NoError(t, err)
	assert.Contains(t, markup, "<svg")
}

func TestNewNonNumericY(t *testing.T) {
	ds, err := dataset.New([]string{"x", "y"}, [][]string{{"1", "high"}, {"2", "low"}})
	require.NoError(t, err)

	_, err = New(ds, Scatter, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not numeric")
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"line", "bar", "scatter", "histogram"} {
		kind, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, kind.String())
	}

	_, err := ParseKind("pie")
	require.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestPlotEmbedder(t *testing.T) {
	p := plot.New()
	p.Title.Text = "prebuilt"

	markup, err := Plot(p).EmbedHTML()
	require.NoError(t, err)
	assert.True(t, strings.Contains(markup, "<svg"))
}

func TestFromGoChart(t *testing.T) {
	c := gochart.Chart{
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				XValues: []float64{1, 2, 3, 4},
				YValues: []float64{5, 3, 8, 6},
			},
		},
	}

	markup, err := FromGoChart(c).EmbedHTML()
	require.NoError(t, err)
	assert.Contains(t, markup, "<svg")
}
