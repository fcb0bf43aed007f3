// Package dataset models the tabular data a dashboard is built from and
// loads it from delimited-text or HTML sources.
package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedSource is returned when a source kind or file extension is
// not one of the supported tabular formats.
var ErrUnsupportedSource = errors.New("unsupported data source")

// Dataset is an ordered tabular structure: named columns and rows of string
// cells. It is not mutated after construction; loading new data into a
// builder replaces the Dataset wholesale.
type Dataset struct {
	columns []string
	rows    [][]string
}

// New builds a Dataset from column names and rows. Every row must have
// exactly one cell per column.
func New(columns []string, rows [][]string) (*Dataset, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(columns))
		}
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	copied := make([][]string, len(rows))
	for i, row := range rows {
		copied[i] = make([]string, len(row))
		copy(copied[i], row)
	}
	return &Dataset{columns: cols, rows: copied}, nil
}

// Columns returns the column names in order.
func (d *Dataset) Columns() []string {
	cols := make([]string, len(d.columns))
	copy(cols, d.columns)
	return cols
}

// NumCols reports the number of columns.
func (d *Dataset) NumCols() int { return len(d.columns) }

// NumRows reports the number of data rows.
func (d *Dataset) NumRows() int { return len(d.rows) }

// Row returns the cells of row i in column order.
func (d *Dataset) Row(i int) []string {
	row := make([]string, len(d.rows[i]))
	copy(row, d.rows[i])
	return row
}

// Column returns the cells of column i in row order.
func (d *Dataset) Column(i int) []string {
	cells := make([]string, 0, len(d.rows))
	for _, row := range d.rows {
		cells = append(cells, row[i])
	}
	return cells
}

// Floats returns column i parsed as numbers. It fails on the first cell
// that does not parse.
func (d *Dataset) Floats(i int) ([]float64, error) {
	if i < 0 || i >= len(d.columns) {
		return nil, fmt.Errorf("column index %d out of range (have %d columns)", i, len(d.columns))
	}
	vals := make([]float64, 0, len(d.rows))
	for r, row := range d.rows {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %q is not numeric", d.columns[i], r, row[i])
		}
		vals = append(vals, v)
	}
	return vals, nil
}
