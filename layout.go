package adash

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is returned when a layout row has a negative column
// count.
var ErrInvalidLayout = errors.New("invalid layout")

// Slot is a chart placeholder within a layout row.
type Slot struct {
	Index int
}

// Row is one layout row holding zero or more chart slots.
type Row struct {
	Columns []Slot
}

// Layout describes the dashboard grid as ordered rows of chart slots. It
// is consumed only by auto-generated chart requests, which emit one chart
// per slot in row-major order.
type Layout struct {
	Rows []Row
}

// NewLayout builds a Layout with counts[i] chart slots in row i. A zero
// count is a row with no slots; negative counts fail with
// ErrInvalidLayout.
func NewLayout(counts ...int) (*Layout, error) {
	l := &Layout{Rows: make([]Row, 0, len(counts))}
	for _, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative column count %d", ErrInvalidLayout, n)
		}
		row := Row{Columns: make([]Slot, n)}
		for i := range row.Columns {
			row.Columns[i] = Slot{Index: i}
		}
		l.Rows = append(l.Rows, row)
	}
	return l, nil
}

// Slots reports the total slot count across all rows.
func (l *Layout) Slots() int {
	if l == nil {
		return 0
	}
	n := 0
	for _, r := range l.Rows {
		n += len(r.Columns)
	}
	return n
}
