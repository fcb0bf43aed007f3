package dataset

import (
	"fmt"
	"html"
	"strings"
)

// ToHTML renders the Dataset as table markup tagged with the "display"
// class so client-side DataTables can paginate and sort it. The row index
// is never emitted.
func (d *Dataset) ToHTML() string {
	var b strings.Builder
	b.WriteString("<table border=\"1\" class=\"dataframe display\">\n")
	b.WriteString("  <thead>\n    <tr style=\"text-align: right;\">\n")
	for _, col := range d.columns {
		fmt.Fprintf(&b, "      <th>%s</th>\n", html.EscapeString(col))
	}
	b.WriteString("    </tr>\n  </thead>\n  <tbody>\n")
	for _, row := range d.rows {
		b.WriteString("    <tr>\n")
		for _, cell := range row {
			fmt.Fprintf(&b, "      <td>%s</td>\n", html.EscapeString(cell))
		}
		b.WriteString("    </tr>\n")
	}
	b.WriteString("  </tbody>\n</table>")
	return b.String()
}
