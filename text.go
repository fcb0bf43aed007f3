package adash

import (
	"fmt"
	"html"
	"strings"
)

// TextOptions describes one text block. Elements render in fixed order:
// heading, paragraphs, ordered list, unordered list. Absent elements are
// skipped.
type TextOptions struct {
	Heading       string
	Lines         []string
	OrderedList   []string
	UnorderedList []string
	// Position aligns every element of the block. Text blocks recognize
	// Left, Right, Justify, Start and End; anything else centers.
	Position Position
}

// AddText appends one text fragment built from opts. All content is
// HTML-escaped.
func (b *Builder) AddText(opts TextOptions) {
	class := opts.Position.textAlignClass()
	var sb strings.Builder

	if opts.Heading != "" {
		fmt.Fprintf(&sb, "<h2 class='text-2xl font-bold %s'>%s</h2>", class, html.EscapeString(opts.Heading))
	}
	for _, line := range opts.Lines {
		fmt.Fprintf(&sb, "<p class='mt-2 %s'>%s</p>", class, html.EscapeString(line))
	}
	if len(opts.OrderedList) > 0 {
		fmt.Fprintf(&sb, "<ol class='mt-2 list-decimal list-inside %s'>", class)
		for _, item := range opts.OrderedList {
			fmt.Fprintf(&sb, "<li>%s</li>", html.EscapeString(item))
		}
		sb.WriteString("</ol>")
	}
	if len(opts.UnorderedList) > 0 {
		fmt.Fprintf(&sb, "<ul class='mt-2 list-disc list-inside %s'>", class)
		for _, item := range opts.UnorderedList {
			fmt.Fprintf(&sb, "<li>%s</li>", html.EscapeString(item))
		}
		sb.WriteString("</ul>")
	}

	b.texts = append(b.texts, sb.String())
}
