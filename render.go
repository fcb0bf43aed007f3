package adash

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"
)

// pageTemplate is the fixed dashboard page. The CDN-hosted DataTables and
// Tailwind assets plus the init script give every rendered table paginated,
// sortable behavior on the client side.
var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{ .Title }}</title>
    <link href="https://cdn.datatables.net/1.13.4/css/jquery.dataTables.min.css" rel="stylesheet">
    <link href="https://cdn.datatables.net/1.13.4/css/dataTables.bootstrap4.min.css" rel="stylesheet">
    <link href="https://cdn.jsdelivr.net/npm/tailwindcss@^2/dist/tailwind.min.css" rel="stylesheet">
</head>
<body>
    <div class="container mx-auto p-4">
        <h1 class="text-3xl font-bold mb-4">{{ .Title }}</h1>
        {{ .Content }}
    </div>

    <script src="https://code.jquery.com/jquery-3.6.0.min.js"></script>
    <script src="https://cdn.datatables.net/1.13.4/js/jquery.dataTables.min.js"></script>
    <script>
        $(document).ready(function() {
            $('table').DataTable({
                "pagingType": "simple_numbers",
                "lengthMenu": [10, 25, 50, 75, 100],
                "pageLength": 10,
                "responsive": true,
                "autoWidth": false,
                "searching": true,
                "ordering": true,
                "info": true,
                "language": {
                    "search": "Search:",
                    "lengthMenu": "Show _MENU_ entries",
                    "info": "Showing _START_ to _END_ of _TOTAL_ entries",
                    "paginate": {
                        "first": "First",
                        "last": "Last",
                        "next": "Next",
                        "previous": "Previous"
                    }
                }
            });
        });
    </script>
</body>
</html>
`))

type pageData struct {
	Title   string
	Content template.HTML
}

// Render assembles the accumulated fragments into a complete HTML
// document: all table markup, then all text markup, then each chart's
// optional title heading followed by its markup. An empty title uses
// DefaultTitle. Render does not mutate the builder; repeated calls yield
// identical output.
func (b *Builder) Render(title string) (string, error) {
	if title == "" {
		title = DefaultTitle
	}

	var content strings.Builder
	for _, t := range b.tables {
		content.WriteString(t)
		content.WriteString("\n")
	}
	for _, t := range b.texts {
		content.WriteString(t)
		content.WriteString("\n")
	}
	for _, c := range b.charts {
		if c.title != "" {
			fmt.Fprintf(&content, "<h3 class='text-xl font-semibold %s'>%s</h3>\n",
				c.position.titleAlignClass(), html.EscapeString(c.title))
		}
		content.WriteString(c.markup)
		content.WriteString("\n")
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{Title: title, Content: template.HTML(content.String())}); err != nil {
		return "", fmt.Errorf("executing dashboard template: %w", err)
	}
	return buf.String(), nil
}
