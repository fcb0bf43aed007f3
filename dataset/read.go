package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// SourceKind selects how a file is parsed into a Dataset.
type SourceKind int

const (
	// SourceCSV is comma-separated text with a mandatory header row.
	SourceCSV SourceKind = iota
	// SourceHTML is an HTML document; the first table element is used.
	SourceHTML
)

// Read loads a Dataset from path according to kind. Unknown kinds fail with
// ErrUnsupportedSource.
func Read(path string, kind SourceKind) (*Dataset, error) {
	switch kind {
	case SourceCSV:
		return ReadCSV(path)
	case SourceHTML:
		return ReadHTML(path)
	default:
		return nil, fmt.Errorf("%w: source kind %d", ErrUnsupportedSource, kind)
	}
}

// ReadFile loads a Dataset from path, picking the format from the file
// extension. Extensions other than .csv, .html and .htm fail with
// ErrUnsupportedSource.
func ReadFile(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".html", ".htm":
		return ReadHTML(path)
	default:
		return nil, fmt.Errorf("%w: file %s", ErrUnsupportedSource, path)
	}
}

// ReadCSV loads a Dataset from a comma-separated file. The first record is
// the header row.
func ReadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening delimited file: %w", err)
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV parses comma-separated data from r. The first record is the
// header row.
func ParseCSV(r io.Reader) (*Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing delimited data: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("delimited data has no header row")
	}
	return New(records[0], records[1:])
}

// ReadHTML loads a Dataset from the first table element in an HTML file.
func ReadHTML(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening HTML file: %w", err)
	}
	defer f.Close()
	return ParseHTML(f)
}

// ParseHTML parses an HTML document from r and extracts the first table.
// The table's first row (thead row or leading tr) supplies the column
// names.
func ParseHTML(r io.Reader) (*Dataset, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	table := findElement(doc, "table")
	if table == nil {
		return nil, errors.New("no table element found in HTML document")
	}
	rows := tableRows(table)
	if len(rows) == 0 {
		return nil, errors.New("table element has no rows")
	}
	return New(rows[0], rows[1:])
}

// tableRows collects cell text per row, honoring thead/tbody sections and
// bare tr children.
func tableRows(table *html.Node) [][]string {
	var rows [][]string
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					if row := rowCells(tr); len(row) > 0 {
						rows = append(rows, row)
					}
				}
			}
		case "tr":
			if row := rowCells(c); len(row) > 0 {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, textContent(c))
		}
	}
	return cells
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tagName); found != nil {
			return found
		}
	}
	return nil
}

// textContent extracts the concatenated text of a node and its descendants.
func textContent(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return strings.TrimSpace(b.String())
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
