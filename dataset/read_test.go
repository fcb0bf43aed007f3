package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const sampleCSV = "Date,Value\n2023-01-01,10\n2023-01-02,20\n"

const sampleHTML = `<!DOCTYPE html>
<html>
<body>
  <p>Some preamble.</p>
  <table>
    <thead>
      <tr><th>Name</th><th>Score</th></tr>
    </thead>
    <tbody>
      <tr><td>ann</td><td>3</td></tr>
      <tr><td>bob</td><td>7</td></tr>
    </tbody>
  </table>
  <table>
    <tr><th>Second</th></tr>
    <tr><td>ignored</td></tr>
  </table>
</body>
</html>`

func TestReadCSV(t *testing.T) {
	path := writeTempFile(t, "data.csv", sampleCSV)

	ds, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Value"}, ds.Columns())
	assert.Equal(t, 2, ds.NumRows())
	assert.Equal(t, []string{"2023-01-02", "20"}, ds.Row(1))
}

func TestParseCSVRequiresHeader(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}

func TestParseCSVRaggedRecords(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("a,b\n1\n"))
	require.Error(t, err)
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadHTMLUsesFirstTable(t *testing.T) {
	path := writeTempFile(t, "page.html", sampleHTML)

	ds, err := ReadHTML(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Score"}, ds.Columns())
	assert.Equal(t, 2, ds.NumRows())
	assert.Equal(t, []string{"ann", "3"}, ds.Row(0))
	assert.NotContains(t, ds.Columns(), "Second")
}

func TestParseHTMLNoTable(t *testing.T) {
	_, err := ParseHTML(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no table")
}

func TestParseHTMLBareRows(t *testing.T) {
	ds, err := ParseHTML(strings.NewReader("<table><tr><th>K</th></tr><tr><td>v</td></tr></table>"))
	require.NoError(t, err)
	assert.Equal(t, []string{"K"}, ds.Columns())
	assert.Equal(t, []string{"v"}, ds.Row(0))
}

func TestRead(t *testing.T) {
	csvPath := writeTempFile(t, "data.csv", sampleCSV)
	htmlPath := writeTempFile(t, "page.html", sampleHTML)

	ds, err := Read(csvPath, SourceCSV)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Value"}, ds.Columns())

	ds, err = Read(htmlPath, SourceHTML)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Score"}, ds.Columns())

	_, err = Read(csvPath, SourceKind(42))
	require.ErrorIs(t, err, ErrUnsupportedSource)
}

func TestReadFile(t *testing.T) {
	csvPath := writeTempFile(t, "data.csv", sampleCSV)
	htmlPath := writeTempFile(t, "page.HTM", sampleHTML)

	ds, err := ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.NumRows())

	ds, err = ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Score"}, ds.Columns())

	_, err = ReadFile(writeTempFile(t, "data.txt", "a,b\n1,2\n"))
	require.ErrorIs(t, err, ErrUnsupportedSource)
}
