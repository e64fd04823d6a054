// Package lexique reads Lexique spreadsheet exports and turns them into word
// records: load, filter by grammatical class, clean, reshape.
package lexique

import "fmt"

// Source column names of a Lexique export. They are case-sensitive.
const (
	ColWord   = "ortho"
	ColClass  = "cgram"
	ColGender = "genre"
	ColNumber = "nombre"
	ColLemma  = "lemme"
)

// DefaultClasses are the grammatical classes kept by Filter: nouns and adjectives.
var DefaultClasses = []string{"NOM", "ADJ"}

// SourceNotFoundError reports a source path that does not resolve to a readable file.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source file %q not found", e.Path)
}

// MissingColumnError reports an expected column absent from the source header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

// Table is a header plus string rows, as read from the first stage of the pipeline.
// Rows may be shorter than the header; missing trailing cells read as "".
type Table struct {
	Header []string
	Rows   [][]string

	index map[string]int
}

// NewTable builds a Table. When a column name repeats, the first occurrence wins.
func NewTable(header []string, rows [][]string) *Table {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return &Table{Header: header, Rows: rows, index: idx}
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Column returns the position of the named column.
func (t *Table) Column(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return -1, &MissingColumnError{Column: name}
	}
	return i, nil
}

// Cell returns row[col], or "" when the row is shorter than col.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// withRows returns a Table sharing t's header and index.
func (t *Table) withRows(rows [][]string) *Table {
	return &Table{Header: t.Header, Rows: rows, index: t.index}
}
