package lexique

import (
	"strings"

	"github.com/japaniel/lexique/pkg/db"
	"github.com/pkg/errors"
)

// Filter keeps the rows whose grammatical class is one of classes.
func Filter(t *Table, classes []string) (*Table, error) {
	col, err := t.Column(ColClass)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	accept := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		accept[c] = struct{}{}
	}

	kept := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if _, ok := accept[Cell(row, col)]; ok {
			kept = append(kept, row)
		}
	}
	return t.withRows(kept), nil
}

// Clean drops rows whose word form or lemma is empty and returns how many
// rows were removed.
func Clean(t *Table) (*Table, int, error) {
	wordCol, err := t.Column(ColWord)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	lemmaCol, err := t.Column(ColLemma)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	kept := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if isBlank(Cell(row, wordCol)) || isBlank(Cell(row, lemmaCol)) {
			continue
		}
		kept = append(kept, row)
	}
	return t.withRows(kept), len(t.Rows) - len(kept), nil
}

// Reshape selects the five Lexique columns and maps them onto word records:
// ortho→word, cgram→grammatical_class, genre→gender, nombre→count_number,
// lemme→lemma. Values are copied as-is; empty gender or number become NULL.
func Reshape(t *Table) ([]db.Word, error) {
	var cols [5]int
	for i, name := range []string{ColWord, ColClass, ColGender, ColNumber, ColLemma} {
		c, err := t.Column(name)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		cols[i] = c
	}

	words := make([]db.Word, 0, len(t.Rows))
	for _, row := range t.Rows {
		words = append(words, db.Word{
			Word:             Cell(row, cols[0]),
			GrammaticalClass: Cell(row, cols[1]),
			Gender:           db.NullString(Cell(row, cols[2])),
			CountNumber:      db.NullString(Cell(row, cols[3])),
			Lemma:            Cell(row, cols[4]),
		})
	}
	return words, nil
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
