// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// LexiqueHeader is the header row of a minimal Lexique export, with an extra
// frequency column the loader must ignore.
var LexiqueHeader = []string{"ortho", "phon", "lemme", "cgram", "genre", "nombre", "freqlemfilms2"}

// WriteWorkbook writes header and rows to a new single-sheet workbook in a
// temp directory and returns its path.
func WriteWorkbook(t testing.TB, header []string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexique.xlsx")
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	write := func(line int, values []string) {
		cell, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		row := make([]interface{}, len(values))
		for i, v := range values {
			row[i] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row %d: %v", line, err)
		}
	}
	write(1, header)
	for i, r := range rows {
		write(i+2, r)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

// Row builds a data row in LexiqueHeader order.
func Row(ortho, lemme, cgram, genre, nombre string) []string {
	return []string{ortho, "", lemme, cgram, genre, nombre, "1.5"}
}

// ScenarioRows is a ten-row source: six NOM, two ADJ and two VER rows, one
// accepted row lacking its lemma. Loading it keeps seven records.
func ScenarioRows() [][]string {
	return [][]string{
		Row("maison", "maison", "NOM", "f", "s"),
		Row("maisons", "maison", "NOM", "f", "p"),
		Row("chat", "chat", "NOM", "m", "s"),
		Row("chats", "chat", "NOM", "m", "p"),
		Row("aise", "aise", "NOM", "", ""),
		Row("arbre", "", "NOM", "m", "s"),
		Row("grand", "grand", "ADJ", "m", "s"),
		Row("grande", "grand", "ADJ", "f", "s"),
		Row("manger", "manger", "VER", "", ""),
		Row("mange", "manger", "VER", "", "s"),
	}
}
