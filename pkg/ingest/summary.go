package ingest

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Render writes the run summary as a table followed by the totals line.
func (s *Summary) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Stage", "Rows"})
	t.AppendRow(table.Row{"read", humanize.Comma(int64(s.Read))})
	t.AppendRow(table.Row{"retained", humanize.Comma(int64(s.Retained))})
	t.AppendRow(table.Row{"removed (empty word/lemma)", humanize.Comma(int64(s.Removed))})
	t.AppendSeparator()

	classes := make([]string, 0, len(s.ByClass))
	for c := range s.ByClass {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	for _, c := range classes {
		t.AppendRow(table.Row{"stored " + c, humanize.Comma(int64(s.ByClass[c]))})
	}
	t.AppendFooter(table.Row{"inserted", humanize.Comma(int64(s.Inserted))})
	t.Render()

	fmt.Fprintf(w, "%s records added to the database.\n", humanize.Comma(int64(s.Inserted)))
	fmt.Fprintf(w, "Total execution time: %.2f seconds.\n", s.Elapsed.Round(time.Millisecond).Seconds())
}
