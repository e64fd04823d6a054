package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/japaniel/lexique/pkg/db"
	"github.com/japaniel/lexique/pkg/lexique"
	"github.com/japaniel/lexique/pkg/logging"
)

// TotalSteps is the number of pipeline steps reported through OnProgress.
const TotalSteps = 5

// Ingester runs the read, filter, clean, reshape and insert steps against an
// already initialized store.
type Ingester struct {
	DB *sql.DB
	// Classes are the grammatical classes to keep.
	Classes []string
	// Sheet selects the worksheet; empty means the first one.
	Sheet string
	// Out receives the console progress lines. nil means no output.
	Out io.Writer
	// Logger is used for diagnostics. nil means no logging.
	Logger *slog.Logger
	// OnProgress is called after each completed step with the step number and TotalSteps.
	OnProgress func(step, total int)
}

// NewIngester creates a new Ingester keeping nouns and adjectives.
func NewIngester(conn *sql.DB) *Ingester {
	return &Ingester{
		DB:      conn,
		Classes: lexique.DefaultClasses,
	}
}

// Summary describes a completed run.
type Summary struct {
	Source   string
	Read     int
	Retained int
	Removed  int
	Inserted int
	ByClass  map[string]int
	Elapsed  time.Duration
}

// Ingest loads source into the words table. The whole insert is one
// transaction: on error nothing from this run is stored.
func (ig *Ingester) Ingest(ctx context.Context, source string) (*Summary, error) {
	start := time.Now()
	log := ig.Logger
	if log == nil {
		log = logging.Discard()
	}
	sum := &Summary{Source: source}

	ig.printf("Step 1/%d: reading workbook '%s'...\n", TotalSteps, source)
	tbl, err := lexique.LoadWorkbook(source, ig.Sheet)
	if err != nil {
		return nil, err
	}
	sum.Read = tbl.Len()
	log.Debug("workbook loaded", "path", source, "sheet", ig.Sheet, "columns", len(tbl.Header), "rows", tbl.Len())
	ig.printf("   - rows read: %s\n", humanize.Comma(int64(sum.Read)))
	ig.progress(1)

	ig.printf("Step 2/%d: keeping grammatical classes %s...\n", TotalSteps, strings.Join(ig.Classes, ", "))
	tbl, err = lexique.Filter(tbl, ig.Classes)
	if err != nil {
		return nil, err
	}
	sum.Retained = tbl.Len()
	ig.printf("   - rows retained: %s\n", humanize.Comma(int64(sum.Retained)))
	ig.progress(2)

	ig.printf("Step 3/%d: removing rows with empty word or lemma...\n", TotalSteps)
	tbl, sum.Removed, err = lexique.Clean(tbl)
	if err != nil {
		return nil, err
	}
	ig.printf("   - rows removed: %s\n", humanize.Comma(int64(sum.Removed)))
	ig.progress(3)

	ig.printf("Step 4/%d: preparing columns...\n", TotalSteps)
	words, err := lexique.Reshape(tbl)
	if err != nil {
		return nil, err
	}
	ig.printf("   - columns ready.\n")
	ig.progress(4)

	ig.printf("Step 5/%d: inserting %s records...\n", TotalSteps, humanize.Comma(int64(len(words))))
	log.Debug("insert tx begin", "rows", len(words))
	sum.Inserted, err = db.InsertWords(ctx, ig.DB, words)
	if err != nil {
		log.Debug("insert tx rolled back", "error", err)
		return nil, err
	}
	log.Debug("insert tx committed", "rows", sum.Inserted)
	ig.printf("   - insert complete.\n")
	ig.progress(5)

	// The rows are committed at this point; a failed breakdown only trims the summary.
	if byClass, err := db.CountByClass(ctx, ig.DB); err != nil {
		log.Warn("per-class summary unavailable", "error", err)
	} else {
		sum.ByClass = byClass
	}
	sum.Elapsed = time.Since(start)
	return sum, nil
}

func (ig *Ingester) printf(format string, args ...any) {
	if ig.Out == nil {
		return
	}
	fmt.Fprintf(ig.Out, format, args...)
}

func (ig *Ingester) progress(step int) {
	if ig.OnProgress != nil {
		ig.OnProgress(step, TotalSteps)
	}
}
