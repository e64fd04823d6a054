package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ConstraintError is returned when an insert collides with the unique entry key.
// Row is the zero-based position of the offending record in the batch.
type ConstraintError struct {
	Row  int
	Word Word
	Err  error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("duplicate entry at row %d (word=%q lemma=%q class=%q): %v",
		e.Row, e.Word.Word, e.Word.Lemma, e.Word.GrammaticalClass, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// isUniqueConstraintErr returns true when the error indicates a unique/constraint violation
func isUniqueConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
			se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unique") || strings.Contains(s, "constraint failed")
}

const insertWordSQL = `INSERT INTO words (word, grammatical_class, gender, count_number, lemma) VALUES (?, ?, ?, ?, ?)`

// InsertWords appends all words in a single transaction. The batch is
// all-or-nothing: if any row fails, including on a duplicate entry key, the
// transaction is rolled back and no row of the batch is kept.
func InsertWords(ctx context.Context, conn *sql.DB, words []Word) (int, error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "begin insert tx")
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	stmt, err := tx.PrepareContext(ctx, insertWordSQL)
	if err != nil {
		return 0, errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	for i, w := range words {
		if _, err := stmt.ExecContext(ctx, w.Word, w.GrammaticalClass, w.Gender, w.CountNumber, w.Lemma); err != nil {
			if isUniqueConstraintErr(err) {
				return 0, errors.WithStack(&ConstraintError{Row: i, Word: w, Err: err})
			}
			return 0, errors.Wrapf(err, "insert word %q (row %d)", w.Word, i)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrapf(err, "commit insert (%d rows)", len(words))
	}
	return len(words), nil
}

// CountWords returns the number of stored words.
func CountWords(ctx context.Context, db DBExecutor) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "count words")
	}
	return n, nil
}

// CountByClass returns the number of stored words per grammatical class.
func CountByClass(ctx context.Context, db DBExecutor) (map[string]int, error) {
	rows, err := db.QueryContext(ctx, `SELECT grammatical_class, COUNT(*) FROM words GROUP BY grammatical_class`)
	if err != nil {
		return nil, errors.Wrap(err, "count by class")
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var class string
		var n int
		if err := rows.Scan(&class, &n); err != nil {
			return nil, err
		}
		out[class] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListWords returns every stored word ordered by id.
func ListWords(ctx context.Context, db DBExecutor) ([]Word, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, word, grammatical_class, gender, count_number, lemma FROM words ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list words")
	}
	defer rows.Close()
	var out []Word
	for rows.Next() {
		var w Word
		if err := rows.Scan(&w.ID, &w.Word, &w.GrammaticalClass, &w.Gender, &w.CountNumber, &w.Lemma); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// TableExists reports whether the words table is present.
func TableExists(ctx context.Context, db DBExecutor) (bool, error) {
	var name string
	err := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name=?`, TableName).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
