package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

//go:embed schema.sql
var schemaSQL string

// TableName is the table every run refreshes.
const TableName = "words"

// StoreError reports that the destination store could not be opened or its
// schema could not be (re)created.
type StoreError struct {
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("store: %v", e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Open opens or creates the SQLite database at path and verifies the connection.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.WithStack(&StoreError{Err: errors.New("database path must be non-empty")})
	}
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.WithStack(&StoreError{Path: path, Err: err})
	}
	// One writer, one connection; keeps :memory: databases coherent too.
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, errors.WithStack(&StoreError{Path: path, Err: err})
	}
	return conn, nil
}

// InitDB drops any existing words table and recreates it from the embedded
// schema. Each statement is committed as soon as it runs.
func InitDB(ctx context.Context, conn *sql.DB) error {
	stmts := strings.Split(schemaSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := conn.ExecContext(ctx, s); err != nil {
			return errors.WithStack(&StoreError{Err: errors.Wrapf(err, "exec %q", firstLine(s))})
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
