package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/japaniel/lexique/pkg/config"
	"github.com/japaniel/lexique/pkg/db"
	"github.com/japaniel/lexique/pkg/lexique"
)

// Process exit codes.
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1 // unexpected failure, including constraint violations
	ExitUsageError     = 2 // invalid arguments, flags or configuration
	ExitPanic          = 3
	ExitStoreInit      = 10
	ExitSourceNotFound = 11
	ExitMissingColumn  = 12
)

// usageError marks a problem with the command line itself: bad arguments or
// flags. It is raised by the cobra hooks in root.go, never by the loader.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func newUsageError(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

// usageArgs wraps an argument validator so its failures are usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return newUsageError(validate(cmd, args))
	}
}

func flagUsageError(_ *cobra.Command, err error) error {
	return newUsageError(err)
}

// ExitCodeForError maps err to an exit code. nil maps to ExitSuccess and
// unclassified errors to ExitGeneralError.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var storeErr *db.StoreError
	var notFound *lexique.SourceNotFoundError
	var missing *lexique.MissingColumnError
	switch {
	case errors.As(err, &storeErr):
		return ExitStoreInit
	case errors.As(err, &notFound):
		return ExitSourceNotFound
	case errors.As(err, &missing):
		return ExitMissingColumn
	case isUsageError(err):
		return ExitUsageError
	}
	return ExitGeneralError
}

func isUsageError(err error) bool {
	var ue *usageError
	return errors.As(err, &ue) || errors.Is(err, config.ErrInvalid)
}

// reportError prints the message matching the error kind to w.
func reportError(w io.Writer, err error) {
	var storeErr *db.StoreError
	var notFound *lexique.SourceNotFoundError
	var missing *lexique.MissingColumnError
	switch {
	case errors.As(err, &storeErr):
		fmt.Fprintf(w, "FATAL: could not create database: %v\n", storeErr.Err)
	case errors.As(err, &notFound):
		fmt.Fprintf(w, "FATAL: file '%s' not found.\n", notFound.Path)
	case errors.As(err, &missing):
		fmt.Fprintf(w, "FATAL: column '%s' not found in the spreadsheet. Check the file.\n", missing.Column)
	case isUsageError(err):
		fmt.Fprintf(w, "Error: %v\n", err)
		fmt.Fprintln(w, "Run 'lexique --help' for usage.")
	default:
		fmt.Fprintf(w, "unexpected error: %v\n", err)
		fmt.Fprintf(w, "%+v\n", err)
	}
}
