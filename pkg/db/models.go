package db

import "database/sql"

// Word is one stored lexicon entry.
type Word struct {
	ID               int64
	Word             string
	GrammaticalClass string
	Gender           sql.NullString
	CountNumber      sql.NullString
	Lemma            string
}

// NullString maps an empty cell to SQL NULL.
func NullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
