package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitDBCreatesSchema verifies InitDB creates the words table with the
// expected columns and the entry-key index.
func TestInitDBCreatesSchema(t *testing.T) {
	ctx := context.Background()
	conn := setupTestDB(t)

	rows, err := conn.QueryContext(ctx, "PRAGMA table_info(words)")
	require.NoError(t, err)
	defer rows.Close()
	cols := map[string]bool{}
	for rows.Next() {
		var cid int
		var colName, ctype string
		var notnull, pk int
		var dfltVal interface{}
		require.NoError(t, rows.Scan(&cid, &colName, &ctype, &notnull, &dfltVal, &pk))
		cols[colName] = true
	}
	require.NoError(t, rows.Err())
	for _, c := range []string{"id", "word", "grammatical_class", "gender", "count_number", "lemma"} {
		assert.True(t, cols[c], "missing column %s in %v", c, cols)
	}

	var idx string
	err = conn.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='index' AND name='words_entry_key'").Scan(&idx)
	require.NoError(t, err)
}

func TestInitDBDropsExistingRows(t *testing.T) {
	ctx := context.Background()
	conn := setupTestDB(t)

	_, err := InsertWords(ctx, conn, []Word{{Word: "chat", GrammaticalClass: "NOM", Lemma: "chat"}})
	require.NoError(t, err)

	require.NoError(t, InitDB(ctx, conn))

	n, err := CountWords(ctx, conn)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// AUTOINCREMENT state goes with the dropped table.
	_, err = InsertWords(ctx, conn, []Word{{Word: "chien", GrammaticalClass: "NOM", Lemma: "chien"}})
	require.NoError(t, err)
	words, err := ListWords(ctx, conn)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, int64(1), words[0].ID)
}

func TestOpenCreatesFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.sqlite")

	conn, err := Open(ctx, path)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, InitDB(ctx, conn))

	ok, err := TableExists(ctx, conn)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOpenFailsOnUnreachablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "out.sqlite")

	_, err := Open(context.Background(), path)
	require.Error(t, err)
	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, path, se.Path)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	var se *StoreError
	require.ErrorAs(t, err, &se)
}
