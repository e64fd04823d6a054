package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/japaniel/lexique/internal/testutil"
	"github.com/japaniel/lexique/pkg/db"
)

func generateBenchmarkRows(n int) [][]string {
	classes := []string{"NOM", "ADJ", "VER", "ADV"}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		word := fmt.Sprintf("mot%d", i)
		rows = append(rows, testutil.Row(word, word, classes[i%len(classes)], "m", "s"))
	}
	return rows
}

func BenchmarkIngest(b *testing.B) {
	// 5000 rows, half of them kept
	src := testutil.WriteWorkbook(b, testutil.LexiqueHeader, generateBenchmarkRows(5000))
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		conn, err := db.Open(ctx, filepath.Join(b.TempDir(), fmt.Sprintf("bench_%d.sqlite", i)))
		if err != nil {
			b.Fatalf("open db: %v", err)
		}
		if err := db.InitDB(ctx, conn); err != nil {
			b.Fatalf("init db: %v", err)
		}
		ig := NewIngester(conn)
		b.StartTimer()

		sum, err := ig.Ingest(ctx, src)
		if err != nil {
			b.Fatalf("ingest: %v", err)
		}
		if sum.Inserted != 2500 {
			b.Fatalf("expected 2500 inserted, got %d", sum.Inserted)
		}

		b.StopTimer()
		conn.Close()
		b.StartTimer()
	}
}
