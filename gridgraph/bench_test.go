package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// openMaze returns an n×n maze with no inner walls, start top-left and goal
// bottom-right.
func openMaze(n int) []string {
	rows := make([]string, n)
	for y := range rows {
		row := []byte(strings.Repeat(" ", n))
		switch y {
		case 0:
			row[0] = 's'
		case n - 1:
			row[n-1] = 'e'
		}
		rows[y] = string(row)
	}
	return rows
}

// BenchmarkParse measures index construction on a 500×500 maze.
// Complexity: O(W×H).
func BenchmarkParse(b *testing.B) {
	rows := openMaze(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.Parse(rows); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConnectedComponents measures flood fill on a 500×500 open maze.
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.Parse(openMaze(500))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}
