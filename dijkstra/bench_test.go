package dijkstra_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// benchGrid builds an n×n grid with ~20% barriers, random costs, and the
// endpoints in opposite corners.
func benchGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	g, err := grid.New(n, grid.DefaultOptions())
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Intn(5) == 0 {
				_ = g.PlaceBarrier(r, c)
				continue
			}
			_ = g.SetCellCost(r, c, grid.DefaultCosts[rng.Intn(len(grid.DefaultCosts))])
		}
	}
	_ = g.ClearCell(0, 0)
	_ = g.ClearCell(n-1, n-1)
	if err = g.PlaceStart(0, 0); err != nil {
		b.Fatalf("setup PlaceStart failed: %v", err)
	}
	if err = g.PlaceEnd(n-1, n-1); err != nil {
		b.Fatalf("setup PlaceEnd failed: %v", err)
	}

	return g
}

// BenchmarkRun_40 measures a search on the default 40×40 board.
func BenchmarkRun_40(b *testing.B) {
	g := benchGrid(b, 40)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Run(ctx, g, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_256 measures a search on the largest accepted board.
// Complexity: O(V log V), V = 65536
func BenchmarkRun_256(b *testing.B) {
	g := benchGrid(b, 256)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Run(ctx, g, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_Recorder adds the cost of recording every notification.
func BenchmarkRun_Recorder(b *testing.B) {
	g := benchGrid(b, 40)
	ctx := context.Background()
	rec := dijkstra.NewRecorder()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec.Reset()
		if _, err := dijkstra.Run(ctx, g, rec); err != nil {
			b.Fatal(err)
		}
	}
}
