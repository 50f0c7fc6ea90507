package dijkstra_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleRun finds the cheap way around a heavy cell.
func ExampleRun() {
	g, err := grid.ParseString(`
		S8E
		.#.
		...`, grid.DefaultOptions())
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	res, err := dijkstra.Run(context.Background(), g, nil)
	if err != nil {
		fmt.Println("run:", err)
		return
	}
	fmt.Println(res.Outcome, res.Cost, res.Path)
	// Output:
	// found 6 [(0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2)]
}

// ExampleRecorder shows the frames of a two-by-two search.
func ExampleRecorder() {
	g, _ := grid.ParseString("S.\n.E", grid.DefaultOptions())
	rec := dijkstra.NewRecorder()
	if _, err := dijkstra.Run(context.Background(), g, rec); err != nil {
		fmt.Println("run:", err)
		return
	}
	for _, f := range rec.Frames() {
		fmt.Println(f.Index, f.Changes)
	}
	fmt.Println(g)
	// Output:
	// 0 [{(1,0) open} {(0,1) open}]
	// 1 []
	// 2 [{(1,0) closed}]
	// 3 [{(0,1) closed} {(1,0) path}]
	// Sx
	// *E
}
