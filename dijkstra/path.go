package dijkstra

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/gridpath/grid"
)

// Reconstruct walks the predecessor chain from end back to start.
//
// The returned sequence is lazy, finite and restartable: each range over
// it yields end, pred[end], ... up to and including start. The walk stops
// early if the chain breaks or loops, so it never runs longer than
// len(pred)+1 steps.
//
// Returns ErrNoPathRecorded if end has no predecessor and end != start.
func Reconstruct(pred map[grid.Coord]grid.Coord, start, end grid.Coord) (iter.Seq[grid.Coord], error) {
	if _, ok := pred[end]; !ok && end != start {
		return nil, fmt.Errorf("%w: %v", ErrNoPathRecorded, end)
	}

	return func(yield func(grid.Coord) bool) {
		cur := end
		for steps := 0; steps <= len(pred); steps++ {
			if !yield(cur) || cur == start {
				return
			}
			next, ok := pred[cur]
			if !ok {
				return
			}
			cur = next
		}
	}, nil
}

// Collect drains a reconstructed sequence into Start→End order. It returns
// ErrNoPathRecorded if the sequence does not finish at start.
func Collect(seq iter.Seq[grid.Coord], start grid.Coord) ([]grid.Coord, error) {
	path := slices.Collect(seq)
	if len(path) == 0 || path[len(path)-1] != start {
		return nil, fmt.Errorf("%w: chain does not reach %v", ErrNoPathRecorded, start)
	}
	slices.Reverse(path)

	return path, nil
}

// PathCost sums the entry costs of every cell on path after the first.
func PathCost(g *grid.Grid, path []grid.Coord) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += g.Cost(path[i])
	}

	return total
}
