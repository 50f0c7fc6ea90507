package dijkstra_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

func TestReconstruct_MissingEnd(t *testing.T) {
	pred := map[grid.Coord]grid.Coord{at(0, 1): at(0, 0)}
	_, err := dijkstra.Reconstruct(pred, at(0, 0), at(2, 2))
	require.ErrorIs(t, err, dijkstra.ErrNoPathRecorded)
}

func TestReconstruct_StartIsEnd(t *testing.T) {
	seq, err := dijkstra.Reconstruct(nil, at(1, 1), at(1, 1))
	require.NoError(t, err)
	require.Equal(t, []grid.Coord{at(1, 1)}, slices.Collect(seq))
}

// TestReconstruct_Restartable: ranging twice yields the same sequence.
func TestReconstruct_Restartable(t *testing.T) {
	pred := map[grid.Coord]grid.Coord{
		at(0, 1): at(0, 0),
		at(0, 2): at(0, 1),
		at(1, 2): at(0, 2),
	}
	seq, err := dijkstra.Reconstruct(pred, at(0, 0), at(1, 2))
	require.NoError(t, err)

	want := []grid.Coord{at(1, 2), at(0, 2), at(0, 1), at(0, 0)}
	require.Equal(t, want, slices.Collect(seq))
	require.Equal(t, want, slices.Collect(seq))

	path, err := dijkstra.Collect(seq, at(0, 0))
	require.NoError(t, err)
	require.Equal(t, []grid.Coord{at(0, 0), at(0, 1), at(0, 2), at(1, 2)}, path)
}

// TestReconstruct_EarlyBreak: the consumer may stop ranging at any point.
func TestReconstruct_EarlyBreak(t *testing.T) {
	pred := map[grid.Coord]grid.Coord{at(0, 1): at(0, 0), at(0, 2): at(0, 1)}
	seq, err := dijkstra.Reconstruct(pred, at(0, 0), at(0, 2))
	require.NoError(t, err)

	var got []grid.Coord
	for c := range seq {
		got = append(got, c)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []grid.Coord{at(0, 2), at(0, 1)}, got)
}

// TestReconstruct_Cycle: a looping chain terminates and fails to collect.
func TestReconstruct_Cycle(t *testing.T) {
	pred := map[grid.Coord]grid.Coord{
		at(0, 1): at(0, 2),
		at(0, 2): at(0, 1),
	}
	seq, err := dijkstra.Reconstruct(pred, at(0, 0), at(0, 1))
	require.NoError(t, err)
	require.LessOrEqual(t, len(slices.Collect(seq)), len(pred)+1)

	_, err = dijkstra.Collect(seq, at(0, 0))
	require.ErrorIs(t, err, dijkstra.ErrNoPathRecorded)
}

// TestReconstruct_BrokenChain: a chain that stops short of start.
func TestReconstruct_BrokenChain(t *testing.T) {
	pred := map[grid.Coord]grid.Coord{at(2, 2): at(2, 1)}
	seq, err := dijkstra.Reconstruct(pred, at(0, 0), at(2, 2))
	require.NoError(t, err)
	require.Equal(t, []grid.Coord{at(2, 2), at(2, 1)}, slices.Collect(seq))

	_, err = dijkstra.Collect(seq, at(0, 0))
	require.ErrorIs(t, err, dijkstra.ErrNoPathRecorded)
}

func TestCollect_Empty(t *testing.T) {
	_, err := dijkstra.Collect(slices.Values([]grid.Coord(nil)), at(0, 0))
	require.ErrorIs(t, err, dijkstra.ErrNoPathRecorded)
}

func TestPathCost(t *testing.T) {
	g := mustParse(t, "S2", "8E")
	require.Equal(t, 3, dijkstra.PathCost(g, []grid.Coord{at(0, 0), at(0, 1), at(1, 1)}))
	require.Equal(t, 9, dijkstra.PathCost(g, []grid.Coord{at(0, 0), at(1, 0), at(1, 1)}))
	require.Zero(t, dijkstra.PathCost(g, []grid.Coord{at(0, 0)}))
	require.Zero(t, dijkstra.PathCost(g, nil))
}

func TestResultLen(t *testing.T) {
	require.Zero(t, dijkstra.Result{}.Len())
	require.Equal(t, 2, dijkstra.Result{Path: []grid.Coord{at(0, 0), at(0, 1), at(0, 2)}}.Len())
}
