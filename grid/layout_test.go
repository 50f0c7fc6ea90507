package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestParse_Errors verifies that Parse rejects empty, ragged or malformed layouts.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"Empty", nil, grid.ErrEmptyGrid},
		{"NonSquare", []string{"...", "..."}, grid.ErrNonSquare},
		{"Ragged", []string{"..", "."}, grid.ErrNonSquare},
		{"UnknownSymbol", []string{"..", ".?"}, grid.ErrBadLayout},
		{"TwoStarts", []string{"S.", ".S"}, grid.ErrBadLayout},
		{"TwoEnds", []string{"E.", "E."}, grid.ErrBadLayout},
		{"BadCost", []string{"3.", ".."}, grid.ErrInvalidCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.rows, grid.DefaultOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestParse_Cells checks every symbol lands on the right cell.
func TestParse_Cells(t *testing.T) {
	g, err := grid.ParseString(`
		S.2
		#4.
		.8E
	`, grid.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, g.Side())

	start, ok := g.Start()
	require.True(t, ok)
	require.Equal(t, grid.Coord{}, start)
	end, ok := g.End()
	require.True(t, ok)
	require.Equal(t, grid.Coord{Row: 2, Col: 2}, end)

	require.Equal(t, grid.Barrier, g.State(grid.Coord{Row: 1, Col: 0}))
	require.Equal(t, grid.CostLight, g.Cost(grid.Coord{Row: 0, Col: 2}))
	require.Equal(t, grid.CostModerate, g.Cost(grid.Coord{Row: 1, Col: 1}))
	require.Equal(t, grid.CostHeavy, g.Cost(grid.Coord{Row: 2, Col: 1}))
	require.Equal(t, grid.CostFree, g.Cost(grid.Coord{Row: 0, Col: 1}))
}

// TestString_RoundTrip checks String renders a layout Parse reads back.
func TestString_RoundTrip(t *testing.T) {
	layout := []string{
		"S.#.",
		".8#.",
		"..2.",
		"#..E",
	}
	g, err := grid.Parse(layout, grid.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, "S.#.\n.8#.\n..2.\n#..E", g.String())

	_, err = g.Mark(grid.Coord{Row: 0, Col: 1}, grid.Closed)
	require.NoError(t, err)
	_, err = g.Mark(grid.Coord{Row: 1, Col: 0}, grid.Open)
	require.NoError(t, err)
	_, err = g.Mark(grid.Coord{Row: 2, Col: 1}, grid.Path)
	require.NoError(t, err)
	require.Equal(t, "Sx#.\no8#.\n.*2.\n#..E", g.String())

	again, err := grid.ParseString(g.String(), grid.DefaultOptions())
	require.NoError(t, err)
	again.ResetSearch()
	g.ResetSearch()
	require.Equal(t, g.String(), again.String())
}
