package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/grid"
)

// EditSuite exercises the edit entry points and their invariants.
type EditSuite struct {
	suite.Suite
	g *grid.Grid
}

func (s *EditSuite) SetupTest() {
	g, err := grid.New(4, grid.DefaultOptions())
	require.NoError(s.T(), err)
	s.g = g
}

// TestOutOfBounds verifies every entry point validates coordinates.
func (s *EditSuite) TestOutOfBounds() {
	before := s.g.String()
	ops := map[string]func() error{
		"PlaceStart":   func() error { return s.g.PlaceStart(4, 0) },
		"PlaceEnd":     func() error { return s.g.PlaceEnd(0, -1) },
		"PlaceBarrier": func() error { return s.g.PlaceBarrier(-1, -1) },
		"SetCellCost":  func() error { return s.g.SetCellCost(0, 4, grid.CostLight) },
		"ClearCell":    func() error { return s.g.ClearCell(10, 10) },
	}
	for name, op := range ops {
		require.ErrorIs(s.T(), op(), grid.ErrOutOfBounds, name)
	}
	_, err := s.g.Cell(grid.Coord{Row: 4})
	require.ErrorIs(s.T(), err, grid.ErrOutOfBounds)
	require.Equal(s.T(), before, s.g.String(), "grid must be unchanged")
}

// TestSetCost accepts the traffic levels and rejects everything else,
// keeping the prior cost on failure.
func (s *EditSuite) TestSetCost() {
	c := grid.Coord{Row: 1, Col: 1}
	for _, cost := range grid.DefaultCosts {
		require.NoError(s.T(), s.g.SetCost(c, cost))
		require.Equal(s.T(), cost, s.g.Cost(c))
	}
	require.NoError(s.T(), s.g.SetCost(c, grid.CostModerate))
	for _, bad := range []int{0, -1, 3, 5, 16} {
		require.ErrorIs(s.T(), s.g.SetCost(c, bad), grid.ErrInvalidCost, "cost %d", bad)
		require.Equal(s.T(), grid.CostModerate, s.g.Cost(c))
	}
}

// TestSetCost_Widened checks a custom cost set is honoured but still
// rejects non-positive values.
func (s *EditSuite) TestSetCost_Widened() {
	g, err := grid.New(2, grid.DefaultOptions().WithCosts(1, 3, 5))
	require.NoError(s.T(), err)
	require.NoError(s.T(), g.SetCellCost(0, 0, 3))
	require.ErrorIs(s.T(), g.SetCellCost(0, 0, 8), grid.ErrInvalidCost)
	require.ErrorIs(s.T(), g.SetCellCost(0, 0, -5), grid.ErrInvalidCost)
	require.Equal(s.T(), 3, g.Cost(grid.Coord{}))
}

// TestEndpointsMove checks a second placement clears the first.
func (s *EditSuite) TestEndpointsMove() {
	require.NoError(s.T(), s.g.PlaceStart(0, 0))
	require.NoError(s.T(), s.g.PlaceStart(1, 2))
	require.Equal(s.T(), grid.Empty, s.g.State(grid.Coord{}))
	start, ok := s.g.Start()
	require.True(s.T(), ok)
	require.Equal(s.T(), grid.Coord{Row: 1, Col: 2}, start)

	require.NoError(s.T(), s.g.PlaceEnd(3, 3))
	require.NoError(s.T(), s.g.PlaceEnd(2, 0))
	require.Equal(s.T(), grid.Empty, s.g.State(grid.Coord{Row: 3, Col: 3}))
	end, ok := s.g.End()
	require.True(s.T(), ok)
	require.Equal(s.T(), grid.Coord{Row: 2, Col: 0}, end)

	starts, ends := 0, 0
	for cell := range s.g.Cells() {
		switch cell.State {
		case grid.Start:
			starts++
		case grid.End:
			ends++
		}
	}
	require.Equal(s.T(), 1, starts)
	require.Equal(s.T(), 1, ends)
}

// TestEndpointConflict rejects Start on End and vice versa.
func (s *EditSuite) TestEndpointConflict() {
	require.NoError(s.T(), s.g.PlaceStart(0, 0))
	require.NoError(s.T(), s.g.PlaceEnd(1, 1))

	require.ErrorIs(s.T(), s.g.PlaceStart(1, 1), grid.ErrInvalidAssignment)
	require.ErrorIs(s.T(), s.g.PlaceEnd(0, 0), grid.ErrInvalidAssignment)

	start, _ := s.g.Start()
	end, _ := s.g.End()
	require.Equal(s.T(), grid.Coord{}, start)
	require.Equal(s.T(), grid.Coord{Row: 1, Col: 1}, end)
	require.Equal(s.T(), grid.Start, s.g.State(start))
	require.Equal(s.T(), grid.End, s.g.State(end))
}

// TestBarrierOnEndpoint rejects turning an endpoint into a barrier.
func (s *EditSuite) TestBarrierOnEndpoint() {
	require.NoError(s.T(), s.g.PlaceStart(0, 0))
	require.NoError(s.T(), s.g.PlaceEnd(3, 3))
	require.ErrorIs(s.T(), s.g.PlaceBarrier(0, 0), grid.ErrInvalidAssignment)
	require.ErrorIs(s.T(), s.g.PlaceBarrier(3, 3), grid.ErrInvalidAssignment)

	require.NoError(s.T(), s.g.PlaceBarrier(2, 2))
	require.Equal(s.T(), grid.Barrier, s.g.State(grid.Coord{Row: 2, Col: 2}))
}

// TestStartOverBarrier replaces a barrier with the start marker.
func (s *EditSuite) TestStartOverBarrier() {
	require.NoError(s.T(), s.g.PlaceBarrier(1, 0))
	require.NoError(s.T(), s.g.PlaceStart(1, 0))
	require.Equal(s.T(), grid.Start, s.g.State(grid.Coord{Row: 1}))
	require.Contains(s.T(), s.g.Neighbors(grid.Coord{}), grid.Coord{Row: 1})
}

// TestClear resets state and cost and unsets endpoints.
func (s *EditSuite) TestClear() {
	require.NoError(s.T(), s.g.PlaceStart(0, 0))
	require.NoError(s.T(), s.g.PlaceEnd(3, 3))
	require.NoError(s.T(), s.g.PlaceBarrier(1, 1))
	require.NoError(s.T(), s.g.SetCellCost(2, 2, grid.CostHeavy))

	require.NoError(s.T(), s.g.ClearCell(0, 0))
	require.NoError(s.T(), s.g.ClearCell(3, 3))
	require.NoError(s.T(), s.g.ClearCell(1, 1))
	require.NoError(s.T(), s.g.ClearCell(2, 2))

	_, ok := s.g.Start()
	require.False(s.T(), ok)
	_, ok = s.g.End()
	require.False(s.T(), ok)
	for cell := range s.g.Cells() {
		require.Equal(s.T(), grid.Empty, cell.State)
		require.Equal(s.T(), grid.CostFree, cell.Cost)
	}
}

func TestEditSuite(t *testing.T) {
	suite.Run(t, new(EditSuite))
}
