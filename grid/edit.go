package grid

import (
	"fmt"
	"slices"
)

// SetCost sets the entry cost of c. It returns ErrInvalidCost, leaving
// the prior cost in place, unless cost is positive and in the grid's
// accepted set.
func (g *Grid) SetCost(c Coord, cost int) error {
	if err := g.check(c); err != nil {
		return err
	}
	if cost <= 0 || !slices.Contains(g.costs, cost) {
		return fmt.Errorf("%w: %d not in %v", ErrInvalidCost, cost, g.costs)
	}
	g.cells[g.index(c)].Cost = cost

	return nil
}

// SetBarrier makes c impassable. Endpoints cannot become barriers.
func (g *Grid) SetBarrier(c Coord) error {
	if err := g.check(c); err != nil {
		return err
	}
	cell := &g.cells[g.index(c)]
	if cell.State == Start || cell.State == End {
		return fmt.Errorf("%w: %v holds %s", ErrInvalidAssignment, c, cell.State)
	}
	cell.State = Barrier

	return nil
}

// Clear resets c to an Empty cell at CostFree. Clearing an endpoint unsets it.
func (g *Grid) Clear(c Coord) error {
	if err := g.check(c); err != nil {
		return err
	}
	cell := &g.cells[g.index(c)]
	switch cell.State {
	case Start:
		g.start = nil
	case End:
		g.end = nil
	}
	cell.State = Empty
	cell.Cost = CostFree

	return nil
}

// SetStart moves the start marker to c. The previous start, if any,
// returns to Empty. Fails with ErrInvalidAssignment if c holds End.
func (g *Grid) SetStart(c Coord) error {
	return g.setEndpoint(c, Start, &g.start, End)
}

// SetEnd moves the end marker to c. The previous end, if any, returns to
// Empty. Fails with ErrInvalidAssignment if c holds Start.
func (g *Grid) SetEnd(c Coord) error {
	return g.setEndpoint(c, End, &g.end, Start)
}

func (g *Grid) setEndpoint(c Coord, s State, slot **Coord, other State) error {
	if err := g.check(c); err != nil {
		return err
	}
	cell := &g.cells[g.index(c)]
	if cell.State == other {
		return fmt.Errorf("%w: %v already holds %s", ErrInvalidAssignment, c, other)
	}
	if prev := *slot; prev != nil {
		g.cells[g.index(*prev)].State = Empty
	}
	cell.State = s
	*slot = &c

	return nil
}

// PlaceStart is SetStart addressed by row and column.
func (g *Grid) PlaceStart(row, col int) error {
	return g.SetStart(Coord{Row: row, Col: col})
}

// PlaceEnd is SetEnd addressed by row and column.
func (g *Grid) PlaceEnd(row, col int) error {
	return g.SetEnd(Coord{Row: row, Col: col})
}

// PlaceBarrier is SetBarrier addressed by row and column.
func (g *Grid) PlaceBarrier(row, col int) error {
	return g.SetBarrier(Coord{Row: row, Col: col})
}

// SetCellCost is SetCost addressed by row and column.
func (g *Grid) SetCellCost(row, col, cost int) error {
	return g.SetCost(Coord{Row: row, Col: col}, cost)
}

// ClearCell is Clear addressed by row and column.
func (g *Grid) ClearCell(row, col int) error {
	return g.Clear(Coord{Row: row, Col: col})
}

// Reset rebuilds the grid with a new side length.
func (g *Grid) Reset(side int) error {
	return g.Rebuild(side)
}
