package grid

import (
	"fmt"
	"iter"
	"slices"
)

// New constructs an Empty side×side grid with every cell at CostFree.
// Returns ErrEmptyGrid if side < 1 and ErrInvalidCost if opts.Costs is
// empty or holds a non-positive value.
// Complexity: O(side²) time and memory.
func New(side int, opts Options) (*Grid, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	g := &Grid{
		cellSize: opts.CellSize,
		costs:    slices.Clone(opts.Costs),
	}
	if err := g.Rebuild(side); err != nil {
		return nil, err
	}

	return g, nil
}

// Rebuild discards every cell and reconstructs a fresh Empty grid of the
// given side length. Start and End become unset. On error the grid is
// left untouched.
func (g *Grid) Rebuild(side int) error {
	if side < 1 {
		return fmt.Errorf("%w: %d", ErrEmptyGrid, side)
	}
	cells := make([]Cell, side*side)
	for i := range cells {
		cells[i] = Cell{
			Coord: Coord{Row: i / side, Col: i % side},
			Cost:  CostFree,
			State: Empty,
		}
	}
	g.side = side
	g.cells = cells
	g.start, g.end = nil, nil

	return nil
}

// Side returns the number of cells per edge.
func (g *Grid) Side() int { return g.side }

// CellSize returns the rendered cell size. The search never reads it.
func (g *Grid) CellSize() int { return g.cellSize }

// Costs returns a copy of the accepted cost set.
func (g *Grid) Costs() []int { return slices.Clone(g.costs) }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.side && c.Col >= 0 && c.Col < g.side
}

// index maps c to its row-major slot.
func (g *Grid) index(c Coord) int {
	return c.Row*g.side + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.side, Col: idx % g.side}
}

// check returns ErrOutOfBounds wrapped with c when c is outside the grid.
func (g *Grid) check(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, g.side, g.side)
	}

	return nil
}

// Cell returns a copy of the cell at c.
func (g *Grid) Cell(c Coord) (Cell, error) {
	if err := g.check(c); err != nil {
		return Cell{}, err
	}

	return g.cells[g.index(c)], nil
}

// State returns the state at c, or Barrier when c is outside the grid.
func (g *Grid) State(c Coord) State {
	if !g.InBounds(c) {
		return Barrier
	}

	return g.cells[g.index(c)].State
}

// Cost returns the entry cost at c, or 0 when c is outside the grid.
func (g *Grid) Cost(c Coord) int {
	if !g.InBounds(c) {
		return 0
	}

	return g.cells[g.index(c)].Cost
}

// Start returns the start cell, if one is set.
func (g *Grid) Start() (Coord, bool) {
	if g.start == nil {
		return Coord{}, false
	}

	return *g.start, true
}

// End returns the end cell, if one is set.
func (g *Grid) End() (Coord, bool) {
	if g.end == nil {
		return Coord{}, false
	}

	return *g.end, true
}

// Cells iterates over every cell in row-major order.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range g.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Neighbors returns the passable 4-connected neighbours of c in the fixed
// order up, down, left, right. A barrier cell, or a cell outside the grid,
// has no neighbours. Calling it twice without an intervening edit returns
// identical slices.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	if g.State(c) == Barrier {
		return nil
	}
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !g.InBounds(n) || g.cells[g.index(n)].State == Barrier {
			continue
		}
		out = append(out, n)
	}

	return out
}

// ResetSearch returns every Open, Closed and Path cell to Empty, keeping
// costs, barriers and endpoints. It reports the cells it changed in
// row-major order.
func (g *Grid) ResetSearch() []Coord {
	var changed []Coord
	for i := range g.cells {
		if g.cells[i].State.IsSearch() {
			g.cells[i].State = Empty
			changed = append(changed, g.cells[i].Coord)
		}
	}

	return changed
}

// Mark applies a search-internal state to c. Only Open, Closed and Path
// are accepted. Endpoints and barriers keep their state; Mark then
// reports false. It also reports false when c already holds s, so callers
// can emit exactly one notification per visible change.
func (g *Grid) Mark(c Coord, s State) (bool, error) {
	if !s.IsSearch() {
		return false, fmt.Errorf("%w: %s is not a search state", ErrInvalidAssignment, s)
	}
	if err := g.check(c); err != nil {
		return false, err
	}
	cell := &g.cells[g.index(c)]
	switch cell.State {
	case Start, End, Barrier, s:
		return false, nil
	}
	cell.State = s

	return true, nil
}

// Clone returns a deep copy of g. A search worker owns its clone
// exclusively for the duration of a run.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		side:     g.side,
		cellSize: g.cellSize,
		costs:    slices.Clone(g.costs),
		cells:    slices.Clone(g.cells),
	}
	if g.start != nil {
		s := *g.start
		out.start = &s
	}
	if g.end != nil {
		e := *g.end
		out.end = &e
	}

	return out
}
