// Package grid defines core types, options, and sentinel errors
// for the grid package of github.com/katalvlaran/gridpath.
package grid

import (
	"fmt"
	"slices"
)

// State is the search-relevant role of a cell. Exactly one State holds
// for a cell at any time.
type State uint8

const (
	// Empty is a plain traversable cell.
	Empty State = iota
	// Start is the search origin. At most one cell holds it.
	Start
	// End is the search target. At most one cell holds it.
	End
	// Barrier is impassable and contributes no edges.
	Barrier
	// Open marks a cell discovered by the search but not yet finalised.
	Open
	// Closed marks a cell whose shortest distance is final.
	Closed
	// Path marks an intermediate cell of the reconstructed shortest path.
	Path
)

var stateNames = [...]string{"empty", "start", "end", "barrier", "open", "closed", "path"}

// String returns the lower-case name of s.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return fmt.Sprintf("state(%d)", uint8(s))
}

// IsSearch reports whether s is one of the search-internal states
// (Open, Closed, Path) reset before every run.
func (s State) IsSearch() bool {
	return s == Open || s == Closed || s == Path
}

// MarshalText encodes s by name so JSON payloads stay readable.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name produced by MarshalText.
func (s *State) UnmarshalText(b []byte) error {
	for i, name := range stateNames {
		if name == string(b) {
			*s = State(i)
			return nil
		}
	}

	return fmt.Errorf("grid: unknown state %q", b)
}

// Traffic levels recognised by default. A cost is the price of entering a cell.
const (
	CostFree     = 1 // no traffic
	CostLight    = 2
	CostModerate = 4
	CostHeavy    = 8
)

// DefaultCosts is the default set of accepted cell costs.
var DefaultCosts = []int{CostFree, CostLight, CostModerate, CostHeavy}

// Coord identifies a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the 4-connected step distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Cell is a single grid position together with its cost and state.
// Cost is ignored while State == Barrier.
type Cell struct {
	Coord
	Cost  int   `json:"cost"`
	State State `json:"state"`
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// CellSize is the rendered edge length of a cell. The search ignores it.
	CellSize int
	// Costs lists the accepted cell costs. Every entry must be positive.
	Costs []int
}

// DefaultOptions returns Options with CellSize=20 and Costs={1,2,4,8}.
func DefaultOptions() Options {
	return Options{
		CellSize: 20,
		Costs:    slices.Clone(DefaultCosts),
	}
}

// WithCosts returns a copy of o accepting the given costs.
func (o Options) WithCosts(costs ...int) Options {
	o.Costs = slices.Clone(costs)

	return o
}

// validate rejects option sets that could never hold a valid cell.
func (o Options) validate() error {
	if len(o.Costs) == 0 {
		return fmt.Errorf("%w: empty cost set", ErrInvalidCost)
	}
	for _, c := range o.Costs {
		if c <= 0 {
			return fmt.Errorf("%w: %d in cost set", ErrInvalidCost, c)
		}
	}

	return nil
}

// Grid is a square lattice of cells stored row-major. It owns its cells
// exclusively; adjacency is derived on every request. A Grid is not safe
// for concurrent use; a running search must own it (see Clone).
type Grid struct {
	side     int
	cellSize int
	costs    []int
	cells    []Cell
	start    *Coord
	end      *Coord
}

// offsets lists the 4-connected neighbour deltas in the fixed
// up, down, left, right order that downstream tie-breaking relies on.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
