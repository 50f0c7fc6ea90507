// Package grid models a square lattice of weighted, possibly impassable
// cells as a 4-connected graph for shortest-path search.
//
// What:
//
//   - Grid holds side×side Cells, each with a Coord, an entry Cost and a State.
//   - Neighbors derives adjacency on demand in the fixed order up, down,
//     left, right; Barrier cells contribute no edges in either direction.
//   - Edit operations (SetStart, SetEnd, SetBarrier, SetCost, Clear, Rebuild)
//     validate coordinates and keep the endpoint invariants: at most one
//     Start, at most one End, never on the same cell, never a Barrier.
//   - Mark and ResetSearch manage the search-internal states Open, Closed
//     and Path.
//   - Parse and String convert to and from a compact text layout.
//
// Costs:
//
//   - The accepted cost set defaults to {1, 2, 4, 8}, the four traffic
//     levels. Options.Costs widens or narrows it; non-positive costs are
//     always rejected.
//
// Complexity:
//
//   - Neighbors, Cell, Mark, edits: O(1).
//   - Rebuild, ResetSearch, Clone, ReachableFrom, Parse: O(side²).
//
// Errors:
//
//   - ErrEmptyGrid: side length below one.
//   - ErrNonSquare: layout rows differ from the row count.
//   - ErrBadLayout: unknown symbol or repeated endpoint.
//   - ErrOutOfBounds: coordinates outside the grid.
//   - ErrInvalidCost: cost outside the accepted set.
//   - ErrInvalidAssignment: a state change that would break an endpoint invariant.
//
// On any error the grid is left unchanged.
package grid
