// Package dijkstra finds cheapest paths on a weighted grid.Grid with
// Dijkstra's algorithm and reports the search frontier as it grows.
//
// Overview:
//
//   - Run searches from the grid's Start to its End. Moving into a cell
//     costs that cell's Cost; Barrier cells are never entered; moves are
//     4-directional.
//   - Every iteration finalises exactly one cell and ends with one
//     Observer.OnFrameComplete call. Cells discovered during the iteration
//     are reported Open before the boundary; the finalised cell is reported
//     Closed right after it.
//   - On success the cells between Start and End are marked Path and a last
//     frame is closed.
//   - PollCancel and the context are checked at the top of every
//     iteration; cancellation never reconstructs a partial path.
//
// Determinism:
//
//   - The frontier breaks distance ties by insertion order and grid
//     neighbours come in the fixed order up, down, left, right, so two runs
//     over identical grids emit identical notification sequences.
//
// Concurrency:
//
//   - Run is single-threaded and must own its grid for the whole call.
//   - Start runs a search on a private clone in its own goroutine and
//     streams Frame values over a channel, so no grid is shared.
//
// Performance and complexity:
//
//   - Time:  O(V log V) with V = side²; each cell has at most four edges.
//   - Space: O(V) for distances, predecessors and the frontier.
//   - Decrease-key is lazy: improved cells are re-pushed and stale copies
//     are skipped by comparing the popped distance with the current one.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrMissingEndpoints, ErrBadStepBudget: rejected before
//     any grid mutation.
//   - ErrCancelled, ErrStepBudget: clean early termination, reported with
//     OutcomeCancelled or OutcomeBudgetExceeded.
//   - ErrNoPathRecorded: predecessor chain inconsistency during
//     reconstruction.
//
// An unreachable End is not an error: Run returns OutcomeNoPath.
package dijkstra
