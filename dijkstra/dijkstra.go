package dijkstra

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// Run computes the cheapest path from the grid's Start to its End,
// reporting every visible state change to obs as it goes.
//
// The cost of a move is the entry cost of the cell moved into; barriers
// are never entered. Run finalises one cell per iteration and closes each
// iteration with obs.OnFrameComplete, so a recorded run replays frame by
// frame.
//
// Returns:
//
//   - Result{OutcomeFound}, nil: Path holds Start→End; cells between the
//     endpoints are marked Path on the grid.
//   - Result{OutcomeNoPath}, nil: End is unreachable. Every reachable cell
//     other than Start ends Closed; none is marked Path.
//   - Result{OutcomeCancelled}, ErrCancelled: obs.PollCancel or ctx asked
//     to stop. No path is reconstructed.
//   - Result{OutcomeBudgetExceeded}, ErrStepBudget: WithStepBudget ran out.
//
// Preconditions and validation (in order):
//  1. options are valid (ErrBadStepBudget).
//  2. g is non-nil (ErrNilGrid).
//  3. g has both Start and End (ErrMissingEndpoints).
//
// None of these failures touch the grid. When Start == End, Run returns a
// found, empty, zero-cost path without emitting any frame.
//
// The caller must not edit g while Run is in progress; use Start to search
// a private copy on another goroutine.
//
// Complexity:
//
//   - Time:  O(V log V), V = side², since each cell has at most four edges.
//   - Space: O(V).
func Run(ctx context.Context, g *grid.Grid, obs Observer, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate grid and endpoints before any mutation
	if g == nil {
		return Result{}, ErrNilGrid
	}
	start, okStart := g.Start()
	end, okEnd := g.End()
	if !okStart || !okEnd {
		return Result{}, fmt.Errorf("%w: start set=%t, end set=%t", ErrMissingEndpoints, okStart, okEnd)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if obs == nil {
		obs = NopObserver{}
	}

	// 3) Prepare runner state sized for the whole grid
	v := g.Side() * g.Side()
	r := &runner{
		ctx:   ctx,
		g:     g,
		obs:   obs,
		cfg:   cfg,
		start: start,
		end:   end,
		dist:  make(map[grid.Coord]int, v),
		pred:  make(map[grid.Coord]grid.Coord, v),
		front: frontier.New[grid.Coord](v),
	}

	// 4) Clear marks left by an earlier run
	for _, c := range g.ResetSearch() {
		obs.OnCellStateChanged(c, grid.Empty)
	}

	cfg.Logger.Printf("[DIJKSTRA] [INFO] search start=%v end=%v side=%d", start, end, g.Side())
	if start == end {
		return r.result(OutcomeFound), nil
	}

	// 5) Seed and run the main loop
	r.init()
	res, err := r.process()
	if err != nil {
		cfg.Logger.Printf("[DIJKSTRA] [INFO] search stopped outcome=%s expanded=%d frames=%d: %v",
			res.Outcome, res.Expanded, res.Frames, err)
		return res, err
	}
	cfg.Logger.Printf("[DIJKSTRA] [INFO] search done outcome=%s cost=%d expanded=%d frames=%d",
		res.Outcome, res.Cost, res.Expanded, res.Frames)

	return res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	ctx   context.Context
	g     *grid.Grid                     // Searched grid; only search states are written.
	obs   Observer                       // Receives state changes and frame boundaries.
	cfg   Options                        // Validated configuration.
	start grid.Coord                     // Search origin.
	end   grid.Coord                     // Search target.
	dist  map[grid.Coord]int             // Best known cost from start; absent means +∞.
	pred  map[grid.Coord]grid.Coord      // Predecessor on the best known path.
	front *frontier.Frontier[grid.Coord] // Candidates not yet finalised.

	path     []grid.Coord
	expanded int
	frames   int
}

// init sets the start distance to zero and pushes it onto the frontier.
// Start keeps its own marker, so no Open notification is emitted for it.
func (r *runner) init() {
	r.dist[r.start] = 0
	r.front.Push(0, r.start)
}

// process is the main loop. Each iteration pops the cheapest candidate,
// discards it if stale, stops on the end cell, relaxes the neighbours,
// closes the frame and finally marks the popped cell Closed.
func (r *runner) process() (Result, error) {
	for !r.front.Empty() {
		// 1) Cooperative cancellation at the frame boundary.
		if r.obs.PollCancel() {
			return r.result(OutcomeCancelled), ErrCancelled
		}
		if err := r.ctx.Err(); err != nil {
			return r.result(OutcomeCancelled), fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		if r.cfg.StepBudget > 0 && r.expanded >= r.cfg.StepBudget {
			return r.result(OutcomeBudgetExceeded), fmt.Errorf("%w: %d cells", ErrStepBudget, r.expanded)
		}

		// 2) Pop; a copy whose distance no longer matches is stale.
		cur, d, err := r.front.PopMin()
		if err != nil {
			break
		}
		if d != r.dist[cur] {
			continue
		}
		r.expanded++

		// 3) Reaching the end finalises the search.
		if cur == r.end {
			return r.finish()
		}

		// 4) Relax neighbours in their fixed order.
		if err = r.relax(cur); err != nil {
			return r.result(OutcomeNoPath), err
		}

		// 5) One frame per finalised cell.
		r.frame()

		// 6) Start keeps its marker; every other finalised cell is Closed.
		if cur != r.start {
			if err = r.mark(cur, grid.Closed); err != nil {
				return r.result(OutcomeNoPath), err
			}
		}
	}

	return r.result(OutcomeNoPath), nil
}

// relax improves the distance of every neighbour reachable more cheaply
// through cur. A newly discovered neighbour is pushed and marked Open; one
// already in the frontier is re-pushed with its lower distance and keeps
// its Open marker without a second notification.
func (r *runner) relax(cur grid.Coord) error {
	base := r.dist[cur]
	for _, nb := range r.g.Neighbors(cur) {
		cand := base + r.g.Cost(nb)
		if old, seen := r.dist[nb]; seen && cand >= old {
			continue
		}
		r.pred[nb] = cur
		r.dist[nb] = cand
		if r.front.Contains(nb) {
			r.front.Push(cand, nb)
			continue
		}
		r.front.Push(cand, nb)
		if err := r.mark(nb, grid.Open); err != nil {
			return err
		}
	}

	return nil
}

// finish reconstructs the path, marks the cells between the endpoints as
// Path walking back from the end, and closes one last frame.
func (r *runner) finish() (Result, error) {
	seq, err := Reconstruct(r.pred, r.start, r.end)
	if err != nil {
		return r.result(OutcomeNoPath), err
	}
	for c := range seq {
		if c == r.start || c == r.end {
			continue
		}
		if err = r.mark(c, grid.Path); err != nil {
			return r.result(OutcomeNoPath), err
		}
	}
	path, err := Collect(seq, r.start)
	if err != nil {
		return r.result(OutcomeNoPath), err
	}
	r.path = path
	r.frame()

	return r.result(OutcomeFound), nil
}

// mark applies s to c and notifies the observer when the cell changed.
func (r *runner) mark(c grid.Coord, s grid.State) error {
	changed, err := r.g.Mark(c, s)
	if err != nil {
		return fmt.Errorf("dijkstra: mark %v %s: %w", c, s, err)
	}
	if changed {
		r.obs.OnCellStateChanged(c, s)
	}

	return nil
}

// frame closes the current batch of notifications.
func (r *runner) frame() {
	r.frames++
	r.obs.OnFrameComplete()
}

// result snapshots the counters under the given outcome.
func (r *runner) result(o Outcome) Result {
	res := Result{
		Outcome:  o,
		Expanded: r.expanded,
		Frames:   r.frames,
	}
	if o == OutcomeFound {
		res.Path = r.path
		res.Cost = r.dist[r.end]
	}

	return res
}
