package dijkstra

import (
	"context"

	"github.com/katalvlaran/gridpath/grid"
)

// Worker runs a search on its own goroutine over a private copy of the
// grid. Only Frame values cross back to the caller, so the caller may keep
// editing or rendering its own grid while the search runs.
type Worker struct {
	frames chan Frame
	done   chan struct{}
	cancel context.CancelFunc

	g   *grid.Grid
	res Result
	err error
}

// frameBuffer bounds how far the search may run ahead of a slow reader.
const frameBuffer = 64

// Start clones g and begins searching the clone. Frames are delivered in
// order on Frames(); the channel closes when the search ends. Changes
// emitted after the last frame boundary (resets before the first frame,
// or Closed marks when no path exists) arrive as one trailing Frame.
//
// Validation errors from Run are reported by Wait; Frames() then closes
// without delivering anything.
func Start(ctx context.Context, g *grid.Grid, opts ...Option) *Worker {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	w := &Worker{
		frames: make(chan Frame, frameBuffer),
		done:   make(chan struct{}),
		cancel: cancel,
	}
	if g != nil {
		w.g = g.Clone()
	}

	go func() {
		defer close(w.done)
		defer cancel()
		defer close(w.frames)

		obs := &channelObserver{ctx: ctx, out: w.frames}
		w.res, w.err = Run(ctx, w.g, obs, opts...)
		obs.flush()
	}()

	return w
}

// Frames returns the stream of completed frames.
func (w *Worker) Frames() <-chan Frame { return w.frames }

// Cancel asks the search to stop at its next frame boundary.
func (w *Worker) Cancel() { w.cancel() }

// Done is closed once the search has returned.
func (w *Worker) Done() <-chan struct{} { return w.done }

// Wait blocks until the search returns and reports its result.
func (w *Worker) Wait() (Result, error) {
	<-w.done

	return w.res, w.err
}

// Grid blocks until the search returns and hands back the searched copy,
// carrying its Open, Closed and Path marks.
func (w *Worker) Grid() *grid.Grid {
	<-w.done

	return w.g
}

// channelObserver batches changes into Frames and sends them on out.
// A send blocks until the reader catches up or ctx is cancelled.
type channelObserver struct {
	ctx     context.Context
	out     chan<- Frame
	pending []Change
	index   int
}

func (o *channelObserver) OnCellStateChanged(c grid.Coord, s grid.State) {
	o.pending = append(o.pending, Change{Coord: c, State: s})
}

func (o *channelObserver) OnFrameComplete() {
	o.send()
}

func (o *channelObserver) PollCancel() bool {
	return o.ctx.Err() != nil
}

// flush sends any changes left after the final frame boundary.
func (o *channelObserver) flush() {
	if len(o.pending) > 0 {
		o.send()
	}
}

func (o *channelObserver) send() {
	f := Frame{Index: o.index, Changes: o.pending}
	o.index++
	o.pending = nil
	select {
	case o.out <- f:
	case <-o.ctx.Done():
	}
}
