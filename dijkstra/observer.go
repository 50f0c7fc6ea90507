package dijkstra

import (
	"slices"

	"github.com/katalvlaran/gridpath/grid"
)

// Observer receives the per-cell state transitions of a running search.
//
// The search calls OnCellStateChanged once per visible change, then
// OnFrameComplete once per dequeued cell, and PollCancel at the top of
// every iteration. All three are called on the searching goroutine.
type Observer interface {
	// OnCellStateChanged reports that c now displays s.
	OnCellStateChanged(c grid.Coord, s grid.State)
	// OnFrameComplete closes the batch of changes of one iteration.
	// Renderers draw here.
	OnFrameComplete()
	// PollCancel reports whether the search should stop.
	PollCancel() bool
}

// NopObserver ignores every notification and never cancels.
type NopObserver struct{}

func (NopObserver) OnCellStateChanged(grid.Coord, grid.State) {}
func (NopObserver) OnFrameComplete()                          {}
func (NopObserver) PollCancel() bool                          { return false }

// Change is one cell transition.
type Change struct {
	Coord grid.Coord `json:"coord"`
	State grid.State `json:"state"`
}

// Frame is the batch of changes emitted between two frame boundaries.
type Frame struct {
	Index   int      `json:"index"`
	Changes []Change `json:"changes"`
}

// Recorder is an Observer that keeps every notification, grouped into
// frames. Two searches over identical grids produce equal recordings.
type Recorder struct {
	frames      []Frame
	pending     []Change
	cancelAfter int
}

// NewRecorder returns an empty Recorder that never cancels.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// CancelAfter makes the Recorder request cancellation once n frames have
// completed. n <= 0 disables cancellation.
func (r *Recorder) CancelAfter(n int) *Recorder {
	r.cancelAfter = n

	return r
}

// OnCellStateChanged appends the change to the open frame.
func (r *Recorder) OnCellStateChanged(c grid.Coord, s grid.State) {
	r.pending = append(r.pending, Change{Coord: c, State: s})
}

// OnFrameComplete closes the open frame.
func (r *Recorder) OnFrameComplete() {
	r.frames = append(r.frames, Frame{Index: len(r.frames), Changes: r.pending})
	r.pending = nil
}

// PollCancel reports true once the CancelAfter threshold is reached.
func (r *Recorder) PollCancel() bool {
	return r.cancelAfter > 0 && len(r.frames) >= r.cancelAfter
}

// Frames returns the completed frames.
func (r *Recorder) Frames() []Frame {
	return slices.Clone(r.frames)
}

// Pending returns the changes emitted after the last frame boundary.
func (r *Recorder) Pending() []Change {
	return slices.Clone(r.pending)
}

// Changes returns every recorded change in emission order.
func (r *Recorder) Changes() []Change {
	var out []Change
	for _, f := range r.frames {
		out = append(out, f.Changes...)
	}

	return append(out, r.pending...)
}

// Final returns the last state reported for each cell.
func (r *Recorder) Final() map[grid.Coord]grid.State {
	out := make(map[grid.Coord]grid.State)
	for _, ch := range r.Changes() {
		out[ch.Coord] = ch.State
	}

	return out
}

// Reset discards the recording and keeps the cancellation threshold.
func (r *Recorder) Reset() {
	r.frames, r.pending = nil, nil
}
