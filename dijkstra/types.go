package dijkstra

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the PathFinder.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Run.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrMissingEndpoints indicates Run was invoked before both Start and
	// End were placed. The grid is not touched.
	ErrMissingEndpoints = errors.New("dijkstra: start and end must both be set")

	// ErrNoPathRecorded indicates the predecessor chain does not lead from
	// the end back to the start. It signals an internal inconsistency.
	ErrNoPathRecorded = errors.New("dijkstra: no path recorded for end cell")

	// ErrCancelled indicates the Observer or the context asked the search
	// to stop at a frame boundary. No path is reconstructed.
	ErrCancelled = errors.New("dijkstra: search cancelled")

	// ErrStepBudget indicates the search finalised the configured number
	// of cells without reaching the end.
	ErrStepBudget = errors.New("dijkstra: step budget exhausted")

	// ErrBadStepBudget indicates a negative step budget.
	ErrBadStepBudget = errors.New("dijkstra: step budget must be non-negative")
)

// Outcome classifies how a search terminated.
type Outcome uint8

const (
	// OutcomeFound means a shortest path was reconstructed.
	OutcomeFound Outcome = iota
	// OutcomeNoPath means the frontier emptied without reaching the end.
	OutcomeNoPath
	// OutcomeCancelled means cancellation was requested between frames.
	OutcomeCancelled
	// OutcomeBudgetExceeded means the step budget ran out.
	OutcomeBudgetExceeded
)

var outcomeNames = [...]string{"found", "no_path", "cancelled", "budget_exceeded"}

// String returns the snake_case name of o.
func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}

	return fmt.Sprintf("outcome(%d)", uint8(o))
}

// MarshalText encodes o by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name produced by MarshalText.
func (o *Outcome) UnmarshalText(b []byte) error {
	for i, name := range outcomeNames {
		if name == string(b) {
			*o = Outcome(i)
			return nil
		}
	}

	return fmt.Errorf("dijkstra: unknown outcome %q", b)
}

// Result is the outcome of one search.
//
// Path runs from Start to End inclusive when Outcome is OutcomeFound; it
// is empty when Start == End and for every other outcome. Cost is the sum
// of entry costs along Path, which equals the final distance of End.
type Result struct {
	Outcome  Outcome      `json:"outcome"`
	Path     []grid.Coord `json:"path"`
	Cost     int          `json:"cost"`
	Expanded int          `json:"expanded"` // cells finalised, End included
	Frames   int          `json:"frames"`   // OnFrameComplete calls
}

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Outcome == OutcomeFound }

// Len returns the number of moves on the path.
func (r Result) Len() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Options configures a search.
//
// StepBudget – maximum number of cells to finalise; 0 means unlimited.
// Logger     – receives start and termination lines; discarded by default.
type Options struct {
	StepBudget int
	Logger     *log.Logger

	err error
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithStepBudget caps the number of cells the search may finalise.
// A negative budget makes Run fail with ErrBadStepBudget.
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadStepBudget, n)
			return
		}
		o.StepBudget = n
	}
}

// WithLogger routes search logging to l. A nil l is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with no step budget and a discarding logger.
func DefaultOptions() Options {
	return Options{
		StepBudget: 0,
		Logger:     log.New(io.Discard, "", 0),
	}
}
