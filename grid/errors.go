package grid

import "errors"

var (
	// ErrEmptyGrid indicates a side length below one.
	ErrEmptyGrid = errors.New("grid: side length must be at least one")
	// ErrNonSquare indicates a layout whose rows differ from its row count.
	ErrNonSquare = errors.New("grid: layout must be square")
	// ErrBadLayout indicates an unknown layout symbol or a repeated endpoint.
	ErrBadLayout = errors.New("grid: malformed layout")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrInvalidCost indicates a cost outside the accepted set or not positive.
	ErrInvalidCost = errors.New("grid: invalid cell cost")
	// ErrInvalidAssignment indicates a state change that would break the
	// endpoint invariants.
	ErrInvalidAssignment = errors.New("grid: invalid state assignment")
)
