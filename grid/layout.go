package grid

import (
	"fmt"
	"strings"
)

// Layout symbols understood by Parse and produced by String.
const (
	SymbolEmpty   = '.'
	SymbolBarrier = '#'
	SymbolStart   = 'S'
	SymbolEnd     = 'E'
	SymbolOpen    = 'o'
	SymbolClosed  = 'x'
	SymbolPath    = '*'
)

// Parse builds a grid from a square text layout, one string per row.
// '.' is an empty CostFree cell, a digit is an empty cell of that cost,
// '#' a barrier, 'S' the start and 'E' the end. Search symbols
// ('o', 'x', '*') are read as empty cells so a rendered grid parses back.
//
// Returns ErrEmptyGrid for no rows, ErrNonSquare if any row length
// differs from the row count, ErrBadLayout for an unknown symbol or a
// repeated endpoint, and ErrInvalidCost for a digit outside opts.Costs.
// Complexity: O(side²).
func Parse(rows []string, opts Options) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, i, len(row), n)
		}
	}
	g, err := New(n, opts)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c := 0; c < n; c++ {
			if err = g.apply(Coord{Row: r, Col: c}, row[c]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// ParseString splits s on newlines, trimming blank lines and surrounding
// spaces, then calls Parse.
func ParseString(s string, opts Options) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}

	return Parse(rows, opts)
}

func (g *Grid) apply(at Coord, sym byte) error {
	switch {
	case sym == SymbolEmpty, sym == SymbolOpen, sym == SymbolClosed, sym == SymbolPath:
		return nil
	case sym == SymbolBarrier:
		return g.SetBarrier(at)
	case sym == SymbolStart:
		if g.start != nil {
			return fmt.Errorf("%w: second start at %v", ErrBadLayout, at)
		}
		return g.SetStart(at)
	case sym == SymbolEnd:
		if g.end != nil {
			return fmt.Errorf("%w: second end at %v", ErrBadLayout, at)
		}
		return g.SetEnd(at)
	case sym >= '1' && sym <= '9':
		return g.SetCost(at, int(sym-'0'))
	}

	return fmt.Errorf("%w: symbol %q at %v", ErrBadLayout, sym, at)
}

// String renders g in the Parse layout, one row per line. Empty cells
// show their cost when it is not CostFree; search states use 'o', 'x'
// and '*'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.side * (g.side + 1))
	for i, cell := range g.cells {
		if i > 0 && i%g.side == 0 {
			b.WriteByte('\n')
		}
		b.WriteByte(cell.symbol())
	}

	return b.String()
}

func (c Cell) symbol() byte {
	switch c.State {
	case Start:
		return SymbolStart
	case End:
		return SymbolEnd
	case Barrier:
		return SymbolBarrier
	case Open:
		return SymbolOpen
	case Closed:
		return SymbolClosed
	case Path:
		return SymbolPath
	}
	if c.Cost != CostFree && c.Cost > 0 && c.Cost < 10 {
		return byte('0' + c.Cost)
	}

	return SymbolEmpty
}
