// Package searchapi exposes the pathfinder over HTTP.
package searchapi

import (
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// CostCell assigns a traversal cost to one cell.
type CostCell struct {
	Row  int `json:"row"`
	Col  int `json:"col"`
	Cost int `json:"cost" binding:"required"`
}

// SearchRequest describes a grid and asks for a search over it.
//
// Either Layout is given (rows of layout symbols, see grid.Parse), or Side
// together with Start, End and the optional Barriers and Costs.
type SearchRequest struct {
	Layout     []string     `json:"layout"`
	Side       int          `json:"side"`
	Start      *grid.Coord  `json:"start"`
	End        *grid.Coord  `json:"end"`
	Barriers   []grid.Coord `json:"barriers"`
	Costs      []CostCell   `json:"costs"`
	Trace      bool         `json:"trace"`       // include every frame in the response
	StepBudget int          `json:"step_budget"` // 0 defers to the server budget
}

// SearchResponse reports the outcome of one search.
type SearchResponse struct {
	ID         string           `json:"id"`
	Outcome    dijkstra.Outcome `json:"outcome"`
	Path       []grid.Coord     `json:"path"`
	Cost       int              `json:"cost"`
	Expanded   int              `json:"expanded"`
	FrameCount int              `json:"frame_count"`
	Grid       string           `json:"grid"`             // final layout with search marks
	Frames     []dijkstra.Frame `json:"frames,omitempty"` // only when Trace was set
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}
