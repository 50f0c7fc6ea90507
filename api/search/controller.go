package searchapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/api"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// ErrTooLarge indicates a requested grid wider than the server allows.
var ErrTooLarge = errors.New("searchapi: grid too large")

// Config holds the limits applied to every request.
type Config struct {
	MaxSide    int           // Largest accepted side
	StepBudget int           // Server-wide cap on finalised cells; 0 means none
	Options    grid.Options  // Options for grids built from requests
	Logger     *log.Logger   // Request log; discarded when nil
	Timeout    time.Duration // Per-search deadline; 0 means none
}

// SearchServer handles HTTP requests that run searches.
type SearchServer struct {
	cfg Config
}

// NewSearchServer creates a new SearchServer.
func NewSearchServer(cfg Config) *SearchServer {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}

	return &SearchServer{cfg: cfg}
}

// Register registers the search and health routes.
func (c *SearchServer) Register(route *gin.RouterGroup) {
	route.POST("/search", c.search)
	route.GET("/health", c.health)
}

// health reports liveness.
func (c *SearchServer) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// search builds the requested grid, runs the pathfinder on it and
// reports the result.
func (c *SearchServer) search(ctx *gin.Context) {
	began := time.Now()
	id := api.RequestIDFrom(ctx).String()

	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		c.reject(ctx, id, http.StatusBadRequest, "bind", err)
		return
	}

	g, err := c.buildGrid(request)
	if err != nil {
		c.reject(ctx, id, http.StatusBadRequest, "grid", err)
		return
	}

	runCtx := ctx.Request.Context()
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, c.cfg.Timeout)
		defer cancel()
	}

	var rec *dijkstra.Recorder
	var obs dijkstra.Observer
	if request.Trace {
		rec = dijkstra.NewRecorder()
		obs = rec
	}
	res, err := dijkstra.Run(runCtx, g, obs,
		dijkstra.WithStepBudget(c.budget(request.StepBudget)),
		dijkstra.WithLogger(c.cfg.Logger),
	)
	switch {
	case errors.Is(err, dijkstra.ErrMissingEndpoints), errors.Is(err, dijkstra.ErrBadStepBudget):
		c.reject(ctx, id, http.StatusUnprocessableEntity, "validation", err)
		return
	case errors.Is(err, dijkstra.ErrCancelled):
		c.observe(res, began)
		c.reject(ctx, id, http.StatusServiceUnavailable, "cancelled", err)
		return
	case err != nil && !errors.Is(err, dijkstra.ErrStepBudget):
		c.reject(ctx, id, http.StatusInternalServerError, "internal", err)
		return
	}
	c.observe(res, began)

	response := &SearchResponse{
		ID:         id,
		Outcome:    res.Outcome,
		Path:       res.Path,
		Cost:       res.Cost,
		Expanded:   res.Expanded,
		FrameCount: res.Frames,
		Grid:       g.String(),
	}
	if response.Path == nil {
		response.Path = []grid.Coord{}
	}
	if rec != nil {
		response.Frames = traceFrames(rec)
	}
	c.cfg.Logger.Printf("[API] [INFO] search id=%s side=%d outcome=%s cost=%d expanded=%d",
		id, g.Side(), res.Outcome, res.Cost, res.Expanded)
	ctx.JSON(http.StatusOK, response)
}

// buildGrid turns a request into a grid, from its layout when present.
func (c *SearchServer) buildGrid(r SearchRequest) (*grid.Grid, error) {
	if len(r.Layout) > 0 {
		if len(r.Layout) > c.cfg.MaxSide {
			return nil, fmt.Errorf("%w: side %d > %d", ErrTooLarge, len(r.Layout), c.cfg.MaxSide)
		}
		return grid.Parse(r.Layout, c.cfg.Options)
	}
	if r.Side > c.cfg.MaxSide {
		return nil, fmt.Errorf("%w: side %d > %d", ErrTooLarge, r.Side, c.cfg.MaxSide)
	}

	g, err := grid.New(r.Side, c.cfg.Options)
	if err != nil {
		return nil, err
	}
	for _, b := range r.Barriers {
		if err = g.SetBarrier(b); err != nil {
			return nil, err
		}
	}
	for _, cc := range r.Costs {
		if err = g.SetCellCost(cc.Row, cc.Col, cc.Cost); err != nil {
			return nil, err
		}
	}
	if r.Start != nil {
		if err = g.SetStart(*r.Start); err != nil {
			return nil, err
		}
	}
	if r.End != nil {
		if err = g.SetEnd(*r.End); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// budget combines the request budget with the server cap, the smaller
// positive one winning. A negative request budget is passed through so
// Run rejects it.
func (c *SearchServer) budget(requested int) int {
	switch {
	case requested < 0:
		return requested
	case requested == 0:
		return c.cfg.StepBudget
	case c.cfg.StepBudget == 0:
		return requested
	}

	return min(requested, c.cfg.StepBudget)
}

// observe records the metrics of a finished search.
func (c *SearchServer) observe(res dijkstra.Result, began time.Time) {
	outcome := res.Outcome.String()
	searchTotal.WithLabelValues(outcome).Inc()
	searchDuration.WithLabelValues(outcome).Observe(time.Since(began).Seconds())
	searchExpanded.Observe(float64(res.Expanded))
}

// reject logs the failure, counts it and writes an error response.
func (c *SearchServer) reject(ctx *gin.Context, id string, status int, reason string, err error) {
	searchErrors.WithLabelValues(reason).Inc()
	c.cfg.Logger.Printf("[API] [ERROR] search id=%s reason=%s: %v", id, reason, err)
	ctx.JSON(status, &ErrorResponse{ID: id, Error: err.Error()})
}

// traceFrames returns the recorded frames, with changes emitted after the
// last boundary appended as one final frame.
func traceFrames(rec *dijkstra.Recorder) []dijkstra.Frame {
	frames := rec.Frames()
	if pending := rec.Pending(); len(pending) > 0 {
		frames = append(frames, dijkstra.Frame{Index: len(frames), Changes: pending})
	}

	return frames
}
