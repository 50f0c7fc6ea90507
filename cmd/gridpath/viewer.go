package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// idleTick is the redraw interval when no frame delay is configured.
const idleTick = 16 * time.Millisecond

// viewer is the interactive editor: it owns the displayed grid, turns
// input events into grid edits and replays search frames onto the grid.
type viewer struct {
	screen tcell.Screen
	cfg    config.Config
	logger *log.Logger
	tone   *tone

	g      *grid.Grid
	brush  int              // cost painted by a left click once both endpoints exist
	search *dijkstra.Worker // non-nil while a search is running
	status string
}

func newViewer(screen tcell.Screen, cfg config.Config, logger *log.Logger, t *tone) (*viewer, error) {
	g, err := grid.New(cfg.Side, cfg.GridOptions())
	if err != nil {
		return nil, err
	}

	return &viewer{
		screen: screen,
		cfg:    cfg,
		logger: logger,
		tone:   t,
		g:      g,
		brush:  grid.CostFree,
		status: "place start and end with the left mouse button",
	}, nil
}

// running reports whether a search is in progress.
func (v *viewer) running() bool { return v.search != nil }

// handle dispatches one terminal event. It returns false to quit.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}

	return true
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		v.cancelSearch()
		return false
	case tcell.KeyEscape:
		if v.running() {
			v.cancelSearch()
			return true
		}
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		v.cancelSearch()
		return false
	case '1':
		v.setBrush(grid.CostLight)
	case '2':
		v.setBrush(grid.CostModerate)
	case '3':
		v.setBrush(grid.CostHeavy)
	case '0':
		v.setBrush(grid.CostFree)
	case ' ':
		v.startSearch()
	case 'c':
		if !v.running() {
			v.g.ResetSearch()
			v.status = "search marks cleared"
		}
	case 'r':
		if !v.running() {
			v.rebuild()
		}
	}

	return true
}

func (v *viewer) setBrush(cost int) {
	v.brush = cost
	v.status = fmt.Sprintf("painting cost %d", cost)
}

func (v *viewer) rebuild() {
	if err := v.g.Reset(v.cfg.Side); err != nil {
		v.status = err.Error()
		return
	}
	v.status = "grid rebuilt"
}

// cellAt maps a terminal position to a grid cell.
func (v *viewer) cellAt(x, y int) (grid.Coord, bool) {
	c := grid.Coord{Row: y, Col: x / cellWidth}

	return c, x >= 0 && v.g.InBounds(c)
}

// handleMouse applies the edit bound to the pressed button. Edits are
// ignored while a search runs.
//
//   - Left: place Start, then End, then paint the brush cost; a painted
//     barrier becomes passable again.
//   - Right: place a barrier on any non-endpoint cell.
func (v *viewer) handleMouse(ev *tcell.EventMouse) {
	if v.running() {
		return
	}
	c, ok := v.cellAt(ev.Position())
	if !ok {
		return
	}

	var err error
	switch btn := ev.Buttons(); {
	case btn&tcell.Button1 != 0:
		err = v.leftClick(c)
	case btn&tcell.Button2 != 0:
		err = v.rightClick(c)
	default:
		return
	}
	if err != nil {
		v.status = err.Error()
	}
}

func (v *viewer) leftClick(c grid.Coord) error {
	start, hasStart := v.g.Start()
	end, hasEnd := v.g.End()
	switch {
	case !hasStart && !(hasEnd && c == end):
		return v.g.SetStart(c)
	case !hasEnd && !(hasStart && c == start):
		return v.g.SetEnd(c)
	case c == start || c == end:
		return nil
	}
	if v.g.State(c) == grid.Barrier {
		if err := v.g.Clear(c); err != nil {
			return err
		}
	}

	return v.g.SetCost(c, v.brush)
}

func (v *viewer) rightClick(c grid.Coord) error {
	if s := v.g.State(c); s == grid.Start || s == grid.End {
		return nil
	}

	return v.g.SetBarrier(c)
}

// startSearch clears old marks and launches a worker on a copy of the grid.
func (v *viewer) startSearch() {
	if v.running() {
		return
	}
	_, hasStart := v.g.Start()
	_, hasEnd := v.g.End()
	if !hasStart || !hasEnd {
		v.status = "place start and end first"
		return
	}
	v.g.ResetSearch()
	v.search = dijkstra.Start(context.Background(), v.g,
		dijkstra.WithStepBudget(v.cfg.StepBudget),
		dijkstra.WithLogger(v.logger),
	)
	v.status = "searching..."
}

func (v *viewer) cancelSearch() {
	if v.running() {
		v.search.Cancel()
	}
}

// pump replays up to limit frames that are ready, or every ready frame
// when limit <= 0. It finishes the search once the stream closes.
func (v *viewer) pump(limit int) {
	for n := 0; v.running() && (limit <= 0 || n < limit); n++ {
		select {
		case f, ok := <-v.search.Frames():
			if !ok {
				v.finishSearch()
				return
			}
			v.apply(f)
		default:
			return
		}
	}
}

// apply copies one frame's search marks onto the displayed grid. Reset
// notifications are skipped: startSearch already cleared the marks.
func (v *viewer) apply(f dijkstra.Frame) {
	for _, ch := range f.Changes {
		if ch.State == grid.Empty {
			continue
		}
		if _, err := v.g.Mark(ch.Coord, ch.State); err != nil {
			v.logger.Printf("[VIEWER] [ERROR] frame %d: %v", f.Index, err)
		}
	}
}

func (v *viewer) finishSearch() {
	res, err := v.search.Wait()
	v.search = nil
	switch {
	case errors.Is(err, dijkstra.ErrCancelled):
		v.status = fmt.Sprintf("cancelled after %d cells", res.Expanded)
	case errors.Is(err, dijkstra.ErrStepBudget):
		v.status = fmt.Sprintf("step budget of %d cells exhausted", res.Expanded)
	case err != nil:
		v.status = err.Error()
	case res.Found():
		v.status = fmt.Sprintf("path found: cost %d, %d moves, %d cells expanded", res.Cost, res.Len(), res.Expanded)
		v.tone.play()
	default:
		v.status = fmt.Sprintf("no path: %d cells expanded", res.Expanded)
	}
}

// run is the event loop: input arrives on a channel fed by PollEvent and
// a ticker paces frame replay and redraws.
func (v *viewer) run() {
	interval, perTick := v.cfg.FrameDelay, 1
	if interval <= 0 {
		interval, perTick = idleTick, 0
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	v.draw()
	for {
		select {
		case ev := <-eventChan:
			if !v.handle(ev) {
				if v.running() {
					_, _ = v.search.Wait()
				}
				return
			}
			v.draw()

		case <-ticker.C:
			v.pump(perTick)
			v.draw()
		}
	}
}
