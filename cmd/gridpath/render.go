package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/grid"
)

// cellWidth is the number of terminal columns per grid cell, which keeps
// cells roughly square in most fonts.
const cellWidth = 2

var (
	styleStart   = tcell.StyleDefault.Background(tcell.ColorOrange)
	styleEnd     = tcell.StyleDefault.Background(tcell.ColorTurquoise)
	styleBarrier = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleOpen    = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleClosed  = tcell.StyleDefault.Background(tcell.ColorRed)
	stylePath    = tcell.StyleDefault.Background(tcell.ColorPurple)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// trafficShade maps a cost to a background grey; heavier is darker.
func trafficShade(cost int) tcell.Style {
	level := int32(255)
	switch {
	case cost >= grid.CostHeavy:
		level = 110
	case cost >= grid.CostModerate:
		level = 160
	case cost >= grid.CostLight:
		level = 210
	}

	return tcell.StyleDefault.
		Background(tcell.NewRGBColor(level, level, level)).
		Foreground(tcell.ColorBlack)
}

func cellStyle(c grid.Cell) tcell.Style {
	switch c.State {
	case grid.Start:
		return styleStart
	case grid.End:
		return styleEnd
	case grid.Barrier:
		return styleBarrier
	case grid.Open:
		return styleOpen
	case grid.Closed:
		return styleClosed
	case grid.Path:
		return stylePath
	}

	return trafficShade(c.Cost)
}

// cellRune labels weighted empty cells with their cost digit.
func cellRune(c grid.Cell) rune {
	if c.State == grid.Empty && c.Cost > grid.CostFree && c.Cost < 10 {
		return rune('0' + c.Cost)
	}

	return ' '
}

// draw renders the grid followed by two status lines.
func (v *viewer) draw() {
	v.screen.Clear()
	for cell := range v.g.Cells() {
		style := cellStyle(cell)
		x, y := cell.Col*cellWidth, cell.Row
		v.screen.SetContent(x, y, cellRune(cell), nil, style)
		for dx := 1; dx < cellWidth; dx++ {
			v.screen.SetContent(x+dx, y, ' ', nil, style)
		}
	}

	side := v.g.Side()
	v.drawText(0, side, styleHint,
		fmt.Sprintf("brush=%d  L:start/end/paint  R:barrier  1/2/3:cost 2/4/8  0:cost 1  space:run  c:clear  r:rebuild  esc/q:quit", v.brush))
	v.drawText(0, side+1, styleText, v.status)
	v.screen.Show()
}

func (v *viewer) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
