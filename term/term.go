// Package term draws braille canvases on a terminal via tcell.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/flavioheleno/braille"
)

// Draw renders the canvas onto the screen with its top left cell at
// screen position (x, y), one terminal cell per braille character.
// The caller decides when to call Show.
func Draw(s tcell.Screen, x, y int, c *braille.Canvas, style tcell.Style) {
	for row := 0; row < c.CellRows(); row++ {
		for col := 0; col < c.CellCols(); col++ {
			s.SetContent(x+col, y+row, c.CellRune(col, row), nil, style)
		}
	}
}

// PointSize returns the point dimensions covered by a region of cols by
// rows terminal cells. Useful for sizing a canvas to a screen:
//
//	w, h := term.PointSize(s.Size())
//	c := braille.NewCanvasWithSize(w, h)
func PointSize(cols, rows int) (w, h int) {
	return cols * 2, rows * 4
}
