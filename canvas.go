package braille

import (
	"image"
	"image/color"
	"strings"

	"github.com/flavioheleno/braille/image1bit"
)

// Canvas is a rectangular grid of points backed by an array of braille
// cells. Points are addressed in raw point coordinates with (0, 0) at the
// top left; each cell covers a 2x4 block of points.
//
// The size is fixed at construction. Canvas is not safe for concurrent
// use; callers that share one across goroutines must provide their own
// locking.
type Canvas struct {
	width  int
	height int

	// Cell grid dimensions, ceiling-divided from the point dimensions.
	cellCols int
	cellRows int

	// Row-major cell words. Only the low 8 bits of each word hold dots;
	// bits 8-31 are reserved (see Cell) and left untouched by ResetAll.
	cells []uint32
}

// NewCanvas returns an empty 0x0 canvas. Canvases cannot be resized; use
// NewCanvasWithSize for a usable drawing surface.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// NewCanvasWithSize returns a blank canvas of width by height points.
// The dimensions count points, not characters: a 4x4 canvas renders as
// two braille characters, since each character covers 2x4 points.
// Negative dimensions are treated as zero.
func NewCanvasWithSize(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cellCols := (width + 1) / 2
	cellRows := (height + 3) / 4

	return &Canvas{
		width:    width,
		height:   height,
		cellCols: cellCols,
		cellRows: cellRows,
		cells:    make([]uint32, cellCols*cellRows),
	}
}

// Width returns the canvas width in points.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in points.
func (c *Canvas) Height() int {
	return c.height
}

// CellCols returns the number of cell columns, ceil(width/2).
func (c *Canvas) CellCols() int {
	return c.cellCols
}

// CellRows returns the number of cell rows, ceil(height/4).
func (c *Canvas) CellRows() int {
	return c.cellRows
}

// cellIndex resolves a point coordinate to the owning cell's index in
// c.cells. ok is false when the point lies outside the cell array.
//
// This is the single bounds check gating all point operations: the index
// overflows when y runs past the last cell row, but an x beyond the
// declared width is still accepted as long as the derived index lands on
// an existing cell (for odd widths the last cell column extends one point
// past the canvas; a larger x wraps into the next cell row).
func (c *Canvas) cellIndex(x, y int) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	row := y / 4
	if row >= c.cellRows {
		return 0, false
	}
	// row < cellRows bounds the multiply by the cell count, so the index
	// cannot overflow even for x near the int maximum.
	i := x/2 + c.cellCols*row
	if i >= len(c.cells) {
		return 0, false
	}
	return i, true
}

// Set sets the point at (x, y). Returns an *IndexError carrying the
// canvas dimensions if the point cannot be resolved to a cell.
func (c *Canvas) Set(x, y int) error {
	i, ok := c.cellIndex(x, y)
	if !ok {
		return &IndexError{BoundX: c.width, BoundY: c.height, X: x, Y: y}
	}
	w, _ := dotWeight(x%2, y%4)
	c.cells[i] |= w
	return nil
}

// Reset clears the point at (x, y). Same bounds behavior as Set.
func (c *Canvas) Reset(x, y int) error {
	i, ok := c.cellIndex(x, y)
	if !ok {
		return &IndexError{BoundX: c.width, BoundY: c.height, X: x, Y: y}
	}
	w, _ := dotWeight(x%2, y%4)
	c.cells[i] &^= w
	return nil
}

// Flip toggles the point at (x, y). Same bounds behavior as Set.
func (c *Canvas) Flip(x, y int) error {
	i, ok := c.cellIndex(x, y)
	if !ok {
		return &IndexError{BoundX: c.width, BoundY: c.height, X: x, Y: y}
	}
	w, _ := dotWeight(x%2, y%4)
	c.cells[i] ^= w
	return nil
}

// ResetAll clears every point on the canvas. Reserved high bits of the
// cell words are left untouched.
func (c *Canvas) ResetAll() {
	for i := range c.cells {
		c.cells[i] &^= 0xFF
	}
}

// CellRune returns the braille character for the cell at (col, row) in
// cell coordinates. Out-of-range cells render as the blank pattern.
func (c *Canvas) CellRune(col, row int) rune {
	if col < 0 || row < 0 || col >= c.cellCols || row >= c.cellRows {
		return brailleBase
	}
	return rune(brailleBase | (c.cells[row*c.cellCols+col] & 0xFF))
}

// String renders the canvas as text: one line per cell row, each line
// holding one braille character per cell column, with leading and
// trailing whitespace trimmed. The blank braille pattern U+2800 is not
// whitespace and survives trimming.
func (c *Canvas) String() string {
	var b strings.Builder
	// Braille runes are 3 bytes in UTF-8, plus one newline per row.
	b.Grow(c.cellCols*c.cellRows*3 + c.cellRows)

	for i, w := range c.cells {
		b.WriteRune(rune(brailleBase | (w & 0xFF)))
		if i%c.cellCols == c.cellCols-1 {
			b.WriteByte('\n')
		}
	}
	return strings.TrimSpace(b.String())
}

// ColorModel returns image1bit.BitModel.
// Together with Bounds and At this makes Canvas an image.Image.
func (c *Canvas) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the canvas bounds in points.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At returns the color of the point at (x, y).
// It implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.BitAt(x, y)
}

// BitAt returns whether the point at (x, y) is set. Points outside the
// declared bounds read as Off.
func (c *Canvas) BitAt(x, y int) image1bit.Bit {
	if !(image.Point{X: x, Y: y}.In(c.Bounds())) {
		return image1bit.Off
	}
	i, ok := c.cellIndex(x, y)
	if !ok {
		return image1bit.Off
	}
	w, _ := dotWeight(x%2, y%4)
	return image1bit.Bit(c.cells[i]&w != 0)
}

// SetBit sets or clears the point at (x, y). Unlike Set and Reset this
// checks the declared bounds strictly and ignores out-of-bounds points.
func (c *Canvas) SetBit(x, y int, b image1bit.Bit) {
	if !(image.Point{X: x, Y: y}.In(c.Bounds())) {
		return
	}
	if b {
		_ = c.Set(x, y)
	} else {
		_ = c.Reset(x, y)
	}
}

// DrawImage draws src onto the canvas. The dst rectangle selects the
// destination region in point coordinates; sp is the origin within src.
// Source colors are converted through image1bit.BitModel, so any
// image.Image can be rendered to braille.
func (c *Canvas) DrawImage(dst image.Rectangle, src image.Image, sp image.Point) {
	dst = dst.Intersect(c.Bounds())
	if dst.Empty() {
		return
	}

	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			p := sp.Add(image.Pt(x-dst.Min.X, y-dst.Min.Y))
			bit := image1bit.BitModel.Convert(src.At(p.X, p.Y)).(image1bit.Bit)
			c.SetBit(x, y, bit)
		}
	}
}
