// Package braille renders 2D point grids as Unicode braille characters.
//
// Each braille character covers a 2x4 block of points, so a terminal cell
// can display 8 "pixels". The package packs points into 8-dot cells and
// renders them as text drawn from the braille block (U+2800-U+28FF).
//
// # Types
//
// - Cell: one braille character's worth of state, a 2x4 grid of dots
// - Canvas: a rectangular grid of points backed by an array of cells
// - Display: a display.Drawer (periph.io) that writes frames as text
//
// # Coordinates
//
// All coordinates are in points with (0, 0) at the top left. A canvas of
// width w and height h holds ceil(w/2) by ceil(h/4) braille characters.
// Within a cell the 8 dots follow Unicode's braille dot numbering, which
// is why the dot bit values are a permutation rather than a plain shift:
//
//	dot 1 (bit 0x01)   dot 4 (bit 0x08)
//	dot 2 (bit 0x02)   dot 5 (bit 0x10)
//	dot 3 (bit 0x04)   dot 6 (bit 0x20)
//	dot 7 (bit 0x40)   dot 8 (bit 0x80)
//
// # Basic Usage
//
// Plot a sine wave and print it:
//
//	c := braille.NewCanvasWithSize(160, 32)
//	for x := 0; x < 160; x++ {
//		y := 16 + int(14*math.Sin(float64(x)/8))
//		c.Set(x, y)
//	}
//	fmt.Println(c)
//
// Individual cells can be manipulated directly:
//
//	var cell braille.Cell
//	cell.Set(0, 0)
//	cell.Set(1, 3)
//	fmt.Println(cell) // one braille character
//
// # Error Handling
//
// Point operations on a Cell or Canvas return an *IndexError when the
// coordinate falls outside the addressable bounds. Checks precede
// mutation, so a failed operation never changes state. All-point
// operations (SetAll, ResetAll, FlipAll) cannot fail.
//
// # Drawing Images
//
// Canvas implements image.Image using the 1-bit color type from the
// image1bit subpackage, and DrawImage renders any image.Image onto a
// canvas through image1bit.BitModel:
//
//	c := braille.NewCanvasWithSize(64, 64)
//	c.DrawImage(c.Bounds(), img, image.Point{})
//	fmt.Println(c)
//
// # Terminal Output
//
// The term subpackage draws a Canvas onto a tcell screen, one terminal
// cell per braille character. The Display type offers a periph.io
// display.Drawer over any io.Writer instead:
//
//	d, _ := braille.NewDisplay(os.Stdout, &braille.Opts{W: 160, H: 96})
//	defer d.Halt()
//	d.Draw(d.Bounds(), img, image.Point{})
//
// # Concurrency
//
// The package has no internal locking. A Cell or Canvas shared between
// goroutines must be guarded by the caller.
package braille
