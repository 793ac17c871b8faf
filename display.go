package braille

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"periph.io/x/conn/v3/display"

	"github.com/flavioheleno/braille/image1bit"
)

// Opts is the configuration for a Display.
type Opts struct {
	// Display dimensions in points
	W int // Width (default: 160)
	H int // Height (default: 96)
}

// Display renders images as braille text, writing one full frame to its
// writer per Draw call. It implements the display.Drawer interface from
// periph.io, so it can stand in for a hardware display when drawing to a
// terminal or a log.
type Display struct {
	out    io.Writer
	canvas *Canvas
	halted bool
}

// NewDisplay creates a display that writes frames to out.
//
// opts can be nil to use defaults (160x96 points, 80x24 braille
// characters). Dimensions must be non-negative.
func NewDisplay(out io.Writer, opts *Opts) (*Display, error) {
	if opts == nil {
		opts = &Opts{W: 160, H: 96}
	}

	if opts.W < 0 {
		return nil, errors.New("braille: width must be non-negative")
	}
	if opts.H < 0 {
		return nil, errors.New("braille: height must be non-negative")
	}

	return &Display{
		out:    out,
		canvas: NewCanvasWithSize(opts.W, opts.H),
	}, nil
}

// ColorModel returns the color model of the display.
func (d *Display) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the display bounds in points.
func (d *Display) Bounds() image.Rectangle {
	return d.canvas.Bounds()
}

// Draw draws src onto the display and writes the resulting frame.
// The r rectangle specifies the destination region in point coordinates;
// sp is the origin within src. Every call writes a full frame; there is
// no differential update.
func (d *Display) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("braille: halted")
	}

	d.canvas.DrawImage(r, src, sp)
	return d.writeFrame()
}

// Clear blanks the display and writes an empty frame.
func (d *Display) Clear() error {
	if d.halted {
		return errors.New("braille: halted")
	}

	d.canvas.ResetAll()
	return d.writeFrame()
}

// writeFrame writes the current canvas contents as one frame.
func (d *Display) writeFrame() error {
	if _, err := io.WriteString(d.out, d.canvas.String()+"\n"); err != nil {
		return fmt.Errorf("braille: failed to write frame: %w", err)
	}
	return nil
}

// Halt stops the display. After calling Halt, Draw and Clear fail.
func (d *Display) Halt() error {
	d.halted = true
	return nil
}

// String returns a string representation of the display.
func (d *Display) String() string {
	return fmt.Sprintf("braille.Display{%dx%d}", d.canvas.Width(), d.canvas.Height())
}

var _ display.Drawer = (*Display)(nil)
