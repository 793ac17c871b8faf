// Package image1bit provides a 1-bit color type for black and white
// rendering surfaces.
//
// A braille canvas can only show a dot as on or off, so images drawn onto
// one are converted to Bit first. This package provides the Bit color type
// and the BitModel for converting standard Go colors to it.
package image1bit

import "image/color"

// Bit is a 1-bit color: a dot is either On or Off.
type Bit bool

const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the bit to standard RGBA. On is white, Off is black.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard grayscale conversion: 0.299R + 0.587G + 0.114B
	// RGBA returns 16-bit values, threshold at mid intensity
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)
