package braille

// Braille block base code point. The block spans exactly 256 contiguous
// code points, one per 8-dot pattern, so base|dots is always a valid rune.
const brailleBase = 0x2800

// dotWeights maps a local dot index (y + 4*x for x in [0,2), y in [0,4))
// to its bit value. The order follows Unicode's braille dot numbering:
// dots 1,2,3,7 are the left column top to bottom, dots 4,5,6,8 the right.
// It is NOT a plain left shift.
var dotWeights = [8]uint32{1, 2, 4, 64, 8, 16, 32, 128}

// dotWeight returns the bit value for the dot at local coordinate (x, y)
// within a cell. ok is false when the coordinate does not address one of
// the 8 dots. Shared by Cell and Canvas so the two cannot drift apart.
func dotWeight(x, y int) (weight uint32, ok bool) {
	// x > 1 or y > 7 always puts y + 4*x past the 8 weights; rejecting
	// them first keeps the index arithmetic from overflowing for
	// coordinates near the int maximum.
	if x < 0 || y < 0 || x > 1 || y > 7 {
		return 0, false
	}
	i := y + 4*x
	if i >= len(dotWeights) {
		return 0, false
	}
	return dotWeights[i], true
}

// Cell is one braille character's worth of state: a 2x4 grid of dots.
//
// (0,0) is the top left dot, (1,3) the bottom right. The dot layout by
// local index is:
//
//	(0) (4)
//	(1) (5)
//	(2) (6)
//	(3) (7)
//
// The zero value is a blank cell. Cell is a small value type and is
// comparable with ==.
type Cell struct {
	dots uint8

	// ext carries bits 8-31 of the raw data word. Reserved for a future
	// color extension; never rendered and never set by dot operations.
	ext uint32
}

// NewCell returns a blank cell.
func NewCell() Cell {
	return Cell{}
}

// NewCellWithData returns a cell whose dot pattern equals the given byte.
func NewCellWithData(data byte) Cell {
	return Cell{dots: data}
}

// SetData replaces the full raw data word. Only the low 8 bits affect
// rendering; the remaining 24 are stored verbatim in the reserved
// extension field.
func (c *Cell) SetData(raw uint32) {
	c.dots = uint8(raw)
	c.ext = raw &^ 0xFF
}

// Data returns the full raw data word, reserved extension bits included.
func (c *Cell) Data() uint32 {
	return c.ext | uint32(c.dots)
}

// Set sets the dot at (x, y). Returns an *IndexError if the coordinate
// does not address one of the cell's 2x4 dots.
func (c *Cell) Set(x, y int) error {
	w, ok := dotWeight(x, y)
	if !ok {
		return &IndexError{BoundX: 2, BoundY: 4, X: x, Y: y}
	}
	c.dots |= uint8(w)
	return nil
}

// Reset clears the dot at (x, y). Same bounds behavior as Set.
func (c *Cell) Reset(x, y int) error {
	w, ok := dotWeight(x, y)
	if !ok {
		return &IndexError{BoundX: 2, BoundY: 4, X: x, Y: y}
	}
	c.dots &^= uint8(w)
	return nil
}

// Flip toggles the dot at (x, y). Same bounds behavior as Set.
func (c *Cell) Flip(x, y int) error {
	w, ok := dotWeight(x, y)
	if !ok {
		return &IndexError{BoundX: 2, BoundY: 4, X: x, Y: y}
	}
	c.dots ^= uint8(w)
	return nil
}

// SetAll sets all 8 dots.
func (c *Cell) SetAll() {
	c.dots = 0xFF
}

// ResetAll clears all 8 dots.
func (c *Cell) ResetAll() {
	c.dots = 0
}

// FlipAll toggles all 8 dots.
func (c *Cell) FlipAll() {
	c.dots ^= 0xFF
}

// Rune returns the braille character for the cell's dot pattern.
func (c Cell) Rune() rune {
	return rune(brailleBase | uint32(c.dots))
}

// String renders the cell as a single braille character.
func (c Cell) String() string {
	return string(c.Rune())
}
