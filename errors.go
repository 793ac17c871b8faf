package braille

import "fmt"

// IndexError reports a point coordinate outside the addressable bounds of
// a Cell or Canvas. BoundX and BoundY are the exclusive upper bounds of
// the target (2 and 4 for a standalone cell, the declared width and height
// for a canvas); X and Y are the offending coordinate.
//
// Bounds checks always precede mutation, so an IndexError means the target
// is unchanged.
type IndexError struct {
	BoundX, BoundY int
	X, Y           int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("braille: invalid index (expected x<%d, y<%d but got x=%d, y=%d)",
		e.BoundX, e.BoundY, e.X, e.Y)
}
