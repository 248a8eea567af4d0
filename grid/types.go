package grid

import (
	"errors"
	"fmt"
)

// DefaultTile is the tile New fills a grid with.
const DefaultTile = '#'

// Sentinel errors for grid construction.
var (
	// ErrDegenerateDimensions indicates a non-positive width or a negative height.
	ErrDegenerateDimensions = errors.New("grid: width must be positive and height non-negative")

	// ErrMalformedInput is the parent of every text parsing error.
	ErrMalformedInput = errors.New("grid: malformed input")

	// ErrEmptyInput indicates the text has no rows, or its first row is empty.
	ErrEmptyInput = fmt.Errorf("%w: input has no rows to take the width from", ErrMalformedInput)

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
)

// Point is a tile coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// Grid is a rectangular, row-major buffer of tiles.
//
// The zero value is not usable; build grids with FilledWith, New or Parse.
// Assigning a Grid shares its buffer, use Clone for an independent copy.
type Grid struct {
	width int
	tiles []rune
}

// neighborOffsets lists the 8 directions in enumeration order:
// up, right, down, left, down-right, up-right, up-left, down-left.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, 1}, {1, -1}, {-1, -1}, {-1, 1},
}
