package gridgraph

import "errors"

var (
	// ErrGridNil indicates a nil *grid.Grid.
	ErrGridNil = errors.New("gridgraph: grid is nil")
	// ErrOutOfBounds indicates a start coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
