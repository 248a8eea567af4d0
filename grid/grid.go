package grid

import "fmt"

// FilledWith allocates a width×height grid with every tile set to tile.
// A zero height is allowed and yields an empty grid that still reports its width.
// Returns ErrDegenerateDimensions if width <= 0 or height < 0.
// Complexity: O(W×H) time and memory.
func FilledWith(width, height int, tile rune) (*Grid, error) {
	if width <= 0 || height < 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDegenerateDimensions, width, height)
	}
	tiles := make([]rune, width*height)
	for i := range tiles {
		tiles[i] = tile
	}

	return &Grid{width: width, tiles: tiles}, nil
}

// New allocates a width×height grid filled with DefaultTile.
func New(width, height int) (*Grid, error) {
	return FilledWith(width, height, DefaultTile)
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	if g.width == 0 {
		return 0 // zero value
	}

	return len(g.tiles) / g.width
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Both axes are checked, so an x past the last column never wraps
// into the next row.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.Height()
}

// Get returns the tile at (x,y). The boolean is false when (x,y) is out of bounds.
func (g *Grid) Get(x, y int) (rune, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}

	return g.tiles[g.index(x, y)], true
}

// Set writes tile at (x,y) and reports whether the write happened.
// Out-of-bounds coordinates are ignored.
func (g *Grid) Set(x, y int, tile rune) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.tiles[g.index(x, y)] = tile

	return true
}

// Count returns the number of tiles equal to tile.
// Complexity: O(W×H).
func (g *Grid) Count(tile rune) int {
	n := 0
	for _, t := range g.tiles {
		if t == tile {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	tiles := make([]rune, len(g.tiles))
	copy(tiles, g.tiles)

	return &Grid{width: g.width, tiles: tiles}
}

// Equal reports whether g and other have the same dimensions and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || len(g.tiles) != len(other.tiles) {
		return false
	}
	for i, t := range g.tiles {
		if other.tiles[i] != t {
			return false
		}
	}

	return true
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}
