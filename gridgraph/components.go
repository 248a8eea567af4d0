package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/tilegrid/grid"
)

// Regions finds all regions of equal tiles in g.
// Regions are returned in row-major order of their first tile; the tiles of
// each region are listed in BFS order from that first tile.
// A nil grid has no regions.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and output.
func Regions(g *grid.Grid) [][]grid.Point {
	if g == nil {
		return nil
	}
	seen := make([]bool, g.Width()*g.Height())
	var regions [][]grid.Point

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if seen[y*g.Width()+x] {
				continue
			}
			regions = append(regions, collect(g, seen, x, y))
		}
	}

	return regions
}

// RegionAt returns the region containing (x,y), starting with (x,y) itself.
// Returns ErrGridNil for a nil grid and ErrOutOfBounds if (x,y) is outside it.
func RegionAt(g *grid.Grid, x, y int) ([]grid.Point, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, g.Width(), g.Height())
	}
	seen := make([]bool, g.Width()*g.Height())

	return collect(g, seen, x, y), nil
}

// CountRegions returns how many regions consist of tile.
func CountRegions(g *grid.Grid, tile rune) int {
	n := 0
	for _, r := range Regions(g) {
		if t, _ := g.Get(r[0].X, r[0].Y); t == tile {
			n++
		}
	}

	return n
}

// collect runs a BFS from (x,y) over tiles equal to it, marking them in seen.
// (x,y) must be in bounds and not yet seen.
func collect(g *grid.Grid, seen []bool, x, y int) []grid.Point {
	w := g.Width()
	tile, _ := g.Get(x, y)
	seen[y*w+x] = true
	queue := []grid.Point{{X: x, Y: y}}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Neighbors(u.X, u.Y) {
			vi := v.Y*w + v.X
			if seen[vi] {
				continue
			}
			if t, _ := g.Get(v.X, v.Y); t != tile {
				continue
			}
			seen[vi] = true
			queue = append(queue, v)
		}
	}

	return queue
}
