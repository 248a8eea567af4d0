package grid

// Fill replaces the region reachable from (x,y) with tile and returns the
// number of tiles it overwrote.
//
// The region spreads through 8-directional adjacency across every tile that
// differs from tile; it stops at tiles already equal to tile and at the grid
// edge. If (x,y) is out of bounds, or its tile already equals tile, the grid
// is left untouched and Fill returns 0.
//
// Behavior:
//  1. Push the start point on an explicit stack (no recursion).
//  2. Pop a point; skip it if an earlier pop already filled it.
//  3. Overwrite it and push every neighbour whose current tile differs.
//
// A point may sit on the stack more than once when it borders several filled
// tiles; total pushes stay below 8×W×H.
//
// Complexity: O(R) time and memory, R = tiles in the filled region.
func (g *Grid) Fill(x, y int, tile rune) int {
	start, ok := g.Get(x, y)
	if !ok || start == tile {
		return 0
	}

	filled := 0
	stack := []Point{{X: x, Y: y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i := g.index(p.X, p.Y)
		if g.tiles[i] == tile {
			continue // duplicate entry
		}
		g.tiles[i] = tile
		filled++

		for _, d := range neighborOffsets {
			nx, ny := p.X+d[0], p.Y+d[1]
			if !g.InBounds(nx, ny) || g.tiles[g.index(nx, ny)] == tile {
				continue
			}
			stack = append(stack, Point{X: nx, Y: ny})
		}
	}

	return filled
}
