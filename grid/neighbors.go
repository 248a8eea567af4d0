package grid

// Neighbors returns the in-bounds neighbours of (x,y), diagonals included,
// in the order up, right, down, left, down-right, up-right, up-left, down-left.
// Directions that leave the grid are omitted; the rest keep their relative order.
// An out-of-bounds (x,y) has no neighbours and yields nil.
// Complexity: O(1).
func (g *Grid) Neighbors(x, y int) []Point {
	if !g.InBounds(x, y) {
		return nil
	}
	nb := make([]Point, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			nb = append(nb, Point{X: nx, Y: ny})
		}
	}

	return nb
}
