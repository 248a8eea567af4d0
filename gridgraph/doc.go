// Package gridgraph treats a *grid.Grid as a graph of tiles and finds its
// regions: maximal groups of equal tiles joined by 8-directional adjacency.
//
// What:
//
//   - Regions lists every region of the grid.
//   - RegionAt returns the region containing one tile.
//   - CountRegions counts the regions made of a given tile.
//
// Why:
//
//   - Mazes: count separate rooms, find unreachable pockets.
//   - Maps: measure lakes, islands and other contiguous terrain.
//
// Connectivity is the grid's fixed 8-neighbour model (grid.Neighbors), so a
// region may pass between two tiles that only touch at a corner.
//
// Complexity:
//
//   - Regions, CountRegions: O(W×H×8), Memory: O(W×H).
//   - RegionAt:              O(R×8),   Memory: O(W×H), R = region size.
//
// Errors:
//
//   - ErrGridNil: a nil grid was passed to RegionAt.
//   - ErrOutOfBounds: the RegionAt start tile lies outside the grid.
package gridgraph
