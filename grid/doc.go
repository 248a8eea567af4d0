// Package grid implements a two-dimensional grid of single-character tiles.
//
// What:
//
//   - Grid stores tiles as a flat, row-major []rune plus a width.
//   - Coordinate access (Get, Set) never fails: out-of-range reads report
//     absence, out-of-range writes are ignored and reported as false.
//   - Fill performs an iterative 8-connected flood fill.
//   - Neighbors enumerates the in-bounds 8-directional neighbours of a tile
//     in a fixed order: up, right, down, left, down-right, up-right,
//     up-left, down-left.
//   - Parse and String convert between a Grid and its text form: one row
//     per line, every line terminated by '\n'.
//
// Why:
//
//   - Mazes and puzzles: load a map from text, mark rooms, count tiles.
//   - Terminal maps: mutate in place, render back to text.
//   - Simulations: cheap neighbourhood queries over a dense buffer.
//
// Complexity:
//
//   - Get, Set, InBounds: O(1).
//   - Neighbors:          O(1) (at most 8 points).
//   - Fill:               O(R) time and stack memory, R = size of the filled region.
//   - Count, String:      O(W×H).
//
// Errors:
//
//   - ErrDegenerateDimensions: width <= 0 or height < 0 at construction.
//   - ErrEmptyInput: Parse was given no rows, or an empty first row.
//   - ErrNonRectangular: a parsed row differs in length from the first row.
//
// ErrEmptyInput and ErrNonRectangular both match ErrMalformedInput.
// A Grid is not safe for concurrent use; callers that share one must
// serialize access themselves.
package grid
