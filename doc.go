// Package tilegrid is a small toolkit for two-dimensional character grids:
// mazes, puzzle boards and terminal-rendered maps.
//
// What is tilegrid?
//
//	A dependency-light library built from two packages:
//		• grid:      the Grid type — row-major rune storage, bounds-checked
//		             Get/Set, 8-directional Neighbors, iterative flood Fill,
//		             Count, and a plain-text codec (Parse / String).
//		• gridgraph: region analysis on top of a Grid — 8-connected groups of
//		             equal tiles (rooms, islands, lakes).
//
// Text format:
//
//	########
//	#......#
//	#.####.#
//	########
//
// One row per line, every line the same length, every line terminated by
// '\n' when rendered. Parse rejects empty or ragged input.
//
// Concurrency: a Grid is a plain value with no locks; share it across
// goroutines only behind your own mutex.
//
//	go get github.com/katalvlaran/tilegrid
package tilegrid
