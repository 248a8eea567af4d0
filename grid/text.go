package grid

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Parse builds a grid from text, one row per line.
//
// Lines are separated by '\n'; a trailing '\r' on a line is dropped and a
// final newline does not start an extra row. The width is the rune count
// of the first line and every other line must match it.
//
// Returns ErrEmptyInput if text has no rows or an empty first row,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(len(text)).
func Parse(text string) (*Grid, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyInput
	}
	lines := strings.Split(text, "\n")
	width := utf8.RuneCountInString(strings.TrimSuffix(lines[0], "\r"))
	if width == 0 {
		return nil, ErrEmptyInput
	}

	tiles := make([]rune, 0, width*len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrNonRectangular, y, n, width)
		}
		tiles = append(tiles, []rune(line)...)
	}

	return &Grid{width: width, tiles: tiles}, nil
}

// String renders the grid as text: each row on its own line, every line
// terminated by '\n', the last one included.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.tiles) + g.Height())
	for y := 0; y < g.Height(); y++ {
		sb.WriteString(g.row(y))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler using the String format.
func (g *Grid) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
// On error g is left unchanged.
func (g *Grid) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = *parsed

	return nil
}

// WriteTo implements io.WriterTo, writing the String format row by row.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for y := 0; y < g.Height(); y++ {
		n, err := io.WriteString(w, g.row(y)+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// row returns row y as a string.
func (g *Grid) row(y int) string {
	start := y * g.width

	return string(g.tiles[start : start+g.width])
}
