package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/grid"
)

// mustParse builds a grid from text or fails the test.
func mustParse(t *testing.T, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)

	return g
}

// TestFill_Scenarios runs flood fills over small maps and compares the rendered result.
func TestFill_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		x, y   int
		tile   rune
		want   string
		filled int
	}{
		{
			// The inner block is replaced; the dots around it stop the fill
			// before it reaches the outer wall.
			name: "InnerBlock",
			in:   "########\n#......#\n#.####.#\n#.####.#\n#......#\n########",
			x:    2, y: 2, tile: '.',
			want:   "########\n#......#\n#......#\n#......#\n#......#\n########\n",
			filled: 8,
		},
		{
			name: "EverythingDiffers",
			in:   "#..#\n####",
			x:    1, y: 0, tile: '+',
			want:   "++++\n++++\n",
			filled: 8,
		},
		{
			name: "WallOfFillTiles",
			in:   "..#..\n..#..\n..#..",
			x:    0, y: 0, tile: '#',
			want:   "###..\n###..\n###..\n",
			filled: 6,
		},
		{
			// Orthogonal steps are blocked, the diagonal one is not.
			name: "DiagonalStep",
			in:   "o#\n#o",
			x:    0, y: 0, tile: '#',
			want:   "##\n##\n",
			filled: 2,
		},
		{
			name: "EnclosedRoomStaysUntouched",
			in:   ".....\n.###.\n.#o#.\n.###.\n.....",
			x:    0, y: 0, tile: '#',
			want:   "#####\n#####\n##o##\n#####\n#####\n",
			filled: 16,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.in)
			n := g.Fill(tc.x, tc.y, tc.tile)
			if diff := cmp.Diff(tc.want, g.String()); diff != "" {
				t.Errorf("Fill(%d,%d,%q) mismatch (-want +got):\n%s", tc.x, tc.y, tc.tile, diff)
			}
			assert.Equal(t, tc.filled, n)
		})
	}
}

// TestFill_Idempotent checks that a second identical fill changes nothing.
func TestFill_Idempotent(t *testing.T) {
	once := mustParse(t, "#..#.\n.##..\n#...#\n..#.#")
	twice := once.Clone()

	once.Fill(1, 0, '*')
	twice.Fill(1, 0, '*')
	assert.Zero(t, twice.Fill(1, 0, '*'))

	assert.True(t, once.Equal(twice), "once:\n%s\ntwice:\n%s", once, twice)
}

// TestFill_StartAlreadyFilled leaves the grid alone when the start tile already matches.
func TestFill_StartAlreadyFilled(t *testing.T) {
	g := mustParse(t, "#.\n.#")
	assert.Zero(t, g.Fill(0, 0, '#'))
	assert.Equal(t, "#.\n.#\n", g.String())
}

func TestFill_OutOfBoundsStart(t *testing.T) {
	g := mustParse(t, "..\n..")
	for _, p := range []grid.Point{{2, 0}, {0, 2}, {-1, 0}, {2, 1}} {
		assert.Zero(t, g.Fill(p.X, p.Y, '#'), "Fill(%d,%d)", p.X, p.Y)
	}
	assert.Equal(t, "..\n..\n", g.String())
}

// TestFill_LargeGrid floods a big grid to make sure the iterative walk covers every tile.
func TestFill_LargeGrid(t *testing.T) {
	const n = 512
	g, err := grid.New(n, n)
	require.NoError(t, err)

	assert.Equal(t, n*n, g.Fill(n/2, n/2, '.'))
	assert.Equal(t, n*n, g.Count('.'))
}
