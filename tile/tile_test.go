package tile_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jigsaw/tile"
)

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

// mustParse fails the test immediately when the fixture is malformed.
func mustParse(t *testing.T, block string) tile.Tile {
	t.Helper()
	tl, err := tile.Parse(block)
	require.NoError(t, err)

	return tl
}

// randomTile builds a tile of side n with pseudo-random pixels.
func randomTile(r *rand.Rand, id uint64, n int) tile.Tile {
	px := tile.NewGrid(n)
	for y := range px {
		for x := range px[y] {
			px[y][x] = r.Intn(2) == 1
		}
	}
	tl, err := tile.New(id, px)
	if err != nil {
		panic(err)
	}

	return tl
}

// TestParse_SmallTile checks the MSB-first encoding on a 3×3 tile.
func TestParse_SmallTile(t *testing.T) {
	tl := mustParse(t, `Tile 123:
		#.#
		#..
		##.`)

	assert.Equal(t, uint64(123), tl.ID)
	assert.Equal(t, 3, tl.Side())
	assert.Equal(t, tile.Edge(5), tl.Top)
	assert.Equal(t, tile.Edge(7), tl.Left)
	assert.Equal(t, tile.Edge(6), tl.Bottom)
	assert.Equal(t, tile.Edge(4), tl.Right)
}

// TestParse_SixBySix checks all four borders and the pixel grid.
func TestParse_SixBySix(t *testing.T) {
	tl := mustParse(t, `Tile 2311:
        ..##.#
        ##..#.
        #...##
        ####.#
        ##.##.
        ##...#`)

	want := tile.Grid{
		{false, false, true, true, false, true},
		{true, true, false, false, true, false},
		{true, false, false, false, true, true},
		{true, true, true, true, false, true},
		{true, true, false, true, true, false},
		{true, true, false, false, false, true},
	}
	assert.Equal(t, uint64(2311), tl.ID)
	assert.True(t, want.Equal(tl.Pixels))
	assert.Equal(t, tile.Edge(1+4+8), tl.Top)
	assert.Equal(t, tile.Edge(1+16+32), tl.Bottom)
	assert.Equal(t, tile.Edge(1+2+4+8+16), tl.Left)
	assert.Equal(t, tile.Edge(1+4+8+32), tl.Right)
	assert.Equal(t, 21, tl.Pixels.Count())
}

// TestParse_Errors verifies that malformed blocks are rejected with the right sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		block string
		err   error
	}{
		{"Empty", "", tile.ErrEmptyTile},
		{"HeaderOnly", "Tile 7:", tile.ErrEmptyTile},
		{"NoColon", "Tile 7\n#.\n.#", tile.ErrBadHeader},
		{"NotATile", "Tyle 7:\n#.\n.#", tile.ErrBadHeader},
		{"ZeroID", "Tile 0:\n#.\n.#", tile.ErrBadHeader},
		{"NegativeID", "Tile -3:\n#.\n.#", tile.ErrBadHeader},
		{"ShortRow", "Tile 7:\n##\n#", tile.ErrRaggedRow},
		{"TooManyRows", "Tile 7:\n##\n#.\n..", tile.ErrRaggedRow},
		{"TooFewRows", "Tile 7:\n###\n#..", tile.ErrRaggedRow},
		{"BadPixel", "Tile 7:\n#x\n..", tile.ErrBadPixel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tile.Parse(tc.block)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParseAll splits blocks on blank lines and enforces a common side.
func TestParseAll(t *testing.T) {
	text := "Tile 1:\n#.\n..\n\n\nTile 2:\n##\n.#\n"
	tiles, err := tile.ParseAll(text)
	require.NoError(t, err)
	require.Len(t, tiles, 2)
	assert.Equal(t, uint64(1), tiles[0].ID)
	assert.Equal(t, uint64(2), tiles[1].ID)

	_, err = tile.ParseAll("Tile 1:\n#.\n..\n\nTile 2:\n###\n...\n###")
	assert.ErrorIs(t, err, tile.ErrMixedSides)

	_, err = tile.ParseAll("\n\n  \n")
	assert.ErrorIs(t, err, tile.ErrNoTiles)

	_, err = tile.ParseAll("Tile 1:\n#.\n..\n\nTile x:\n##\n##")
	assert.ErrorIs(t, err, tile.ErrBadHeader)
}

// TestParseAll_CRLF accepts Windows line endings.
func TestParseAll_CRLF(t *testing.T) {
	tiles, err := tile.ParseAll("Tile 9:\r\n#.\r\n.#\r\n\r\nTile 10:\r\n..\r\n##\r\n")
	require.NoError(t, err)
	require.Len(t, tiles, 2)
	assert.Equal(t, tile.Edge(2), tiles[0].Top)
	assert.Equal(t, tile.Edge(3), tiles[1].Bottom)
}

// TestNew_EdgeWidth rejects sides that do not fit into an Edge.
func TestNew_EdgeWidth(t *testing.T) {
	_, err := tile.New(1, tile.NewGrid(tile.MaxSide+1))
	assert.ErrorIs(t, err, tile.ErrEdgeWidth)

	tl, err := tile.New(1, tile.NewGrid(tile.MaxSide))
	require.NoError(t, err)
	assert.Equal(t, tile.MaxSide, tl.Side())
}

// TestString_RoundTrip re-parses the rendered block.
func TestString_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		orig := randomTile(r, uint64(1000+i), 10)
		back, err := tile.Parse(orig.String())
		require.NoError(t, err)
		assert.True(t, orig.Equal(back), "tile %d", orig.ID)
	}
}

//----------------------------------------------------------------------------//
// Edges
//----------------------------------------------------------------------------//

// TestMirrorEdge covers fixed cases and the involution property.
func TestMirrorEdge(t *testing.T) {
	assert.Equal(t, tile.Edge(0b0001), tile.MirrorEdge(0b1000, 4))
	assert.Equal(t, tile.Edge(0b0101), tile.MirrorEdge(0b1010, 4))
	assert.Equal(t, tile.Edge(0b011), tile.MirrorEdge(0b110, 3))
	assert.Equal(t, tile.Edge(1), tile.MirrorEdge(1, 1))
	assert.Equal(t, tile.Edge(0), tile.MirrorEdge(0, 0))

	r := rand.New(rand.NewSource(42))
	for w := 1; w <= tile.MaxSide; w++ {
		for i := 0; i < 50; i++ {
			v := tile.Edge(r.Uint64())
			if w < tile.MaxSide {
				v &= (1 << uint(w)) - 1
			}
			assert.Equal(t, v, tile.MirrorEdge(tile.MirrorEdge(v, w), w), "w=%d v=%b", w, v)
		}
	}
}

// TestEncodeEdge checks MSB-first packing.
func TestEncodeEdge(t *testing.T) {
	assert.Equal(t, tile.Edge(0), tile.EncodeEdge(nil))
	assert.Equal(t, tile.Edge(0b1011), tile.EncodeEdge([]bool{true, false, true, true}))
	assert.True(t, tile.IsPalindrome(0b1001, 4))
	assert.False(t, tile.IsPalindrome(0b1011, 4))
}

// TestEdgeSet collapses symmetric borders.
func TestEdgeSet(t *testing.T) {
	solid := mustParse(t, "Tile 1:\n###\n###\n###")
	assert.Equal(t, []tile.Edge{7}, solid.EdgeSet())

	tl := mustParse(t, "Tile 2:\n#.#\n#..\n##.")
	// top 5 (palindrome), right 4/1, bottom 6/3, left 7 (palindrome)
	assert.Equal(t, []tile.Edge{1, 3, 4, 5, 6, 7}, tl.EdgeSet())
}

//----------------------------------------------------------------------------//
// Transform
//----------------------------------------------------------------------------//

// TestTransform_Known compares every operation against a hand-drawn result.
func TestTransform_Known(t *testing.T) {
	src := mustParse(t, "Tile 123:\n#.#\n#..\n##.")
	cases := []struct {
		op   tile.Op
		want string
	}{
		{tile.Identity, "#.#\n#..\n##."},
		{tile.FlipHorizontal, "#.#\n..#\n.##"},
		{tile.FlipVertical, "##.\n#..\n#.#"},
		{tile.Rotate90, "###\n#..\n..#"},
		{tile.Rotate180, ".##\n..#\n#.#"},
		{tile.Rotate270, "#..\n..#\n###"},
		{tile.FlipDiagonalMain, "###\n..#\n#.."},
		{tile.FlipDiagonalAnti, "..#\n#..\n###"},
	}
	for _, tc := range cases {
		t.Run(tc.op.String(), func(t *testing.T) {
			want := mustParse(t, "Tile 123:\n"+tc.want)
			got := src.Transform(tc.op)
			assert.True(t, want.Equal(got), "got\n%s\nwant\n%s", got, want)
		})
	}
}

// TestTransform_EdgesMatchPixels re-encodes the transformed pixels for every
// operation and compares with the algebraically updated edges.
func TestTransform_EdgesMatchPixels(t *testing.T) {
	r := rand.New(rand.NewSource(2020))
	for _, n := range []int{1, 2, 3, 10, 17} {
		for i := 0; i < 25; i++ {
			src := randomTile(r, uint64(i+1), n)
			for _, op := range tile.Ops() {
				got := src.Transform(op)
				top, right, bottom, left := got.Pixels.Borders()
				require.Equal(t, top, got.Top, "n=%d op=%s", n, op)
				require.Equal(t, right, got.Right, "n=%d op=%s", n, op)
				require.Equal(t, bottom, got.Bottom, "n=%d op=%s", n, op)
				require.Equal(t, left, got.Left, "n=%d op=%s", n, op)
				require.Equal(t, src.ID, got.ID)
			}
		}
	}
}

// TestTransform_GroupClosure checks that four quarter turns and any double
// flip return the original tile, and that Identity is a no-op.
func TestTransform_GroupClosure(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	flips := []tile.Op{tile.FlipVertical, tile.FlipHorizontal, tile.FlipDiagonalMain, tile.FlipDiagonalAnti}
	for i := 0; i < 30; i++ {
		src := randomTile(r, uint64(i+1), 10)

		assert.True(t, src.Equal(src.Transform(tile.Identity)))

		rot := src
		for k := 0; k < 4; k++ {
			rot = rot.Transform(tile.Rotate90)
		}
		assert.True(t, src.Equal(rot))

		for _, f := range flips {
			assert.True(t, src.Equal(src.Transform(f).Transform(f)), "flip %s", f)
		}

		assert.True(t, src.Transform(tile.Rotate180).Equal(src.Transform(tile.Rotate90).Transform(tile.Rotate90)))
		assert.True(t, src.Transform(tile.Rotate270).Equal(src.Transform(tile.Rotate180).Transform(tile.Rotate90)))
		assert.True(t, src.Transform(tile.FlipDiagonalMain).Equal(src.Transform(tile.Rotate90).Transform(tile.FlipHorizontal)))
		assert.True(t, src.Transform(tile.FlipDiagonalAnti).Equal(src.Transform(tile.Rotate90).Transform(tile.FlipVertical)))
	}
}

// TestTransform_DoesNotMutate ensures the source tile keeps its pixels.
func TestTransform_DoesNotMutate(t *testing.T) {
	src := mustParse(t, "Tile 5:\n#..\n...\n...")
	before := src.Pixels.Clone()
	for _, op := range tile.Ops() {
		_ = src.Transform(op)
	}
	assert.True(t, before.Equal(src.Pixels))
}

// TestOp_String names valid ops and formats unknown ones.
func TestOp_String(t *testing.T) {
	assert.Len(t, tile.Ops(), 8)
	assert.Equal(t, "Rotate90", tile.Rotate90.String())
	assert.Equal(t, "Op(42)", tile.Op(42).String())
	assert.False(t, tile.Op(8).Valid())
}

// TestParseGrid accepts rectangular grids and rejects ragged ones.
func TestParseGrid(t *testing.T) {
	g, err := tile.ParseGrid("#..#\n.##.")
	require.NoError(t, err)
	require.Len(t, g, 2)
	assert.Equal(t, 4, g.Count())

	_, err = tile.ParseGrid("#..\n.#")
	assert.ErrorIs(t, err, tile.ErrRaggedRow)
}

// TestCompose checks the product table against pixel transforms.
func TestCompose(t *testing.T) {
	tl, err := tile.Parse("Tile 5:\n##.#\n#...\n..#.\n.###")
	require.NoError(t, err)

	for _, a := range tile.Ops() {
		for _, b := range tile.Ops() {
			want := tl.Transform(a).Transform(b)
			got := tl.Transform(tile.Compose(a, b))
			assert.True(t, want.Equal(got), "%s then %s", a, b)
		}
		assert.Equal(t, tile.Identity, tile.Compose(a, a.Inverse()), a.String())
	}
	assert.Equal(t, tile.Rotate180, tile.Compose(tile.Rotate90, tile.Rotate90))
	assert.Equal(t, tile.Rotate270, tile.Rotate90.Inverse())
	assert.Equal(t, tile.FlipDiagonalMain, tile.FlipDiagonalMain.Inverse())
}
