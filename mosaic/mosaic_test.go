package mosaic_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jigsaw/assemble"
	"github.com/katalvlaran/jigsaw/builder"
	"github.com/katalvlaran/jigsaw/gridgraph"
	"github.com/katalvlaran/jigsaw/mosaic"
	"github.com/katalvlaran/jigsaw/tile"
)

// stamp turns on the required cells of pat with its top-left at (x0, y0).
func stamp(img tile.Grid, pat mosaic.Pattern, x0, y0 int) {
	for y, row := range pat.Mask() {
		for x, on := range row {
			if on {
				img[y0+y][x0+x] = true
			}
		}
	}
}

// twoMonsters is a 20×20 image with monsters at (0,0) and (0,10) and one
// stray pixel in the bottom-right corner.
func twoMonsters() tile.Grid {
	img := tile.NewGrid(20)
	stamp(img, mosaic.SeaMonster, 0, 0)
	stamp(img, mosaic.SeaMonster, 0, 10)
	img[19][19] = true

	return img
}

func TestParsePattern(t *testing.T) {
	m := mosaic.SeaMonster
	assert.Equal(t, 20, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, 15, m.Len())
	assert.Equal(t, 15, m.Mask().Count())

	p, err := mosaic.ParsePattern("\n.#\n# \n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Width())
	assert.Equal(t, 2, p.Height())
	assert.Equal(t, 2, p.Len())

	for _, bad := range []string{"", "   \n  ", "#x#"} {
		_, err := mosaic.ParsePattern(bad)
		assert.ErrorIs(t, err, mosaic.ErrBadPattern, "%q", bad)
	}
	assert.Panics(t, func() { mosaic.MustPattern("") })
}

func TestSearch_Upright(t *testing.T) {
	img := twoMonsters()

	res, err := mosaic.Search(img, mosaic.SeaMonster)
	require.NoError(t, err)
	assert.Equal(t, tile.Identity, res.Op)
	assert.Equal(t, 2, res.Count())
	assert.Equal(t, []gridgraph.Cell{{X: 0, Y: 0}, {X: 0, Y: 10}}, res.Matches)
	assert.Equal(t, 1, res.Roughness)
}

func TestSearch_EveryOrientation(t *testing.T) {
	base := twoMonsters()
	for _, op := range tile.Ops() {
		img := base.Apply(op)
		res, err := mosaic.Search(img, mosaic.SeaMonster)
		require.NoError(t, err, op.String())
		assert.True(t, img.Apply(res.Op).Equal(base), "%s undone by %s", op, res.Op)
		assert.Equal(t, 2, res.Count())
		assert.Equal(t, 1, res.Roughness)
	}
	res, err := mosaic.Search(base.Apply(tile.Rotate90), mosaic.SeaMonster)
	require.NoError(t, err)
	assert.Equal(t, tile.Rotate270, res.Op)
}

// TestSearch_Overlap counts overlapping matches separately but their
// pixels once.
func TestSearch_Overlap(t *testing.T) {
	pat := mosaic.MustPattern("##")
	img, err := tile.ParseGrid("###\n...\n...")
	require.NoError(t, err)

	res, err := mosaic.Search(img, pat)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count())
	assert.Equal(t, 0, res.Roughness)
}

func TestSearch_Errors(t *testing.T) {
	img := tile.NewGrid(20)
	img[3][4] = true
	res, err := mosaic.Search(img, mosaic.SeaMonster)
	assert.ErrorIs(t, err, mosaic.ErrNotFound)
	assert.Equal(t, 1, res.Roughness)

	_, err = mosaic.Search(tile.Grid{{true, false}}, mosaic.SeaMonster)
	assert.ErrorIs(t, err, mosaic.ErrNotSquare)
}

func TestHighlight(t *testing.T) {
	img := twoMonsters()
	res, err := mosaic.Search(img, mosaic.SeaMonster)
	require.NoError(t, err)

	out := mosaic.Highlight(img, mosaic.SeaMonster, res)
	assert.Equal(t, 30, strings.Count(out, "O"))
	assert.Equal(t, 1, strings.Count(out, "#"))
	assert.Len(t, strings.Split(out, "\n"), 20)
}

func TestStitch_NoInterior(t *testing.T) {
	small, err := tile.Parse("Tile 7:\n#.\n.#")
	require.NoError(t, err)
	p, err := assemble.Assemble([]tile.Tile{small})
	require.NoError(t, err)

	_, err = mosaic.Stitch(p)
	assert.ErrorIs(t, err, mosaic.ErrNoInterior)
	assert.NotErrorIs(t, err, tile.ErrEdgeWidth)
}

// TestSearch_Sample runs the published nine-tile puzzle end to end.
func TestSearch_Sample(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "testdata", "sample.txt"))
	require.NoError(t, err)
	tiles, err := tile.ParseAll(string(raw))
	require.NoError(t, err)
	p, err := assemble.Assemble(tiles)
	require.NoError(t, err)

	img, err := mosaic.Stitch(p)
	require.NoError(t, err)
	require.Len(t, img, 24)

	res, err := mosaic.Search(img, mosaic.SeaMonster)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count())
	assert.Equal(t, 273, res.Roughness)
}

func TestStitch_Incomplete(t *testing.T) {
	p, err := assemble.NewPlacement(2, 10)
	require.NoError(t, err)

	_, err = mosaic.Stitch(p)
	assert.ErrorIs(t, err, mosaic.ErrIncomplete)
}

// TestStitch_Generated assembles a generated puzzle with stamped monsters on
// a blank background and finds every one of them.
func TestStitch_Generated(t *testing.T) {
	const monsters = 3
	pz, err := builder.Generate(
		builder.WithSize(4),
		builder.WithSeed(99),
		builder.WithDensity(0),
		builder.WithStamp(mosaic.SeaMonster.Mask(), monsters),
	)
	require.NoError(t, err)
	require.Equal(t, monsters, pz.Stamped)

	tiles, err := tile.ParseAll(pz.Text())
	require.NoError(t, err)
	p, err := assemble.Assemble(tiles)
	require.NoError(t, err)

	img, err := mosaic.Stitch(p)
	require.NoError(t, err)
	require.Len(t, img, 4*(pz.Side-2))

	oriented := false
	for _, op := range tile.Ops() {
		if img.Apply(op).Equal(pz.Image) {
			oriented = true
		}
	}
	assert.True(t, oriented, "stitched image is not a symmetry of the ground truth")

	res, err := mosaic.Search(img, mosaic.SeaMonster)
	require.NoError(t, err)
	assert.Equal(t, monsters, res.Count())
	assert.Equal(t, pz.Image.Count()-monsters*mosaic.SeaMonster.Len(), res.Roughness)
}
