package mosaic

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/assemble"
	"github.com/katalvlaran/jigsaw/gridgraph"
	"github.com/katalvlaran/jigsaw/tile"
)

// Stitch joins the tile interiors of a complete placement into one
// n(s-2)×n(s-2) image.
func Stitch(p *assemble.Placement) (tile.Grid, error) {
	if !p.Complete() {
		return nil, fmt.Errorf("%w: %d of %d cells filled", ErrIncomplete, p.Filled(), p.Lattice().Len())
	}
	in := p.Side() - 2
	if in <= 0 {
		return nil, fmt.Errorf("%w: side %d", ErrNoInterior, p.Side())
	}

	img := tile.NewGrid(p.Size() * in)
	for _, c := range p.Lattice().Cells() {
		t, _ := p.At(c)
		copyInterior(img, t.Pixels, c, in)
	}

	return img, nil
}

func copyInterior(dst, src tile.Grid, c gridgraph.Cell, in int) {
	for y := 0; y < in; y++ {
		copy(dst[c.Y*in+y][c.X*in:], src[y+1][1:1+in])
	}
}
