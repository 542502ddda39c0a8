// SPDX-License-Identifier: MIT
package builder

import (
	"sort"
	"strings"

	"github.com/katalvlaran/jigsaw/tile"
)

// Puzzle is a generated instance together with its known solution.
type Puzzle struct {
	Size int // tiles per row and column
	Side int // tile side

	// Tiles in input order: shuffled and randomly oriented.
	Tiles []tile.Tile

	// Layout[y][x] is the ID placed at (x, y) in the generation frame.
	Layout [][]uint64

	// Image is the ground truth obtained by joining the tile interiors in
	// the generation frame; a solver may recover it in any orientation.
	Image tile.Grid

	// Stamped is the number of stamps placed into Image.
	Stamped int
}

// Corners returns the IDs at the four layout corners, ascending.
// For a 1×1 puzzle it returns the single ID.
func (p *Puzzle) Corners() []uint64 {
	m := p.Size - 1
	set := map[uint64]struct{}{
		p.Layout[0][0]: {}, p.Layout[0][m]: {},
		p.Layout[m][0]: {}, p.Layout[m][m]: {},
	}
	out := make([]uint64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// CornerProduct multiplies the corner IDs.
func (p *Puzzle) CornerProduct() uint64 {
	prod := uint64(1)
	for _, id := range p.Corners() {
		prod *= id
	}

	return prod
}

// Text renders the tiles in the puzzle input format.
func (p *Puzzle) Text() string {
	blocks := make([]string, len(p.Tiles))
	for i, t := range p.Tiles {
		blocks[i] = t.String()
	}

	return strings.Join(blocks, "\n\n") + "\n"
}
