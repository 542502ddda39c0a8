package assemble

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/jigsaw/gridgraph"
	"github.com/katalvlaran/jigsaw/tile"
)

// Placement maps lattice cells to oriented tiles. Cells are filled once and
// never overwritten; a tile ID appears at most once.
type Placement struct {
	lattice *gridgraph.Lattice
	side    int
	cells   []tile.Tile
	filled  []bool
	used    map[uint64]gridgraph.Cell
}

// NewPlacement returns an empty n×n placement for tiles of the given side.
func NewPlacement(n, side int) (*Placement, error) {
	l, err := gridgraph.NewLattice(n, n)
	if err != nil {
		return nil, err
	}

	return &Placement{
		lattice: l,
		side:    side,
		cells:   make([]tile.Tile, l.Len()),
		filled:  make([]bool, l.Len()),
		used:    make(map[uint64]gridgraph.Cell, l.Len()),
	}, nil
}

// Size returns n, the number of tiles per row and column.
func (p *Placement) Size() int { return p.lattice.Width }

// Side returns the tile side.
func (p *Placement) Side() int { return p.side }

// Lattice returns the underlying cell lattice.
func (p *Placement) Lattice() *gridgraph.Lattice { return p.lattice }

// At returns the tile at c, if any.
func (p *Placement) At(c gridgraph.Cell) (tile.Tile, bool) {
	if !p.lattice.InBounds(c) {
		return tile.Tile{}, false
	}
	i := p.lattice.Index(c)

	return p.cells[i], p.filled[i]
}

// Place stores t at c.
// Errors: gridgraph.ErrOutOfBounds, ErrCellOccupied, ErrTileReused.
func (p *Placement) Place(c gridgraph.Cell, t tile.Tile) error {
	if !p.lattice.InBounds(c) {
		return fmt.Errorf("%w: %s", gridgraph.ErrOutOfBounds, c)
	}
	i := p.lattice.Index(c)
	if p.filled[i] {
		return fmt.Errorf("%w: %s holds tile %d", ErrCellOccupied, c, p.cells[i].ID)
	}
	if at, ok := p.used[t.ID]; ok {
		return fmt.Errorf("%w: tile %d at %s", ErrTileReused, t.ID, at)
	}
	p.cells[i], p.filled[i] = t, true
	p.used[t.ID] = c

	return nil
}

// Contains reports whether tile id has been placed.
func (p *Placement) Contains(id uint64) bool {
	_, ok := p.used[id]
	return ok
}

// Filled returns the number of placed tiles.
func (p *Placement) Filled() int { return len(p.used) }

// Complete reports whether every cell is filled.
func (p *Placement) Complete() bool { return p.Filled() == p.lattice.Len() }

// Layout returns the placed IDs as Layout[y][x]; empty cells hold 0.
func (p *Placement) Layout() [][]uint64 {
	n := p.Size()
	out := make([][]uint64, n)
	for y := range out {
		out[y] = make([]uint64, n)
		for x := range out[y] {
			if t, ok := p.At(gridgraph.Cell{X: x, Y: y}); ok {
				out[y][x] = t.ID
			}
		}
	}

	return out
}

// CornerIDs returns the IDs in the four corner cells, ascending.
// Empty corners are skipped.
func (p *Placement) CornerIDs() []uint64 {
	m := p.Size() - 1
	seen := make(map[uint64]struct{}, 4)
	var ids []uint64
	for _, c := range []gridgraph.Cell{{X: 0, Y: 0}, {X: m, Y: 0}, {X: 0, Y: m}, {X: m, Y: m}} {
		t, ok := p.At(c)
		if !ok {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		ids = append(ids, t.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
