package assemble

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/jigsaw/dfs"
	"github.com/katalvlaran/jigsaw/edgeindex"
	"github.com/katalvlaran/jigsaw/gridgraph"
	"github.com/katalvlaran/jigsaw/tile"
)

// Assembler fills a Placement from an edge index.
type Assembler struct {
	idx  *edgeindex.Index
	opts Options
	log  logrus.FieldLogger
}

// New returns an Assembler over idx.
func New(idx *edgeindex.Index, opts ...Option) *Assembler {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Assembler{idx: idx, opts: o, log: o.Logger}
}

// Assemble indexes tiles and runs a fresh Assembler over them.
func Assemble(tiles []tile.Tile, opts ...Option) (*Placement, error) {
	idx, err := edgeindex.Build(tiles)
	if err != nil {
		return nil, err
	}

	return New(idx, opts...).Run()
}

// Run assembles the full grid or returns the first fatal error.
func (a *Assembler) Run() (*Placement, error) {
	start := time.Now()
	n, ok := edgeindex.SquareSide(a.idx.Len())
	if !ok {
		return nil, fmt.Errorf("%w: %w: %d tiles", ErrImpossibleConfiguration, edgeindex.ErrNotSquare, a.idx.Len())
	}
	p, err := NewPlacement(n, a.idx.Side())
	if err != nil {
		return nil, err
	}

	if n == 1 {
		t, _ := a.idx.Tile(a.idx.IDs()[0])
		if err := p.Place(gridgraph.Cell{}, t); err != nil {
			return nil, err
		}
		return p, nil
	}

	comps, err := dfs.Components(a.idx.Graph())
	if err != nil {
		return nil, err
	}
	if len(comps) > 1 {
		return nil, fmt.Errorf("%w: compatibility graph has %d components", ErrImpossibleConfiguration, len(comps))
	}

	corner, err := a.pickCorner()
	if err != nil {
		return nil, err
	}
	if err := a.seed(p, corner); err != nil {
		return nil, err
	}

	order, err := p.Lattice().SweepOrder(gridgraph.Cell{})
	if err != nil {
		return nil, err
	}
	for _, c := range order {
		if _, done := p.At(c); done {
			continue
		}
		if err := a.placeCell(p, c); err != nil {
			return nil, err
		}
	}

	a.log.WithFields(logrus.Fields{
		"size":    n,
		"tiles":   p.Filled(),
		"corner":  corner.ID,
		"elapsed": time.Since(start),
	}).Info("Assembled puzzle")

	return p, nil
}

func (a *Assembler) pickCorner() (tile.Tile, error) {
	corners := a.idx.Classify().Corners
	if len(corners) == 0 {
		return tile.Tile{}, fmt.Errorf("%w: no tile has exactly two neighbors", ErrImpossibleConfiguration)
	}
	id := corners[0]
	if a.opts.Corner != 0 {
		id = 0
		for _, c := range corners {
			if c == a.opts.Corner {
				id = c
			}
		}
		if id == 0 {
			return tile.Tile{}, fmt.Errorf("%w: tile %d is not a corner (corners: %v)",
				ErrImpossibleConfiguration, a.opts.Corner, corners)
		}
	}

	return a.idx.Tile(id)
}

// seed fixes the orientation frame: the corner at (0,0) with one neighbor
// to its right and the other below it.
func (a *Assembler) seed(p *Placement, corner tile.Tile) error {
	nbrs := a.idx.PossibleNeighbors(corner)
	if len(nbrs) != 2 {
		return fmt.Errorf("%w: corner %d has %d neighbors", ErrImpossibleConfiguration, corner.ID, len(nbrs))
	}
	pairs := [2][2]tile.Tile{{nbrs[0], nbrs[1]}, {nbrs[1], nbrs[0]}}

	for _, op := range tile.Ops() {
		oc := corner.Transform(op)
		for _, pair := range pairs {
			rOp, err := FitsToRight(oc, pair[0])
			if errors.Is(err, ErrAmbiguousOrientation) {
				return err
			}
			if err != nil {
				continue
			}
			bOp, err := FitsBelow(oc, pair[1])
			if errors.Is(err, ErrAmbiguousOrientation) {
				return err
			}
			if err != nil {
				continue
			}

			a.log.WithFields(logrus.Fields{
				"corner": corner.ID, "op": op.String(),
				"right": pair[0].ID, "below": pair[1].ID,
			}).Debug("Seeded orientation frame")

			if err := p.Place(gridgraph.Cell{X: 0, Y: 0}, oc); err != nil {
				return err
			}
			if err := p.Place(gridgraph.Cell{X: 1, Y: 0}, pair[0].Transform(rOp)); err != nil {
				return err
			}
			return p.Place(gridgraph.Cell{X: 0, Y: 1}, pair[1].Transform(bOp))
		}
	}

	return fmt.Errorf("%w: no orientation of corner %d fits both neighbors %d and %d",
		ErrImpossibleConfiguration, corner.ID, nbrs[0].ID, nbrs[1].ID)
}

// placeCell finds, orients and places the unique tile for c.
func (a *Assembler) placeCell(p *Placement, c gridgraph.Cell) error {
	leftTile, hasLeft := p.At(c.Left())
	upTile, hasUp := p.At(c.Up())

	var ids []uint64
	switch {
	case hasLeft && hasUp:
		ln, err := a.idx.NeighborIDs(leftTile.ID)
		if err != nil {
			return err
		}
		un, err := a.idx.NeighborIDs(upTile.ID)
		if err != nil {
			return err
		}
		ids = unused(p, intersect(ln, un))
	case hasLeft:
		ids = unused(p, a.idx.Lookup(leftTile.Right))
	case hasUp:
		ids = unused(p, a.idx.Lookup(upTile.Bottom))
	default:
		return fmt.Errorf("%w: %s has no placed neighbor", ErrImpossibleConfiguration, c)
	}
	if len(ids) != 1 {
		return fmt.Errorf("%w: %d candidates for %s: %v", ErrImpossibleConfiguration, len(ids), c, ids)
	}

	cand, err := a.idx.Tile(ids[0])
	if err != nil {
		return err
	}
	var op tile.Op
	if hasLeft {
		op, err = FitsToRight(leftTile, cand)
	} else {
		op, err = FitsBelow(upTile, cand)
	}
	if err != nil {
		return err
	}
	placed := cand.Transform(op)
	if hasUp && placed.Top != upTile.Bottom {
		return fmt.Errorf("%w: tile %d at %s does not fit below tile %d",
			ErrInconsistentPlacement, placed.ID, c, upTile.ID)
	}

	a.log.WithFields(logrus.Fields{"cell": c.String(), "tile": placed.ID, "op": op.String()}).Debug("Placed tile")

	return p.Place(c, placed)
}

// intersect returns the IDs present in both ascending slices.
func intersect(a, b []uint64) []uint64 {
	var out []uint64
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

func unused(p *Placement, ids []uint64) []uint64 {
	out := ids[:0:0]
	for _, id := range ids {
		if !p.Contains(id) {
			out = append(out, id)
		}
	}

	return out
}
