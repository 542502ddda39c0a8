package edgeindex

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/jigsaw/core"
	"github.com/katalvlaran/jigsaw/tile"
)

// Build registers every tile under each distinct value of its EdgeSet and
// derives the compatibility graph.
// Returns ErrNoTiles, ErrDuplicateID or tile.ErrMixedSides.
func Build(tiles []tile.Tile) (*Index, error) {
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	idx := &Index{
		side:  tiles[0].Side(),
		ids:   make([]uint64, 0, len(tiles)),
		tiles: make(map[uint64]tile.Tile, len(tiles)),
		bySig: make(map[tile.Edge][]uint64, len(tiles)*4),
	}
	for _, t := range tiles {
		if _, dup := idx.tiles[t.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)
		}
		if t.Side() != idx.side {
			return nil, fmt.Errorf("%w: tile %d is %d wide, want %d", tile.ErrMixedSides, t.ID, t.Side(), idx.side)
		}
		idx.tiles[t.ID] = t
		idx.ids = append(idx.ids, t.ID)
	}
	sortIDs(idx.ids)

	for _, id := range idx.ids {
		for _, sig := range idx.tiles[id].EdgeSet() {
			idx.bySig[sig] = append(idx.bySig[sig], id)
		}
	}
	idx.graph = idx.buildGraph()

	return idx, nil
}

// buildGraph links each tile to every possible neighbor; the edge weight
// is the first border signature found in common.
func (idx *Index) buildGraph() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range idx.ids {
		_ = g.AddVertex(vertexID(id))
	}
	for _, id := range idx.ids {
		t := idx.tiles[id]
		for _, sig := range t.Edges() {
			for _, other := range idx.bySig[sig] {
				if other == id || g.HasEdge(vertexID(id), vertexID(other)) {
					continue
				}
				_, _ = g.AddEdge(vertexID(id), vertexID(other), int64(sig))
			}
		}
	}

	return g
}

// Side returns the common tile side.
func (idx *Index) Side() int { return idx.side }

// Len returns the number of indexed tiles.
func (idx *Index) Len() int { return len(idx.ids) }

// IDs returns all tile IDs ascending.
func (idx *Index) IDs() []uint64 {
	return append([]uint64(nil), idx.ids...)
}

// Tile returns the tile with the given ID as parsed (untransformed).
func (idx *Index) Tile(id uint64) (tile.Tile, error) {
	t, ok := idx.tiles[id]
	if !ok {
		return tile.Tile{}, fmt.Errorf("%w: %d", ErrUnknownTile, id)
	}

	return t, nil
}

// Tiles returns the indexed tiles ordered by ID.
func (idx *Index) Tiles() []tile.Tile {
	out := make([]tile.Tile, len(idx.ids))
	for i, id := range idx.ids {
		out[i] = idx.tiles[id]
	}

	return out
}

// Lookup returns the IDs of all tiles exposing sig in either reading
// direction, ascending.
func (idx *Index) Lookup(sig tile.Edge) []uint64 {
	return append([]uint64(nil), idx.bySig[sig]...)
}

// PossibleNeighbors returns every other tile registered under one of t's
// four unmirrored border values, deduplicated and ordered by ID. t itself
// need not be indexed; it is excluded by ID.
func (idx *Index) PossibleNeighbors(t tile.Tile) []tile.Tile {
	seen := map[uint64]struct{}{t.ID: {}}
	var ids []uint64
	for _, sig := range t.Edges() {
		for _, other := range idx.bySig[sig] {
			if _, ok := seen[other]; ok {
				continue
			}
			seen[other] = struct{}{}
			ids = append(ids, other)
		}
	}
	sortIDs(ids)

	out := make([]tile.Tile, len(ids))
	for i, id := range ids {
		out[i] = idx.tiles[id]
	}

	return out
}

// NeighborIDs returns the possible neighbors of the indexed tile id,
// read from the compatibility graph.
func (idx *Index) NeighborIDs(id uint64) ([]uint64, error) {
	if _, ok := idx.tiles[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTile, id)
	}
	vs, err := idx.graph.NeighborIDs(vertexID(id))
	if err != nil {
		return nil, err
	}
	out := make([]uint64, 0, len(vs))
	for _, v := range vs {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	sortIDs(out)

	return out, nil
}

// Graph returns the compatibility graph. Vertex IDs are decimal tile IDs.
func (idx *Index) Graph() *core.Graph { return idx.graph }

// Classify buckets every tile by its degree in the compatibility graph.
func (idx *Index) Classify() Classification {
	var c Classification
	for _, id := range idx.ids {
		d, _ := idx.graph.Degree(vertexID(id))
		switch d {
		case 2:
			c.Corners = append(c.Corners, id)
		case 3:
			c.Border = append(c.Border, id)
		case 4:
			c.Interior = append(c.Interior, id)
		default:
			c.Other = append(c.Other, id)
		}
	}

	return c
}

// CornerProduct multiplies the IDs of all corner tiles. It returns 0 when
// there are no corners.
func (idx *Index) CornerProduct() uint64 {
	corners := idx.Classify().Corners
	if len(corners) == 0 {
		return 0
	}
	p := uint64(1)
	for _, id := range corners {
		p *= id
	}

	return p
}

// Validate checks the neighbor-count invariant of an n×n tiling of count
// tiles: 4 corners, 4(n-2) border tiles, (n-2)² interior tiles and nothing
// else. A single tile must have no neighbors.
func (c Classification) Validate(count int) error {
	n, ok := SquareSide(count)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotSquare, count)
	}
	if n == 1 {
		if len(c.Other) != 1 {
			return fmt.Errorf("%w: single tile must have no neighbors", ErrNeighborCount)
		}
		return nil
	}
	wantBorder, wantInterior := 4*(n-2), (n-2)*(n-2)
	if len(c.Corners) != 4 || len(c.Border) != wantBorder || len(c.Interior) != wantInterior || len(c.Other) != 0 {
		return fmt.Errorf("%w: corners=%d border=%d interior=%d other=%d, want 4/%d/%d/0",
			ErrNeighborCount, len(c.Corners), len(c.Border), len(c.Interior), len(c.Other), wantBorder, wantInterior)
	}

	return nil
}

// SquareSide returns n such that n*n == count.
func SquareSide(count int) (int, bool) {
	if count <= 0 {
		return 0, false
	}
	n := 1
	for n*n < count {
		n++
	}

	return n, n*n == count
}

func vertexID(id uint64) string { return strconv.FormatUint(id, 10) }

func sortIDs(ids []uint64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
