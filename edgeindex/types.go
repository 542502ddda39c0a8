package edgeindex

import (
	"errors"

	"github.com/katalvlaran/jigsaw/core"
	"github.com/katalvlaran/jigsaw/tile"
)

// Sentinel errors for index construction and validation.
var (
	// ErrNoTiles indicates an empty tile set.
	ErrNoTiles = errors.New("edgeindex: no tiles")
	// ErrDuplicateID indicates two tiles share an ID.
	ErrDuplicateID = errors.New("edgeindex: duplicate tile id")
	// ErrUnknownTile indicates a lookup for an ID not in the index.
	ErrUnknownTile = errors.New("edgeindex: unknown tile id")
	// ErrNotSquare indicates a tile count that is not a perfect square.
	ErrNotSquare = errors.New("edgeindex: tile count is not a perfect square")
	// ErrNeighborCount indicates neighbor counts inconsistent with an n×n tiling.
	ErrNeighborCount = errors.New("edgeindex: neighbor counts do not describe a square tiling")
)

// Index is the read-only signature → tiles map of one puzzle instance.
type Index struct {
	side  int
	ids   []uint64 // ascending
	tiles map[uint64]tile.Tile
	bySig map[tile.Edge][]uint64
	graph *core.Graph
}

// Classification groups tile IDs by their number of possible neighbors.
// Every slice is sorted ascending.
type Classification struct {
	Corners  []uint64 // exactly 2 neighbors
	Border   []uint64 // exactly 3 neighbors
	Interior []uint64 // exactly 4 neighbors
	Other    []uint64 // any other count
}

// Kind names the class of a neighbor count.
func Kind(neighbors int) string {
	switch neighbors {
	case 2:
		return "corner"
	case 3:
		return "border"
	case 4:
		return "interior"
	default:
		return "other"
	}
}
