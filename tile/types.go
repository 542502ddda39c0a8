package tile

import (
	"errors"
	"fmt"
	"strings"
)

// MaxSide is the widest border an Edge can encode.
const MaxSide = 64

// Sentinel errors for tile parsing and construction.
var (
	// ErrBadHeader indicates a header line not of the form "Tile <id>:".
	ErrBadHeader = errors.New("tile: malformed header")
	// ErrEmptyTile indicates a tile block without pixel rows.
	ErrEmptyTile = errors.New("tile: no pixel rows")
	// ErrRaggedRow indicates the pixel block is not an N×N square.
	ErrRaggedRow = errors.New("tile: pixel block is not square")
	// ErrBadPixel indicates a character that is neither '#' nor '.'.
	ErrBadPixel = errors.New("tile: unrecognized pixel")
	// ErrEdgeWidth indicates a side too large to encode as an Edge.
	ErrEdgeWidth = errors.New("tile: side exceeds edge width")
	// ErrMixedSides indicates tiles of different sizes in one input.
	ErrMixedSides = errors.New("tile: tiles have different sides")
	// ErrNoTiles indicates an input without any tile block.
	ErrNoTiles = errors.New("tile: no tiles in input")
)

// Tile is an immutable square of pixels with precomputed border signatures.
// Every method returns a new value; the Pixels grid is never mutated in place.
type Tile struct {
	ID     uint64
	Pixels Grid

	Top    Edge // row 0, left to right
	Bottom Edge // row n-1, left to right
	Left   Edge // column 0, top to bottom
	Right  Edge // column n-1, top to bottom
}

// New builds a Tile from a square grid, deriving all four edges.
// The grid is deep-copied.
func New(id uint64, px Grid) (Tile, error) {
	n := len(px)
	if n == 0 {
		return Tile{}, ErrEmptyTile
	}
	if n > MaxSide {
		return Tile{}, fmt.Errorf("%w: side %d > %d", ErrEdgeWidth, n, MaxSide)
	}
	for y, row := range px {
		if len(row) != n {
			return Tile{}, fmt.Errorf("%w: row %d has %d pixels, want %d", ErrRaggedRow, y, len(row), n)
		}
	}
	t := Tile{ID: id, Pixels: px.Clone()}
	t.Top, t.Right, t.Bottom, t.Left = t.Pixels.Borders()

	return t, nil
}

// Side returns the tile side length (also the edge bit-width).
func (t Tile) Side() int { return len(t.Pixels) }

// Edges returns the four borders clockwise from the top.
func (t Tile) Edges() [4]Edge {
	return [4]Edge{t.Top, t.Right, t.Bottom, t.Left}
}

// EdgeSet returns the distinct values among the four borders and their
// mirrors, in ascending order. Symmetric borders collapse, so the result
// holds between 1 and 8 values.
func (t Tile) EdgeSet() []Edge {
	n := t.Side()
	seen := make(map[Edge]struct{}, 8)
	out := make([]Edge, 0, 8)
	for _, e := range t.Edges() {
		for _, v := range [2]Edge{e, MirrorEdge(e, n)} {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sortEdges(out)

	return out
}

// Equal reports whether two tiles have the same id, edges and pixels.
func (t Tile) Equal(o Tile) bool {
	return t.ID == o.ID &&
		t.Top == o.Top && t.Right == o.Right && t.Bottom == o.Bottom && t.Left == o.Left &&
		t.Pixels.Equal(o.Pixels)
}

// String renders the tile in the input format accepted by Parse.
func (t Tile) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tile %d:\n", t.ID)
	sb.WriteString(t.Pixels.String())

	return sb.String()
}
