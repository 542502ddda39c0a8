package tile

import "fmt"

// Op is one of the eight symmetries of the square.
type Op uint8

const (
	// Identity leaves the tile unchanged.
	Identity Op = iota
	// FlipVertical reverses the row order (top and bottom swap).
	FlipVertical
	// FlipHorizontal reverses each row (left and right swap).
	FlipHorizontal
	// Rotate90 rotates clockwise by a quarter turn.
	Rotate90
	// Rotate180 rotates by a half turn.
	Rotate180
	// Rotate270 rotates clockwise by three quarter turns.
	Rotate270
	// FlipDiagonalMain transposes across the top-left/bottom-right diagonal.
	FlipDiagonalMain
	// FlipDiagonalAnti transposes across the top-right/bottom-left diagonal.
	FlipDiagonalAnti

	opCount
)

var opNames = [opCount]string{
	"Identity", "FlipVertical", "FlipHorizontal",
	"Rotate90", "Rotate180", "Rotate270",
	"FlipDiagonalMain", "FlipDiagonalAnti",
}

// Ops returns all eight operations in declaration order.
func Ops() []Op {
	ops := make([]Op, opCount)
	for i := range ops {
		ops[i] = Op(i)
	}

	return ops
}

// Valid reports whether op is one of the eight known operations.
func (op Op) Valid() bool { return op < opCount }

func (op Op) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Op(%d)", uint8(op))
	}

	return opNames[op]
}

// mapPoint returns the destination (row, column) of source pixel (x, y)
// in an n×n grid.
func (op Op) mapPoint(x, y, n int) (int, int) {
	m := n - 1
	switch op {
	case FlipVertical:
		return m - y, x
	case FlipHorizontal:
		return y, m - x
	case Rotate90:
		return x, m - y
	case Rotate180:
		return m - y, m - x
	case Rotate270:
		return m - x, y
	case FlipDiagonalMain:
		return x, y
	case FlipDiagonalAnti:
		return m - x, m - y
	default:
		return y, x
	}
}

// Transform returns a new Tile with op applied. Pixels are moved
// geometrically; the four edges are derived from the old ones in closed
// form, never re-encoded. The ID is preserved.
//
// Rotate180/Rotate270 equal repeated Rotate90; the diagonal flips equal
// Rotate90 followed by FlipHorizontal (main) or FlipVertical (anti).
func (t Tile) Transform(op Op) Tile {
	n := t.Side()
	mirror := func(e Edge) Edge { return MirrorEdge(e, n) }
	top, right, bottom, left := t.Top, t.Right, t.Bottom, t.Left

	out := Tile{ID: t.ID}
	switch op {
	case FlipVertical:
		out.Top, out.Right, out.Bottom, out.Left = bottom, mirror(right), top, mirror(left)
	case FlipHorizontal:
		out.Top, out.Right, out.Bottom, out.Left = mirror(top), left, mirror(bottom), right
	case Rotate90:
		out.Top, out.Right, out.Bottom, out.Left = mirror(left), top, mirror(right), bottom
	case Rotate180:
		out.Top, out.Right, out.Bottom, out.Left = mirror(bottom), mirror(left), mirror(top), mirror(right)
	case Rotate270:
		out.Top, out.Right, out.Bottom, out.Left = right, mirror(bottom), left, mirror(top)
	case FlipDiagonalMain:
		out.Top, out.Right, out.Bottom, out.Left = left, bottom, right, top
	case FlipDiagonalAnti:
		out.Top, out.Right, out.Bottom, out.Left = mirror(right), mirror(top), mirror(left), mirror(bottom)
	default:
		out.Top, out.Right, out.Bottom, out.Left = top, right, bottom, left
	}
	out.Pixels = t.Pixels.Apply(op)

	return out
}

// composeTable[a][b] is the single Op equal to a followed by b.
var composeTable = buildComposeTable()

// buildComposeTable identifies each product by its effect on a probe whose
// only symmetry is Identity: the corner pixel and its right-hand neighbor.
func buildComposeTable() [opCount][opCount]Op {
	probe := NewGrid(3)
	probe[0][0], probe[0][1] = true, true

	var images [opCount]Grid
	for _, op := range Ops() {
		images[op] = probe.Apply(op)
	}
	var table [opCount][opCount]Op
	for _, a := range Ops() {
		for _, b := range Ops() {
			got := images[a].Apply(b)
			for _, c := range Ops() {
				if images[c].Equal(got) {
					table[a][b] = c
					break
				}
			}
		}
	}

	return table
}

// Compose returns the operation equivalent to applying a, then b.
// Both must be Valid.
func Compose(a, b Op) Op { return composeTable[a][b] }

// Inverse returns the operation that undoes op.
func (op Op) Inverse() Op {
	for _, c := range Ops() {
		if composeTable[op][c] == Identity {
			return c
		}
	}

	return Identity
}
