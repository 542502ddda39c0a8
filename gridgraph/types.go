package gridgraph

import "fmt"

// Cell is a lattice coordinate; X grows to the right, Y grows downward.
type Cell struct {
	X, Y int
}

// Left returns the cell immediately to the left.
func (c Cell) Left() Cell { return Cell{c.X - 1, c.Y} }

// Up returns the cell immediately above.
func (c Cell) Up() Cell { return Cell{c.X, c.Y - 1} }

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Lattice is an immutable W×H grid of cells with 4-connectivity.
type Lattice struct {
	Width, Height int
}

// orthogonal neighbor offsets: N, E, S, W.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
