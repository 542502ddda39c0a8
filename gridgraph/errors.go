package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a lattice without rows or columns.
	ErrEmptyGrid = errors.New("gridgraph: lattice must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the lattice.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)
