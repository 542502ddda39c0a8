package assemble

import "errors"

var (
	// ErrNoFit indicates that no orientation of the candidate matches.
	ErrNoFit = errors.New("assemble: no orientation fits")
	// ErrAmbiguousOrientation indicates that more than one orientation matches.
	ErrAmbiguousOrientation = errors.New("assemble: ambiguous orientation")
	// ErrImpossibleConfiguration indicates the puzzle cannot be assembled
	// without guessing.
	ErrImpossibleConfiguration = errors.New("assemble: impossible configuration")
	// ErrInconsistentPlacement indicates a tile that fits its left neighbor
	// but not its upper neighbor.
	ErrInconsistentPlacement = errors.New("assemble: inconsistent placement")
	// ErrCellOccupied indicates an attempt to overwrite a placed cell.
	ErrCellOccupied = errors.New("assemble: cell already occupied")
	// ErrTileReused indicates an attempt to place the same tile twice.
	ErrTileReused = errors.New("assemble: tile already placed")
)
