package mosaic

import "errors"

var (
	// ErrIncomplete indicates a placement with empty cells.
	ErrIncomplete = errors.New("mosaic: placement is incomplete")
	// ErrNoInterior indicates tiles too small to keep any pixel once their
	// borders are stripped.
	ErrNoInterior = errors.New("mosaic: tiles have no interior")
	// ErrBadPattern indicates malformed pattern text.
	ErrBadPattern = errors.New("mosaic: bad pattern")
	// ErrNotSquare indicates an image that is not square.
	ErrNotSquare = errors.New("mosaic: image is not square")
	// ErrNotFound indicates no orientation of the image contains the pattern.
	ErrNotFound = errors.New("mosaic: pattern not found")
)
