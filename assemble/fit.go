package assemble

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/tile"
)

// rule says: if border `from` of the candidate equals the target (or its
// mirror when mirrored is set), applying op moves it into place.
type rule struct {
	from     func(tile.Tile) tile.Edge
	mirrored bool
	op       tile.Op
}

var (
	top    = func(t tile.Tile) tile.Edge { return t.Top }
	right  = func(t tile.Tile) tile.Edge { return t.Right }
	bottom = func(t tile.Tile) tile.Edge { return t.Bottom }
	left   = func(t tile.Tile) tile.Edge { return t.Left }
)

// toLeft moves a candidate border onto the left side.
var toLeft = [8]rule{
	{left, false, tile.Identity},
	{left, true, tile.FlipVertical},
	{bottom, false, tile.Rotate90},
	{bottom, true, tile.FlipDiagonalAnti},
	{right, false, tile.FlipHorizontal},
	{right, true, tile.Rotate180},
	{top, false, tile.FlipDiagonalMain},
	{top, true, tile.Rotate270},
}

// toTop moves a candidate border onto the top side.
var toTop = [8]rule{
	{top, false, tile.Identity},
	{top, true, tile.FlipHorizontal},
	{left, false, tile.FlipDiagonalMain},
	{left, true, tile.Rotate90},
	{bottom, false, tile.FlipVertical},
	{bottom, true, tile.Rotate180},
	{right, false, tile.Rotate270},
	{right, true, tile.FlipDiagonalAnti},
}

// FitsToRight returns the orientation that makes cand.Left equal
// leftTile.Right once cand is transformed.
// Returns ErrNoFit if none does, ErrAmbiguousOrientation if several do.
func FitsToRight(leftTile, cand tile.Tile) (tile.Op, error) {
	op, err := resolve(leftTile.Right, leftTile.Side(), cand, &toLeft)
	if err != nil {
		return 0, fmt.Errorf("tile %d right of %d: %w", cand.ID, leftTile.ID, err)
	}

	return op, nil
}

// FitsBelow returns the orientation that makes cand.Top equal
// above.Bottom once cand is transformed.
// Returns ErrNoFit if none does, ErrAmbiguousOrientation if several do.
func FitsBelow(above, cand tile.Tile) (tile.Op, error) {
	op, err := resolve(above.Bottom, above.Side(), cand, &toTop)
	if err != nil {
		return 0, fmt.Errorf("tile %d below %d: %w", cand.ID, above.ID, err)
	}

	return op, nil
}

func resolve(target tile.Edge, width int, cand tile.Tile, rules *[8]rule) (tile.Op, error) {
	mirror := tile.MirrorEdge(target, width)
	var matches []tile.Op
	for _, r := range rules {
		want := target
		if r.mirrored {
			want = mirror
		}
		if r.from(cand) == want {
			matches = append(matches, r.op)
		}
	}
	switch len(matches) {
	case 0:
		return 0, ErrNoFit
	case 1:
		return matches[0], nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrAmbiguousOrientation, matches)
	}
}
