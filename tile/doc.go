// Package tile models a single square jigsaw tile: a titled grid of on/off
// pixels together with the bit-packed signatures of its four borders.
//
// What:
//
//   - Tile carries an ID, a square pixel Grid and four Edge signatures
//     (Top, Right, Bottom, Left), each MSB-first: the leftmost or topmost
//     pixel of a border is the highest bit.
//   - Parse / ParseAll read the "Tile <id>:" text format ('#' = on, '.' = off).
//   - Op enumerates the eight symmetries of the square; Tile.Transform applies
//     one, updating the pixels geometrically and the edges algebraically.
//   - Compose and Op.Inverse give the group structure of the eight ops.
//
// Why:
//
//   - Edge signatures turn border comparison into integer equality, so
//     adjacency can be found through a hash index instead of pairwise scans.
//   - A border that matches only after flipping shows up as MirrorEdge(v, n).
//
// Invariant:
//
//	For every Tile t and every Op op, re-encoding the borders of
//	t.Transform(op).Pixels reproduces the transformed Top/Right/Bottom/Left.
//
// Complexity:
//
//   - EncodeEdge, MirrorEdge: O(n) / O(1).
//   - Transform: O(n²) for the pixels, O(1) for the edges.
//
// Errors:
//
//   - ErrBadHeader:  header line is not "Tile <positive id>:".
//   - ErrEmptyTile:  block has no pixel rows.
//   - ErrRaggedRow:  a row length differs from the tile side, or the row count does.
//   - ErrBadPixel:   a character other than '#' or '.'.
//   - ErrEdgeWidth:  the side is wider than an Edge can hold (64).
//   - ErrMixedSides: tiles in one input have different sides.
//   - ErrNoTiles:    input contains no tile blocks.
package tile
