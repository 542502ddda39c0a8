// Package assemble places every tile of a square jigsaw puzzle into an n×n
// grid in a single orientation frame.
//
// What:
//
//   - FitsToRight / FitsBelow resolve, in closed form, the unique orientation
//     that makes a candidate's left (top) border equal a placed tile's right
//     (bottom) border.
//   - Placement is the insert-only coordinate → oriented tile map.
//   - Assembler seeds the top-left corner and its two neighbors, then fills
//     the remaining cells in anti-diagonal order (gridgraph.SweepOrder).
//
// Algorithm:
//
//  0. Reject a compatibility graph that splits into several components.
//  1. Pick a corner (a tile with exactly two possible neighbors).
//  2. Try all eight orientations of the corner until one neighbor fits to
//     its right and the other below it; this fixes the global frame.
//  3. For each remaining cell, in order of x+y:
//     - with a left and an upper neighbor, the candidate is the unique
//     unused ID in the intersection of their possible neighbors;
//     - on the first row or column, the candidate is the unique unused
//     tile exposing the neighbor's facing border.
//  4. Orient the candidate against the left neighbor (or the upper one on
//     the first column) and check it against the upper neighbor too.
//
// There is no backtracking: the input is assumed to admit exactly one
// assembly up to symmetry, and any deviation is fatal.
//
// Errors:
//
//   - ErrNoFit, ErrAmbiguousOrientation: pairwise resolution failed.
//   - ErrImpossibleConfiguration: a disconnected compatibility graph, no
//     corner, no seed orientation, or a candidate set whose size is not one.
//   - ErrInconsistentPlacement: a tile fits its left neighbor but not the
//     tile above it.
//   - ErrCellOccupied, ErrTileReused: Placement invariants.
//   - edgeindex.ErrNotSquare: the tile count is not a perfect square; it is
//     wrapped together with ErrImpossibleConfiguration.
package assemble
