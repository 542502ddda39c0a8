// Package gridgraph treats a W×H lattice of placement cells as a graph.
//
// What:
//
//   - Lattice validates dimensions, maps (x,y) to row-major indices and back.
//   - ToCoreGraph converts the lattice to a *core.Graph with 4-connectivity;
//     vertex IDs are "x,y" and carry x/y metadata.
//   - SweepOrder lists every cell by breadth-first distance from an origin.
//
// Why:
//
//	Starting from the corner (0,0), BFS distance on a 4-connected lattice is
//	x+y, so SweepOrder yields anti-diagonals in turn. A jigsaw assembler
//	walking that order always finds the left and upper neighbor of a cell
//	already placed.
//
// Complexity:
//
//   - ToCoreGraph: O(W×H), Memory: O(W×H).
//   - SweepOrder:  O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrOutOfBounds: a coordinate lies outside the lattice.
package gridgraph
