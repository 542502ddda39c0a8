// Package bfs provides breadth-first search over an unweighted core.Graph,
// returning visit order, depths and parent links.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - OnVisit hook (may abort with an error), neighbor filtering and a depth limit.
//
// Why
//
//	On the placement lattice BFS depth from the corner cell (0,0) is x+y, so
//	Order lists cells diagonal by diagonal: both the left and the upper
//	neighbor of any cell are visited before the cell itself.
//
// Determinism
//
//	core.NeighborIDs returns IDs sorted lexicographically and BFS enqueues
//	them in that order, so Order is reproducible.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
