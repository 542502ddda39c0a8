// Package core provides a thread-safe, undirected in-memory Graph with
// string vertex IDs, per-vertex metadata and optional integer weights.
//
// Two graphs are built on it in this module:
//
//   - the tile compatibility graph (vertex = tile ID, edge = shared border,
//     weight = the border signature), whose vertex degrees classify tiles
//     into corners, border pieces and interior pieces;
//   - the placement lattice (vertex = "x,y" cell), walked by package bfs to
//     obtain the diagonal sweep order.
//
// Storage:
//
//	adjacencyList[from][to][edgeID] = struct{}{}
//
// Every edge is mirrored in both directions. Self-loops and parallel edges
// are rejected.
//
// Concurrency:
//
//	muVert guards the vertex catalog, muEdgeAdj guards edges and adjacency.
//	Lock order is always muVert → muEdgeAdj.
//
// Determinism:
//
//	Vertices(), Edges() and NeighborIDs() return results sorted by ID.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed - second edge between the same endpoints.
package core
