// Package dfs implements depth-first search and connected components on an
// undirected core.Graph.
//
// What:
//
//   - DFS explores as far as possible along each branch before
//     backtracking. Supports pre-order and post-order hooks, cancellation
//     via context.Context and forest traversal over every component.
//   - Components partitions the vertices into connected components.
//
// Why:
//
//   - A puzzle whose compatibility graph falls apart into several pieces
//     cannot be assembled into one grid; Components detects that before
//     any placement is attempted.
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks.
//   - Memory: O(V) for the recursion stack and result maps.
//
// Options:
//
//   - WithContext(ctx)     cancellation.
//   - WithOnVisit(fn)      pre-order hook; an error aborts the traversal.
//   - WithOnExit(fn)       post-order hook; an error aborts the traversal.
//   - WithFullTraversal()  restart from every unvisited vertex.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if startID is missing.
//   - context.Canceled        if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
