// File: methods_edges.go
// Role: Edge lifecycle and neighborhood queries.
package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddEdge connects from and to with an undirected edge and returns its ID.
// Missing endpoints are created.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.Weighted() && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if len(g.adjacencyList[from][to]) > 0 {
		return "", fmt.Errorf("%w: %s-%s", ErrMultiEdgeNotAllowed, from, to)
	}
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.link(from, to, eid)
	g.link(to, from, eid)

	return eid, nil
}

// link must be called under muEdgeAdj write lock.
func (g *Graph) link(from, to, eid string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
	g.adjacencyList[from][to][eid] = struct{}{}
}

// HasEdge reports whether from and to are adjacent. Symmetric.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edges returns all edges sorted by Edge.ID ascending.
// Returned pointers are live; treat them as read-only.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns the edges incident to id sorted by Edge.ID ascending.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			if e := g.edges[eid]; e != nil {
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique IDs adjacent to id, sorted lexicographically.
// Errors: propagated from Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		o := e.Other(id)
		if _, dup := seen[o]; dup {
			continue
		}
		seen[o] = struct{}{}
		ids = append(ids, o)
	}
	sort.Strings(ids)

	return ids, nil
}
