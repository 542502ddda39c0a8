package dfs

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from startID, or over the whole
// graph when WithFullTraversal is set (startID is then ignored).
// Neighbors are explored in lexicographic order.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	vertices := g.Vertices()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:   make([]string, 0, len(vertices)),
			Depth:   make(map[string]int, len(vertices)),
			Parent:  make(map[string]string, len(vertices)),
			Visited: make(map[string]bool, len(vertices)),
		},
	}

	if !o.FullTraversal {
		return w.res, w.traverse(startID, 0)
	}
	for _, v := range vertices {
		if w.res.Visited[v] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

func (w *walker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}
	for _, nid := range nbs {
		if w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
