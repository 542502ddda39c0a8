package dfs

import (
	"sort"

	"github.com/katalvlaran/jigsaw/core"
)

// Components returns the connected components of g. Each component is
// sorted; components are ordered by their smallest vertex ID.
// Complexity: O(V + E + V log V).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var (
		comps [][]string
		cur   []string
	)
	onExit := func(id string) error {
		cur = append(cur, id)
		return nil
	}
	visited := make(map[string]bool, g.VertexCount())
	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		cur = nil
		res, err := DFS(g, v, WithOnExit(onExit))
		if err != nil {
			return nil, err
		}
		for id := range res.Visited {
			visited[id] = true
		}
		sort.Strings(cur)
		comps = append(comps, cur)
	}

	return comps, nil
}
