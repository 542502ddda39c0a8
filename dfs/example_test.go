package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/core"
	"github.com/katalvlaran/jigsaw/dfs"
)

// ExampleComponents splits two separate pairs of tiles.
func ExampleComponents() {
	g := core.NewGraph()
	for _, id := range []string{"1171", "1427", "2311", "3079"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("1427", "2311", 0)
	_, _ = g.AddEdge("1171", "3079", 0)

	comps, _ := dfs.Components(g)
	fmt.Println(comps)
	// Output: [[1171 3079] [1427 2311]]
}
