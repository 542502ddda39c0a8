package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jigsaw/core"
)

// TestGraph_AddVertex verifies empty-ID rejection and idempotent insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.VertexCount())
}

// TestGraph_AddEdge covers the constraint checks of AddEdge.
func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))

	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_Weighted stores the weight on the edge.
func TestGraph_Weighted(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	assert.True(t, g.Weighted())

	_, err := g.AddEdge("1951", "2311", 318)
	require.NoError(t, err)
	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, int64(318), edges[0].Weight)
	assert.Equal(t, "2311", edges[0].Other("1951"))
	assert.Equal(t, "1951", edges[0].Other("2311"))
}

// TestGraph_NeighborsAndDegree checks sorted neighbor IDs and degree counts on a star.
func TestGraph_NeighborsAndDegree(t *testing.T) {
	g := core.NewGraph()
	for _, leaf := range []string{"D", "B", "C"} {
		_, err := g.AddEdge("A", leaf, 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("Z"))

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, ids)

	ids, err = g.NeighborIDs("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids)

	for id, want := range map[string]int{"A": 3, "B": 1, "Z": 0} {
		d, err := g.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, want, d, id)
	}

	_, err = g.Degree("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	assert.Equal(t, []string{"A", "B", "C", "D", "Z"}, g.Vertices())
}

// TestGraph_Metadata stores values per vertex and returns copies.
func TestGraph_Metadata(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0,1"))
	require.NoError(t, g.SetMetadata("0,1", "x", 0))
	require.NoError(t, g.SetMetadata("0,1", "y", 1))

	md, err := g.Metadata("0,1")
	require.NoError(t, err)
	assert.Equal(t, 0, md["x"])
	assert.Equal(t, 1, md["y"])

	md["x"] = 42
	again, err := g.Metadata("0,1")
	require.NoError(t, err)
	assert.Equal(t, 0, again["x"])

	assert.ErrorIs(t, g.SetMetadata("nope", "x", 1), core.ErrVertexNotFound)
	_, err = g.Metadata("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestGraph_Concurrent adds disjoint edges from many goroutines.
func TestGraph_Concurrent(t *testing.T) {
	const n = 64
	g := core.NewGraph()
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = g.AddEdge("hub", fmt.Sprintf("v%d", i), 0)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	d, err := g.Degree("hub")
	require.NoError(t, err)
	assert.Equal(t, n, d)
	assert.Equal(t, n, g.EdgeCount())
}
