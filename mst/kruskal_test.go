package mst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbansim/transitflow/core"
	"github.com/urbansim/transitflow/mst"
)

// TestKruskal_Triangle: A—B(1), B—C(2), A—C(3) → MST {A—B, B—C}, weight 3.
func TestKruskal_Triangle(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 3))

	forest, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []mst.Edge{
		{U: "A", V: "B", Weight: 1},
		{U: "B", V: "C", Weight: 2},
	}, forest)
	assert.Equal(t, 3.0, total)
}

// TestKruskal_ParallelEdgesDeduped verifies the canonical pass keeps only the
// cheapest of parallel/mirrored entries.
func TestKruskal_ParallelEdgesDeduped(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 7))
	require.NoError(t, g.AddEdge("B", "A", 2)) // same physical link, cheaper trip
	require.NoError(t, g.AddEdge("A", "B", 4))

	forest, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Equal(t, mst.Edge{U: "A", V: "B", Weight: 2}, forest[0])
	assert.Equal(t, 2.0, total)
}

// TestKruskal_DisconnectedYieldsForest: two components produce a spanning
// forest, not an error; edge count = V − components.
func TestKruskal_DisconnectedYieldsForest(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 2))
	require.NoError(t, g.AddNode("E")) // isolated third component

	forest, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, forest, 2, "5 nodes, 3 components → 2 forest edges")
	assert.Equal(t, 3.0, total)
}

// TestKruskal_ForestBound: on random graphs the accepted edge count never
// exceeds nodeCount − componentCount, and re-running is deterministic.
func TestKruskal_ForestBound(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	g := core.NewGraph()
	const n = 40
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(fmt.Sprintf("V%02d", i)))
	}
	// Two deliberate components: chain 0..19 and chain 20..39, plus noise.
	for i := 1; i < 20; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("V%02d", i-1), fmt.Sprintf("V%02d", i), float64(1+r.Intn(9))))
	}
	for i := 21; i < 40; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("V%02d", i-1), fmt.Sprintf("V%02d", i), float64(1+r.Intn(9))))
	}
	for k := 0; k < 60; k++ {
		half := r.Intn(2) * 20
		u, v := half+r.Intn(20), half+r.Intn(20)
		if u == v {
			continue
		}
		require.NoError(t, g.AddEdge(fmt.Sprintf("V%02d", u), fmt.Sprintf("V%02d", v), float64(1+r.Intn(20))))
	}

	forest, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, n-2, len(forest), "spanning forest of two components")
	assert.Positive(t, total)

	again, totalAgain, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, forest, again)
	assert.Equal(t, total, totalAgain)
}

// TestKruskal_EmptyAndTrivial covers the degenerate inputs.
func TestKruskal_EmptyAndTrivial(t *testing.T) {
	_, _, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	g := core.NewGraph()
	forest, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, forest)
	assert.Zero(t, total)

	require.NoError(t, g.AddNode("A"))
	forest, total, err = mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, forest)
	assert.Zero(t, total)
}

func TestUnionFind_Basics(t *testing.T) {
	uf := mst.NewUnionFind([]string{"a", "b", "c", "d"})

	assert.True(t, uf.Union("a", "b"))
	assert.False(t, uf.Union("b", "a"), "second merge of same sets is a no-op")
	assert.Equal(t, uf.Find("a"), uf.Find("b"))
	assert.NotEqual(t, uf.Find("a"), uf.Find("c"))

	assert.True(t, uf.Union("c", "d"))
	assert.True(t, uf.Union("a", "d"))
	assert.Equal(t, uf.Find("b"), uf.Find("c"))
}
