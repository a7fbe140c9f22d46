package shortest_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbansim/transitflow/core"
	"github.com/urbansim/transitflow/shortest"
	"github.com/urbansim/transitflow/stopindex"
)

// buildLinear constructs A—B—C with unit weights (undirected).
func buildLinear(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))

	return g
}

// TestShortestPath_LinearGraph: A—B—C, unit weights → [A B C], cost 2.
func TestShortestPath_LinearGraph(t *testing.T) {
	g := buildLinear(t)

	p, err := shortest.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p.Nodes)
	assert.Equal(t, 2.0, p.Cost)
}

// TestShortestPath_DetourPreferred: the weight-5 direct edge loses to the
// two-hop detour of cost 2.
func TestShortestPath_DetourPreferred(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("C", "B", 1))

	p, err := shortest.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, p.Nodes)
	assert.Equal(t, 2.0, p.Cost)
}

// TestShortestPath_Unreachable: isolated nodes yield no path and +Inf cost,
// with no error raised.
func TestShortestPath_Unreachable(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("U"))
	require.NoError(t, g.AddNode("V"))

	p, err := shortest.ShortestPath(g, "U", "V")
	require.NoError(t, err)
	assert.False(t, p.Exists())
	assert.True(t, math.IsInf(p.Cost, 1))
}

// TestShortestPath_SourceEqualsTarget returns the single-node path at cost 0.
func TestShortestPath_SourceEqualsTarget(t *testing.T) {
	g := buildLinear(t)

	p, err := shortest.ShortestPath(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, p.Nodes)
	assert.Equal(t, 0.0, p.Cost)
}

// TestDijkstra_Validation covers the fail-fast input contract.
func TestDijkstra_Validation(t *testing.T) {
	g := buildLinear(t)

	_, _, err := shortest.Dijkstra(nil, "A")
	assert.ErrorIs(t, err, shortest.ErrNilGraph)

	_, _, err = shortest.Dijkstra(g, "")
	assert.ErrorIs(t, err, shortest.ErrEmptyNodeID)

	_, _, err = shortest.Dijkstra(g, "ghost")
	assert.ErrorIs(t, err, shortest.ErrNodeNotFound)

	_, err = shortest.ShortestPath(g, "A", "ghost")
	assert.ErrorIs(t, err, shortest.ErrNodeNotFound)
}

// TestDijkstra_DirectedRespectsOrientation verifies one-way edges are never
// walked backwards.
func TestDijkstra_DirectedRespectsOrientation(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", 1))

	dist, _, err := shortest.Dijkstra(g, "B")
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist["A"], 1))
	assert.Equal(t, 0.0, dist["B"])
}

// buildRandomGraph creates a connected undirected graph with coordinates laid
// on a grid, so the haversine heuristic has real positions to work with.
func buildRandomGraph(t *testing.T, n, extraEdges int) (*core.Graph, *stopindex.Index) {
	t.Helper()
	g := core.NewGraph()
	idx := stopindex.NewDefault()
	r := rand.New(rand.NewSource(42))

	for i := 0; i < n; i++ {
		id := fmt.Sprintf("S%02d", i)
		require.NoError(t, g.AddNode(id))
		idx.Put(id, stopindex.StopMeta{
			// Tight cluster: ~11 m spacing keeps every haversine estimate
			// well under the 2-minute minimum edge weight, so the heuristic
			// is admissible for any topology the randomizer produces.
			Lat:       41.38 + float64(i%10)*0.0001,
			Lon:       2.15 + float64(i/10)*0.0001,
			HasCoords: true,
		})
	}
	// Chain for connectivity, then random extras.
	for i := 1; i < n; i++ {
		w := 2.0 + float64(r.Intn(8))
		require.NoError(t, g.AddEdge(fmt.Sprintf("S%02d", i-1), fmt.Sprintf("S%02d", i), w))
	}
	for i := 0; i < extraEdges; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		w := 2.0 + float64(r.Intn(10))
		require.NoError(t, g.AddEdge(fmt.Sprintf("S%02d", u), fmt.Sprintf("S%02d", v), w))
	}

	return g, idx
}

// TestAStar_AgreesWithDijkstra checks the central optimality property: for
// every reachable pair, A* under an admissible heuristic (zero and haversine)
// must match Dijkstra's minimal cost.
func TestAStar_AgreesWithDijkstra(t *testing.T) {
	const n = 30
	g, idx := buildRandomGraph(t, n, 40)
	hav := shortest.NewHaversineHeuristic(idx, shortest.DefaultSpeedKmh)

	for _, src := range []string{"S00", "S07", "S19"} {
		dist, _, err := shortest.Dijkstra(g, src)
		require.NoError(t, err)

		for i := 0; i < n; i++ {
			target := fmt.Sprintf("S%02d", i)

			zero, err := shortest.AStar(g, src, target, shortest.ZeroHeuristic{})
			require.NoError(t, err)
			assert.InDelta(t, dist[target], zero.Cost, 1e-9, "%s→%s zero heuristic", src, target)

			geo, err := shortest.AStar(g, src, target, hav)
			require.NoError(t, err)
			assert.InDelta(t, dist[target], geo.Cost, 1e-9, "%s→%s haversine", src, target)
		}
	}
}

// TestAStar_NilHeuristicDegradesToDijkstra ensures a nil heuristic is valid.
func TestAStar_NilHeuristicDegradesToDijkstra(t *testing.T) {
	g := buildLinear(t)

	p, err := shortest.AStar(g, "A", "C", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p.Nodes)
	assert.Equal(t, 2.0, p.Cost)
}

// TestHaversineHeuristic_MissingCoordsDegradesToZero: stops without positions
// must not break admissibility.
func TestHaversineHeuristic_MissingCoordsDegradesToZero(t *testing.T) {
	idx := stopindex.NewDefault()
	idx.Put("A", stopindex.StopMeta{Lat: 41.38, Lon: 2.15, HasCoords: true})
	idx.Put("B", stopindex.StopMeta{Name: "no coords"})

	h := shortest.NewHaversineHeuristic(idx, 0) // 0 falls back to default speed
	assert.Equal(t, 0.0, h.Estimate("A", "B"))
	assert.Equal(t, 0.0, h.Estimate("B", "A"))
	assert.Equal(t, 0.0, h.Estimate("A", "unknown"))
}

// TestHaversineHeuristic_KnownDistance sanity-checks the minutes conversion:
// 0.01 degrees of latitude is ~1.11 km, ~3.7 min at 18 km/h.
func TestHaversineHeuristic_KnownDistance(t *testing.T) {
	idx := stopindex.NewDefault()
	idx.Put("A", stopindex.StopMeta{Lat: 41.38, Lon: 2.15, HasCoords: true})
	idx.Put("B", stopindex.StopMeta{Lat: 41.39, Lon: 2.15, HasCoords: true})

	h := shortest.NewHaversineHeuristic(idx, 18)
	est := h.Estimate("A", "B")
	assert.InDelta(t, 3.7, est, 0.1)
	assert.Equal(t, 0.0, h.Estimate("A", "A"))
}
