package mst

import (
	"errors"
	"sort"

	"github.com/urbansim/transitflow/core"
)

// ErrNilGraph indicates a nil *core.Graph was passed to Kruskal.
var ErrNilGraph = errors.New("mst: graph is nil")

// Edge is one accepted forest edge in canonical form: U < V lexicographically,
// Weight the minimum travel time observed between the pair.
type Edge struct {
	U, V   string
	Weight float64
}

// Kruskal computes a minimum spanning forest of g.
//
// Steps:
//  1. Canonicalize: collapse the directed/parallel edge entries to one
//     undirected edge per sorted endpoint pair, keeping the minimum weight.
//     Self-loops are skipped; they can never join components.
//  2. Sort the canonical edges by ascending weight (stable, so equal weights
//     keep their canonical-pair order deterministic).
//  3. Union loop: accept an edge only when its endpoints lie in different
//     components, then merge them.
//
// Returns the accepted edges and their total weight. A disconnected graph
// yields a forest (fewer than V−1 edges) — accepted behavior, not an error.
func Kruskal(g *core.Graph) ([]Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	// 1. De-duplicate by canonical sorted pair, retaining minimum weight.
	type pair struct{ u, v string }
	unique := make(map[pair]float64)
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		u, v := e.From, e.To
		if v < u {
			u, v = v, u
		}
		k := pair{u, v}
		if w, ok := unique[k]; !ok || e.Weight < w {
			unique[k] = e.Weight
		}
	}

	edges := make([]Edge, 0, len(unique))
	for k, w := range unique {
		edges = append(edges, Edge{U: k.u, V: k.v, Weight: w})
	}

	// 2. Ascending weight; ties broken by canonical pair for determinism.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})

	// 3. Union loop over the sorted candidates.
	uf := NewUnionFind(g.Nodes())
	var (
		forest []Edge
		total  float64
	)
	for _, e := range edges {
		if uf.Union(e.U, e.V) {
			forest = append(forest, e)
			total += e.Weight
		}
	}

	return forest, total, nil
}
