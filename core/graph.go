// Graph method implementations: node and edge registration plus read-only
// accessors. A single RWMutex guards all storage; the engines only read, so
// concurrent queries against an unchanging Graph never contend on writes.
package core

import (
	"math"
	"sort"
)

// AddNode idempotently registers a node.
// Returns ErrEmptyNodeID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(id)

	return nil
}

// addNodeLocked registers id and its adjacency slot; caller holds g.mu.
func (g *Graph) addNodeLocked(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}
}

// AddEdge appends a directed edge u→v with the given travel time in minutes,
// registering both endpoints as needed. When the graph is undirected the
// mirror entry v→u is appended with equal weight. Parallel edges are kept
// as-is, never merged.
//
// Returns ErrEmptyNodeID for empty endpoints and ErrNegativeWeight for a
// negative or NaN weight; the non-negativity invariant is enforced here so
// Dijkstra, A* and the simulator can rely on it.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight float64) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if weight < 0 || math.IsNaN(weight) {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(u)
	g.addNodeLocked(v)

	g.adj[u] = append(g.adj[u], Neighbor{ID: v, Weight: weight})
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: weight})

	if !g.directed {
		g.adj[v] = append(g.adj[v], Neighbor{ID: u, Weight: weight})
		g.edges = append(g.edges, Edge{From: v, To: u, Weight: weight})
	}

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Directed reports whether AddEdge records one directed entry (true) or a
// mirrored pair (false).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Neighbors returns the outgoing (neighbor, weight) entries of u in insertion
// order. A node with no edges — including a node never added — yields an
// empty slice: absence is not an error at this layer.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u string) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.adj[u]
	if len(src) == 0 {
		return nil
	}
	out := make([]Neighbor, len(src))
	copy(out, src)

	return out
}

// Nodes returns all node IDs in ascending order for deterministic iteration.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns every directed edge entry in insertion order. For undirected
// graphs each logical link appears twice (u→v and v→u); de-duplicate by the
// canonical sorted endpoint pair before undirected consumption.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of directed edge entries (mirrors included).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
