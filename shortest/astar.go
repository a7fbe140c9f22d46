package shortest

import (
	"fmt"
	"math"

	"github.com/urbansim/transitflow/core"
)

// AStar computes the shortest path from source to target ordering the search
// by accumulated cost plus h.Estimate(node, target). A nil heuristic uses the
// zero estimate, degrading to Dijkstra.
//
// An unreachable target is a normal result: (Path{Cost: +Inf}, nil). Errors
// are reserved for invalid inputs, as in Dijkstra.
func AStar(g *core.Graph, source, target string, h Heuristic) (Path, error) {
	if g == nil {
		return noPath(), ErrNilGraph
	}
	if source == "" || target == "" {
		return noPath(), ErrEmptyNodeID
	}
	if !g.HasNode(source) {
		return noPath(), fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}
	if !g.HasNode(target) {
		return noPath(), fmt.Errorf("%w: target %q", ErrNodeNotFound, target)
	}

	r := newRunner(g, source, h, target)
	if err := r.run(); err != nil {
		return noPath(), err
	}

	return buildPath(r.dist, r.prev, source, target), nil
}

// ShortestPath computes the point-to-point route via Dijkstra. It is the
// routing entry point the simulator uses: edge weights are travel minutes.
func ShortestPath(g *core.Graph, source, target string) (Path, error) {
	dist, prev, err := Dijkstra(g, source)
	if err != nil {
		return noPath(), err
	}
	if target == "" {
		return noPath(), ErrEmptyNodeID
	}
	if !g.HasNode(target) {
		return noPath(), fmt.Errorf("%w: target %q", ErrNodeNotFound, target)
	}

	return buildPath(dist, prev, source, target), nil
}

func noPath() Path {
	return Path{Cost: math.Inf(1)}
}

// buildPath assembles the Path result from a finished search.
func buildPath(dist map[string]float64, prev map[string]string, source, target string) Path {
	cost, ok := dist[target]
	if !ok || math.IsInf(cost, 1) {
		return noPath()
	}
	nodes, ok := ReconstructPath(prev, source, target)
	if !ok {
		return noPath()
	}

	return Path{Nodes: nodes, Cost: cost}
}

// ReconstructPath walks predecessor links from target back to source.
// source == target yields the single-node path. ok is false when the links
// never reach source (unreachable target).
func ReconstructPath(prev map[string]string, source, target string) ([]string, bool) {
	if source == target {
		return []string{source}, true
	}
	if prev[target] == "" {
		return nil, false
	}

	var rev []string
	for u := target; u != ""; u = prev[u] {
		rev = append(rev, u)
		if u == source {
			break
		}
	}
	if rev[len(rev)-1] != source {
		return nil, false
	}

	nodes := make([]string, len(rev))
	for i, u := range rev {
		nodes[len(rev)-1-i] = u
	}

	return nodes, true
}
