package flow

import (
	"context"
	"math"
	"sort"
)

// EdmondsKarp computes the maximum flow from source to sink over caps.
//
// It returns the total flow value and the positive per-edge flow assignment.
// The context is checked once per BFS wave; cancellation aborts with
// ctx.Err() and a nil mapping.
//
// Missing nodes and absent capacity entries are not errors: if no augmenting
// path exists — including when source or sink never appear in caps — the
// result is simply zero flow. The only rejected input is a negative capacity.
func EdmondsKarp(ctx context.Context, caps CapacityMap, source, sink string) (int, FlowMap, error) {
	if err := caps.Validate(); err != nil {
		return 0, nil, err
	}

	r := newResidual(caps)

	maxFlow := 0
	for {
		select {
		case <-ctx.Done():
			return 0, nil, ctx.Err()
		default:
		}

		path := r.augmentingPath(source, sink)
		if path == nil {
			break
		}

		// Bottleneck = minimum residual capacity along the path.
		bottleneck := math.MaxInt
		for i := 0; i < len(path)-1; i++ {
			if res := r.residual(path[i], path[i+1]); res < bottleneck {
				bottleneck = res
			}
		}

		// Augment: additive on forward edges, subtractive on the mirrors,
		// which is exactly what makes later reverse cancellation possible.
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			r.flow[u][v] += bottleneck
			r.flow[v][u] -= bottleneck
		}
		maxFlow += bottleneck
	}

	return maxFlow, r.positiveFlow(), nil
}

// residualNet holds the working state of one Edmonds-Karp run: the immutable
// capacities, the signed flow bookkeeping (flow[v][u] == -flow[u][v]), and a
// precomputed adjacency over both edge directions.
type residualNet struct {
	caps CapacityMap
	flow map[string]map[string]int
	adj  map[string][]string
}

func newResidual(caps CapacityMap) *residualNet {
	r := &residualNet{
		caps: caps,
		flow: make(map[string]map[string]int),
		adj:  make(map[string][]string),
	}

	// Neighbors in the residual network are forward heads plus reverse
	// tails; both are derivable from caps alone, since flow only ever runs
	// where capacity exists. Sorted adjacency keeps BFS deterministic.
	nbrSets := make(map[string]map[string]struct{})
	add := func(u, v string) {
		set, ok := nbrSets[u]
		if !ok {
			set = make(map[string]struct{})
			nbrSets[u] = set
		}
		set[v] = struct{}{}
	}
	for u, inner := range caps {
		for v, c := range inner {
			if c <= 0 {
				continue
			}
			add(u, v)
			add(v, u)
		}
	}
	for _, id := range caps.nodes() {
		r.flow[id] = make(map[string]int)
		for v := range nbrSets[id] {
			r.adj[id] = append(r.adj[id], v)
		}
		sort.Strings(r.adj[id])
	}

	return r
}

// residual returns the remaining capacity of u→v in the residual network:
// unused forward capacity plus cancelable reverse flow (the negative flow
// bookkeeping folds the two cases into one expression).
func (r *residualNet) residual(u, v string) int {
	return r.caps.At(u, v) - r.flow[u][v]
}

// augmentingPath finds the fewest-edges source→sink path with positive
// residual capacity, or nil when none remains.
func (r *residualNet) augmentingPath(source, sink string) []string {
	if source == sink {
		return nil
	}

	parent := map[string]string{source: source}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range r.adj[u] {
			if _, seen := parent[v]; seen || r.residual(u, v) <= 0 {
				continue
			}
			parent[v] = u
			if v == sink {
				var rev []string
				for cur := sink; ; cur = parent[cur] {
					rev = append(rev, cur)
					if cur == source {
						break
					}
				}
				path := make([]string, len(rev))
				for i, id := range rev {
					path[len(rev)-1-i] = id
				}

				return path
			}
			queue = append(queue, v)
		}
	}

	return nil
}

// positiveFlow extracts the positive part of the signed bookkeeping: the
// per-edge assignment callers report on.
func (r *residualNet) positiveFlow() FlowMap {
	out := make(FlowMap)
	for u, inner := range r.flow {
		for v, f := range inner {
			if f <= 0 {
				continue
			}
			if out[u] == nil {
				out[u] = make(map[string]int)
			}
			out[u][v] = f
		}
	}

	return out
}
