package shortest

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/urbansim/transitflow/core"
)

// Dijkstra computes shortest travel times from source to every reachable node
// of g.
//
// Returns:
//
//   - dist: node ID → minimum travel time in minutes; math.Inf(1) when the
//     node is unreachable from source.
//   - prev: node ID → predecessor on a shortest path ("" for source and for
//     unreachable nodes); feed it to ReconstructPath.
//   - err:  non-nil only for invalid inputs (nil graph, empty or unknown
//     source) or a negative weight slipping past the core invariant.
//
// Ties between equal tentative distances break arbitrarily (heap order).
func Dijkstra(g *core.Graph, source string) (map[string]float64, map[string]string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if source == "" {
		return nil, nil, ErrEmptyNodeID
	}
	if !g.HasNode(source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}

	r := newRunner(g, source, nil, "")
	if err := r.run(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state of one search. Dijkstra and A* share it:
// with a nil heuristic the priority is the plain accumulated distance.
type runner struct {
	g      *core.Graph
	source string
	target string    // "" for single-source runs; A* stops when popped
	h      Heuristic // nil means zero estimate

	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

func newRunner(g *core.Graph, source string, h Heuristic, target string) *runner {
	nodes := g.Nodes()
	r := &runner{
		g:       g,
		source:  source,
		target:  target,
		h:       h,
		dist:    make(map[string]float64, len(nodes)),
		prev:    make(map[string]string, len(nodes)),
		visited: make(map[string]bool, len(nodes)),
		pq:      make(nodePQ, 0, len(nodes)),
	}

	for _, v := range nodes {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, priority: r.estimate(source)})

	return r
}

// estimate returns the heuristic lower bound from v to the target, or zero
// when no heuristic or no target applies.
func (r *runner) estimate(v string) float64 {
	if r.h == nil || r.target == "" {
		return 0
	}

	return r.h.Estimate(v, r.target)
}

// run is the main loop: pop the lowest-priority node, skip stale entries,
// finalize, relax. With a target set, finalizing the target terminates early.
func (r *runner) run() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Lazy deletion: a finalized node re-surfacing means a stale entry.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if r.target != "" && u == r.target {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve every outgoing neighbor of u.
func (r *runner) relax(u string) error {
	for _, nb := range r.g.Neighbors(u) {
		if nb.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, u, nb.ID, nb.Weight)
		}

		alt := r.dist[u] + nb.Weight
		if alt >= r.dist[nb.ID] {
			continue
		}

		r.dist[nb.ID] = alt
		r.prev[nb.ID] = u
		heap.Push(&r.pq, &nodeItem{id: nb.ID, priority: alt + r.estimate(nb.ID)})
	}

	return nil
}

// nodeItem is a heap entry: a node and its queue priority (tentative distance,
// plus the heuristic estimate when running A*).
type nodeItem struct {
	id       string
	priority float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending priority, used with
// the lazy-decrease-key pattern: improvements push duplicates, and stale
// entries are discarded on pop via the visited set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
