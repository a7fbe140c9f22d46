package shortest

import "errors"

// Sentinel errors returned by the path engine.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("shortest: graph is nil")

	// ErrEmptyNodeID indicates an empty source or target identifier.
	ErrEmptyNodeID = errors.New("shortest: node ID is empty")

	// ErrNodeNotFound indicates the source or target node does not exist in
	// the graph. Note the asymmetry with reachability: a *missing* endpoint
	// is a programmer error, while an *unreachable* one is a normal result
	// reported as an infinite distance.
	ErrNodeNotFound = errors.New("shortest: node not found in graph")

	// ErrNegativeWeight indicates a negative edge weight was observed during
	// relaxation. The core mutation boundary should make this impossible.
	ErrNegativeWeight = errors.New("shortest: negative edge weight encountered")
)

// Path is a point-to-point query result: the ordered node sequence from
// source to target and its total cost in minutes.
//
// No route is represented as Nodes == nil and Cost == math.Inf(1).
// A query with source == target yields the single-node path with Cost == 0.
type Path struct {
	Nodes []string
	Cost  float64
}

// Exists reports whether the query found a route.
func (p Path) Exists() bool { return len(p.Nodes) > 0 }
