// This file declares the Graph, Edge and Neighbor types, the GraphOption
// functional options, sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates an operation received an empty node identifier.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNegativeWeight indicates an edge weight below zero (or NaN) was
	// rejected at the mutation boundary. Every algorithm in this module
	// assumes non-negative travel times.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")
)

// Neighbor is one outgoing adjacency entry: the neighboring node and the
// travel time of the connecting edge, in minutes.
type Neighbor struct {
	// ID is the neighboring node's identifier.
	ID string

	// Weight is the travel time in minutes along this edge.
	Weight float64
}

// Edge is a directed entry (From→To) with a travel-time weight in minutes.
//
// For undirected graphs every logical link appears twice in Edges(), once per
// direction. Callers that enumerate edges for undirected purposes must
// de-duplicate by the canonical (sorted) endpoint pair.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the travel time in minutes.
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes the graph directed: AddEdge records only the u→v entry
// and no mirror. The default is undirected, matching bidirectional transit
// links derived from a schedule feed.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// Graph is the in-memory transit network.
//
// Adjacency is stored as a map from node ID to the insertion-ordered slice of
// outgoing Neighbor entries. Parallel edges between the same endpoints are
// permitted and never merged: multiple scheduled trips over the same physical
// link legitimately produce duplicate entries unless the caller aggregates
// them through a MetaStore instead.
type Graph struct {
	mu sync.RWMutex

	directed bool

	nodes map[string]struct{}
	adj   map[string][]Neighbor
	edges []Edge
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]struct{}),
		adj:   make(map[string][]Neighbor),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
