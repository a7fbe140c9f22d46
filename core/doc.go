// Package core defines the central Graph and edge-metadata types shared by
// every engine in transitflow: shortest-path routing, minimum spanning tree,
// max-flow capacity analysis and the passenger simulator.
//
// A Graph is a weighted, optionally directed multigraph keyed by opaque stop
// identifiers. Edge weights are travel times in minutes and must be
// non-negative; the mutation boundary enforces this so the algorithm packages
// may assume it. An undirected edge is stored as two directed entries (u→v and
// v→u) with equal weight — consumers that need a canonical undirected view
// (MST, export) de-duplicate by the sorted endpoint pair.
//
// Scheduling metadata (trip identifiers, route identifiers, mode tags, headway
// observations) is accumulated per canonical edge key in a MetaStore, a
// companion structure to the Graph rather than a property of its edges:
// repeated observations of the same physical link merge into one record.
//
// All mutating and reading methods are safe for concurrent use; the algorithm
// packages treat a Graph as an immutable snapshot for the duration of a query.
package core
