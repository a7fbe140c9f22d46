// Package transitflow analyzes passenger flow over transit networks.
//
// The module is organized as a set of small, composable packages:
//
//	core/      — weighted string-keyed multigraph plus per-edge observation store
//	bptree/    — B+ tree ordered string index with linked-leaf iteration
//	stopindex/ — stop metadata registry built on bptree
//	shortest/  — Dijkstra and A* with pluggable admissible heuristics
//	mst/       — Kruskal minimum spanning forest with union-find
//	flow/      — Edmonds–Karp max-flow over explicit capacity maps
//	capacity/  — per-edge passenger throughput derived from service patterns
//	sim/       — capacity-constrained discrete-minute passenger simulator
//	config/    — YAML scenario loading with validation and env overrides
//
// Typical use: build a core.Graph from stop and segment data, derive a
// flow.CapacityMap with capacity.Model, then run sim.Simulator to obtain
// per-passenger journeys and per-edge loads for a demand scenario.
package transitflow
