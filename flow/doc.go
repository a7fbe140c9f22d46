// Package flow implements maximum-flow computation with the Edmonds–Karp
// algorithm over an explicit directed capacity mapping.
//
// The capacity mapping is deliberately independent of the travel-time graph:
// capacities are integer passengers per minute produced by the capacity
// model, and the mapping may contain synthetic nodes (a super-source feeding
// several origins, a super-sink draining several destinations) that exist in
// no Graph. A zero or absent capacity entry means "no edge" and is never an
// error; neither is a source with no outgoing capacity — the maximum flow is
// simply zero.
//
// Augmenting paths are found by breadth-first search over the residual
// network: a residual edge is either unused forward capacity or existing flow
// that can be cancelled in reverse. Augmentation adds the bottleneck along
// forward edges and subtracts it along reverse ones.
//
// Complexity: O(V · E²) worst case. Memory: O(V + E).
package flow
