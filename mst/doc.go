// Package mst computes minimum spanning forests of transit graphs with
// Kruskal's algorithm and a union-find (disjoint-set) structure.
//
// The input Graph stores an undirected link as two directed entries, and
// multi-trip overlaps may add parallel entries on top; Kruskal therefore
// first canonicalizes the edge set — endpoints sorted, minimum observed
// weight retained per pair — before sorting and the union loop.
//
// A disconnected graph is not an error: the result is a minimum spanning
// forest with one tree per component and the total weight summed across all
// of them.
//
// Complexity: O(E log E) for the sort, effectively O(E α(V)) for the union
// loop. Memory: O(V + E).
package mst
