// Package shortest implements single-source and point-to-point shortest-path
// search over a transitflow core.Graph: Dijkstra and A* with a pluggable
// admissible heuristic.
//
// Edge weights are travel times in minutes and must be non-negative (the core
// mutation boundary enforces this; Dijkstra still fails fast if it ever
// observes a negative weight). Unreachable targets are a normal result, not
// an error: distances come back as math.Inf(1) and paths as none.
//
// Dijkstra uses a min-heap priority queue with the lazy-decrease-key
// strategy: improved distances push duplicate heap entries, and stale entries
// are skipped on pop once their vertex is finalized.
//
// A* runs the identical relaxation but orders the queue by accumulated cost
// plus a heuristic estimate toward the target. The Heuristic capability has
// two concrete implementations: ZeroHeuristic (degrades A* to Dijkstra) and
// HaversineHeuristic, which lower-bounds remaining travel time by great-circle
// distance at an assumed cruising speed, reading stop coordinates from a
// CoordSource (typically the ordered stop index). Missing coordinates degrade
// the estimate to zero for that pair, preserving admissibility.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for both algorithms; A* typically visits fewer
//     vertices under an informative heuristic.
//   - Space: O(V + E) for the distance/predecessor maps and the lazy heap.
package shortest
