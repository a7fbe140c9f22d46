// Package sim is the capacity-constrained passenger simulator: it generates
// synthetic demand, routes each passenger with the shortest-path engine, and
// advances passengers minute by minute through discretized per-minute
// capacity buckets, measuring boarding waits, edge load and travel time.
//
// The simulation window is split into one-minute buckets, each starting with
// a fresh copy of the capacity mapping. Passengers are processed in ascending
// arrival-minute order — this ordering is required for correctness, because a
// passenger's boarding success depends on how earlier passengers drained the
// same bucket. A passenger that cannot board an edge in its current minute
// waits one minute and retries; when the window ends before it boards, it is
// Blocked (infinite travel time) rather than retried indefinitely.
//
// Per-passenger state machine:
//
//	Generated → Waiting-to-board(edge, minute) → In-transit(edge) → … → Arrived | Blocked
//
// Routing defaults to Dijkstra over travel-minute weights; supply a heuristic
// via WithHeuristic to route with A* instead. Routes are computed once per
// (origin, destination) pair and reused across the passengers sharing it.
package sim
