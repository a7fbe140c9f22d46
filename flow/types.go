package flow

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNegativeCapacity indicates a capacity entry below zero. Capacities are
// passengers per minute and must be non-negative; this is rejected up front,
// not tolerated.
var ErrNegativeCapacity = errors.New("flow: negative capacity")

// CapacityMap is a directed capacity mapping: CapacityMap[u][v] is the
// capacity of edge u→v in passengers per minute. Zero or absent entries mean
// "no edge".
type CapacityMap map[string]map[string]int

// FlowMap carries the positive flow assigned per directed edge by a max-flow
// run: FlowMap[u][v] > 0 for every edge that carries flow.
type FlowMap map[string]map[string]int

// Set assigns capacity c to edge u→v, allocating the inner map as needed.
// Negative capacities are rejected at this mutation boundary.
func (cm CapacityMap) Set(u, v string, c int) error {
	if c < 0 {
		return fmt.Errorf("%w: %s→%s = %d", ErrNegativeCapacity, u, v, c)
	}
	inner, ok := cm[u]
	if !ok {
		inner = make(map[string]int)
		cm[u] = inner
	}
	inner[v] = c

	return nil
}

// At returns the capacity of u→v, zero when absent.
func (cm CapacityMap) At(u, v string) int { return cm[u][v] }

// Validate checks every entry is non-negative.
func (cm CapacityMap) Validate() error {
	for u, inner := range cm {
		for v, c := range inner {
			if c < 0 {
				return fmt.Errorf("%w: %s→%s = %d", ErrNegativeCapacity, u, v, c)
			}
		}
	}

	return nil
}

// Clone deep-copies the mapping. The simulator clones one bucket per minute
// of its window from the same base mapping.
func (cm CapacityMap) Clone() CapacityMap {
	out := make(CapacityMap, len(cm))
	for u, inner := range cm {
		cp := make(map[string]int, len(inner))
		for v, c := range inner {
			cp[v] = c
		}
		out[u] = cp
	}

	return out
}

// nodes returns every node mentioned as a tail or head, sorted for
// deterministic traversal order.
func (cm CapacityMap) nodes() []string {
	seen := make(map[string]struct{}, len(cm))
	for u, inner := range cm {
		seen[u] = struct{}{}
		for v := range inner {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
