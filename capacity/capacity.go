// Package capacity derives per-directed-edge passenger-per-minute capacities
// for the max-flow engine and the simulator.
//
// Two sources combine per edge:
//
//   - A static heuristic: a base per-minute capacity scaled by a mode
//     multiplier. The mode comes from edge metadata tags when available and
//     falls back to the node-identifier prefix convention of the feed
//     ("M…" metro stops, "T…" tram stops).
//   - Scheduling metadata: when headway observations exist for an edge, the
//     most frequent service (minimum headway) gives vehicles per minute,
//     multiplied by an assumed per-vehicle capacity.
//
// The larger of the two is kept: observed scheduling data may raise capacity
// above the heuristic but never lower it below the sane floor.
package capacity

import (
	"math"
	"strings"

	"github.com/urbansim/transitflow/core"
	"github.com/urbansim/transitflow/flow"
)

// Defaults match the calibration the original analysis ran with.
const (
	// DefaultBasePerMinute is the heuristic per-minute capacity of an
	// ordinary (bus-grade) edge.
	DefaultBasePerMinute = 30

	// DefaultVehicleCapacity is the assumed passengers per vehicle when
	// deriving capacity from headways.
	DefaultVehicleCapacity = 50

	// Mode multipliers: high-capacity modes (metro) triple the base,
	// medium-capacity modes (tram) double it.
	highCapacityMultiplier   = 3
	mediumCapacityMultiplier = 2
)

// Model holds the capacity-derivation parameters.
type Model struct {
	base            int
	vehicleCapacity int
}

// Option configures a Model.
type Option func(*Model)

// WithBasePerMinute overrides the heuristic base capacity.
// Panics on non-positive values: a zero floor would let every edge collapse.
func WithBasePerMinute(base int) Option {
	if base <= 0 {
		panic("capacity: base per-minute capacity must be positive")
	}

	return func(m *Model) { m.base = base }
}

// WithVehicleCapacity overrides the assumed passengers per vehicle.
// Panics on non-positive values.
func WithVehicleCapacity(c int) Option {
	if c <= 0 {
		panic("capacity: vehicle capacity must be positive")
	}

	return func(m *Model) { m.vehicleCapacity = c }
}

// NewModel creates a Model with the package defaults, then applies opts.
func NewModel(opts ...Option) *Model {
	m := &Model{
		base:            DefaultBasePerMinute,
		vehicleCapacity: DefaultVehicleCapacity,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Derive produces the directed capacity mapping for every edge entry of g.
// meta may be nil, in which case only the static heuristic applies.
//
// Per directed entry (u, v):
//
//	heuristic = base × modeMultiplier(u, v, tags)
//	headway   = round(60 / minHeadwaySecs × vehicleCapacity)   (when observed)
//	capacity  = max(heuristic, headway)
//
// The max() floor is deliberate: low-frequency headway data must not drop an
// edge below the heuristic minimum.
func (m *Model) Derive(g *core.Graph, meta *core.MetaStore) flow.CapacityMap {
	cm := make(flow.CapacityMap, g.NodeCount())

	for _, e := range g.Edges() {
		var tags []string
		minHeadway := 0
		if meta != nil {
			if rec, ok := meta.Lookup(e.From, e.To); ok {
				tags = rec.Modes
			}
			minHeadway = meta.MinHeadwaySecs(e.From, e.To)
		}

		eff := m.base * modeMultiplier(e.From, e.To, tags)
		if minHeadway > 0 {
			vehiclesPerMin := 60.0 / float64(minHeadway)
			byHeadway := int(math.Round(vehiclesPerMin * float64(m.vehicleCapacity)))
			if byHeadway > eff {
				eff = byHeadway
			}
		}

		// Parallel entries for the same directed pair resolve to the same
		// value, so plain assignment is safe.
		_ = cm.Set(e.From, e.To, eff)
	}

	return cm
}

// modeMultiplier classifies an edge by its metadata mode tags, falling back
// to the endpoint-prefix convention.
func modeMultiplier(u, v string, tags []string) int {
	// Mixed-mode edges keep the strongest classification.
	best := 0
	for _, tag := range tags {
		switch strings.ToLower(tag) {
		case "metro", "subway", "rail":
			return highCapacityMultiplier
		case "tram", "brt":
			best = mediumCapacityMultiplier
		}
	}
	if best > 0 {
		return best
	}

	if strings.HasPrefix(u, "M") || strings.HasPrefix(v, "M") {
		return highCapacityMultiplier
	}
	if strings.HasPrefix(u, "T") || strings.HasPrefix(v, "T") {
		return mediumCapacityMultiplier
	}

	return 1
}
