package capacity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbansim/transitflow/capacity"
	"github.com/urbansim/transitflow/core"
)

// TestDerive_PrefixHeuristic: metro ('M') edges triple the base, tram ('T')
// edges double it, everything else keeps the base.
func TestDerive_PrefixHeuristic(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("M1", "M2", 3)) // metro
	require.NoError(t, g.AddEdge("T1", "B1", 4)) // tram endpoint wins medium
	require.NoError(t, g.AddEdge("B1", "B2", 5)) // plain

	cm := capacity.NewModel().Derive(g, nil)

	assert.Equal(t, 90, cm.At("M1", "M2"))
	assert.Equal(t, 90, cm.At("M2", "M1"), "mirror entry gets the same capacity")
	assert.Equal(t, 60, cm.At("T1", "B1"))
	assert.Equal(t, 30, cm.At("B1", "B2"))
	assert.Equal(t, 0, cm.At("B2", "M1"), "no edge, no capacity")
}

// TestDerive_ModeTagBeatsPrefix: metadata mode tags take precedence over the
// identifier prefix fallback.
func TestDerive_ModeTagBeatsPrefix(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("S1", "S2", 2))

	ms := core.NewMetaStore(false)
	ms.Accumulate("S1", "S2", core.Observation{Mode: "metro"})

	cm := capacity.NewModel().Derive(g, ms)
	assert.Equal(t, 90, cm.At("S1", "S2"))
}

// TestDerive_HeadwayRaisesCapacity: a 60-second headway at 50 passengers per
// vehicle yields 50/min, above the base 30 — headway wins.
func TestDerive_HeadwayRaisesCapacity(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("B1", "B2", 2))

	ms := core.NewMetaStore(false)
	ms.Accumulate("B1", "B2", core.Observation{HeadwaySecs: 180})
	ms.Accumulate("B1", "B2", core.Observation{HeadwaySecs: 60}) // most frequent service

	cm := capacity.NewModel().Derive(g, ms)
	assert.Equal(t, 50, cm.At("B1", "B2"))
	assert.Equal(t, 50, cm.At("B2", "B1"))
}

// TestDerive_HeadwayFloor: sparse service (long headways) must not drop below
// the heuristic base — the max() floor holds.
func TestDerive_HeadwayFloor(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("B1", "B2", 2))

	ms := core.NewMetaStore(false)
	// 600 s headway → 0.1 vehicles/min × 50 = 5/min, below the base 30.
	ms.Accumulate("B1", "B2", core.Observation{HeadwaySecs: 600})

	cm := capacity.NewModel().Derive(g, ms)
	assert.Equal(t, 30, cm.At("B1", "B2"))
}

// TestDerive_Options: overrides flow through both derivation branches.
func TestDerive_Options(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("B1", "B2", 2))

	ms := core.NewMetaStore(false)
	ms.Accumulate("B1", "B2", core.Observation{HeadwaySecs: 120})

	m := capacity.NewModel(
		capacity.WithBasePerMinute(10),
		capacity.WithVehicleCapacity(80),
	)
	// 0.5 vehicles/min × 80 = 40 > base 10.
	assert.Equal(t, 40, m.Derive(g, ms).At("B1", "B2"))
}

// TestOptions_RejectNonPositive: misconfiguration panics at construction.
func TestOptions_RejectNonPositive(t *testing.T) {
	assert.Panics(t, func() { capacity.WithBasePerMinute(0) })
	assert.Panics(t, func() { capacity.WithVehicleCapacity(-1) })
}
