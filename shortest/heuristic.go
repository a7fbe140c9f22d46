package shortest

import "math"

// Heuristic estimates remaining travel time in minutes from node toward
// target. Estimates must be non-negative and, for A* optimality, admissible:
// never greater than the true shortest remaining travel time.
type Heuristic interface {
	Estimate(node, target string) float64
}

// ZeroHeuristic is the trivial admissible heuristic; A* with it explores in
// exactly Dijkstra's order.
type ZeroHeuristic struct{}

// Estimate always returns 0.
func (ZeroHeuristic) Estimate(_, _ string) float64 { return 0 }

// CoordSource supplies stop coordinates for geographic heuristics; the
// ordered stop index implements it. ok must be false when the stop is unknown
// or carries no position.
type CoordSource interface {
	StopCoords(stopID string) (lat, lon float64, ok bool)
}

// DefaultSpeedKmh is the assumed cruising speed for converting great-circle
// distance to minutes. It deliberately overshoots typical surface transit
// speed so the estimate stays a lower bound on travel time.
const DefaultSpeedKmh = 18.0

const earthRadiusKm = 6371.0

// HaversineHeuristic lower-bounds remaining travel time by straight-line
// great-circle distance between two stops at an assumed cruising speed.
// When either stop has no coordinates the estimate degrades to zero for that
// pair, which keeps the heuristic admissible.
type HaversineHeuristic struct {
	coords   CoordSource
	speedKmh float64
}

// NewHaversineHeuristic builds the production heuristic over the given
// coordinate source. A speed of 0 or below falls back to DefaultSpeedKmh.
func NewHaversineHeuristic(coords CoordSource, speedKmh float64) *HaversineHeuristic {
	if speedKmh <= 0 {
		speedKmh = DefaultSpeedKmh
	}

	return &HaversineHeuristic{coords: coords, speedKmh: speedKmh}
}

// Estimate returns great-circle distance between node and target converted to
// minutes at the configured speed, or 0 when either position is unknown.
func (h *HaversineHeuristic) Estimate(node, target string) float64 {
	lat1, lon1, ok := h.coords.StopCoords(node)
	if !ok {
		return 0
	}
	lat2, lon2, ok := h.coords.StopCoords(target)
	if !ok {
		return 0
	}

	km := haversineKm(lat1, lon1, lat2, lon2)

	return km / h.speedKmh * 60.0
}

// haversineKm computes great-circle distance in kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const degToRad = math.Pi / 180.0
	lat1 *= degToRad
	lon1 *= degToRad
	lat2 *= degToRad
	lon2 *= degToRad

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
