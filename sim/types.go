package sim

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/urbansim/transitflow/shortest"
)

// Sentinel errors returned by the simulator.
var (
	// ErrNilGraph indicates the simulator was built without a graph.
	ErrNilGraph = errors.New("sim: graph is nil")

	// ErrNilCapacity indicates the simulator was built without a capacity
	// mapping.
	ErrNilCapacity = errors.New("sim: capacity mapping is nil")

	// ErrNegativeRate indicates a demand row with a negative hourly rate.
	ErrNegativeRate = errors.New("sim: demand rate must be non-negative")
)

// DefaultWindowMinutes is the simulation window used when no option is given:
// one hour at one-minute resolution.
const DefaultWindowMinutes = 60

// demandScale converts an hourly rate into a synthesized passenger count:
// max(1, round(rate/demandScale)). Inherited from the original calibration.
const demandScale = 10.0

// Demand is one demand tuple: passengers appear at Origin heading for Dest at
// RatePerHour.
type Demand struct {
	Origin      string
	Dest        string
	RatePerHour float64
}

// passenger is the ephemeral simulator-internal unit: created at demand
// generation, consumed once routed.
type passenger struct {
	id            int
	origin, dest  string
	arrivalMinute int
}

// PassengerResult is the per-passenger outcome.
type PassengerResult struct {
	ID            int
	Origin        string
	Dest          string
	ArrivalMinute int

	// Path is the routed node sequence, nil when no route exists.
	Path []string

	// TravelMinutes is minute-of-arrival at the final stop minus the
	// minute of arrival into the system, boarding waits included;
	// math.Inf(1) for Blocked passengers.
	TravelMinutes float64

	// WaitMinutes is the total time spent waiting to board.
	WaitMinutes int
}

// Arrived reports whether the passenger completed its trip in the window.
func (p PassengerResult) Arrived() bool { return !blockedTime(p.TravelMinutes) }

// EdgeLoad counts passengers per traversed directed edge.
type EdgeLoad map[string]map[string]int

// add increments the counter for edge u→v.
func (l EdgeLoad) add(u, v string) {
	inner, ok := l[u]
	if !ok {
		inner = make(map[string]int)
		l[u] = inner
	}
	inner[v]++
}

// At returns the load of edge u→v, zero when untraversed.
func (l EdgeLoad) At(u, v string) int { return l[u][v] }

// Result aggregates one simulation run.
type Result struct {
	Passengers []PassengerResult
	EdgeLoad   EdgeLoad

	// AvgTravelMinutes averages travel time over Arrived passengers only;
	// math.Inf(1) when nobody arrived.
	AvgTravelMinutes float64

	// Total counts all synthesized passengers, Blocked counts those that
	// never completed (unroutable or starved of capacity).
	Total   int
	Blocked int
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithWindowMinutes sets the simulation window length.
// Panics on values below 1: a zero-length window cannot admit anyone.
func WithWindowMinutes(minutes int) Option {
	if minutes < 1 {
		panic("sim: window must be at least one minute")
	}

	return func(s *Simulator) { s.windowMinutes = minutes }
}

// WithSeed fixes the demand generator's random source for reproducible runs.
func WithSeed(seed int64) Option {
	return func(s *Simulator) { s.seed = &seed }
}

// WithHeuristic routes passengers with A* under h instead of plain Dijkstra.
func WithHeuristic(h shortest.Heuristic) Option {
	return func(s *Simulator) { s.heuristic = h }
}

// WithLogger replaces the default logrus standard logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Simulator) { s.log = logger }
}
