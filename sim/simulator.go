package sim

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/urbansim/transitflow/core"
	"github.com/urbansim/transitflow/flow"
	"github.com/urbansim/transitflow/shortest"
)

// Simulator routes synthetic passengers over a graph under per-minute
// capacity constraints. Build one per (graph, capacity) snapshot; Run may be
// called repeatedly and each call works on fresh bucket copies.
type Simulator struct {
	g    *core.Graph
	caps flow.CapacityMap

	windowMinutes int
	seed          *int64
	heuristic     shortest.Heuristic
	log           *logrus.Logger
}

// New creates a Simulator over g and the capacity mapping caps (typically the
// output of capacity.Model.Derive).
func New(g *core.Graph, caps flow.CapacityMap, opts ...Option) *Simulator {
	s := &Simulator{
		g:             g,
		caps:          caps,
		windowMinutes: DefaultWindowMinutes,
		log:           logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run synthesizes passengers from the demand rows and plays them through the
// window. Passengers are processed in ascending arrival-minute order; see the
// package documentation for why that ordering is load-bearing.
func (s *Simulator) Run(demand []Demand) (*Result, error) {
	if s.g == nil {
		return nil, ErrNilGraph
	}
	if s.caps == nil {
		return nil, ErrNilCapacity
	}
	if err := s.caps.Validate(); err != nil {
		return nil, err
	}

	passengers, err := s.generate(demand)
	if err != nil {
		return nil, err
	}

	runLog := s.log.WithFields(logrus.Fields{
		"run":        uuid.NewString(),
		"window_min": s.windowMinutes,
		"demand":     len(demand),
		"passengers": len(passengers),
	})
	runLog.Info("simulation started")

	// One capacity bucket per minute, each a fresh copy of the base mapping.
	buckets := make([]flow.CapacityMap, s.windowMinutes)
	for m := range buckets {
		buckets[m] = s.caps.Clone()
	}

	res := &Result{
		Passengers: make([]PassengerResult, 0, len(passengers)),
		EdgeLoad:   make(EdgeLoad),
		Total:      len(passengers),
	}
	routes := make(map[[2]string]shortest.Path)

	for _, p := range passengers {
		res.Passengers = append(res.Passengers, s.play(p, buckets, routes, res.EdgeLoad))
	}

	var sum float64
	arrived := 0
	for _, pr := range res.Passengers {
		if pr.Arrived() {
			sum += pr.TravelMinutes
			arrived++
		} else {
			res.Blocked++
		}
	}
	if arrived > 0 {
		res.AvgTravelMinutes = sum / float64(arrived)
	} else {
		res.AvgTravelMinutes = math.Inf(1)
	}

	runLog.WithFields(logrus.Fields{
		"arrived":    arrived,
		"blocked":    res.Blocked,
		"avg_travel": res.AvgTravelMinutes,
	}).Info("simulation finished")

	return res, nil
}

// generate synthesizes passengers from demand rows: max(1, round(rate/10))
// per row, each with a uniformly random arrival minute inside the window.
// Output is sorted by arrival minute (IDs break ties for determinism).
func (s *Simulator) generate(demand []Demand) ([]passenger, error) {
	seed := time.Now().UnixNano()
	if s.seed != nil {
		seed = *s.seed
	}
	rng := rand.New(rand.NewSource(seed))

	var out []passenger
	id := 0
	for _, row := range demand {
		if row.RatePerHour < 0 {
			return nil, ErrNegativeRate
		}
		count := int(math.Round(row.RatePerHour / demandScale))
		if count < 1 {
			count = 1
		}
		for i := 0; i < count; i++ {
			out = append(out, passenger{
				id:            id,
				origin:        row.Origin,
				dest:          row.Dest,
				arrivalMinute: rng.Intn(s.windowMinutes),
			})
			id++
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].arrivalMinute != out[j].arrivalMinute {
			return out[i].arrivalMinute < out[j].arrivalMinute
		}

		return out[i].id < out[j].id
	})

	return out, nil
}

// route resolves (and caches) the path for an origin/destination pair.
// Unknown stops and unreachable pairs yield the no-path sentinel — those
// passengers are Blocked, not errors.
func (s *Simulator) route(origin, dest string, routes map[[2]string]shortest.Path) shortest.Path {
	key := [2]string{origin, dest}
	if p, ok := routes[key]; ok {
		return p
	}

	p := shortest.Path{Cost: math.Inf(1)}
	if s.g.HasNode(origin) && s.g.HasNode(dest) {
		var err error
		if s.heuristic != nil {
			p, err = shortest.AStar(s.g, origin, dest, s.heuristic)
		} else {
			p, err = shortest.ShortestPath(s.g, origin, dest)
		}
		if err != nil {
			// Endpoints were checked above; treat residual failures as
			// unroutable rather than aborting the whole run.
			p = shortest.Path{Cost: math.Inf(1)}
		}
	}
	routes[key] = p

	return p
}

// play advances one passenger through its path, consuming bucket capacity.
func (s *Simulator) play(p passenger, buckets []flow.CapacityMap, routes map[[2]string]shortest.Path, load EdgeLoad) PassengerResult {
	out := PassengerResult{
		ID:            p.id,
		Origin:        p.origin,
		Dest:          p.dest,
		ArrivalMinute: p.arrivalMinute,
		TravelMinutes: math.Inf(1),
	}

	path := s.route(p.origin, p.dest, routes)
	if !path.Exists() {
		s.log.WithFields(logrus.Fields{
			"passenger": p.id,
			"origin":    p.origin,
			"dest":      p.dest,
		}).Debug("no route, passenger blocked")

		return out
	}
	out.Path = path.Nodes

	minute := p.arrivalMinute
	for i := 0; i < len(path.Nodes)-1; i++ {
		u, v := path.Nodes[i], path.Nodes[i+1]

		// Occupancy rounds up: a 1.5-minute hop holds the passenger for
		// two whole minutes, and boarding consumes capacity in the minute
		// the traversal starts.
		needed := int(math.Ceil(s.edgeWeight(u, v)))
		if needed < 1 {
			needed = 1
		}

		boarded := false
		for attempt := minute; attempt < s.windowMinutes; attempt++ {
			if buckets[attempt].At(u, v) < 1 {
				out.WaitMinutes++

				continue
			}
			buckets[attempt][u][v]--
			load.add(u, v)
			minute = attempt + needed
			boarded = true

			break
		}
		if !boarded {
			// Window exhausted mid-journey: Blocked, no further retry.
			return out
		}
	}

	out.TravelMinutes = float64(minute - p.arrivalMinute)

	return out
}

// edgeWeight returns the travel time of the cheapest parallel edge u→v,
// matching the weight the router chose. Falls back to one minute if the
// adjacency no longer lists v.
func (s *Simulator) edgeWeight(u, v string) float64 {
	w := math.Inf(1)
	for _, nb := range s.g.Neighbors(u) {
		if nb.ID == v && nb.Weight < w {
			w = nb.Weight
		}
	}
	if math.IsInf(w, 1) {
		return 1
	}

	return w
}

// blockedTime reports whether a travel time is the Blocked sentinel.
func blockedTime(minutes float64) bool { return math.IsInf(minutes, 1) }
