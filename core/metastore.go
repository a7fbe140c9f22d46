// MetaStore accumulates scheduling metadata per canonical edge key. It is a
// companion to Graph rather than a field of Edge: metadata is additive across
// trips, while edges are appended per observation.
package core

import "sort"

// EdgeMeta is the merged scheduling record for one physical link: every trip
// and route observed over it, the transport modes inferred for it, and all
// observed headway values in seconds.
type EdgeMeta struct {
	// TripIDs is the set of contributing trip identifiers, ascending.
	TripIDs []string

	// RouteIDs is the set of contributing route identifiers, ascending.
	RouteIDs []string

	// Modes is the set of inferred transport-mode tags, ascending.
	Modes []string

	// HeadwaySecs collects every observed headway in seconds, in
	// observation order. Duplicates are kept: they are real observations.
	HeadwaySecs []int
}

// Observation is one scheduling fact about an edge, typically extracted from
// a single trip in the feed. Zero-valued fields are skipped on merge.
type Observation struct {
	TripID      string
	RouteID     string
	Mode        string
	HeadwaySecs int
}

// MetaStore maps canonical edge keys to merged EdgeMeta records.
//
// For an undirected network the canonical key is the sorted endpoint pair, so
// observations of u→v and v→u merge into one record. A directed MetaStore
// keys by the ordered pair instead.
type MetaStore struct {
	directed bool

	byKey map[edgeKey]*edgeMetaSets
}

type edgeKey struct{ a, b string }

// edgeMetaSets is the mutable accumulation form; sets are maps, flattened to
// sorted slices on Lookup.
type edgeMetaSets struct {
	trips    map[string]struct{}
	routes   map[string]struct{}
	modes    map[string]struct{}
	headways []int
}

// NewMetaStore creates an empty MetaStore. Pass directed=true when the
// companion Graph is directed, so opposite directions keep separate records.
func NewMetaStore(directed bool) *MetaStore {
	return &MetaStore{
		directed: directed,
		byKey:    make(map[edgeKey]*edgeMetaSets),
	}
}

// key canonicalizes an endpoint pair: sorted for undirected stores.
func (m *MetaStore) key(u, v string) edgeKey {
	if !m.directed && v < u {
		u, v = v, u
	}

	return edgeKey{a: u, b: v}
}

// Accumulate merges one observation into the record for edge (u, v).
// Repeated observations of the same physical edge extend the same record;
// duplicate trip/route/mode values collapse, headways append.
func (m *MetaStore) Accumulate(u, v string, obs Observation) {
	k := m.key(u, v)
	rec, ok := m.byKey[k]
	if !ok {
		rec = &edgeMetaSets{
			trips:  make(map[string]struct{}),
			routes: make(map[string]struct{}),
			modes:  make(map[string]struct{}),
		}
		m.byKey[k] = rec
	}
	if obs.TripID != "" {
		rec.trips[obs.TripID] = struct{}{}
	}
	if obs.RouteID != "" {
		rec.routes[obs.RouteID] = struct{}{}
	}
	if obs.Mode != "" {
		rec.modes[obs.Mode] = struct{}{}
	}
	if obs.HeadwaySecs > 0 {
		rec.headways = append(rec.headways, obs.HeadwaySecs)
	}
}

// Lookup returns the merged record for edge (u, v) and whether one exists.
// The returned EdgeMeta is a flattened copy; mutating it does not affect the
// store.
func (m *MetaStore) Lookup(u, v string) (EdgeMeta, bool) {
	rec, ok := m.byKey[m.key(u, v)]
	if !ok {
		return EdgeMeta{}, false
	}

	out := EdgeMeta{
		TripIDs:     sortedKeys(rec.trips),
		RouteIDs:    sortedKeys(rec.routes),
		Modes:       sortedKeys(rec.modes),
		HeadwaySecs: append([]int(nil), rec.headways...),
	}

	return out, true
}

// MinHeadwaySecs returns the smallest positive observed headway for (u, v),
// or 0 when no headway has been recorded. The minimum headway corresponds to
// the most frequent service over the link.
func (m *MetaStore) MinHeadwaySecs(u, v string) int {
	rec, ok := m.byKey[m.key(u, v)]
	if !ok || len(rec.headways) == 0 {
		return 0
	}
	min := rec.headways[0]
	for _, h := range rec.headways[1:] {
		if h < min {
			min = h
		}
	}

	return min
}

// Len returns the number of distinct canonical edges with metadata.
func (m *MetaStore) Len() int { return len(m.byKey) }

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
