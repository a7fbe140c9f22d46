// Package stopindex provides a typed view of the ordered stop index: stop
// identifiers map to StopMeta records stored in a B+ tree.
//
// The ingestion layer populates the index; the routing layer reads
// coordinates from it for the A* geographic heuristic, and reporting layers
// read display names and iterate all stops in ascending ID order.
package stopindex

import (
	"github.com/urbansim/transitflow/bptree"
)

// DefaultOrder is the branching order used by NewDefault. The original feed
// loader worked well with small fan-out since stop counts stay in the tens of
// thousands.
const DefaultOrder = 4

// StopMeta is the per-stop metadata record.
//
// Latitude/longitude are optional in schedule feeds; HasCoords reports
// whether this record carries a usable position. Mode classifies the stop
// (e.g. "metro", "tram", "bus") when the feed makes it inferable.
type StopMeta struct {
	Name      string
	Lat       float64
	Lon       float64
	HasCoords bool
	Mode      string
}

// Index is a stop-ID → StopMeta store with sorted forward iteration.
// It satisfies the routing package's coordinate-source contract.
type Index struct {
	tree *bptree.Tree
}

// New creates an Index backed by a B+ tree with the given branching order.
// Returns bptree.ErrInvalidOrder when order < bptree.MinOrder.
func New(order int) (*Index, error) {
	tree, err := bptree.New(order)
	if err != nil {
		return nil, err
	}

	return &Index{tree: tree}, nil
}

// NewDefault creates an Index with DefaultOrder.
func NewDefault() *Index {
	idx, _ := New(DefaultOrder)

	return idx
}

// Put stores meta under stopID, overwriting any previous record.
func (x *Index) Put(stopID string, meta StopMeta) {
	x.tree.Insert(stopID, meta)
}

// Meta returns the record for stopID; ok is false when the stop is unknown.
func (x *Index) Meta(stopID string) (StopMeta, bool) {
	v, ok := x.tree.Search(stopID)
	if !ok {
		return StopMeta{}, false
	}

	return v.(StopMeta), true
}

// StopCoords returns the latitude/longitude of stopID, with ok=false when the
// stop is unknown or its record has no coordinates. This is the lookup the
// A* haversine heuristic runs on its hot path.
func (x *Index) StopCoords(stopID string) (lat, lon float64, ok bool) {
	meta, found := x.Meta(stopID)
	if !found || !meta.HasCoords {
		return 0, 0, false
	}

	return meta.Lat, meta.Lon, true
}

// Len returns the number of indexed stops.
func (x *Index) Len() int { return x.tree.Len() }

// All calls fn for every (stopID, meta) pair in ascending stop-ID order,
// stopping early if fn returns false.
func (x *Index) All(fn func(stopID string, meta StopMeta) bool) {
	it := x.tree.Iterator()
	for {
		k, v, ok := it.Next()
		if !ok {
			return
		}
		if !fn(k, v.(StopMeta)) {
			return
		}
	}
}
