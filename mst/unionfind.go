package mst

// UnionFind is a disjoint-set structure over string node IDs with union by
// rank and path compression. Find is iterative, so pathological input cannot
// grow the call stack.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
}

// NewUnionFind creates a UnionFind with each of ids in its own singleton set.
func NewUnionFind(ids []string) *UnionFind {
	uf := &UnionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		uf.parent[id] = id
		uf.rank[id] = 0
	}

	return uf
}

// Find returns the representative of x's set, compressing the walked path by
// pointing each visited node at its grandparent.
func (uf *UnionFind) Find(x string) string {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// Union merges the sets containing x and y. It reports true when a merge
// happened and false when both were already in the same set.
func (uf *UnionFind) Union(x, y string) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return false
	}
	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}

	return true
}
