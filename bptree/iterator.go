package bptree

// Iterator walks the leaf chain, yielding entries in ascending key order.
// Each call to Tree.Iterator returns a fresh, restartable walker; the tree
// must not be mutated while an Iterator is live.
type Iterator struct {
	cur *node
	idx int
}

// Iterator positions a new walker at the leftmost leaf.
func (t *Tree) Iterator() *Iterator {
	n := t.root
	for !n.leaf {
		n = n.children[0]
	}

	return &Iterator{cur: n}
}

// Next returns the next (key, value) pair, or ok=false when the chain is
// exhausted.
func (it *Iterator) Next() (key string, value any, ok bool) {
	for it.cur != nil && it.idx >= len(it.cur.keys) {
		it.cur = it.cur.next
		it.idx = 0
	}
	if it.cur == nil {
		return "", nil, false
	}

	key = it.cur.keys[it.idx]
	value = it.cur.vals[it.idx]
	it.idx++

	return key, value, true
}
