package bptree

import (
	"errors"
	"sort"
)

// MinOrder is the smallest meaningful branching order for a B+ tree.
const MinOrder = 3

// ErrInvalidOrder indicates a branching order below MinOrder was passed to
// New. This is a structural violation and fails at construction.
var ErrInvalidOrder = errors.New("bptree: order must be >= 3")

// node is either a leaf (keys+vals, chained via next) or an internal node
// (keys as separators, len(children) == len(keys)+1).
type node struct {
	leaf     bool
	keys     []string
	vals     []any   // leaves only, parallel to keys
	children []*node // internal nodes only
	next     *node   // leaf chain, ascending key order
}

// Tree is an in-memory B+ tree with string keys. Keys are unique: inserting
// an existing key overwrites its value.
//
// Tree is not safe for concurrent mutation; build it once, then share freely
// for reads.
type Tree struct {
	root  *node
	order int
	size  int
}

// New creates an empty Tree with the given branching order.
// Returns ErrInvalidOrder when order < MinOrder.
func New(order int) (*Tree, error) {
	if order < MinOrder {
		return nil, ErrInvalidOrder
	}

	return &Tree{
		root:  &node{leaf: true},
		order: order,
	}, nil
}

// Order returns the branching order the tree was constructed with.
func (t *Tree) Order() int { return t.order }

// Len returns the number of distinct keys stored.
func (t *Tree) Len() int { return t.size }

// descend walks from the root to the leaf owning key, recording the ancestor
// chain so splits can propagate upward without recursion.
// Routing rule: key < separator goes left; otherwise continue right.
func (t *Tree) descend(key string) (leaf *node, path []*node) {
	n := t.root
	for !n.leaf {
		path = append(path, n)
		i := 0
		for i < len(n.keys) && key >= n.keys[i] {
			i++
		}
		n = n.children[i]
	}

	return n, path
}

// Search returns the value stored under key, or (nil, false) when the key is
// absent. A miss is a valid result, never an error.
func (t *Tree) Search(key string) (any, bool) {
	leaf, _ := t.descend(key)
	i := sort.SearchStrings(leaf.keys, key)
	if i < len(leaf.keys) && leaf.keys[i] == key {
		return leaf.vals[i], true
	}

	return nil, false
}

// Insert stores value under key, overwriting any existing value. Leaf and
// internal splits are applied iteratively along the recorded ancestor path.
func (t *Tree) Insert(key string, value any) {
	leaf, path := t.descend(key)

	i := sort.SearchStrings(leaf.keys, key)
	if i < len(leaf.keys) && leaf.keys[i] == key {
		leaf.vals[i] = value

		return
	}

	leaf.keys = append(leaf.keys, "")
	copy(leaf.keys[i+1:], leaf.keys[i:])
	leaf.keys[i] = key

	leaf.vals = append(leaf.vals, nil)
	copy(leaf.vals[i+1:], leaf.vals[i:])
	leaf.vals[i] = value

	t.size++

	if len(leaf.keys) >= t.order {
		t.splitLeaf(leaf, path)
	}
}

// splitLeaf divides leaf at the midpoint, chains the new right leaf, and
// promotes its first key into the parent chain.
func (t *Tree) splitLeaf(leaf *node, path []*node) {
	mid := len(leaf.keys) / 2

	right := &node{
		leaf: true,
		keys: append([]string(nil), leaf.keys[mid:]...),
		vals: append([]any(nil), leaf.vals[mid:]...),
		next: leaf.next,
	}
	leaf.keys = leaf.keys[:mid]
	leaf.vals = leaf.vals[:mid]
	leaf.next = right

	t.promote(leaf, right.keys[0], right, path)
}

// promote inserts (key, right) into the parent of left, splitting internal
// nodes upward along path as long as the child count exceeds the order.
// When path is exhausted, left was the root and a new root is created.
func (t *Tree) promote(left *node, key string, right *node, path []*node) {
	for {
		if len(path) == 0 {
			t.root = &node{
				keys:     []string{key},
				children: []*node{left, right},
			}

			return
		}

		parent := path[len(path)-1]
		path = path[:len(path)-1]

		// Locate left among the parent's children; right goes just after.
		pos := 0
		for pos < len(parent.children) && parent.children[pos] != left {
			pos++
		}

		parent.keys = append(parent.keys, "")
		copy(parent.keys[pos+1:], parent.keys[pos:])
		parent.keys[pos] = key

		parent.children = append(parent.children, nil)
		copy(parent.children[pos+2:], parent.children[pos+1:])
		parent.children[pos+1] = right

		if len(parent.children) <= t.order {
			return
		}

		// Internal split: middle separator moves up, it does not stay in
		// either half (unlike leaf splits, where the first right key is
		// copied up).
		mid := len(parent.keys) / 2
		promoted := parent.keys[mid]

		sibling := &node{
			keys:     append([]string(nil), parent.keys[mid+1:]...),
			children: append([]*node(nil), parent.children[mid+1:]...),
		}
		parent.keys = parent.keys[:mid]
		parent.children = parent.children[:mid+1]

		left, key, right = parent, promoted, sibling
	}
}
