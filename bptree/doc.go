// Package bptree implements an in-memory B+ tree: a sorted key-value store
// optimized for point lookup and full-range forward traversal.
//
// transitflow uses it as the ordered stop index — stop identifiers map to
// metadata records consumed by the A* heuristic and by result labeling — but
// the tree itself is generic over any value.
//
// Structure:
//
//   - Internal nodes hold separator keys and child pointers; a node with C
//     children has exactly C−1 separators.
//   - Leaves hold the key/value pairs and are singly linked in ascending key
//     order at all times, including immediately after any split. The leaf
//     chain is the sole mechanism for bulk iteration: Iterator never touches
//     internal nodes.
//   - A leaf splits when it reaches the branching order: keys divide at the
//     midpoint, the upper half forms a new chained leaf, and its first key is
//     promoted to the parent. Internal splits propagate the same way when the
//     child count exceeds the order.
//
// Splits are applied iteratively using the ancestor stack recorded during
// descent; no operation recurses, so tree height never threatens the Go
// stack.
//
// Complexity:
//
//   - Insert/Search: O(log_B N) node visits, O(B) work per visited node.
//   - Full traversal: O(N) over the leaf chain.
package bptree
