// Package indexheap implements an indexed binary min-heap over node ids with
// O(log n) decrease-key, the priority queue behind dijkstra.
//
// Unlike a container/heap of (node, key) items with lazy duplicates, the heap
// keeps exactly one slot per present node and a bijection between slots and
// node ids, so a node's key can be lowered in place:
//
//	keys[i]     – key stored in live slot i
//	nodeAt[i]   – node id occupying slot i
//	slotOf[v]   – slot of node v, or -1 when v is not present
//
// Invariants (checked by Validate):
//
//  1. Heap property: keys[i] <= keys[2i+1] and keys[i] <= keys[2i+2] for every
//     live child.
//  2. Bijection: nodeAt[slotOf[v]] == v for every present v, and
//     slotOf[nodeAt[i]] == i for every live slot i.
//
// Every swap moves keys, nodeAt and both slotOf entries together; touching
// only some of them silently corrupts later DecreaseKeyOrInsert lookups.
//
// A node starts untouched with an implicit key of +∞. DecreaseKeyOrInsert is
// the only way a key goes down, and it is a no-op unless the new key is
// strictly smaller, so sifting up is always enough to restore order.
//
// Complexity:
//
//   - DecreaseKeyOrInsert, ExtractMin: O(log n)
//   - PeekMin, Len, IsEmpty, Contains, Key: O(1)
//   - Space: O(n) for capacity n, allocated once in New.
//
// A Heap is single-use and not safe for concurrent use: each shortest-path run
// creates its own, drains it and drops it.
package indexheap
