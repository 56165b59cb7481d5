// Package pqueue implements an indexed binary min-heap of (vertex, key) pairs
// for graph algorithms that need decrease-key.
//
// What & Why
//
//	container/heap offers no way to find an element once it has been pushed, so
//	Prim and Dijkstra built on it fall back to "lazy" decrease-key: push a
//	duplicate and skip stale entries when popped. IndexedHeap instead keeps a
//	position index pos[v] → slot, which gives:
//
//	  – ExtractMin     O(log V)
//	  – DecreaseKey    O(log V)
//	  – Contains       O(1)    (pos[v] < size)
//
// Lifecycle
//
//  1. New(capacity) – vertices are the integers 0..capacity-1.
//  2. Load(v, key)  – write each initial node at the next free slot. Loaded
//     nodes are not yet members of the heap.
//  3. Seal()        – activate every loaded node at once and run a bottom-up
//     build-heap pass, so arbitrary initial keys are accepted.
//  4. ExtractMin / DecreaseKey / Contains until IsEmpty.
//
// Extracted nodes are parked in the slot just past the active size. Their pos
// entry keeps pointing there, which is what makes Contains a single compare.
//
// Invariants (checked by Verify):
//
//   - Heap order over active slots: (key, vertex) of a parent ≤ that of its children.
//   - Position consistency: nodes[pos[v]].Vertex == v for every active v.
//
// Ordering: nodes compare by Key, then by Vertex. Equal keys therefore resolve
// toward the lower vertex index regardless of slot layout, which keeps Prim's
// choice among equal-weight trees deterministic.
//
// Errors:
//
//	ErrOutOfRange  - vertex outside [0, capacity).
//	ErrSealed      - Load after Seal.
//	ErrDuplicate   - vertex loaded twice.
//	ErrNotInHeap   - DecreaseKey on a vertex that is not an active member.
//	ErrKeyIncrease - DecreaseKey with a key larger than the current one.
//	ErrCorrupt     - Verify found a broken invariant.
//
// An IndexedHeap is not safe for concurrent use.
package pqueue
