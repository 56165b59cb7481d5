package pqueue

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for IndexedHeap operations.
var (
	// ErrOutOfRange indicates a vertex outside [0, capacity).
	ErrOutOfRange = errors.New("pqueue: vertex out of range")

	// ErrSealed indicates Load was called after Seal.
	ErrSealed = errors.New("pqueue: heap already sealed")

	// ErrDuplicate indicates a vertex was loaded more than once.
	ErrDuplicate = errors.New("pqueue: vertex already loaded")

	// ErrNotInHeap indicates the vertex is not an active member of the heap.
	ErrNotInHeap = errors.New("pqueue: vertex not in heap")

	// ErrKeyIncrease indicates DecreaseKey was asked to raise a key.
	ErrKeyIncrease = errors.New("pqueue: new key is greater than current key")

	// ErrCorrupt indicates a heap-order or position-index invariant is broken.
	ErrCorrupt = errors.New("pqueue: heap invariant violated")
)

// Infinity is the key of a vertex with no known connecting edge.
const Infinity int64 = math.MaxInt64

// notLoaded marks pos entries of vertices that were never loaded.
const notLoaded = -1

// Node is a heap element: a vertex and its current key.
type Node struct {
	Vertex int
	Key    int64
}

// IndexedHeap is a binary min-heap of Nodes keyed by Key, addressable by vertex.
type IndexedHeap struct {
	nodes  []Node // slots [0,size) are active; [size,len) hold extracted nodes
	pos    []int  // pos[v] = slot of v, or notLoaded
	size   int
	sealed bool
}

// New returns an empty heap able to hold the vertices 0..capacity-1.
// It panics if capacity is negative.
func New(capacity int) *IndexedHeap {
	if capacity < 0 {
		panic(fmt.Sprintf("pqueue.New: negative capacity %d", capacity))
	}

	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = notLoaded
	}

	return &IndexedHeap{
		nodes: make([]Node, 0, capacity),
		pos:   pos,
	}
}

// Load writes (v, key) into the next free slot and records its position.
// The node is not a member until Seal is called.
func (h *IndexedHeap) Load(v int, key int64) error {
	if h.sealed {
		return fmt.Errorf("Load(%d): %w", v, ErrSealed)
	}
	if v < 0 || v >= len(h.pos) {
		return fmt.Errorf("Load(%d): %w", v, ErrOutOfRange)
	}
	if h.pos[v] != notLoaded {
		return fmt.Errorf("Load(%d): %w", v, ErrDuplicate)
	}

	h.pos[v] = len(h.nodes)
	h.nodes = append(h.nodes, Node{Vertex: v, Key: key})

	return nil
}

// Seal makes every loaded node a member in one step and restores heap order
// bottom-up. Calling Seal again is a no-op.
//
// Complexity: O(n).
func (h *IndexedHeap) Seal() {
	if h.sealed {
		return
	}
	h.sealed = true
	h.size = len(h.nodes)
	for i := h.size/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// IsEmpty reports whether no active nodes remain.
func (h *IndexedHeap) IsEmpty() bool { return h.size == 0 }

// Len returns the number of active nodes.
func (h *IndexedHeap) Len() int { return h.size }

// Cap returns the number of addressable vertices.
func (h *IndexedHeap) Cap() int { return len(h.pos) }

// Contains reports whether v is an active member of the heap.
func (h *IndexedHeap) Contains(v int) bool {
	if v < 0 || v >= len(h.pos) {
		return false
	}
	p := h.pos[v]

	return p != notLoaded && p < h.size
}

// Key returns the current key of an active vertex.
func (h *IndexedHeap) Key(v int) (int64, bool) {
	if !h.Contains(v) {
		return 0, false
	}

	return h.nodes[h.pos[v]].Key, true
}

// ExtractMin removes and returns the node with the smallest key.
// The boolean is false when the heap is empty.
//
// Complexity: O(log n).
func (h *IndexedHeap) ExtractMin() (Node, bool) {
	if h.size == 0 {
		return Node{}, false
	}

	root := h.nodes[0]
	last := h.size - 1
	// The last active node takes slot 0; the root is parked at `last`,
	// which stops being active once size shrinks.
	h.swap(0, last)
	h.size--
	h.siftDown(0)

	return root, true
}

// DecreaseKey lowers the key of active vertex v and moves it toward the root.
// A key equal to the current one is accepted and changes nothing.
//
// v climbs past a parent with a strictly larger key, and also past a parent
// with an equal key but a higher vertex index. The second case is intended:
// it keeps the heap ordered by (Key, Vertex), which fixes the settle order of
// equal keys independently of the slot layout.
//
// Errors:
//   - ErrOutOfRange if v is outside [0, capacity).
//   - ErrNotInHeap if v is not active.
//   - ErrKeyIncrease if key is larger than v's current key; the heap is untouched.
//
// Complexity: O(log n).
func (h *IndexedHeap) DecreaseKey(v int, key int64) error {
	if v < 0 || v >= len(h.pos) {
		return fmt.Errorf("DecreaseKey(%d): %w", v, ErrOutOfRange)
	}
	if !h.Contains(v) {
		return fmt.Errorf("DecreaseKey(%d): %w", v, ErrNotInHeap)
	}

	i := h.pos[v]
	if cur := h.nodes[i].Key; key > cur {
		return fmt.Errorf("DecreaseKey(%d): %d > %d: %w", v, key, cur, ErrKeyIncrease)
	}
	h.nodes[i].Key = key
	h.siftUp(i)

	return nil
}

// less orders slots by key, then by vertex index, so equal keys resolve the
// same way whatever the slot layout.
func (h *IndexedHeap) less(i, j int) bool {
	a, b := h.nodes[i], h.nodes[j]
	if a.Key != b.Key {
		return a.Key < b.Key
	}

	return a.Vertex < b.Vertex
}

// swap exchanges slots i and j and repoints both vertices' positions.
// Every structural change goes through here.
func (h *IndexedHeap) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.pos[h.nodes[i].Vertex] = i
	h.pos[h.nodes[j].Vertex] = j
}

// siftUp moves slot i up while it orders before its parent.
func (h *IndexedHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves slot i down toward the smaller child until neither active
// child orders before it.
func (h *IndexedHeap) siftDown(i int) {
	for {
		smallest := i
		left := 2*i + 1
		right := left + 1

		if left < h.size && h.less(left, smallest) {
			smallest = left
		}
		if right < h.size && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
