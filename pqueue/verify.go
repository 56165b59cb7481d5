package pqueue

import "fmt"

// Verify checks heap order over the active slots and the consistency of the
// position index. It returns an error wrapping ErrCorrupt at the first
// violation, or nil.
//
// Complexity: O(capacity).
func (h *IndexedHeap) Verify() error {
	for i := 1; i < h.size; i++ {
		parent := (i - 1) / 2
		if h.less(i, parent) {
			return fmt.Errorf("slot %d key %d above slot %d key %d: %w",
				parent, h.nodes[parent].Key, i, h.nodes[i].Key, ErrCorrupt)
		}
	}

	for i := 0; i < h.size; i++ {
		v := h.nodes[i].Vertex
		if h.pos[v] != i {
			return fmt.Errorf("vertex %d at slot %d but pos=%d: %w", v, i, h.pos[v], ErrCorrupt)
		}
	}

	for v, p := range h.pos {
		if p == notLoaded || p >= h.size {
			continue
		}
		if h.nodes[p].Vertex != v {
			return fmt.Errorf("pos[%d]=%d holds vertex %d: %w", v, p, h.nodes[p].Vertex, ErrCorrupt)
		}
	}

	return nil
}
