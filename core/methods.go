// File: methods.go
// Role: edge insertion and read-only queries over the adjacency lists.
// Determinism:
//   - Neighbors/NeighborsOf yield most-recently-inserted first.
//   - Edges() returns edges in insertion order.

package core

import (
	"fmt"
	"iter"
)

// VertexCount returns V, the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges inserted so far.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether v is a valid vertex index of g.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }

// AddEdge inserts the undirected edge {src, dest} with the given weight.
//
// The entry (dest, weight) becomes the head of src's list and (src, weight)
// the head of dest's list. Validation happens before any mutation, so the
// edge is either fully applied or not at all.
//
// Errors:
//   - ErrOutOfRange if src or dest is outside [0, V).
//   - ErrLoopNotAllowed if src == dest and the graph was not built WithLoops().
//   - ErrWeightTooLarge if weight > MaxWeight.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dest int, weight int64) error {
	// 1) Validate endpoints and weight.
	if !g.HasVertex(src) {
		return fmt.Errorf("AddEdge(%d,%d): src: %w", src, dest, ErrOutOfRange)
	}
	if !g.HasVertex(dest) {
		return fmt.Errorf("AddEdge(%d,%d): dest: %w", src, dest, ErrOutOfRange)
	}
	if weight > MaxWeight {
		return fmt.Errorf("AddEdge(%d,%d): weight %d > %d: %w", src, dest, weight, MaxWeight, ErrWeightTooLarge)
	}

	// 2) Loop policy. A permitted loop occupies a single slot under its vertex.
	if src == dest {
		if !g.allowLoops {
			return fmt.Errorf("AddEdge(%d,%d): %w", src, dest, ErrLoopNotAllowed)
		}
		g.adj[src] = append(g.adj[src], Arc{To: dest, Weight: weight})
		g.edges = append(g.edges, Edge{From: src, To: dest, Weight: weight})

		return nil
	}

	// 3) Mirror the edge in both lists.
	g.adj[src] = append(g.adj[src], Arc{To: dest, Weight: weight})
	g.adj[dest] = append(g.adj[dest], Arc{To: src, Weight: weight})
	g.edges = append(g.edges, Edge{From: src, To: dest, Weight: weight})

	return nil
}

// Neighbors returns a lazy sequence of (neighbor, weight) pairs of v in
// reverse insertion order. Each call starts a fresh walk over the stored
// list; iterating does not consume anything. An out-of-range v yields an
// empty sequence.
//
// The graph must not be mutated while a sequence is being iterated.
func (g *Graph) Neighbors(v int) iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		if !g.HasVertex(v) {
			return
		}
		arcs := g.adj[v]
		for i := len(arcs) - 1; i >= 0; i-- {
			if !yield(arcs[i].To, arcs[i].Weight) {
				return
			}
		}
	}
}

// NeighborsOf returns a copy of v's adjacency in the same order as Neighbors.
//
// Errors:
//   - ErrOutOfRange if v is outside [0, V).
//
// Complexity: O(deg(v)).
func (g *Graph) NeighborsOf(v int) ([]Arc, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("NeighborsOf(%d): %w", v, ErrOutOfRange)
	}

	out := make([]Arc, 0, len(g.adj[v]))
	for to, w := range g.Neighbors(v) {
		out = append(out, Arc{To: to, Weight: w})
	}

	return out, nil
}

// Degree returns the number of adjacency entries of v, or 0 if v is out of range.
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.adj[v])
}

// Edges returns a copy of every inserted edge, once each, in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
