// Package core defines Graph, Arc, Edge, GraphOption and the sentinel errors
// reported by graph construction.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidSize indicates a graph was requested with a non-positive vertex count.
	ErrInvalidSize = errors.New("core: vertex count must be positive")

	// ErrOutOfRange indicates a vertex index outside [0, V).
	ErrOutOfRange = errors.New("core: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrWeightTooLarge indicates an edge weight above MaxWeight.
	ErrWeightTooLarge = errors.New("core: edge weight too large")
)

// None marks the absence of a vertex, e.g. the parent of the MST root.
const None = -1

// MaxWeight is the largest accepted edge weight. math.MaxInt64 itself is
// reserved as the "no connecting edge" key of the MST heap.
const MaxWeight int64 = math.MaxInt64 - 1

// Arc is one directed adjacency entry: the neighbor reached and the weight
// of the undirected edge it belongs to.
type Arc struct {
	// To is the neighbor vertex index.
	To int

	// Weight is the edge weight.
	Weight int64
}

// Edge is an undirected edge as inserted by AddEdge, or a tree edge produced
// by an MST algorithm, in which case From is the parent and To the child.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected, weighted graph over the vertices 0..V-1 stored as
// adjacency lists.
//
// The zero value is a valid graph with no vertices. Use NewGraph to obtain a
// graph that can hold edges.
type Graph struct {
	// adj[v] holds v's arcs in insertion order; iteration runs back to front.
	adj [][]Arc

	// edges records each undirected edge once, in insertion order.
	edges []Edge

	allowLoops bool
}

// NewGraph allocates a graph with v vertices and no edges.
//
// Errors:
//   - ErrInvalidSize if v < 1.
//
// Complexity: O(V) time and space.
func NewGraph(v int, opts ...GraphOption) (*Graph, error) {
	if v < 1 {
		return nil, fmt.Errorf("NewGraph(%d): %w", v, ErrInvalidSize)
	}

	g := &Graph{adj: make([][]Arc, v)}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
