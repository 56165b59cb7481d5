// SPDX-License-Identifier: MIT
// Package: lvlath-mst/builder
//
// impl_edges.go - explicit edge lists and the nine-vertex reference graph.

package builder

import (
	"github.com/katalvlaran/lvlath-mst/core"
)

const (
	methodEdges     = "Edges"
	methodReference = "Reference"

	// ReferenceVertices is the vertex count of the reference graph.
	ReferenceVertices = 9

	// ReferenceMSTWeight is the total weight of any MST of the reference graph.
	ReferenceMSTWeight int64 = 37
)

// referenceEdges is the sample graph in insertion order.
var referenceEdges = []core.Edge{
	{From: 0, To: 1, Weight: 4},
	{From: 0, To: 7, Weight: 8},
	{From: 1, To: 2, Weight: 8},
	{From: 1, To: 7, Weight: 11},
	{From: 2, To: 3, Weight: 7},
	{From: 2, To: 8, Weight: 2},
	{From: 2, To: 5, Weight: 4},
	{From: 3, To: 4, Weight: 9},
	{From: 3, To: 5, Weight: 14},
	{From: 4, To: 5, Weight: 10},
	{From: 5, To: 6, Weight: 2},
	{From: 6, To: 7, Weight: 1},
	{From: 6, To: 8, Weight: 6},
	{From: 7, To: 8, Weight: 7},
}

// ReferenceEdges returns a copy of the reference graph's edge list.
func ReferenceEdges() []core.Edge {
	out := make([]core.Edge, len(referenceEdges))
	copy(out, referenceEdges)

	return out
}

// Edges returns a Constructor inserting list verbatim, in order. Weights are
// taken from the list; cfg.weightFn is not consulted.
func Edges(list []core.Edge) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		return insertEdges(methodEdges, g, list)
	}
}

// Reference returns a Constructor inserting the reference graph's 14 edges.
// The target graph must have at least ReferenceVertices vertices.
func Reference() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := requireVertices(methodReference, g, ReferenceVertices); err != nil {
			return err
		}

		return insertEdges(methodReference, g, referenceEdges)
	}
}

func insertEdges(method string, g *core.Graph, list []core.Edge) error {
	for _, e := range list {
		if err := addEdge(method, g, e.From, e.To, e.Weight); err != nil {
			return err
		}
	}

	return nil
}
