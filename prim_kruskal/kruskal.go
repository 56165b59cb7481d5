// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It serves as an independent reference for Prim and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath-mst/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph     : graph is nil.
//   - ErrEmptyGraph   : graph has no vertices.
//   - ErrDisconnected : |V| > 1 but the graph is not fully connected.
//   - ErrWeightOverflow: the tree's total weight does not fit in an int64.
//
// Steps:
//  1. Validate graph; |V| == 1 → trivial MST (empty, weight 0).
//  2. Collect all edges via graph.Edges() (insertion order), skip self-loops.
//  3. Stable sort by ascending weight so equal weights keep insertion order.
//  4. Initialize DSU arrays parent[] and rank[].
//  5. For each edge (u,v): if find(u) != find(v), union and include the edge.
//  6. Stop at |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	n := graph.VertexCount()
	if n == 0 {
		return nil, 0, ErrEmptyGraph
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Collect edges, skipping self-loops: they cannot be part of a spanning tree.
	all := graph.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Stable sort by weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Disjoint-set forest over vertex indices.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union merges the sets of u and v; false if they were already joined.
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}

		return true
	}

	// 5. Greedy selection.
	mst := make([]core.Edge, 0, n-1)
	var (
		total int64
		ok    bool
	)
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		if total, ok = addWeight(total, e.Weight); !ok {
			return nil, 0, fmt.Errorf("prim_kruskal: total at edge %d-%d: %w", e.From, e.To, ErrWeightOverflow)
		}
		if len(mst) == n-1 {
			break
		}
	}

	// 6. Spanning check.
	if len(mst) < n-1 {
		return nil, 0, fmt.Errorf("prim_kruskal: %d components remain: %w", n-len(mst), ErrDisconnected)
	}

	return mst, total, nil
}
