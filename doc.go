// Package lvlathmst computes minimum spanning trees of undirected, weighted
// graphs with Prim's algorithm driven by an indexed binary min-heap.
//
// Layout:
//
//	core/          — Graph over positional vertices 0..V-1, adjacency lists, Edge and Arc
//	pqueue/        — IndexedHeap: min-heap keyed by vertex with O(log V) decrease-key
//	prim_kruskal/  — Prim (primary), Kruskal (reference), Compute dispatch
//	builder/       — deterministic fixtures: path, cycle, star, grid, random, reference graph
//	internal/config — TOML run description for the CLI
//	cmd/primmst/   — command-line driver printing "parent - child" lines and the total
//
// Quick example, the nine-vertex reference graph:
//
//	g, _ := builder.ReferenceGraph()
//	edges, total, _ := prim_kruskal.Prim(g)
//	// total == 37
//
//	go run ./cmd/primmst --demo
package lvlathmst
