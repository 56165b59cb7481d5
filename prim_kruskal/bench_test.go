package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-mst/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 vertices.
func BenchmarkKruskal(b *testing.B) {
	g := buildRandom(b, 500, 0.016, 100, 42) // pre‐build graph once
	b.ReportAllocs()
	b.ResetTimer() // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures performance on the same graph, rooted at vertex 0.
func BenchmarkPrim(b *testing.B) {
	g := buildRandom(b, 500, 0.016, 100, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g)
	}
}

// BenchmarkPrim_Dense runs Prim on a complete graph, where decrease-key dominates.
func BenchmarkPrim_Dense(b *testing.B) {
	g := buildRandom(b, 300, 1, 1000, 7)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g)
	}
}
