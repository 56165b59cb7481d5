// File: builder_impl_test.go
// Package builder_test contains functional tests for the Constructor
// implementations: topology, counts, determinism and error sentinels.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-mst/builder"
	"github.com/katalvlaran/lvlath-mst/core"
)

// edgeKey identifies an undirected edge by its normalized endpoints.
type edgeKey struct{ U, V int }

func key(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{u, v}
}

// edgeWeights maps each edge of g to its weight.
func edgeWeights(g *core.Graph) map[edgeKey]int64 {
	m := make(map[edgeKey]int64, g.EdgeCount())
	for _, e := range g.Edges() {
		m[key(e.From, e.To)] = e.Weight
	}
	return m
}

// connected reports whether every vertex is reachable from 0.
func connected(g *core.Graph) bool {
	seen := make([]bool, g.VertexCount())
	stack := []int{0}
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for u := range g.Neighbors(v) {
			if !seen[u] {
				seen[u] = true
				count++
				stack = append(stack, u)
			}
		}
	}
	return count == g.VertexCount()
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	const defaultWeight = builder.DefaultEdgeWeight

	tests := []struct {
		name        string
		n           int
		ctor        builder.Constructor
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", n: 4, ctor: builder.Path(4), wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				for i := 0; i < 3; i++ {
					w, ok := edges[key(i, i+1)]
					assert.True(t, ok, "missing %d-%d", i, i+1)
					assert.Equal(t, defaultWeight, w)
				}
			},
		},
		{
			name: "Cycle(5)", n: 5, ctor: builder.Cycle(5), wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				_, ok := edges[key(4, 0)]
				assert.True(t, ok, "closing edge 4-0 missing")
			},
		},
		{
			name: "Star(4)", n: 4, ctor: builder.Star(4), wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 3, g.Degree(0))
				for i := 1; i < 4; i++ {
					assert.Equal(t, 1, g.Degree(i))
				}
			},
		},
		{
			name: "Complete(5)", n: 5, ctor: builder.Complete(5), wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for v := 0; v < 5; v++ {
					assert.Equal(t, 4, g.Degree(v))
				}
			},
		},
		{
			name: "Grid(2,3)", n: 6, ctor: builder.Grid(2, 3), wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				for _, k := range []edgeKey{{0, 1}, {1, 2}, {3, 4}, {4, 5}, {0, 3}, {1, 4}, {2, 5}} {
					_, ok := edges[k]
					assert.True(t, ok, "missing %v", k)
				}
			},
		},
		{
			name: "Reference", n: builder.ReferenceVertices, ctor: builder.Reference(), wantE: 14,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				assert.Equal(t, int64(1), edges[key(6, 7)])
				assert.Equal(t, int64(14), edges[key(3, 5)])
			},
		},
		{
			name: "Path on larger graph", n: 6, ctor: builder.Path(3), wantE: 2,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 0, g.Degree(5))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.n, nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.n, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			tc.sampleCheck(t, g)
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		n     int
		bopts []builder.BuilderOption
		ctor  builder.Constructor
		want  error
	}{
		{"Path too short", 4, nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle too short", 4, nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star too short", 4, nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Complete zero", 4, nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid zero rows", 4, nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Path exceeds graph", 3, nil, builder.Path(5), builder.ErrGraphTooSmall},
		{"Grid exceeds graph", 5, nil, builder.Grid(2, 3), builder.ErrGraphTooSmall},
		{"Reference exceeds graph", 8, nil, builder.Reference(), builder.ErrGraphTooSmall},
		{"RandomSparse bad p", 4, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse negative p", 4, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(4, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse no rng", 4, nil, builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"Edges out of range", 2, nil, builder.Edges([]core.Edge{{From: 0, To: 2, Weight: 1}}), core.ErrOutOfRange},
		{"Edges loop", 2, nil, builder.Edges([]core.Edge{{From: 1, To: 1, Weight: 1}}), core.ErrLoopNotAllowed},
		{"nil constructor", 2, nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.n, nil, tc.bopts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestBuildGraph_InvalidSize(t *testing.T) {
	_, err := builder.BuildGraph(0, nil, nil)
	assert.ErrorIs(t, err, core.ErrInvalidSize)
}

func TestBuildGraph_GraphOptionsForwarded(t *testing.T) {
	g, err := builder.BuildGraph(2, []core.GraphOption{core.WithLoops()}, nil,
		builder.Edges([]core.Edge{{From: 1, To: 1, Weight: 3}}))
	require.NoError(t, err)
	assert.True(t, g.Looped())
	assert.Equal(t, 1, g.Degree(1))
}

func TestRandomSparse_ConnectedAndDeterministic(t *testing.T) {
	t.Parallel()

	for _, p := range []float64{0, 0.1, 0.5, 1} {
		bopts := []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 20)}
		g1, err := builder.BuildGraph(12, nil, bopts, builder.RandomSparse(12, p))
		require.NoError(t, err)
		g2, err := builder.BuildGraph(12, nil,
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 20)},
			builder.RandomSparse(12, p))
		require.NoError(t, err)

		assert.True(t, connected(g1), "p=%v", p)
		assert.Equal(t, g1.Edges(), g2.Edges(), "p=%v", p)
		assert.GreaterOrEqual(t, g1.EdgeCount(), 11)
		for _, e := range g1.Edges() {
			assert.NotEqual(t, e.From, e.To)
			assert.GreaterOrEqual(t, e.Weight, int64(1))
			assert.LessOrEqual(t, e.Weight, int64(20))
		}
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	g, err := builder.BuildGraph(7, nil, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(3)))},
		builder.RandomSparse(7, 0))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount(), "p=0 leaves only the spanning path")

	g, err = builder.BuildGraph(7, nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(7, 1))
	require.NoError(t, err)
	assert.Equal(t, 21, g.EdgeCount(), "p=1 yields the complete graph")
	assert.Len(t, edgeWeights(g), 21, "no duplicate pairs")
}

func TestRandomSparse_SingleVertex(t *testing.T) {
	g, err := builder.BuildGraph(1, nil, []builder.BuilderOption{builder.WithSeed(9)}, builder.RandomSparse(1, 0.5))
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestReferenceGraph(t *testing.T) {
	g, err := builder.ReferenceGraph()
	require.NoError(t, err)
	assert.Equal(t, builder.ReferenceVertices, g.VertexCount())
	assert.Equal(t, builder.ReferenceEdges(), g.Edges())

	// ReferenceEdges hands out a copy.
	list := builder.ReferenceEdges()
	list[0].Weight = 999
	assert.Equal(t, int64(4), builder.ReferenceEdges()[0].Weight)
}

func TestBuildGraph_ConstructorsCompose(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, []builder.BuilderOption{builder.WithConstantWeight(7)},
		builder.Path(5), builder.Star(5))
	require.NoError(t, err)
	assert.Equal(t, 8, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.Equal(t, int64(7), e.Weight)
	}
}
