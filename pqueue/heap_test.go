package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-mst/pqueue"
)

// loadSealed builds a sealed heap where vertex i carries keys[i].
func loadSealed(t *testing.T, keys []int64) *pqueue.IndexedHeap {
	t.Helper()
	h := pqueue.New(len(keys))
	for v, k := range keys {
		require.NoError(t, h.Load(v, k))
	}
	h.Seal()
	require.NoError(t, h.Verify())

	return h
}

// drain extracts every node, verifying the invariants after each step.
func drain(t *testing.T, h *pqueue.IndexedHeap) []pqueue.Node {
	t.Helper()
	var out []pqueue.Node
	for !h.IsEmpty() {
		n, ok := h.ExtractMin()
		require.True(t, ok)
		require.NoError(t, h.Verify())
		assert.False(t, h.Contains(n.Vertex), "extracted vertex %d still a member", n.Vertex)
		out = append(out, n)
	}

	return out
}

func TestNew_Empty(t *testing.T) {
	h := pqueue.New(0)
	assert.True(t, h.IsEmpty())
	assert.Zero(t, h.Len())
	assert.Zero(t, h.Cap())

	_, ok := h.ExtractMin()
	assert.False(t, ok)
	h.Seal()
	_, ok = h.ExtractMin()
	assert.False(t, ok)
}

func TestNew_NegativeCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { pqueue.New(-1) })
}

// TestLoad_NotActiveUntilSeal checks the batch-activation step.
func TestLoad_NotActiveUntilSeal(t *testing.T) {
	h := pqueue.New(3)
	require.NoError(t, h.Load(0, 0))
	require.NoError(t, h.Load(1, pqueue.Infinity))

	assert.True(t, h.IsEmpty())
	assert.False(t, h.Contains(0))
	_, ok := h.ExtractMin()
	assert.False(t, ok)

	h.Seal()
	assert.Equal(t, 2, h.Len())
	assert.True(t, h.Contains(0))
	assert.True(t, h.Contains(1))
	assert.False(t, h.Contains(2), "never loaded")

	// Seal is idempotent.
	h.Seal()
	assert.Equal(t, 2, h.Len())
}

func TestLoad_Errors(t *testing.T) {
	h := pqueue.New(2)
	assert.ErrorIs(t, h.Load(-1, 0), pqueue.ErrOutOfRange)
	assert.ErrorIs(t, h.Load(2, 0), pqueue.ErrOutOfRange)

	require.NoError(t, h.Load(1, 5))
	assert.ErrorIs(t, h.Load(1, 3), pqueue.ErrDuplicate)

	h.Seal()
	assert.ErrorIs(t, h.Load(0, 1), pqueue.ErrSealed)
}

// TestSeal_ArbitraryKeys feeds keys in descending order; without a build-heap
// pass the first extraction would return the wrong vertex.
func TestSeal_ArbitraryKeys(t *testing.T) {
	h := loadSealed(t, []int64{50, 40, 30, 20, 10, 0})

	got := drain(t, h)
	require.Len(t, got, 6)
	for i, n := range got {
		assert.Equal(t, 5-i, n.Vertex)
	}
}

// TestSeal_UniformInfiniteKeys mirrors Prim's initial population: root 0,
// everything else infinite.
func TestSeal_UniformInfiniteKeys(t *testing.T) {
	keys := []int64{0, pqueue.Infinity, pqueue.Infinity, pqueue.Infinity}
	h := loadSealed(t, keys)

	n, ok := h.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, pqueue.Node{Vertex: 0, Key: 0}, n)
	require.NoError(t, h.Verify())
	assert.Equal(t, 3, h.Len())
}

func TestExtractMin_SortedOrder(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	keys := make([]int64, 200)
	for i := range keys {
		keys[i] = int64(r.Intn(50))
	}
	h := loadSealed(t, keys)

	got := drain(t, h)
	require.Len(t, got, len(keys))
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool {
		if got[i].Key != got[j].Key {
			return got[i].Key < got[j].Key
		}
		return got[i].Vertex < got[j].Vertex
	}))
}

// TestExtractMin_TieBreakVertex pins the lower-vertex preference on equal
// keys. After the first extraction vertex 3 sits in the left child slot and
// vertex 2 in the right one; 2 must still come out first.
func TestExtractMin_TieBreakVertex(t *testing.T) {
	h := loadSealed(t, []int64{1, 9, 3, 3})

	n, _ := h.ExtractMin()
	assert.Equal(t, 0, n.Vertex)
	n, _ = h.ExtractMin()
	assert.Equal(t, 2, n.Vertex)
	n, _ = h.ExtractMin()
	assert.Equal(t, 3, n.Vertex)
	n, _ = h.ExtractMin()
	assert.Equal(t, 1, n.Vertex)
}

func TestDecreaseKey_EqualKeyLowerVertexClimbs(t *testing.T) {
	// Seal puts vertex 2 (key 3) at the root with vertex 0 below it.
	h := loadSealed(t, []int64{9, 9, 3})

	require.NoError(t, h.DecreaseKey(0, 3))
	require.NoError(t, h.Verify())

	n, _ := h.ExtractMin()
	assert.Equal(t, pqueue.Node{Vertex: 0, Key: 3}, n)
	n, _ = h.ExtractMin()
	assert.Equal(t, pqueue.Node{Vertex: 2, Key: 3}, n)
}

func TestDecreaseKey_MovesToTop(t *testing.T) {
	h := loadSealed(t, []int64{10, 20, 30, 40, 50})

	require.NoError(t, h.DecreaseKey(4, 5))
	require.NoError(t, h.Verify())
	k, ok := h.Key(4)
	assert.True(t, ok)
	assert.Equal(t, int64(5), k)

	n, _ := h.ExtractMin()
	assert.Equal(t, pqueue.Node{Vertex: 4, Key: 5}, n)
}

func TestDecreaseKey_EqualKeyIsNoop(t *testing.T) {
	h := loadSealed(t, []int64{1, 2, 2})
	require.NoError(t, h.DecreaseKey(2, 2))
	require.NoError(t, h.Verify())

	got := drain(t, h)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{1, 2, 2}, []int64{got[0].Key, got[1].Key, got[2].Key})
	assert.Equal(t, []int{0, 1, 2}, []int{got[0].Vertex, got[1].Vertex, got[2].Vertex})
}

// TestDecreaseKey_ContractViolation flags a raised key and leaves the heap intact.
func TestDecreaseKey_ContractViolation(t *testing.T) {
	h := loadSealed(t, []int64{1, 2, 3})

	err := h.DecreaseKey(1, 10)
	assert.ErrorIs(t, err, pqueue.ErrKeyIncrease)
	k, _ := h.Key(1)
	assert.Equal(t, int64(2), k)
	require.NoError(t, h.Verify())
}

func TestDecreaseKey_NotMember(t *testing.T) {
	h := pqueue.New(3)
	require.NoError(t, h.Load(0, 0))
	require.NoError(t, h.Load(1, 5))
	h.Seal()

	assert.ErrorIs(t, h.DecreaseKey(2, 1), pqueue.ErrNotInHeap, "never loaded")
	assert.ErrorIs(t, h.DecreaseKey(3, 1), pqueue.ErrOutOfRange)

	n, _ := h.ExtractMin()
	assert.ErrorIs(t, h.DecreaseKey(n.Vertex, 0), pqueue.ErrNotInHeap, "already extracted")
	_, ok := h.Key(n.Vertex)
	assert.False(t, ok)
}

// TestRandomOperations interleaves extractions and decreases and compares
// against a naive model after every step.
func TestRandomOperations(t *testing.T) {
	const n = 300
	r := rand.New(rand.NewSource(42))
	model := make(map[int]int64, n)

	h := pqueue.New(n)
	for v := 0; v < n; v++ {
		k := int64(r.Intn(1000) + 500)
		model[v] = k
		require.NoError(t, h.Load(v, k))
	}
	h.Seal()

	for !h.IsEmpty() {
		// A few decreases on random live vertices.
		for i := 0; i < 3; i++ {
			v := r.Intn(n)
			cur, live := model[v]
			if !live {
				assert.False(t, h.Contains(v))
				continue
			}
			nk := cur - int64(r.Intn(600))
			require.NoError(t, h.DecreaseKey(v, nk))
			model[v] = nk
			require.NoError(t, h.Verify())
		}

		got, ok := h.ExtractMin()
		require.True(t, ok)
		require.NoError(t, h.Verify())

		minKey := got.Key
		for _, k := range model {
			if k < minKey {
				t.Fatalf("extracted key %d but model holds smaller %d", got.Key, k)
			}
		}
		assert.Equal(t, model[got.Vertex], got.Key)
		delete(model, got.Vertex)
		assert.Equal(t, len(model), h.Len())
	}
	assert.Empty(t, model)
}
