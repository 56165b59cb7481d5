// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Prim and Kruskal algorithms via MSTOptions.
package prim_kruskal

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-mst/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyGraph indicates that the graph has no vertices, so there is nothing to span.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no vertices")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrWeightOverflow indicates the total weight of a tree does not fit in an int64.
var ErrWeightOverflow = errors.New("prim_kruskal: total weight overflows int64")

// ErrUnknownMethod indicates Compute was asked for an algorithm it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using an indexed min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// PrimOptions configures a single Prim run.
type PrimOptions struct {
	// Root is the start vertex.
	Root int

	// Ctx is checked for cancellation before each extraction.
	Ctx context.Context

	// AllowPartial returns the root's component instead of ErrDisconnected.
	AllowPartial bool

	// Logger receives debug events. Never nil after option resolution.
	Logger *zap.Logger

	// OnSettle is called when a vertex leaves the heap with a finite key.
	// parent is core.None for the root.
	OnSettle func(v, parent int, key int64)

	// CheckHeap runs pqueue.IndexedHeap.Verify after every heap mutation.
	CheckHeap bool
}

// Option configures PrimOptions.
type Option func(*PrimOptions)

// WithRoot sets the start vertex. Validated against the graph when Prim runs.
func WithRoot(root int) Option {
	return func(o *PrimOptions) {
		o.Root = root
	}
}

// WithContext sets a context for cooperative cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *PrimOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAllowPartial makes a disconnected graph yield the tree of the root's
// component with no error. Unreached vertices keep parent core.None.
func WithAllowPartial() Option {
	return func(o *PrimOptions) {
		o.AllowPartial = true
	}
}

// WithLogger routes debug events to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *PrimOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSettle registers a callback invoked for every settled vertex.
func WithOnSettle(fn func(v, parent int, key int64)) Option {
	return func(o *PrimOptions) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithHeapCheck enables invariant verification of the internal heap after
// every mutation. It turns each step into O(V) and is meant for tests.
func WithHeapCheck() Option {
	return func(o *PrimOptions) {
		o.CheckHeap = true
	}
}

// DefaultPrimOptions returns PrimOptions with:
//
//	– Root      = 0
//	– Ctx       = context.Background()
//	– Logger    = zap.NewNop()
//	– OnSettle  = no-op
//	– partial results and heap checks disabled.
func DefaultPrimOptions() PrimOptions {
	return PrimOptions{
		Root:     0,
		Ctx:      context.Background(),
		Logger:   zap.NewNop(),
		OnSettle: func(int, int, int64) {},
	}
}

// MSTOptions selects which MST algorithm Compute runs, and for Prim, the root.
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   int    — start vertex for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	Method string
	Root   int
}

// DefaultOptions returns MSTOptions for Prim rooted at vertex 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodPrim:    Prim(graph, WithRoot(opts.Root), extra...).
//	– MethodKruskal: Kruskal(graph). extra options are Prim-only and ignored here,
//	                 so WithAllowPartial does not turn a disconnected graph into a forest.
//	– Otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts MSTOptions, extra ...Option) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodPrim:
		return Prim(graph, append([]Option{WithRoot(opts.Root)}, extra...)...)
	case MethodKruskal:
		return Kruskal(graph)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// TotalWeight sums the weights of edges. The sum wraps on int64 overflow;
// Prim and Kruskal report ErrWeightOverflow instead, so their totals never wrap.
func TotalWeight(edges []core.Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

// addWeight returns total+w, or false if the sum leaves the int64 range.
func addWeight(total, w int64) (int64, bool) {
	if (w > 0 && total > math.MaxInt64-w) || (w < 0 && total < math.MinInt64-w) {
		return 0, false
	}

	return total + w, true
}
