// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a root vertex of a *core.Graph using an indexed min-heap with decrease-key.
package prim_kruskal

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-mst/core"
	"github.com/katalvlaran/lvlath-mst/pqueue"
)

// Prim computes the Minimum Spanning Tree of an undirected, weighted graph by
// growing outwards from the root vertex (WithRoot, default 0).
//
// Returns:
//
//	[]core.Edge — tree edges {From: parent, To: child, Weight}, ordered by child index.
//	int64       — total weight of the tree.
//	error       — non-nil if computation cannot proceed or the graph is disconnected.
//
// Error Conditions:
//   - ErrNilGraph      : graph is nil.
//   - ErrEmptyGraph    : graph has no vertices.
//   - core.ErrOutOfRange: root is outside [0, V).
//   - ErrDisconnected  : some vertex is unreachable from root (suppressed by WithAllowPartial).
//   - ErrWeightOverflow: the tree's total weight does not fit in an int64.
//   - ctx.Err()        : the context was cancelled (wrapped).
//
// A single-vertex graph yields an empty edge list and no error.
//
// Complexity: O((V + E) log V) time, O(V) extra memory.
func Prim(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	r, err := run(graph, opts)
	if err != nil {
		return nil, 0, err
	}

	// Emit edges by ascending child, skipping the root and unreached vertices.
	mst := make([]core.Edge, 0, r.reached-1)
	var (
		total int64
		ok    bool
	)
	for v, p := range r.parent {
		if p == core.None {
			continue
		}
		mst = append(mst, core.Edge{From: p, To: v, Weight: r.key[v]})
		if total, ok = addWeight(total, r.key[v]); !ok {
			return nil, 0, fmt.Errorf("prim_kruskal: total at edge %d-%d: %w", p, v, ErrWeightOverflow)
		}
	}

	return mst, total, nil
}

// ParentArray runs Prim and returns the raw parent array: parent[v] is the
// vertex that connected v to the tree at minimum cost, or core.None for the
// root and (with WithAllowPartial) for every vertex the root cannot reach.
//
// Errors are the same as for Prim.
func ParentArray(graph *core.Graph, opts ...Option) ([]int, error) {
	r, err := run(graph, opts)
	if err != nil {
		return nil, err
	}

	return r.parent, nil
}

// run validates inputs, resolves options and executes the Prim loop.
func run(graph *core.Graph, opts []Option) (*runner, error) {
	// 1) Resolve options.
	cfg := DefaultPrimOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph and root.
	if graph == nil {
		return nil, ErrNilGraph
	}
	n := graph.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if !graph.HasVertex(cfg.Root) {
		return nil, fmt.Errorf("prim_kruskal: root %d not in [0,%d): %w", cfg.Root, n, core.ErrOutOfRange)
	}

	// 3) Build state and run.
	r := &runner{
		g:      graph,
		cfg:    cfg,
		log:    cfg.Logger.With(zap.String("algo", MethodPrim), zap.Int("root", cfg.Root)),
		heap:   pqueue.New(n),
		key:    make([]int64, n),
		parent: make([]int, n),
	}
	if err := r.init(); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	// 4) Connectivity verdict.
	if unreached := n - r.reached; unreached > 0 {
		r.log.Debug("unreached vertices", zap.Int("count", unreached))
		if !cfg.AllowPartial {
			return nil, fmt.Errorf("prim_kruskal: %d of %d vertices unreachable from root %d: %w",
				unreached, n, cfg.Root, ErrDisconnected)
		}
	}

	return r, nil
}

// runner holds the mutable state for a single Prim execution.
type runner struct {
	g       *core.Graph         // input graph; read-only here
	cfg     PrimOptions         // resolved options
	log     *zap.Logger         // cfg.Logger with run fields attached
	heap    *pqueue.IndexedHeap // frontier: every not-yet-settled vertex
	key     []int64             // key[v] = cheapest known edge into the tree
	parent  []int               // parent[v] = tree endpoint of that edge
	reached int                 // settled vertices with a finite key
}

// init assigns the initial keys and populates the heap with every vertex.
func (r *runner) init() error {
	// 1) key[root] = 0, everything else +∞, no parents.
	for v := range r.key {
		r.key[v] = pqueue.Infinity
		r.parent[v] = core.None
	}
	r.key[r.cfg.Root] = 0

	// 2) Load all vertices, then activate them in one step.
	for v, k := range r.key {
		if err := r.heap.Load(v, k); err != nil {
			return fmt.Errorf("prim_kruskal: %w", err)
		}
	}
	r.heap.Seal()

	return r.check()
}

// process is the greedy loop: settle the cheapest frontier vertex, then
// relax its neighbors that are still in the heap.
func (r *runner) process() error {
	for !r.heap.IsEmpty() {
		// 1) Cooperative cancellation.
		if err := r.cfg.Ctx.Err(); err != nil {
			return fmt.Errorf("prim_kruskal: %w", err)
		}

		// 2) Extract the minimum-key vertex.
		node, _ := r.heap.ExtractMin()
		if err := r.check(); err != nil {
			return err
		}

		// 3) An infinite key means the root's component is exhausted: nothing
		//    settled so far touches the remaining vertices. They stay parentless.
		//    core.MaxWeight < Infinity keeps this exact for every stored edge.
		if node.Key == pqueue.Infinity {
			return nil
		}

		u := node.Vertex
		r.reached++
		r.cfg.OnSettle(u, r.parent[u], node.Key)
		r.log.Debug("settle", zap.Int("vertex", u), zap.Int("parent", r.parent[u]), zap.Int64("key", node.Key))

		// 4) Relax.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax applies the only update rule: a strictly cheaper edge to a vertex
// still in the heap replaces its key and parent.
func (r *runner) relax(u int) error {
	for v, w := range r.g.Neighbors(u) {
		if !r.heap.Contains(v) || w >= r.key[v] {
			continue
		}
		r.key[v] = w
		r.parent[v] = u
		if err := r.heap.DecreaseKey(v, w); err != nil {
			return fmt.Errorf("prim_kruskal: relax %d-%d: %w", u, v, err)
		}
		if err := r.check(); err != nil {
			return err
		}
		r.log.Debug("relax", zap.Int("from", u), zap.Int("to", v), zap.Int64("weight", w))
	}

	return nil
}

// check verifies the heap when CheckHeap is enabled.
func (r *runner) check() error {
	if !r.cfg.CheckHeap {
		return nil
	}
	if err := r.heap.Verify(); err != nil {
		return fmt.Errorf("prim_kruskal: %w", err)
	}

	return nil
}
