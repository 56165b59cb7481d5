// Package prim_kruskal computes the Minimum Spanning Tree (MST) of an undirected,
// weighted *core.Graph. Prim's algorithm is the primary engine; Kruskal's
// algorithm is provided as an independent reference and as an alternative
// method for Compute.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimal.
//
//   - Why Prim with an indexed heap?
//     The frontier holds at most one entry per vertex. When a cheaper edge to a frontier vertex is
//     found its key is lowered in place (pqueue.IndexedHeap.DecreaseKey) instead of pushing a
//     duplicate, so the heap never grows beyond V and membership is an O(1) check.
//
// Algorithms Provided
//
//   - Prim(g *core.Graph, opts ...Option) ([]core.Edge, int64, error)
//
//   - Strategy: every vertex starts in the heap with key +∞ except the root (key 0). Repeatedly
//     extract the minimum-key vertex u (it becomes settled) and, for every neighbor v still in the
//     heap with w(u,v) < key[v], set key[v] = w(u,v), parent[v] = u and decrease v's key.
//
//   - Vertex states: Unvisited (key +∞) → Frontier (finite key, parent recorded) → Settled.
//
//   - Complexity: O((V + E) log V) time, O(V) extra space.
//
//   - ParentArray(g *core.Graph, opts ...Option) ([]int, error)
//     The raw result of Prim: parent[v] for every vertex, core.None for the root and any vertex the
//     root cannot reach.
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: stable sort of all edges by weight, then union-find with path compression and
//     union by rank. Complexity O(E log E).
//
// Options (Prim)
//
//	– WithRoot(v)        start vertex, default 0.
//	– WithContext(ctx)   cancellation is checked before every extraction.
//	– WithAllowPartial() on disconnected input return the root's component instead of ErrDisconnected.
//	– WithLogger(l)      *zap.Logger receiving debug events (settle, relax); default no-op.
//	– WithOnSettle(fn)   callback for every settled vertex, in extraction order.
//	– WithHeapCheck()    verify heap invariants after every heap mutation (tests, debugging).
//
// Error Conditions
//
//   - ErrNilGraph        graph is nil.
//   - ErrEmptyGraph      graph has no vertices.
//   - core.ErrOutOfRange root outside [0, V) (Prim only).
//   - ErrDisconnected    some vertex cannot be reached (unless WithAllowPartial).
//   - ErrWeightOverflow  the tree's total weight does not fit in an int64.
//   - ErrUnknownMethod   Compute called with an unsupported method.
//
// Results
//
//	Prim returns tree edges as core.Edge{From: parent, To: child, Weight} ordered by child index,
//	never including the root or unreached vertices, so an unreachable vertex is never reported as
//	a zero-weight edge. Repeated calls on the same graph and root give identical results.
//
// Any weight core accepts (up to core.MaxWeight) is valid, including zero and negative values.
package prim_kruskal
