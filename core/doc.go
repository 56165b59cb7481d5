// Package core provides the sparse, positional-vertex Graph used by the MST
// algorithms of this module.
//
// Vertices are the integers 0..V-1; there is no separate vertex object and no
// vertex lifecycle. A Graph is created once with NewGraph(V), filled with
// undirected weighted edges through AddEdge, and is read-only afterwards.
//
// Storage:
//
//   - One adjacency list per vertex holding Arc{To, Weight} entries.
//   - AddEdge(u, v, w) stores Arc{v, w} under u and Arc{u, w} under v, so every
//     undirected edge appears exactly twice with identical weight.
//   - Neighbors(v) walks the list most-recently-inserted first, matching a
//     linked list built by prepending.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (src == dest). A loop is stored once, under its only
//	    endpoint. Without the option AddEdge(v, v, w) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	NewGraph(v int, opts ...GraphOption) (*Graph, error)   // O(V)
//	AddEdge(src, dest int, weight int64) error            // O(1) amortized
//	Neighbors(v int) iter.Seq2[int, int64]                // lazy, restartable
//	NeighborsOf(v int) ([]Arc, error)                     // O(deg(v)) copy
//	Edges() []Edge                                        // O(E), insertion order
//	VertexCount(), EdgeCount(), Degree(v), HasVertex(v)   // O(1)
//
// Errors:
//
//	ErrInvalidSize    - NewGraph called with a non-positive vertex count.
//	ErrOutOfRange     - vertex index outside [0, V).
//	ErrLoopNotAllowed - self-loop without WithLoops().
//
// Weights are not validated. Prim and Kruskal assume non-negative weights;
// negative values produce a tree that is minimal only under integer ordering.
//
// Concurrency: a Graph is not safe for concurrent mutation. Once built it may
// be shared by any number of readers.
package core
