// Package builder provides deterministic graph fixtures for the MST packages:
// functional-options configuration, edge-weight distributions and a small set
// of topology constructors over the positional vertices of core.Graph.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(n, gopts, bopts, cons...): creates a core.Graph with n vertices
//     and applies constructors in order.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG and weight function.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer ∼U[min,max].
//   - Topology constructors (each uses vertices 0..k-1 of the graph):
//     – Path, Cycle, Star, Complete, Grid, RandomSparse, RandomConnected, Edges, Reference.
//
// Guarantees:
//
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     method name (errors.Is friendly).
//
// Reference() reproduces the nine-vertex sample graph whose MST weighs 37;
// ReferenceGraph() builds it in one call.
package builder
