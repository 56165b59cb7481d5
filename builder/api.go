// SPDX-License-Identifier: MIT
// Package: lvlath-mst/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Touch only vertices 0..k-1 for their documented k.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with n vertices and graph options gopts,
// resolves the builder configuration from bopts, and applies all constructors
// in order. Any constructor error is wrapped with "BuildGraph: %w" and
// returned immediately; the partially built graph is discarded.
//
// Errors:
//   - core.ErrInvalidSize if n < 1.
//   - Wrapped constructor sentinels (ErrTooFewVertices, ErrGraphTooSmall, ...).
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// ReferenceGraph builds the nine-vertex sample graph (see Reference).
func ReferenceGraph() (*core.Graph, error) {
	return BuildGraph(ReferenceVertices, nil, nil, Reference())
}

// requireVertices checks that g can host a constructor over k vertices.
func requireVertices(method string, g *core.Graph, k int) error {
	if g.VertexCount() < k {
		return fmt.Errorf("%s: needs %d vertices, graph has %d: %w", method, k, g.VertexCount(), ErrGraphTooSmall)
	}

	return nil
}

// addEdge inserts one edge and attaches method context to any core error.
func addEdge(method string, g *core.Graph, u, v int, w int64) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}
