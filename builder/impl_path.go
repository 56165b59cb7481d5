// SPDX-License-Identifier: MIT
// Package: lvlath-mst/builder
//
// impl_path.go - chain-shaped constructors: Path, Cycle, Star.
//
// Contract:
//   - Vertices 0..n-1 of the target graph are used.
//   - Edge order is deterministic; weights come from cfg.weightFn in that order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path returns a Constructor linking 0-1-2-…-(n-1).
// Errors: ErrTooFewVertices if n < 2, ErrGraphTooSmall if the graph has fewer than n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := requireVertices(methodPath, g, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, i, i+1, cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring 0-1-…-(n-1)-0.
// Errors: ErrTooFewVertices if n < 3, ErrGraphTooSmall if the graph has fewer than n vertices.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := requireVertices(methodCycle, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, i, (i+1)%n, cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor with hub 0 connected to each of 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := requireVertices(methodStar, g, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, 0, i, cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}
