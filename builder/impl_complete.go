// SPDX-License-Identifier: MIT
// Package: lvlath-mst/builder
//
// impl_complete.go - Complete(n): every unordered pair {i,j}, i<j, once.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor adding all n(n-1)/2 edges among 0..n-1,
// emitted in lexicographic (i,j) order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := requireVertices(methodComplete, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, i, j, cfg.weight()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
