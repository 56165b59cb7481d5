// SPDX-License-Identifier: MIT
// Package: lvlath-mst/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood lattice.
//
// Vertex (r,c) maps to index r*cols + c. Edges are emitted row-major,
// right neighbor before down neighbor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols lattice over vertices 0..rows*cols-1.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := requireVertices(methodGrid, g, rows*cols); err != nil {
			return err
		}

		var v int
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v = r*cols + c
				if c+1 < cols {
					if err := addEdge(methodGrid, g, v, v+1, cfg.weight()); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, v, v+cols, cfg.weight()); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
