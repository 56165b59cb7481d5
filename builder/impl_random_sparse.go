// SPDX-License-Identifier: MIT
// Package: lvlath-mst/builder
//
// impl_random_sparse.go - connected random graph: shuffled spanning path
// plus Bernoulli(p) extra edges.
//
// Determinism: with the same seed and parameters the sequence of RNG draws
// (shuffle, then one draw per remaining pair in (i,j) order, then weights
// in emission order) is fixed, hence the graph is identical.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
)

// RandomSparse returns a Constructor producing a connected graph on 0..n-1.
// A random spanning path (a shuffled vertex order) is laid first; every other
// unordered pair is then added independently with probability p.
//
// Errors: ErrTooFewVertices (n < 1), ErrInvalidProbability (p ∉ [0,1]),
// ErrNeedRandSource (no WithSeed/WithRand), ErrGraphTooSmall.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Parameter validation.
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := requireVertices(methodRandomSparse, g, n); err != nil {
			return err
		}

		// 2) Spanning path over a random permutation.
		order := cfg.rng.Perm(n)
		onPath := make(map[[2]int]struct{}, n)
		for i := 0; i+1 < n; i++ {
			u, v := order[i], order[i+1]
			if err := addEdge(methodRandomSparse, g, u, v, cfg.weight()); err != nil {
				return err
			}
			onPath[pairKey(u, v)] = struct{}{}
		}

		// 3) Extra edges, one Bernoulli draw per remaining pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, ok := onPath[[2]int{i, j}]; ok {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandomSparse, g, i, j, cfg.weight()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// pairKey normalizes an unordered pair as (min, max).
func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
