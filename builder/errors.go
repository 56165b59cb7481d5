// SPDX-License-Identifier: MIT
// Package: lvlath-mst/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, e.g. "Cycle: n=2 < min=3: builder: parameter too small".

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrGraphTooSmall indicates a constructor needs more vertices than the graph holds.
var ErrGraphTooSmall = errors.New("builder: graph has too few vertices for constructor")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not complete, e.g. a
// nil constructor was passed to BuildGraph or the core graph rejected an edge.
var ErrConstructFailed = errors.New("builder: construction failed")
