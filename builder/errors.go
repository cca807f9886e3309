// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that the graph has fewer nodes than the
// requested constructor needs (e.g. Path on a single node, a Grid larger
// than the graph).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a topology could not be constructed,
// e.g. a nil constructor was passed or the graph rejected an edge.
var ErrConstructFailed = errors.New("builder: construction failed")
