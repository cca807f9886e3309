// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g over nodes 1..n,
//     resolves cfg, runs cons in order.
//   - Topology factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same n, options, seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only add edges between existing nodes 1..g.NodeCount().
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates a graph over nodes 1..n, resolves the builder
// configuration from bopts, and applies all constructors in order. Several
// constructors may be combined; their edges accumulate on the same graph.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - graph.ErrNegativeNodeCount for n < 0.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
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

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure that works on node ids 1..N of
// the graph it receives and emits edges in a stable, documented order.

// Path adds 1→2→…→N (N ≥ 2).
// Complexity: O(N).
//func Path() Constructor

// Cycle adds 1→2→…→N→1 (N ≥ 2).
// Complexity: O(N).
//func Cycle() Constructor

// Star adds spokes 1→v and v→1 for every v in 2..N (N ≥ 2).
// Complexity: O(N).
//func Star() Constructor

// Complete adds u→v for every ordered pair u ≠ v (N ≥ 1).
// Complexity: O(N²).
//func Complete() Constructor

// Grid adds a rows×cols 4-neighbourhood lattice over nodes 1..rows·cols,
// both directions per neighbour pair.
// Complexity: O(rows·cols).
//func Grid(rows, cols int) Constructor

// RandomSparse adds each ordered pair u ≠ v independently with probability p.
// Requires cfg.rng for 0 < p < 1.
// Complexity: O(N²) Bernoulli trials.
//func RandomSparse(p float64) Constructor
