// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like directed generator: include each ordered pair (u,v),
//     u ≠ v, independently with probability p.
//
// Contract:
//   - N ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - No self-loops.
//
// Complexity:
//   - Time: O(N²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: u asc, then v asc. Each accepted edge draws its
//     weight right after its trial, from the same RNG stream.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

// RandomSparse returns a Constructor that samples a random digraph over the
// graph's nodes with independent edge probability p.
func RandomSparse(p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := requireNodes(g, MethodRandomSparse, MinRandomSparseNodes); err != nil {
			return err
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if p == MinProbability {
			return nil
		}

		// 2) Trials in stable order.
		n := g.NodeCount()
		rng := cfg.rng
		var u, v int
		for u = 1; u <= n; u++ {
			for v = 1; v <= n; v++ {
				if u == v {
					continue
				}
				if p < MaxProbability && rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, MethodRandomSparse, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
