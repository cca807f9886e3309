// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_cycle.go - implementation of Cycle() constructor.
//
// Contract:
//   - N ≥ 2 (else ErrTooFewVertices).
//   - Emits 1→2, 2→3, …, (N-1)→N and finally the closing arc N→1.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge, so a negative constant
//     weight yields a negative cycle.
//
// Complexity: O(N) time, O(1) extra space.

package builder

import (
	"github.com/katalvlaran/shortpath/graph"
)

// Cycle returns a Constructor that builds the directed ring 1→2→…→N→1.
func Cycle() Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := requireNodes(g, MethodCycle, MinCycleNodes); err != nil {
			return err
		}

		n := g.NodeCount()
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodCycle, i, i+1); err != nil {
				return err
			}
		}

		// closing arc
		return addEdge(g, cfg, MethodCycle, n, 1)
	}
}
