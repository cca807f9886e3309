// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_path.go - implementation of Path() constructor.
//
// Contract:
//   - N ≥ 2 (else ErrTooFewVertices).
//   - Emits edges i → i+1 for i = 1..N-1 in increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge.
//
// Complexity:
//   - Time: O(N) edges.
//   - Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/shortpath/graph"
)

// Path returns a Constructor that chains every node of the graph: 1→2→…→N.
func Path() Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := requireNodes(g, MethodPath, MinPathNodes); err != nil {
			return err
		}

		n := g.NodeCount()
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
