// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_complete.go - implementation of Complete() constructor.
//
// Contract:
//   • N ≥ 1 (else ErrTooFewVertices).
//   • Emits u→v for every ordered pair u ≠ v, u asc then v asc.
//   • No self-loops.
//
// Complexity:
//   • Time: O(N²) edges.
//   • Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/shortpath/graph"
)

// Complete returns a Constructor that builds the complete digraph on 1..N.
func Complete() Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := requireNodes(g, MethodComplete, MinCompleteNodes); err != nil {
			return err
		}

		n := g.NodeCount()
		var u, v int
		for u = 1; u <= n; u++ {
			for v = 1; v <= n; v++ {
				if u == v {
					continue
				}
				if err := addEdge(g, cfg, MethodComplete, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
