// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_star.go - implementation of Star() constructor.
//
// Contract:
//   - N ≥ 2 (else ErrTooFewVertices).
//   - Node 1 is the hub; for each leaf v = 2..N emits 1→v then v→1.
//   - Weight policy: cfg.weightFn(cfg.rng) per arc (the two arcs of a spoke
//     draw separately).
//
// Complexity: O(N) time, O(1) extra space.

package builder

import (
	"github.com/katalvlaran/shortpath/graph"
)

// hubNode is the fixed hub id used by Star.
const hubNode = 1

// Star returns a Constructor that builds a bidirectional star around node 1.
func Star() Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := requireNodes(g, MethodStar, MinStarNodes); err != nil {
			return err
		}

		n := g.NodeCount()
		for leaf := hubNode + 1; leaf <= n; leaf++ {
			if err := addBoth(g, cfg, MethodStar, hubNode, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
