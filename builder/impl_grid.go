// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighbourhood.
//   • Cell (r,c), 0-based, is node r·cols + c + 1 (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1, and rows·cols ≤ N (else ErrTooFewVertices).
//     Nodes above rows·cols are left untouched.
//   • For each cell emits Right then Bottom neighbour, each as the forward
//     arc followed by the reverse arc.
//
// Complexity:
//   • Time: O(rows·cols) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if err := requireNodes(g, MethodGrid, rows*cols); err != nil {
			return err
		}

		var r, c, u int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u = GridNode(r, c, cols)
				if c+1 < cols {
					if err := addBoth(g, cfg, MethodGrid, u, GridNode(r, c+1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addBoth(g, cfg, MethodGrid, u, GridNode(r+1, c, cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridNode returns the node id of the 0-based cell (r, c) in a grid with the
// given number of columns.
func GridNode(r, c, cols int) int {
	return r*cols + c + 1
}
