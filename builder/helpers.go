package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

// addEdge draws the next weight from cfg and inserts u→v, wrapping failures
// with the constructor name.
func addEdge(g *graph.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}

// addBoth inserts u→v and v→u, each with its own weight draw.
func addBoth(g *graph.Graph, cfg builderConfig, method string, u, v int) error {
	if err := addEdge(g, cfg, method, u, v); err != nil {
		return err
	}

	return addEdge(g, cfg, method, v, u)
}

// requireNodes returns ErrTooFewVertices when g has fewer than min nodes.
func requireNodes(g *graph.Graph, method string, min int) error {
	if n := g.NodeCount(); n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}
