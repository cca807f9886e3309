package bellmanford_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/graph"
)

// ExampleShortestPaths runs on a graph with a negative edge and then on one
// with a negative cycle.
func ExampleShortestPaths() {
	g, _ := graph.FromEdges(3, []graph.Edge{
		{From: 1, To: 2, Weight: 4},
		{From: 2, To: 3, Weight: -2},
		{From: 1, To: 3, Weight: 5},
	})
	dist, _ := bellmanford.ShortestPaths(g, 1)
	fmt.Println(dist[1], dist[2], dist[3])

	cyc, _ := graph.FromEdges(3, []graph.Edge{
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: -3},
		{From: 3, To: 1, Weight: 1},
	})
	_, err := bellmanford.ShortestPaths(cyc, 1)
	fmt.Println(errors.Is(err, bellmanford.ErrNegativeCycle))
	// Output:
	// 0 4 2
	// true
}
