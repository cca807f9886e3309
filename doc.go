// Package shortpath is a shortest-path engine for weighted directed graphs
// with integer node ids 1..N and signed int64 edge weights.
//
// Packages:
//
//	graph/       - Graph, Edge, Distances and the shared Unreachable sentinel
//	indexheap/   - indexed binary min-heap with decrease-key
//	dijkstra/    - single source, non-negative weights
//	bellmanford/ - single source, negative weights, negative-cycle detection
//	johnson/     - all pairs, parallel per-source stage
//	builder/     - deterministic fixture graphs
//	graphio/     - adjacency and edge-list text formats
//	cmd/shortpath, internal/cli - command-line front end
//
// Every algorithm reports a node it cannot reach with graph.Unreachable,
// and every failure is a package sentinel error that callers test with
// errors.Is.
//
// Quick example:
//
//	g, _ := graph.FromEdges(3, []graph.Edge{
//	    {From: 1, To: 2, Weight: 4},
//	    {From: 2, To: 3, Weight: -2},
//	    {From: 1, To: 3, Weight: 5},
//	})
//	res, err := johnson.AllPairs(g)
//	// res.Distance(1, 3) == 2, true
//
//	go get github.com/katalvlaran/shortpath
package shortpath
