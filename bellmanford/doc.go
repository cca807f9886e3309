// Package bellmanford implements the Bellman–Ford single-source shortest-path
// algorithm for graph.Graph values whose edge weights may be negative.
//
// The algorithm relaxes every edge in rounds. Distances in a round are computed
// only from the previous round's snapshot, so k rounds settle every shortest
// path that uses at most k edges. A graph over N nodes has simple paths of at
// most N-1 edges; a round that still improves something after that can only be
// walking around a negative cycle.
//
//	dist, err := bellmanford.ShortestPaths(g, 1)
//	if errors.Is(err, bellmanford.ErrNegativeCycle) {
//	    // no shortest paths exist from 1
//	}
//
// Negative cycles that the source cannot reach do not affect the result.
// Unreachable nodes hold graph.Unreachable, the same sentinel dijkstra and
// johnson use.
//
// Complexity: O(V·E) time, O(V + E) space (a snapshot of the edge list and two
// distance buffers). Runs stop early as soon as a round changes nothing.
//
// Package johnson uses BellmanFord from a virtual source to obtain the node
// potentials that make every edge weight non-negative.
package bellmanford
