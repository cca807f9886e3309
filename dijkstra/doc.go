// Package dijkstra provides an implementation of Dijkstra's shortest-path
// algorithm on graph.Graph values with non-negative edge weights, built on the
// indexed decrease-key heap from package indexheap.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source node to all
//     reachable nodes in O((V + E) log V) time, where V = |nodes| and E = |edges|.
//   - It always expands the closest unfinished node; once a node leaves the heap
//     its distance is final. That greedy step is only sound for weights ≥ 0.
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// When to use:
//
//   - Single-source queries on graphs whose weights are known to be non-negative.
//   - As the inner loop of Johnson's all-pairs algorithm (package johnson), which
//     reweights arbitrary graphs so that this package applies.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a predecessor slice; PathTo rebuilds a route from it.
//   - MaxDistance: stops growing the frontier beyond a given distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - TrustedWeights: skips the negative-weight pre-scan for callers that proved it already.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:
//     Returned if Source was not given.
//   - ErrNilGraph:
//     Returned if you pass a nil *graph.Graph.
//   - ErrVertexNotFound:
//     Returned if the source is outside [1, N].
//   - ErrNegativeWeight:
//     Returned if any edge has a negative weight (detected by an O(E) pre-scan).
//     The classic algorithm silently returns wrong distances on such graphs, so
//     this package refuses them instead.
//   - ErrBadMaxDistance / ErrBadInfThreshold:
//     Raised (via panic) by the option constructors for meaningless values.
//
// API reference:
//
//	func Dijkstra(g *graph.Graph, opts ...Option) (dist graph.Distances, prev []int, err error)
//	func ShortestPaths(g *graph.Graph, source int) (graph.Distances, error)
//	func PathTo(prev []int, source, target int) ([]int, error)
//
//	  - dist: dist[v] = minimal distance from Source to v, or graph.Unreachable.
//	  - prev: prev[v] = predecessor of v on one shortest path, 0 for the source
//	          and for unreachable nodes. Nil unless WithReturnPath.
//
// Thread safety:
//
//   - Each call owns its heap and arrays. Concurrent calls on the same graph are
//     safe once the graph is no longer being modified.
package dijkstra
