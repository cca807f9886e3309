// Package graph provides the directed, weighted adjacency structure consumed by
// every shortest-path algorithm in shortpath, together with the Distances type
// those algorithms return.
//
// Nodes are plain integers in the contiguous range [1, N]. Id 0 is reserved so
// that per-node slices can be indexed directly by node id without an offset;
// slot 0 of every per-node slice is unused.
//
// A Graph G = (V,E) supports:
//
//   - Directed edges only; an undirected road is two edges.
//   - Signed int64 weights (negative weights are meaningful to Bellman–Ford and
//     Johnson; Dijkstra rejects them).
//   - Parallel edges and self-loops, never deduplicated.
//   - Deterministic iteration: EdgesFrom preserves insertion order and Edges
//     walks nodes in ascending id order.
//
// Lifecycle:
//
//	g, _ := graph.New(5)          // empty graph over nodes 1..5
//	_ = g.AddEdge(1, 2, 7)        // O(1) amortized
//	es, _ := g.EdgesFrom(1)       // read-only view, insertion order
//	h := g.Reweighted(potential)  // brand-new graph, g untouched
//	aug, s := g.WithVirtualSource() // node N+1 with zero edges to every node
//
// Graphs are built once and then only read. AddEdge must be called from a
// single goroutine; once it is done, a finished graph may be shared by any
// number of goroutines without locking, which is how johnson fans out its
// per-source runs. At most MaxNodes nodes are allowed.
//
// Weight arithmetic:
//
// AddSub and Add compute sums exactly and report overflow instead of wrapping.
// Saturate clamps an overflowing sum to Unreachable or math.MinInt64.
// Reweighted uses them, so a reweighted edge never changes sign by wrapping.
//
// Unreachable distances:
//
// Every algorithm reports "no path" with the same sentinel, Unreachable
// (math.MaxInt64). Distances.Get returns (d, false) for such nodes so callers
// never compare against the sentinel themselves.
//
// Errors (sentinel):
//
//	ErrNegativeNodeCount – New called with n < 0.
//	ErrTooManyNodes      – New called with n > MaxNodes.
//	ErrInvalidNode       – edge endpoint or query id outside [1, N].
//	ErrNilGraph          – nil *Graph passed to a helper that needs one.
package graph
