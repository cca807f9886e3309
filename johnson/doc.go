// Package johnson implements Johnson's all-pairs shortest-path algorithm for
// graph.Graph values with arbitrary edge weights and no negative cycle.
//
// Johnson combines the other two algorithms of shortpath:
//
//	bellmanford (once, from a virtual source)  →  potentials h(v)
//	graph.Reweighted(h)                        →  every edge w + h(u) − h(v) ≥ 0
//	dijkstra (once per node)                   →  reweighted rows d'(s, ·)
//	d(s, t) = d'(s, t) − h(s) + h(t)           →  true distances
//
// The reweighting preserves shortest paths because every s→t path changes by
// the same amount h(s) − h(t). The non-negativity of each reweighted edge is
// the triangle inequality of the Bellman–Ford distances, and AllPairs checks
// it on every edge before any Dijkstra run starts.
//
// Reweighting shifts weights by up to the most negative potential, so it only
// runs when every |w| ≤ MaxInt64 / (2(N+1)). Heavier graphs fall back to one
// Bellman–Ford per source; the answers are the same, only slower. All sums are
// overflow-checked, and a true distance that would pass the sentinel reads as
// graph.Unreachable, the same rule dijkstra and bellmanford apply.
//
// Failure is all-or-nothing: if the graph has a negative cycle anywhere,
// AllPairs returns ErrNegativeCycle (which also satisfies
// errors.Is(err, bellmanford.ErrNegativeCycle)) and no matrix at all.
//
// Concurrency:
//
// The per-source Dijkstra runs are independent. AllPairs runs them on an
// errgroup limited to Options.Workers goroutines. Each run owns its own heap;
// the reweighted graph is only read; each run writes only its own row of the
// result. WithWorkers(1) gives a strictly sequential run with identical output.
//
// Disconnected graphs are fine: pairs without a path hold graph.Unreachable
// and are skipped by Result.Shortest.
//
// Complexity: O(V·E + V·(V + E) log V) time, O(V² + E) space.
package johnson
