package johnson

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graph"
)

// AllPairs computes shortest distances between every ordered pair of nodes of
// g, which may have negative edge weights but no negative cycle.
//
// Steps:
//  1. Build g plus a virtual node N+1 with a zero-weight edge to every node.
//  2. Run Bellman–Ford from the virtual node. A negative cycle there is a
//     negative cycle in g (the virtual node has no incoming edges), and the
//     whole computation fails with ErrNegativeCycle; no partial result.
//  3. Take h(v) = that distance as the potential of v.
//  4. Reweight every edge to w + h(u) − h(v), which is ≥ 0; verified per edge.
//  5. Run Dijkstra once per source on the reweighted graph, up to
//     Options.Workers at a time. Workers only read the shared graph and each
//     writes its own row.
//  6. Undo the reweighting: d(s, t) = d'(s, t) − h(s) + h(t).
//
// Steps 4-6 need headroom: when every |w| is at most MaxInt64 / (2(N+1)), no
// potential, reweighted weight or reweighted distance can leave int64. A graph
// with a heavier edge skips them and runs Bellman–Ford from every source
// instead, on the same worker pool, so the result matches single-source
// Bellman–Ford exactly.
//
// Pairs with no path keep graph.Unreachable.
//
// Complexity: O(V·E) for step 2 plus O(V·(V + E) log V) for step 5, or
// O(V²·E) on the Bellman–Ford path.
func AllPairs(g *graph.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.NodeCount()
	res := &Result{Dist: make([]graph.Distances, n+1)}
	if n == 0 {
		res.Potential = graph.NewDistances(0)
		return res, nil
	}

	// 1-3) potentials from the virtual source
	h, err := potentials(g)
	if err != nil {
		return nil, err
	}
	res.Potential = h

	row := func(s int) (graph.Distances, error) {
		return bellmanford.ShortestPaths(g, s)
	}
	if withinLimit(g) {
		// 4) reweight and verify
		rw := g.Reweighted(func(v int) int64 { return h[v] })
		if err = verifyNonNegative(g, rw, h); err != nil {
			return nil, err
		}
		row = func(s int) (graph.Distances, error) {
			return fromSource(rw, h, s)
		}
	}

	// 5-6) one run per source
	eg := new(errgroup.Group)
	eg.SetLimit(cfg.Workers)
	for s := 1; s <= n; s++ {
		s := s
		eg.Go(func() error {
			dist, err := row(s)
			if err != nil {
				return fmt.Errorf("johnson: source %d: %w", s, err)
			}
			res.Dist[s] = dist

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// potentials runs Bellman–Ford from a virtual source added to g and returns
// h indexed by the original node ids.
func potentials(g *graph.Graph) (graph.Distances, error) {
	aug, src := g.WithVirtualSource()
	dist, err := bellmanford.ShortestPaths(aug, src)
	switch {
	case errors.Is(err, bellmanford.ErrNegativeCycle):
		return nil, fmt.Errorf("%w: %w", ErrNegativeCycle, err)
	case err != nil:
		return nil, fmt.Errorf("johnson: potentials: %w", err)
	}

	// Drop the virtual node's slot.
	return dist[:src], nil
}

// WeightLimit is the largest |w| for which AllPairs reweights a graph with n
// nodes. Every potential and every reweighted distance then stays within
// MaxInt64 / 2 in absolute value.
func WeightLimit(n int) int64 {
	return math.MaxInt64 / (2 * (int64(n) + 1))
}

// withinLimit reports whether every edge of g satisfies |w| ≤ WeightLimit(N).
func withinLimit(g *graph.Graph) bool {
	limit := WeightLimit(g.NodeCount())
	for _, e := range g.Edges() {
		if e.Weight > limit || e.Weight < -limit {
			return false
		}
	}

	return true
}

// verifyNonNegative checks w + h(u) − h(v) ≥ 0 for every reweighted edge.
func verifyNonNegative(g, rw *graph.Graph, h graph.Distances) error {
	e, bad := rw.HasNegativeWeight()
	if !bad {
		return nil
	}
	// Recover the original weight for the message.
	orig := graph.Saturate(graph.AddSub(e.Weight, h[e.To], h[e.From]))

	return fmt.Errorf("%w: edge %d→%d w=%d h(%d)=%d h(%d)=%d gives %d (N=%d)",
		ErrReweightInvariant, e.From, e.To, orig, e.From, h[e.From], e.To, h[e.To], e.Weight, g.NodeCount())
}

// fromSource runs Dijkstra on the reweighted graph from s and converts the
// reweighted distances back to true ones. A true distance that would not fit
// below the sentinel is reported as unreachable.
func fromSource(rw *graph.Graph, h graph.Distances, s int) (graph.Distances, error) {
	row, _, err := dijkstra.Dijkstra(rw, dijkstra.Source(s), dijkstra.WithTrustedWeights())
	if err != nil {
		return nil, err
	}
	for t := 1; t < len(row); t++ {
		if row[t] != graph.Unreachable {
			row[t] = graph.Saturate(graph.AddSub(row[t], h[t], h[s]))
		}
	}

	return row, nil
}
