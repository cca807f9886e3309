package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

// BellmanFord computes shortest distances from Options.Source on a graph that
// may contain negative edge weights.
//
// Each round relaxes every edge against the previous round's distances (never
// against values updated earlier in the same round), so after k rounds every
// node holds its best distance over paths of at most k edges. Up to N rounds
// are run:
//
//   - a round that changes nothing ends the run early with stable distances;
//   - if round N still changes something, a path with more than N-1 edges is
//     shorter than all simpler ones, which means a reachable negative cycle,
//     and ErrNegativeCycle is returned with nil distances.
//
// Edges whose tail is still unreachable are skipped. Sums that would reach the
// Unreachable sentinel are dropped rather than wrapped. A sum below
// math.MinInt64 cannot be represented and stops the run with ErrUnderflow.
//
// Returns:
//
//   - dist: distances indexed by node id (graph.Unreachable if no path).
//   - prev: predecessor slice if WithReturnPath (nil otherwise).
//   - err:  validation error, ErrNegativeCycle or ErrUnderflow.
//
// Complexity: O(V·E) time, O(V) extra space (two distance buffers).
func BellmanFord(g *graph.Graph, opts ...Option) (graph.Distances, []int, error) {
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == 0 {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: node %d with N=%d", ErrVertexNotFound, cfg.Source, g.NodeCount())
	}

	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.cur, nil, nil
	}

	return r.cur, r.prev, nil
}

// ShortestPaths returns the distances from source to every node of g, or
// ErrNegativeCycle if a negative cycle is reachable from source.
func ShortestPaths(g *graph.Graph, source int) (graph.Distances, error) {
	dist, _, err := BellmanFord(g, Source(source))
	return dist, err
}

// runner holds the per-call state. Nothing here outlives BellmanFord.
type runner struct {
	g     *graph.Graph
	edges []graph.Edge    // snapshot of g.Edges(), walked once per round
	cur   graph.Distances // distances after the last completed round
	next  graph.Distances // distances being built in the current round
	prev  []int           // predecessors; nil unless ReturnPath
}

func newRunner(g *graph.Graph, cfg Options) *runner {
	n := g.NodeCount()
	r := &runner{
		g:     g,
		edges: g.Edges(),
		cur:   graph.NewDistances(n),
	}
	r.cur[cfg.Source] = 0
	r.next = r.cur.Clone()
	if cfg.ReturnPath {
		r.prev = make([]int, n+1)
	}

	return r
}

// process runs up to N rounds.
func (r *runner) process() error {
	n := r.g.NodeCount()
	for round := 1; round <= n; round++ {
		changed, err := r.round()
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		// next becomes the new baseline; cur is recycled as next round's buffer.
		r.cur, r.next = r.next, r.cur
		copy(r.next, r.cur)
	}

	return fmt.Errorf("%w: distances still changing after %d rounds", ErrNegativeCycle, n)
}

// round relaxes every edge once against r.cur into r.next and reports whether
// any distance changed.
func (r *runner) round() (bool, error) {
	var (
		changed bool
		du      int64
		cand    int64
		over    int
	)
	for _, e := range r.edges {
		du = r.cur[e.From]
		if du == graph.Unreachable {
			continue
		}
		cand, over = graph.Add(du, e.Weight)
		if over < 0 {
			return false, fmt.Errorf("%w: %d + (%d) on edge %d→%d", ErrUnderflow, du, e.Weight, e.From, e.To)
		}
		if over > 0 || cand == graph.Unreachable {
			continue
		}
		if cand < r.next[e.To] {
			r.next[e.To] = cand
			if r.prev != nil {
				r.prev[e.To] = e.From
			}
			changed = true
		}
	}

	return changed, nil
}
