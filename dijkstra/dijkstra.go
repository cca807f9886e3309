// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes in a graph with non-negative edge weights.
// It processes nodes in order of increasing distance using an indexed min-heap
// with true decrease-key, so every node occupies at most one heap slot.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted at most once: V extractions.
//   - Each edge relaxation is at most one DecreaseKeyOrInsert: E updates.
//   - Space: O(V) for the heap, distances, finalized flags and predecessors.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast,
//     unless the caller opted into WithTrustedWeights.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - Candidates beyond MaxDistance are never inserted into the heap.
//   - A node is final once extracted; later proposals for it are ignored.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/indexheap"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to all other nodes in g.
//
// Returns:
//
//   - dist: distances indexed by node id (graph.Unreachable if no path).
//   - prev: predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v ends with edge u→v.
//     prev[source] == 0 and prev[v] == 0 for unreachable v.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must lie in [1, N] (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight), unless WithTrustedWeights.
//
// The graph is only read. Every call owns its own heap and arrays, so
// concurrent calls on the same finished graph are safe.
func Dijkstra(g *graph.Graph, opts ...Option) (graph.Distances, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == 0 {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: node %d with N=%d", ErrVertexNotFound, cfg.Source, g.NodeCount())
	}

	// 3) Pre-scan for negative weights. Fail fast with ErrNegativeWeight.
	if !cfg.TrustedWeights {
		if e, bad := g.HasNegativeWeight(); bad {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Run.
	r, err := newRunner(g, cfg)
	if err != nil {
		return nil, nil, err
	}
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPaths returns the distances from source to every node of g.
// It is Dijkstra with only the Source option set.
func ShortestPaths(g *graph.Graph, source int) (graph.Distances, error) {
	dist, _, err := Dijkstra(g, Source(source))
	return dist, err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graph.Graph    // The input graph; read-only within Dijkstra.
	options Options         // Configuration options (Source, thresholds, etc.).
	dist    graph.Distances // node → final distance, Unreachable until extracted.
	prev    []int           // node → predecessor; nil unless ReturnPath.
	done    []bool          // node → distance finalized.
	pq      *indexheap.Heap // tentative distances of discovered, unfinished nodes.
}

// newRunner allocates per-run state and seeds the heap with Source=0.
func newRunner(g *graph.Graph, cfg Options) (*runner, error) {
	n := g.NodeCount()
	pq, err := indexheap.New(n)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	r := &runner{
		g:       g,
		options: cfg,
		dist:    graph.NewDistances(n),
		done:    make([]bool, n+1),
		pq:      pq,
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n+1)
	}
	// Source is validated to be in range, so this cannot fail.
	_, _ = r.pq.DecreaseKeyOrInsert(cfg.Source, 0)

	return r, nil
}

// process is the core loop. It repeatedly extracts the closest unfinished node,
// records its distance as final and relaxes its outgoing edges. It ends when
// the heap is empty.
func (r *runner) process() error {
	var (
		u   int
		d   int64
		err error
	)
	for !r.pq.IsEmpty() {
		u, d, err = r.pq.ExtractMin()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		r.dist[u] = d
		r.done[u] = true

		if err = r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax proposes d + w for every edge u→v that leaves u.
func (r *runner) relax(u int, d int64) error {
	edges, err := r.g.EdgesFrom(u)
	if err != nil {
		return fmt.Errorf("dijkstra: edges of %d: %w", u, err)
	}

	var (
		e    graph.Edge
		cand int64
		over int
	)
	for _, e = range edges {
		if r.done[e.To] {
			continue
		}
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// Sums that overflow or land on the Unreachable sentinel are dropped.
		cand, over = graph.Add(d, e.Weight)
		if over != 0 || cand == graph.Unreachable {
			continue
		}
		if cand > r.options.MaxDistance {
			continue
		}

		changed, err := r.pq.DecreaseKeyOrInsert(e.To, cand)
		if err != nil {
			return fmt.Errorf("dijkstra: relax %d→%d: %w", u, e.To, err)
		}
		if changed && r.prev != nil {
			r.prev[e.To] = u
		}
	}

	return nil
}

// PathTo rebuilds the node sequence source → … → target from a predecessor
// slice returned with WithReturnPath. It returns ErrNoPath when target was not
// reached, and graph.ErrInvalidNode for ids outside prev.
// Complexity: O(path length).
func PathTo(prev []int, source, target int) ([]int, error) {
	if source < 1 || source >= len(prev) || target < 1 || target >= len(prev) {
		return nil, fmt.Errorf("%w: source=%d target=%d", graph.ErrInvalidNode, source, target)
	}

	path := []int{target}
	for v := target; v != source; {
		v = prev[v]
		if v == 0 || len(path) >= len(prev) {
			return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, source, target)
		}
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
