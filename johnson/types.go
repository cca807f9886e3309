package johnson

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/shortpath/graph"
)

// Sentinel errors returned by AllPairs.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to AllPairs.
	ErrNilGraph = errors.New("johnson: graph is nil")

	// ErrNegativeCycle indicates the input graph contains a negative cycle, so
	// no all-pairs result exists. It also matches bellmanford.ErrNegativeCycle
	// under errors.Is.
	ErrNegativeCycle = errors.New("johnson: negative cycle detected")

	// ErrReweightInvariant indicates a reweighted edge came out negative, which
	// can only happen if the potentials are wrong.
	ErrReweightInvariant = errors.New("johnson: reweighted edge is negative")

	// ErrBadWorkers indicates WithWorkers received a value below 1.
	ErrBadWorkers = errors.New("johnson: workers must be at least 1")
)

// Options configures AllPairs.
//
// Workers – number of per-source Dijkstra runs in flight at once. 1 runs them
//
//	sequentially in source order. Default runtime.GOMAXPROCS(0).
type Options struct {
	Workers int
}

// Option represents a functional option for configuring AllPairs.
type Option func(*Options)

// WithWorkers bounds the number of concurrent per-source runs.
// Panics with ErrBadWorkers if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// DefaultOptions returns Options with one worker per available CPU.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// Result is the all-pairs outcome of a successful AllPairs run.
//
// Dist[s][t] is the shortest distance from s to t, or graph.Unreachable. Dist[0]
// is nil so rows are indexed by node id. Potential holds h(v), the distance
// from the virtual source used for reweighting (always ≤ 0).
type Result struct {
	Dist      []graph.Distances
	Potential graph.Distances
}

// NodeCount returns N.
func (r *Result) NodeCount() int {
	if len(r.Dist) == 0 {
		return 0
	}

	return len(r.Dist) - 1
}

// Distance returns d(s, t) and whether t is reachable from s.
// Ids outside [1, N] are reported as unreachable.
func (r *Result) Distance(s, t int) (int64, bool) {
	if s < 1 || s >= len(r.Dist) {
		return graph.Unreachable, false
	}

	return r.Dist[s].Get(t)
}

// Shortest returns the ordered pair with the smallest distance over all
// reachable pairs, the diagonal (s, s) = 0 included, so the value is never
// positive. Ties go to the lowest s, then the lowest t. ok is false only for
// an empty graph.
func (r *Result) Shortest() (s, t int, d int64, ok bool) {
	d = graph.Unreachable
	var (
		v  int
		dv int64
		rk bool
	)
	for u := 1; u < len(r.Dist); u++ {
		v, dv, rk = r.Dist[u].Min()
		if rk && dv < d {
			s, t, d, ok = u, v, dv, true
		}
	}

	return s, t, d, ok
}
