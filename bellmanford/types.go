// Package bellmanford defines sentinel errors and options for the
// Bellman–Ford single-source shortest-path algorithm.
//
// Errors (sentinel):
//
//	– ErrNoSource       if no source node was given.
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexNotFound if the source node is outside [1, N].
//	– ErrNegativeCycle  if a negative-weight cycle is reachable from the source.
//	– ErrUnderflow      if a distance would fall below math.MinInt64.
package bellmanford

import "errors"

// Sentinel errors returned by BellmanFord.
var (
	// ErrNoSource indicates that no source node was provided.
	ErrNoSource = errors.New("bellmanford: source node is not set")

	// ErrNilGraph indicates that a nil *graph.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the source node does not exist in the graph.
	ErrVertexNotFound = errors.New("bellmanford: source node not found in graph")

	// ErrNegativeCycle indicates that distances were still shrinking after N
	// rounds, i.e. a cycle of negative total weight is reachable from the source.
	// No distances are returned alongside it.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle detected")

	// ErrUnderflow indicates a relaxation whose exact sum lies below
	// math.MinInt64. Without a negative cycle this only happens when a true
	// distance is itself below that bound. No distances are returned.
	ErrUnderflow = errors.New("bellmanford: distance below math.MinInt64")
)

// Options configures a BellmanFord run.
//
// Source     – starting node id (1..N). 0 means "not set".
// ReturnPath – if true, also return the predecessor slice.
type Options struct {
	Source     int
	ReturnPath bool
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// Source sets the starting node id.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns Options for the given source with no predecessor output.
func DefaultOptions(source int) Options {
	return Options{Source: source}
}
