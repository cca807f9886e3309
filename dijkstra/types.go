// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:           id of the starting node (must lie in [1, N]).
//	– ReturnPath:       if true, return the predecessor slice for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this stay unreachable.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– TrustedWeights:   skip the O(E) negative-weight pre-scan (caller guarantees w >= 0).
//
// Errors (sentinel):
//
//	– ErrNoSource        if no source node was given.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source node is outside [1, N].
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//	– ErrNoPath          if PathTo is asked for an unreachable target.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source node was provided (Source option missing or 0).
	ErrNoSource = errors.New("dijkstra: source node is not set")

	// ErrNilGraph indicates that a nil *graph.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source node does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates PathTo was asked for a target without a recorded path.
	ErrNoPath = errors.New("dijkstra: no path to target")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node id (1..N). 0 means "not set".
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – optional cap on distances to explore (nodes beyond stay Unreachable).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
//
// TrustedWeights   – skip the negative-weight pre-scan. Only for callers that have
//
//	already proven every weight non-negative (johnson does this once per graph).
type Options struct {
	Source           int   // The id of the source node
	ReturnPath       bool  // Whether to return the predecessor slice
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold at or above which edges are non-traversable
	TrustedWeights   bool  // Skip the O(E) negative-weight scan
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node id.
// Must be called to specify where distances are measured from.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
// If not set (default), the predecessor slice is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold on zero or negative.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithTrustedWeights skips the negative-weight pre-scan.
// Running on a graph that does contain a negative edge then yields undefined distances.
func WithTrustedWeights() Option {
	return func(o *Options) {
		o.TrustedWeights = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source node id.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - ReturnPath:       false.
//   - MaxDistance:      math.MaxInt64 (no distance limit).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
//   - TrustedWeights:   false (every run scans for negative weights).
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		TrustedWeights:   false,
	}
}
