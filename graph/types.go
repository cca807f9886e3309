// SPDX-License-Identifier: MIT
// Package: shortpath/graph
//
// types.go - Edge, Graph, sentinel errors and the unreachable sentinel.

package graph

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNegativeNodeCount indicates New was asked for a graph with fewer than zero nodes.
	ErrNegativeNodeCount = errors.New("graph: node count must be non-negative")

	// ErrTooManyNodes indicates New was asked for more than MaxNodes nodes.
	ErrTooManyNodes = errors.New("graph: node count exceeds MaxNodes")

	// ErrInvalidNode indicates an edge endpoint or a query id outside [1, N].
	ErrInvalidNode = errors.New("graph: node id out of range")

	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("graph: graph is nil")
)

// Unreachable is the distance reported for a node that has no path from the
// source. It is shared by dijkstra, bellmanford and johnson.
const Unreachable int64 = math.MaxInt64

// MaxNodes is the largest N New accepts. It leaves room for the extra node of
// WithVirtualSource and keeps every id inside int32.
const MaxNodes = math.MaxInt32 - 1

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// From is the tail node id.
	From int

	// To is the head node id.
	To int

	// Weight is the signed cost of traversing the edge.
	Weight int64
}

// Graph is a directed weighted multigraph over node ids 1..N.
//
// adj[v] holds v's outgoing edges in insertion order; adj[0] is always empty.
// A Graph is filled by a single goroutine and only read afterwards; it holds
// no lock, so AddEdge must not race with anything.
type Graph struct {
	nodes     int
	edgeCount int
	adj       [][]Edge
}
