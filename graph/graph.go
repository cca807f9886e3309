// SPDX-License-Identifier: MIT
// Package: shortpath/graph
//
// graph.go - construction, edge enumeration and derived copies.
//
// Determinism:
//   - EdgesFrom preserves insertion order; Edges walks tails 1..N.
//   - Reweighted / WithVirtualSource / Clone preserve that order on the copy.
// Concurrency:
//   - Build with AddEdge from one goroutine, then share freely; readers never lock.
//   - Derived copies are brand-new graphs; the receiver is never mutated.

package graph

import "fmt"

// New returns an empty graph over nodes 1..n.
// Returns ErrNegativeNodeCount for n < 0 and ErrTooManyNodes for n > MaxNodes.
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeNodeCount, n)
	}
	if n > MaxNodes {
		return nil, fmt.Errorf("%w: n=%d, max %d", ErrTooManyNodes, n, MaxNodes)
	}

	return &Graph{
		nodes: n,
		adj:   make([][]Edge, n+1), // slot 0 reserved
	}, nil
}

// FromEdges builds a graph over nodes 1..n from a list of edges, in order.
// It stops at the first edge with an endpoint outside [1, n].
// Complexity: O(n + len(edges)).
func FromEdges(n int, edges []Edge) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graph: edge #%d: %w", i, err)
		}
	}

	return g, nil
}

// NodeCount returns N, the highest valid node id.
func (g *Graph) NodeCount() int {
	return g.nodes
}

// EdgeCount returns the number of edges added so far, parallel edges included.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// HasNode reports whether v lies in [1, N].
func (g *Graph) HasNode(v int) bool {
	return v >= 1 && v <= g.nodes
}

// AddEdge appends the edge from→to with weight w to from's outgoing list.
// Parallel edges and self-loops are kept as-is.
// Returns ErrInvalidNode if either endpoint is outside [1, N].
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, w int64) error {
	if !g.HasNode(from) || !g.HasNode(to) {
		return fmt.Errorf("%w: edge %d→%d with N=%d", ErrInvalidNode, from, to, g.nodes)
	}

	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Weight: w})
	g.edgeCount++

	return nil
}

// EdgesFrom returns v's outgoing edges in insertion order.
//
// The returned slice is a view into the graph's storage; callers must treat it
// as read-only. Returns ErrInvalidNode if v is outside [1, N].
// Complexity: O(1).
func (g *Graph) EdgesFrom(v int) ([]Edge, error) {
	if !g.HasNode(v) {
		return nil, fmt.Errorf("%w: node %d with N=%d", ErrInvalidNode, v, g.nodes)
	}

	return g.adj[v], nil
}

// Edges returns a fresh slice holding every edge, grouped by tail in ascending
// node order and in insertion order within a tail.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for v := 1; v <= g.nodes; v++ {
		out = append(out, g.adj[v]...)
	}

	return out
}

// HasNegativeWeight returns the first edge (in Edges order) whose weight is
// negative, and true if one exists.
// Complexity: O(V + E).
func (g *Graph) HasNegativeWeight() (Edge, bool) {
	var e Edge
	for v := 1; v <= g.nodes; v++ {
		for _, e = range g.adj[v] {
			if e.Weight < 0 {
				return e, true
			}
		}
	}

	return Edge{}, false
}

// Reweighted returns a new graph in which every edge (u, v, w) becomes
// (u, v, w + h(u) − h(v)). The receiver is untouched.
//
// h is called once per edge endpoint and must be defined for every node id in
// [1, N]. With h taken from shortest distances out of a virtual source, every
// reweighted edge is non-negative.
//
// The sum is computed exactly and then clamped with Saturate: a weight that
// would pass the sentinel becomes Unreachable, which no search relaxes.
// Complexity: O(V + E).
func (g *Graph) Reweighted(h func(v int) int64) *Graph {
	return g.derive(g.nodes, func(e Edge) Edge {
		e.Weight = Saturate(AddSub(e.Weight, h(e.From), h(e.To)))
		return e
	})
}

// WithVirtualSource returns a copy of g with one extra node N+1 and a
// zero-weight edge from it to every original node (in ascending order).
// The extra node's id is returned alongside the copy.
// Complexity: O(V + E).
func (g *Graph) WithVirtualSource() (*Graph, int) {
	s := g.nodes + 1
	aug := g.derive(s, nil)
	aug.adj[s] = make([]Edge, 0, g.nodes)
	for v := 1; v <= g.nodes; v++ {
		aug.adj[s] = append(aug.adj[s], Edge{From: s, To: v})
	}
	aug.edgeCount += g.nodes

	return aug, s
}

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.derive(g.nodes, nil)
}

// derive copies g's edges into a new graph over n ≥ g.nodes nodes, passing
// each edge through fn when fn is non-nil.
func (g *Graph) derive(n int, fn func(Edge) Edge) *Graph {
	out := &Graph{
		nodes:     n,
		edgeCount: g.edgeCount,
		adj:       make([][]Edge, n+1),
	}
	var i int
	for v := 1; v <= g.nodes; v++ {
		if len(g.adj[v]) == 0 {
			continue
		}
		out.adj[v] = make([]Edge, len(g.adj[v]))
		copy(out.adj[v], g.adj[v])
		if fn == nil {
			continue
		}
		for i = range out.adj[v] {
			out.adj[v][i] = fn(out.adj[v][i])
		}
	}

	return out
}
