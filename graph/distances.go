// SPDX-License-Identifier: MIT
// Package: shortpath/graph
//
// distances.go - the single-source result shared by every algorithm.

package graph

// Distances holds one shortest-path result indexed by node id. Index 0 is
// reserved and always Unreachable. Nodes without a path hold Unreachable.
//
// A Distances value returned by an algorithm is owned by the caller and is
// never touched again by the algorithm.
type Distances []int64

// NewDistances returns a result for nodes 1..n with every entry Unreachable.
// Complexity: O(n).
func NewDistances(n int) Distances {
	d := make(Distances, n+1)
	for i := range d {
		d[i] = Unreachable
	}

	return d
}

// Len returns N, the highest node id covered.
func (d Distances) Len() int {
	if len(d) == 0 {
		return 0
	}

	return len(d) - 1
}

// Get returns the distance to v and whether v is reachable.
// Ids outside [1, N] are reported as unreachable.
func (d Distances) Get(v int) (int64, bool) {
	if v < 1 || v >= len(d) || d[v] == Unreachable {
		return Unreachable, false
	}

	return d[v], true
}

// Reachable reports whether a path to v was found.
func (d Distances) Reachable(v int) bool {
	_, ok := d.Get(v)
	return ok
}

// Min returns the reachable node with the smallest distance. Ties go to the
// lowest id. ok is false when no node is reachable.
// Complexity: O(N).
func (d Distances) Min() (v int, dist int64, ok bool) {
	dist = Unreachable
	for i := 1; i < len(d); i++ {
		if d[i] < dist {
			v, dist, ok = i, d[i], true
		}
	}

	return v, dist, ok
}

// Clone returns an independent copy of d.
func (d Distances) Clone() Distances {
	if d == nil {
		return nil
	}
	out := make(Distances, len(d))
	copy(out, d)

	return out
}
