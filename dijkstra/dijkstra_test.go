// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, basic distances, path reconstruction,
// MaxDistance, InfEdgeThreshold, and edge cases such as single-node and
// self-loop graphs.
package dijkstra_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graph"
)

// mustGraph builds a graph over n nodes from (from, to, weight) triples.
func mustGraph(t testing.TB, n int, edges ...graph.Edge) *graph.Graph {
	t.Helper()
	g, err := graph.FromEdges(n, edges)
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NoSource(t *testing.T) {
	g := mustGraph(t, 2)
	_, _, err := dijkstra.Dijkstra(g)
	if err != dijkstra.ErrNoSource {
		t.Fatalf("Expected ErrNoSource, got %v", err)
	}
}

func TestDijkstra_NilGraphWithoutSource(t *testing.T) {
	// ErrNoSource has priority over ErrNilGraph.
	_, _, err := dijkstra.Dijkstra(nil)
	if err != dijkstra.ErrNoSource {
		t.Fatalf("Expected ErrNoSource when graph is nil and Source is unset, got %v", err)
	}
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source(1))
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := mustGraph(t, 3)
	for _, src := range []int{-1, 4} {
		_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		if !errors.Is(err, dijkstra.ErrVertexNotFound) {
			t.Fatalf("source %d: expected ErrVertexNotFound, got %v", src, err)
		}
	}
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := mustGraph(t, 3, graph.Edge{From: 1, To: 2, Weight: 1}, graph.Edge{From: 2, To: 3, Weight: -5})
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	require.Contains(t, err.Error(), "2→3 weight=-5")
}

func TestDijkstra_BadOptionsPanic(t *testing.T) {
	require.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	require.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
	require.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestShortestPaths_FiveNodes(t *testing.T) {
	// 1→2(1), 2→3(2), 1→3(4), 3→4(1), 2→4(5); node 5 is isolated.
	g := mustGraph(t, 5,
		graph.Edge{From: 1, To: 2, Weight: 1},
		graph.Edge{From: 2, To: 3, Weight: 2},
		graph.Edge{From: 1, To: 3, Weight: 4},
		graph.Edge{From: 3, To: 4, Weight: 1},
		graph.Edge{From: 2, To: 4, Weight: 5},
	)

	dist, err := dijkstra.ShortestPaths(g, 1)
	require.NoError(t, err)

	want := map[int]int64{1: 0, 2: 1, 3: 3, 4: 4}
	for v, w := range want {
		got, ok := dist.Get(v)
		require.True(t, ok, "node %d should be reachable", v)
		require.Equal(t, w, got, "dist[%d]", v)
	}
	require.False(t, dist.Reachable(5))
	require.Equal(t, graph.Unreachable, dist[5])
}

func TestDijkstra_WithPath(t *testing.T) {
	// 1→2(2), 1→3(1), 3→2(1), 2→4(3), 3→4(5)
	g := mustGraph(t, 4,
		graph.Edge{From: 1, To: 2, Weight: 2},
		graph.Edge{From: 1, To: 3, Weight: 1},
		graph.Edge{From: 3, To: 2, Weight: 1},
		graph.Edge{From: 2, To: 4, Weight: 3},
		graph.Edge{From: 3, To: 4, Weight: 5},
	)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, graph.Distances{graph.Unreachable, 0, 2, 1, 5}, dist)
	require.Equal(t, 0, prev[1])

	// Equal-cost routes to 2 exist (1→2 and 1→3→2); the first proposal stays.
	require.Equal(t, 1, prev[2])

	path, err := dijkstra.PathTo(prev, 1, 4)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4}, path)
}

func TestDijkstra_NoPathWithoutReturnPath(t *testing.T) {
	g := mustGraph(t, 2, graph.Edge{From: 1, To: 2, Weight: 1})
	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.NoError(t, err)
	require.Nil(t, prev)
}

func TestPathTo_Errors(t *testing.T) {
	g := mustGraph(t, 3, graph.Edge{From: 1, To: 2, Weight: 1})
	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithReturnPath())
	require.NoError(t, err)

	_, err = dijkstra.PathTo(prev, 1, 3)
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	_, err = dijkstra.PathTo(prev, 1, 9)
	require.ErrorIs(t, err, graph.ErrInvalidNode)

	path, err := dijkstra.PathTo(prev, 1, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, path)
}

func TestDijkstra_ParallelEdgesTakeCheapest(t *testing.T) {
	g := mustGraph(t, 2,
		graph.Edge{From: 1, To: 2, Weight: 9},
		graph.Edge{From: 1, To: 2, Weight: 4},
		graph.Edge{From: 1, To: 2, Weight: 6},
	)
	dist, err := dijkstra.ShortestPaths(g, 1)
	require.NoError(t, err)
	require.Equal(t, int64(4), dist[2])
}

// ------------------------------------------------------------------------
// 3. MaxDistance and InfEdgeThreshold
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	// Chain 1→2→3→4, unit weights.
	g := mustGraph(t, 4,
		graph.Edge{From: 1, To: 2, Weight: 1},
		graph.Edge{From: 2, To: 3, Weight: 1},
		graph.Edge{From: 3, To: 4, Weight: 1},
	)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	require.Equal(t, int64(0), dist[1])
	require.Equal(t, int64(1), dist[2])
	require.False(t, dist.Reachable(3))
	require.False(t, dist.Reachable(4))

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	require.Equal(t, int64(0), dist[1])
	require.False(t, dist.Reachable(2))
}

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	// 1→2(2), 2→3(4), 1→3(10); threshold 5 hides 1→3.
	g := mustGraph(t, 3,
		graph.Edge{From: 1, To: 2, Weight: 2},
		graph.Edge{From: 2, To: 3, Weight: 4},
		graph.Edge{From: 1, To: 3, Weight: 10},
	)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	require.Equal(t, int64(6), dist[3])

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	require.False(t, dist.Reachable(2))
	require.False(t, dist.Reachable(3))
}

func TestDijkstra_TrustedWeightsSkipsScan(t *testing.T) {
	// With the scan skipped a negative edge is not reported; the result is
	// whatever the greedy pass produces, which here happens to be exact.
	g := mustGraph(t, 2, graph.Edge{From: 1, To: 2, Weight: -3})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithTrustedWeights())
	require.NoError(t, err)
	require.Equal(t, int64(-3), dist[2])
}

// ------------------------------------------------------------------------
// 4. Edge Cases: single node, self-loop, overflow guard.
// ------------------------------------------------------------------------

func TestDijkstra_SingleNode(t *testing.T) {
	g := mustGraph(t, 1)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, int64(0), dist[1])
	require.Equal(t, 0, prev[1])
}

func TestDijkstra_SelfLoop(t *testing.T) {
	g := mustGraph(t, 1, graph.Edge{From: 1, To: 1, Weight: 0})
	dist, err := dijkstra.ShortestPaths(g, 1)
	require.NoError(t, err)
	require.Equal(t, int64(0), dist[1])
}

func TestDijkstra_HugeWeightsDoNotOverflow(t *testing.T) {
	g := mustGraph(t, 3,
		graph.Edge{From: 1, To: 2, Weight: graph.Unreachable - 1},
		graph.Edge{From: 2, To: 3, Weight: 10},
	)
	dist, err := dijkstra.ShortestPaths(g, 1)
	require.NoError(t, err)
	require.Equal(t, graph.Unreachable-1, dist[2])
	require.False(t, dist.Reachable(3), "sum past the sentinel is dropped, not wrapped")
}

func TestDijkstra_ExtremeWeights(t *testing.T) {
	half := int64(math.MaxInt64 / 2)
	tests := []struct {
		name  string
		edges []graph.Edge
		want  []int64 // distances of nodes 1..3 from node 1
	}{
		{
			name:  "two halves make max minus one",
			edges: []graph.Edge{{From: 1, To: 2, Weight: half}, {From: 2, To: 3, Weight: half}},
			want:  []int64{0, half, math.MaxInt64 - 1},
		},
		{
			name:  "sum reaching the sentinel",
			edges: []graph.Edge{{From: 1, To: 2, Weight: half}, {From: 2, To: 3, Weight: half + 1}},
			want:  []int64{0, half, graph.Unreachable},
		},
		{
			name:  "sentinel weight",
			edges: []graph.Edge{{From: 1, To: 2, Weight: graph.Unreachable}},
			want:  []int64{0, graph.Unreachable, graph.Unreachable},
		},
		{
			name:  "cheaper detour beside a huge edge",
			edges: []graph.Edge{{From: 1, To: 3, Weight: math.MaxInt64 - 1}, {From: 1, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 1}},
			want:  []int64{0, 1, 2},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, 3, tc.edges...)
			dist, err := dijkstra.ShortestPaths(g, 1)
			require.NoError(t, err)
			require.Equal(t, tc.want, []int64(dist[1:]))
		})
	}

	g := mustGraph(t, 2, graph.Edge{From: 1, To: 2, Weight: math.MinInt64})
	_, err := dijkstra.ShortestPaths(g, 1)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

// ------------------------------------------------------------------------
// 5. Properties: idempotence and agreement with Bellman–Ford.
// ------------------------------------------------------------------------

func TestDijkstra_Idempotent(t *testing.T) {
	g, err := builder.BuildGraph(40,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightRange(0, 20)},
		builder.RandomSparse(0.1),
	)
	require.NoError(t, err)

	a, err := dijkstra.ShortestPaths(g, 1)
	require.NoError(t, err)
	b, err := dijkstra.ShortestPaths(g, 1)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestDijkstra_AgreesWithBellmanFord(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 20; round++ {
		n := 2 + rng.Intn(30)
		g, err := builder.BuildGraph(n,
			[]builder.BuilderOption{builder.WithSeed(rng.Int63()), builder.WithWeightRange(0, 50)},
			builder.RandomSparse(0.15),
		)
		require.NoError(t, err)

		src := 1 + rng.Intn(n)
		want, err := bellmanford.ShortestPaths(g, src)
		require.NoError(t, err)
		got, err := dijkstra.ShortestPaths(g, src)
		require.NoError(t, err)
		require.Equal(t, want, got, "round %d n=%d src=%d", round, n, src)
	}
}
