package graph_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/graph"
)

func TestNew_NegativeCount(t *testing.T) {
	_, err := graph.New(-1)
	require.ErrorIs(t, err, graph.ErrNegativeNodeCount)
}

func TestNew_TooManyNodes(t *testing.T) {
	for _, n := range []int{graph.MaxNodes + 1, math.MaxInt} {
		g, err := graph.New(n)
		require.ErrorIs(t, err, graph.ErrTooManyNodes, "n=%d", n)
		require.Nil(t, g)
	}
}

func TestNew_Empty(t *testing.T) {
	g, err := graph.New(0)
	require.NoError(t, err)
	require.Equal(t, 0, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())
	require.Empty(t, g.Edges())
}

func TestAddEdge_InvalidNode(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	for _, tc := range []struct {
		name     string
		from, to int
	}{
		{"zero tail", 0, 1},
		{"zero head", 1, 0},
		{"tail past N", 4, 1},
		{"head past N", 1, 4},
		{"negative", -2, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.from, tc.to, 1)
			require.True(t, errors.Is(err, graph.ErrInvalidNode), "got %v", err)
		})
	}
	require.Equal(t, 0, g.EdgeCount(), "rejected edges must not be stored")
}

func TestEdgesFrom_InsertionOrderAndMultiEdges(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 3, 5))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 2)) // parallel edge kept
	require.NoError(t, g.AddEdge(2, 2, 0)) // self-loop kept

	es, err := g.EdgesFrom(1)
	require.NoError(t, err)
	require.Equal(t, []graph.Edge{
		{From: 1, To: 3, Weight: 5},
		{From: 1, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 2},
	}, es)

	es, err = g.EdgesFrom(3)
	require.NoError(t, err)
	require.Empty(t, es)

	_, err = g.EdgesFrom(4)
	require.ErrorIs(t, err, graph.ErrInvalidNode)

	require.Equal(t, 4, g.EdgeCount())
	require.Len(t, g.Edges(), 4)
}

func TestFromEdges(t *testing.T) {
	g, err := graph.FromEdges(3, []graph.Edge{
		{From: 1, To: 2, Weight: 4},
		{From: 2, To: 3, Weight: -2},
	})
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())

	_, err = graph.FromEdges(2, []graph.Edge{{From: 1, To: 3, Weight: 1}})
	require.ErrorIs(t, err, graph.ErrInvalidNode)
}

func TestHasNegativeWeight(t *testing.T) {
	g, err := graph.FromEdges(3, []graph.Edge{
		{From: 1, To: 2, Weight: 4},
		{From: 3, To: 1, Weight: -1},
		{From: 2, To: 3, Weight: -2},
	})
	require.NoError(t, err)

	e, ok := g.HasNegativeWeight()
	require.True(t, ok)
	require.Equal(t, graph.Edge{From: 2, To: 3, Weight: -2}, e, "first in node order")

	g2, err := graph.FromEdges(2, []graph.Edge{{From: 1, To: 2, Weight: 0}})
	require.NoError(t, err)
	_, ok = g2.HasNegativeWeight()
	require.False(t, ok)
}

func TestReweighted_LeavesOriginalUntouched(t *testing.T) {
	g, err := graph.FromEdges(3, []graph.Edge{
		{From: 1, To: 2, Weight: 4},
		{From: 2, To: 3, Weight: -2},
		{From: 1, To: 3, Weight: 5},
	})
	require.NoError(t, err)

	h := []int64{0, 0, -1, -3}
	rw := g.Reweighted(func(v int) int64 { return h[v] })

	require.Equal(t, []graph.Edge{
		{From: 1, To: 2, Weight: 4 + 0 - (-1)},
		{From: 1, To: 3, Weight: 5 + 0 - (-3)},
		{From: 2, To: 3, Weight: -2 + (-1) - (-3)},
	}, rw.Edges())

	require.Equal(t, []graph.Edge{
		{From: 1, To: 2, Weight: 4},
		{From: 1, To: 3, Weight: 5},
		{From: 2, To: 3, Weight: -2},
	}, g.Edges())
	require.Equal(t, g.EdgeCount(), rw.EdgeCount())
}

func TestReweighted_ClampsInsteadOfWrapping(t *testing.T) {
	g, err := graph.FromEdges(3, []graph.Edge{
		{From: 1, To: 3, Weight: math.MaxInt64 - 1},
		{From: 1, To: 2, Weight: math.MaxInt64 - 1},
		{From: 2, To: 3, Weight: math.MinInt64 + 1},
	})
	require.NoError(t, err)

	h := []int64{0, 0, math.MinInt64, -5}
	rw := g.Reweighted(func(v int) int64 { return h[v] })

	require.Equal(t, []graph.Edge{
		{From: 1, To: 3, Weight: graph.Unreachable},
		{From: 1, To: 2, Weight: graph.Unreachable},
		{From: 2, To: 3, Weight: math.MinInt64},
	}, rw.Edges())
}

func TestAddSub(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c int64
		want    int64
		over    int
	}{
		{"small", 4, -1, -3, 6, 0},
		{"exact max", math.MaxInt64 - 1, 0, -1, math.MaxInt64, 0},
		{"above", math.MaxInt64 - 1, 0, -5, 0, 1},
		{"below", math.MinInt64 + 1, math.MinInt64, -5, 0, -1},
		{"order does not matter", math.MaxInt64, 5, 10, math.MaxInt64 - 5, 0},
		{"subtract min", -1, 0, math.MinInt64, math.MaxInt64, 0},
		{"subtract min overflows", 0, 0, math.MinInt64, 0, 1},
		{"exact min", math.MinInt64 + 3, -3, 0, math.MinInt64, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, over := graph.AddSub(tc.a, tc.b, tc.c)
			require.Equal(t, tc.over, over)
			if over == 0 {
				require.Equal(t, tc.want, got)
			}
		})
	}

	require.Equal(t, graph.Unreachable, graph.Saturate(graph.Add(math.MaxInt64, 1)))
	require.Equal(t, int64(math.MinInt64), graph.Saturate(graph.Add(math.MinInt64, -1)))
	require.Equal(t, int64(7), graph.Saturate(graph.Add(3, 4)))
}

func TestWithVirtualSource(t *testing.T) {
	g, err := graph.FromEdges(3, []graph.Edge{{From: 1, To: 2, Weight: -4}})
	require.NoError(t, err)

	aug, s := g.WithVirtualSource()
	require.Equal(t, 4, s)
	require.Equal(t, 4, aug.NodeCount())
	require.Equal(t, 4, aug.EdgeCount())

	es, err := aug.EdgesFrom(s)
	require.NoError(t, err)
	require.Equal(t, []graph.Edge{
		{From: 4, To: 1}, {From: 4, To: 2}, {From: 4, To: 3},
	}, es)

	// original is not widened
	require.Equal(t, 3, g.NodeCount())
	require.False(t, g.HasNode(4))
}

func TestClone_IsIndependent(t *testing.T) {
	g, err := graph.FromEdges(2, []graph.Edge{{From: 1, To: 2, Weight: 3}})
	require.NoError(t, err)

	c := g.Clone()
	require.NoError(t, c.AddEdge(2, 1, 9))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, c.EdgeCount())
}

func TestConcurrentReaders(t *testing.T) {
	g, err := graph.New(50)
	require.NoError(t, err)
	for v := 1; v < 50; v++ {
		require.NoError(t, g.AddEdge(v, v+1, int64(v)))
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := 1; v <= 50; v++ {
				_, err := g.EdgesFrom(v)
				require.NoError(t, err)
			}
			_ = g.Reweighted(func(int) int64 { return 0 })
		}()
	}
	wg.Wait()
}

func TestDistances(t *testing.T) {
	d := graph.NewDistances(4)
	require.Equal(t, 4, d.Len())
	_, _, ok := d.Min()
	require.False(t, ok)

	d[2] = 7
	d[3] = -1
	d[4] = -1

	got, ok := d.Get(2)
	require.True(t, ok)
	require.Equal(t, int64(7), got)

	got, ok = d.Get(1)
	require.False(t, ok)
	require.Equal(t, graph.Unreachable, got)

	require.False(t, d.Reachable(0))
	require.False(t, d.Reachable(9))

	v, m, ok := d.Min()
	require.True(t, ok)
	require.Equal(t, 3, v, "ties go to the lowest id")
	require.Equal(t, int64(-1), m)

	c := d.Clone()
	c[2] = 0
	require.Equal(t, int64(7), d[2])
}
