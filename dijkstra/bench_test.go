package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// BenchmarkDijkstra_RandomSparse measures one single-source run on a seeded
// random graph with ~5% density.
func BenchmarkDijkstra_RandomSparse(b *testing.B) {
	const N = 2000
	g, err := builder.BuildGraph(N,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightRange(1, 100)},
		builder.RandomSparse(0.05),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(N + g.EdgeCount()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPaths(g, 1)
	}
}

// BenchmarkDijkstra_Path runs on a long chain, the worst case for heap depth churn.
func BenchmarkDijkstra_Path(b *testing.B) {
	const N = 100000
	g, err := builder.BuildGraph(N, nil, builder.Path())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPaths(g, 1)
	}
}
