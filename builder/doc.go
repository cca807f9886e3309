// Package builder generates deterministic graph.Graph fixtures for tests,
// benchmarks and the command-line demo.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(n, opts, cons...): creates nodes 1..n and applies every
//     Constructor in order. Constructors compose: their edges accumulate.
//   - Topologies (Constructor factories):
//     – Path, Cycle, Star, Complete, Grid(rows, cols), RandomSparse(p).
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: the RNG used by RandomSparse and by weight draws.
//     – WithWeightFn, WithConstWeight, WithWeightRange.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     constant DefaultEdgeWeight.
//     – ConstantWeightFn:    fixed value of any sign.
//     – UniformWeightFn:     uniform over [lo, hi], negative bounds allowed.
//     – NormalWeightFn:      Gaussian N(mean, stddev), rounded.
//     – ExponentialWeightFn: Exp(rate), rounded.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical
//     edge lists, edge for edge.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed) wrapped
//     with the constructor name; they never panic.
//
// Example:
//
//	g, err := builder.BuildGraph(100,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightRange(-2, 20)},
//	    builder.RandomSparse(0.05),
//	    builder.Path(),
//	)
package builder
