package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
// Complexity: O(1). Never panics.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Any sign is accepted: negative constant weights are how negative cycles
// are built on purpose.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [lo, hi] inclusive.
// Panics if hi < lo or if the interval is wider than MaxInt64.
// If rng is nil, yields lo.
// Complexity: O(1).
func UniformWeightFn(lo, hi int64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 || span > math.MaxInt64 {
		panic(fmt.Sprintf("UniformWeightFn: interval [%d,%d] too wide", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || span == 1 {
			return lo
		}

		return lo + rng.Int63n(int64(span))
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev), rounded to
// the nearest integer and clipped to [-MaxInt64, MaxInt64-1] so the result
// never collides with graph.Unreachable. Panics if stddev < 0.
// If rng is nil, yields round(mean).
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) int64 {
		sample := mean
		if rng != nil {
			sample = rng.NormFloat64()*stddev + mean
		}

		return clampRound(sample)
	}
}

// ExponentialWeightFn returns a WeightFn sampling from an exponential
// distribution with rate λ (mean 1/λ), rounded. Panics if rate ≤ 0.
// If rng is nil, yields DefaultEdgeWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return clampRound(rng.ExpFloat64() / rate)
	}
}

// clampRound rounds x and clips it into the int64 range usable as a weight.
func clampRound(x float64) int64 {
	const (
		hi = float64(math.MaxInt64 - 1)
		lo = -float64(math.MaxInt64)
	)
	x = math.Round(x)
	switch {
	case x >= hi:
		return math.MaxInt64 - 1
	case x <= lo:
		return -math.MaxInt64
	}

	return int64(x)
}
