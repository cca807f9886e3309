// SPDX-License-Identifier: MIT
// Package: shortpath/graph
//
// arith.go - overflow-checked weight arithmetic shared by the algorithms.

package graph

import (
	"math"
	"math/bits"
)

// AddSub returns a + b − c and its overflow direction: 0 when the exact value
// fits in int64, +1 when it lies above math.MaxInt64, −1 when it lies below
// math.MinInt64. On overflow the returned value is the wrapped low word and
// must not be used; pass both results to Saturate instead.
//
// The sum is carried in 128 bits, so the order of the operands never causes a
// spurious overflow.
func AddSub(a, b, c int64) (int64, int) {
	hi, lo := uint64(a>>63), uint64(a)

	var carry uint64
	lo, carry = bits.Add64(lo, uint64(b), 0)
	hi, _ = bits.Add64(hi, uint64(b>>63), carry)
	lo, carry = bits.Sub64(lo, uint64(c), 0)
	hi, _ = bits.Sub64(hi, uint64(c>>63), carry)

	r := int64(lo)
	switch {
	case hi == uint64(r>>63):
		return r, 0
	case int64(hi) < 0:
		return r, -1
	default:
		return r, 1
	}
}

// Add returns a + b with the same overflow report as AddSub.
func Add(a, b int64) (int64, int) {
	return AddSub(a, b, 0)
}

// Saturate clamps an AddSub result: values above the int64 range become
// Unreachable, values below it become math.MinInt64.
func Saturate(v int64, over int) int64 {
	switch {
	case over > 0:
		return Unreachable
	case over < 0:
		return math.MinInt64
	}

	return v
}
