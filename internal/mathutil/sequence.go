// Package mathutil provides sequence helpers shared by the wavelet kernels.
package mathutil

import (
	"errors"
	"math"
	"math/bits"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// ErrZeroNorm is returned when normalizing a sequence whose L2 norm is zero.
var ErrZeroNorm = errors.New("sequence has zero norm")

// Map applies fn to every element of s and returns the results in a new slice.
func Map[S ~[]E, E any, R any](s S, fn func(E) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Reversed returns a reversed copy of s. The input is left untouched.
func Reversed[S ~[]E, E any](s S) S {
	out := slices.Clone(s)
	slices.Reverse(out)
	return out
}

// PadRight returns a copy of s extended with n zero values.
func PadRight[S ~[]E, E any](s S, n int) S {
	if n < 0 {
		n = 0
	}
	out := make(S, len(s)+n)
	copy(out, s)
	return out
}

// Merge combines a and b elementwise with op.
//
// The result has the length of the shorter input. Sequences produced by the
// synthesis branches differ by at most one sample, so the tail of the longer
// one is dropped.
func Merge[S ~[]E, E any](a, b S, op func(x, y E) E) S {
	n := min(len(a), len(b))
	out := make(S, n)
	for i := range n {
		out[i] = op(a[i], b[i])
	}
	return out
}

// Normalize returns s divided by its L2 norm.
func Normalize(s []float64) ([]float64, error) {
	norm := floats.Norm(s, l2Norm)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, ErrZeroNorm
	}
	out := make([]float64, len(s))
	floats.ScaleTo(out, 1/norm, s)
	return out, nil
}

// FloorLog2 returns floor(log2(n)) for n >= 1 and -1 otherwise.
func FloorLog2(n int) int {
	if n < 1 {
		return -1
	}
	return bits.Len(uint(n)) - 1
}

// NextPowerOfTwo returns the smallest power of two that is >= n.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// CeilHalf returns ceil(n/2) for non-negative n.
func CeilHalf(n int) int {
	return (n + 1) / halfDivisor
}

// AllFinite reports whether every element of s is neither NaN nor infinite.
func AllFinite(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
