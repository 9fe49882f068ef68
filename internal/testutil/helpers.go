// Package testutil provides reusable test helper functions for wavelet tests.
package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-10
	RoundTripTolerance = 1e-9
	TableTolerance     = 1e-3 // Four-digit coefficient tables
)

// AssertComplexInDelta verifies that two complex slices have equal length and
// that every pair of elements is within delta in both components.
func AssertComplexInDelta(t *testing.T, expected, actual []complex128, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, real(expected[i]), real(actual[i]), delta,
			"real part differs at i=%d: expected %v, got %v", i, expected[i], actual[i]) {
			return false
		}
		if !assert.InDelta(t, imag(expected[i]), imag(actual[i]), delta,
			"imaginary part differs at i=%d: expected %v, got %v", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []complex128, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if cmplx.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is NaN", i), msgAndArgs...)
		}
		if cmplx.IsInf(v) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is Inf", i), msgAndArgs...)
		}
	}
	return true
}

// AssertRealValued verifies that every imaginary part is within tolerance of zero.
func AssertRealValued(t *testing.T, s []complex128, tolerance float64) bool {
	t.Helper()
	for i, v := range s {
		if math.Abs(imag(v)) > tolerance {
			return assert.Fail(t, "imaginary part not zero",
				"s[%d]=%v exceeds tolerance %e", i, v, tolerance)
		}
	}
	return true
}

// Sine returns n samples of a sine wave completing cycles periods.
func Sine(n int, cycles float64) []complex128 {
	s := make([]complex128, n)
	for i := range s {
		s[i] = complex(math.Sin(2*math.Pi*cycles*float64(i)/float64(n)), 0)
	}
	return s
}

// Chirp returns n complex samples whose frequency rises linearly.
// Both components are populated so complex handling is exercised.
func Chirp(n int) []complex128 {
	s := make([]complex128, n)
	for i := range s {
		x := float64(i) / float64(n)
		phase := 2 * math.Pi * (3*x + 5*x*x)
		s[i] = complex(math.Cos(phase), 0.5*math.Sin(phase))
	}
	return s
}
