// Package engine implements the convolution kernels behind the wavelet filter
// banks: full linear convolution, convolution fused with dyadic decimation,
// zero-insertion upsampling and an FFT convolver for long filters.
//
// Complex signals are split into real and imaginary planes so that every output
// sample becomes two SIMD dot products between a contiguous run of the
// time-reversed filter and a contiguous run of the plane.
package engine

import (
	"errors"
	"slices"

	"github.com/tphakala/go-wavelet/internal/mathutil"
	"github.com/tphakala/go-wavelet/internal/simdops"
	"gonum.org/v1/gonum/cmplxs"
)

// Kernel errors.
var (
	// ErrEmptyInput indicates a zero-length signal.
	ErrEmptyInput = errors.New("empty input signal")

	// ErrEmptyFilter indicates a zero-length filter.
	ErrEmptyFilter = errors.New("empty filter")
)

// tapRange returns the inclusive range of filter taps k that contribute to
// full-convolution output n, i.e. those with 0 <= n-k < sigLen.
func tapRange(n, sigLen, filterLen int) (lo, hi int) {
	return max(0, n-sigLen+1), min(n, filterLen-1)
}

// convolveStride evaluates full-convolution outputs 0, stride, 2*stride, ...
// into dst. reversed is the filter in reverse order.
//
// For output n the taps k in [lo, hi] pair filter[k] with signal[n-k]. In the
// reversed filter those taps occupy reversed[K-1-hi : K-lo], which lines up
// element for element with signal[n-hi : n-lo+1].
func convolveStride(ops *simdops.Ops, dst, signal, reversed []float64, stride int) {
	sigLen, k := len(signal), len(reversed)
	for i := range dst {
		n := i * stride
		lo, hi := tapRange(n, sigLen, k)
		if lo > hi {
			dst[i] = 0
			continue
		}
		dst[i] = ops.DotProductUnsafe(reversed[k-1-hi:k-lo], signal[n-hi:n-lo+1])
	}
}

// FullLength returns the length of the full linear convolution of a signal of
// length n with a filter of length k.
func FullLength(n, k int) int {
	if n == 1 {
		return 1
	}
	return n + k - 1
}

// SubsampledLength returns the length produced by ConvolveAndSubsample.
func SubsampledLength(n, k int) int {
	if n == 1 {
		return 1
	}
	return mathutil.CeilHalf(n + k - 1)
}

// subsampleFilter pads the filter with one trailing zero when the full
// convolution length is odd, so the decimated output covers every even index.
func subsampleFilter(sigLen int, filter []float64) []float64 {
	if (sigLen+len(filter)-1)%decimationFactor != 0 {
		return mathutil.PadRight(filter, 1)
	}
	return filter
}

func checkInputs(signal []complex128, filter []float64) error {
	if len(signal) == 0 {
		return ErrEmptyInput
	}
	if len(filter) == 0 {
		return ErrEmptyFilter
	}
	return nil
}

// Convolve computes the full linear convolution of a complex signal with a
// real filter. The result has length len(signal)+len(filter)-1, except that a
// single-sample signal is returned unchanged.
func Convolve(signal []complex128, filter []float64) ([]complex128, error) {
	if err := checkInputs(signal, filter); err != nil {
		return nil, err
	}
	if len(signal) == 1 {
		return slices.Clone(signal), nil
	}

	return convolveComplex(signal, mathutil.Reversed(filter), len(signal)+len(filter)-1, 1), nil
}

// ConvolveAndSubsample computes the full convolution of signal and filter and
// keeps only its even-indexed samples, without materializing the odd ones.
//
// If len(signal)+len(filter)-1 is odd the filter is first extended with one
// zero tap. The result has length ceil((len(signal)+len(filter)-1)/2); a
// single-sample signal is returned unchanged.
func ConvolveAndSubsample(signal []complex128, filter []float64) ([]complex128, error) {
	if err := checkInputs(signal, filter); err != nil {
		return nil, err
	}
	if len(signal) == 1 {
		return slices.Clone(signal), nil
	}

	padded := subsampleFilter(len(signal), filter)
	outLen := (len(signal) + len(padded) - 1) / decimationFactor
	return convolveComplex(signal, mathutil.Reversed(padded), outLen, decimationFactor), nil
}

func convolveComplex(signal []complex128, reversed []float64, outLen, stride int) []complex128 {
	re, im := SplitPlanes(signal)
	outRe := make([]float64, outLen)
	outIm := make([]float64, outLen)

	ops := simdops.Float64Ops()
	convolveStride(ops, outRe, re, reversed, stride)
	convolveStride(ops, outIm, im, reversed, stride)

	return MergePlanes(outRe, outIm)
}

// Upsample inserts a zero after every sample: out[2i] = s[i], out[2i+1] = 0.
func Upsample(signal []complex128) []complex128 {
	out := make([]complex128, len(signal)*decimationFactor)
	for i, v := range signal {
		out[i*decimationFactor] = v
	}
	return out
}

// SplitPlanes returns the real and imaginary parts of s as separate slices.
func SplitPlanes(s []complex128) (re, im []float64) {
	re = cmplxs.Real(make([]float64, len(s)), s)
	im = cmplxs.Imag(make([]float64, len(s)), s)
	return re, im
}

// MergePlanes builds a complex slice from matching real and imaginary planes.
func MergePlanes(re, im []float64) []complex128 {
	return cmplxs.Complex(make([]complex128, len(re)), re, im)
}
