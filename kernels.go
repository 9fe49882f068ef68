package wavelet

import (
	"github.com/tphakala/go-wavelet/internal/engine"
	"github.com/tphakala/go-wavelet/internal/mathutil"
	"gonum.org/v1/gonum/cmplxs"
)

// Convolve computes the full linear convolution of a complex signal with a
// real filter:
//
//	r[n] = sum_k filter[k] * signal[n-k],  0 <= n < N+K-1
//
// Taps that would index outside the signal are skipped; the signal is not
// padded. A single-sample signal is returned unchanged.
func Convolve(signal []complex128, filter []float64) ([]complex128, error) {
	return engine.Convolve(signal, filter)
}

// ConvolveAndSubsample computes the even-indexed samples of the full
// convolution of signal and filter, ceil((N+K-1)/2) samples in total. When
// N+K-1 is odd the filter is extended with one zero tap first. A
// single-sample signal is returned unchanged.
func ConvolveAndSubsample(signal []complex128, filter []float64) ([]complex128, error) {
	return engine.ConvolveAndSubsample(signal, filter)
}

// ConvolveFFT computes the same result as Convolve in the frequency domain.
// It is faster for long filters.
func ConvolveFFT(signal []complex128, filter []float64) ([]complex128, error) {
	return engine.ConvolveFFT(signal, filter)
}

// Upsample doubles the length of signal by inserting a zero after every
// sample.
func Upsample(signal []complex128) []complex128 {
	return engine.Upsample(signal)
}

// FromReal converts a real signal to a complex one with zero imaginary parts.
func FromReal(signal []float64) []complex128 {
	return mathutil.Map(signal, func(v float64) complex128 { return complex(v, 0) })
}

// ToReal returns the real parts of a complex signal.
func ToReal(signal []complex128) []float64 {
	return cmplxs.Real(make([]float64, len(signal)), signal)
}
