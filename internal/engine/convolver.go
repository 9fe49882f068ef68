package engine

import (
	"github.com/tphakala/simd/cpu"
)

// Convolver is one implementation of the filter-bank kernels.
// Implementations are stateless and safe for concurrent use.
type Convolver interface {
	// Convolve computes the full linear convolution of signal and filter.
	Convolve(signal []complex128, filter []float64) ([]complex128, error)

	// ConvolveAndSubsample computes the even-indexed samples of the full
	// linear convolution of signal and filter.
	ConvolveAndSubsample(signal []complex128, filter []float64) ([]complex128, error)

	// Name identifies the implementation.
	Name() string
}

// Direct evaluates convolutions in the time domain with SIMD dot products.
type Direct struct{}

// Convolve implements Convolver.
func (Direct) Convolve(signal []complex128, filter []float64) ([]complex128, error) {
	return Convolve(signal, filter)
}

// ConvolveAndSubsample implements Convolver.
func (Direct) ConvolveAndSubsample(signal []complex128, filter []float64) ([]complex128, error) {
	return ConvolveAndSubsample(signal, filter)
}

// Name implements Convolver.
func (Direct) Name() string { return "direct" }

// FFT evaluates convolutions in the frequency domain.
type FFT struct{}

// Convolve implements Convolver.
func (FFT) Convolve(signal []complex128, filter []float64) ([]complex128, error) {
	return ConvolveFFT(signal, filter)
}

// ConvolveAndSubsample implements Convolver.
func (FFT) ConvolveAndSubsample(signal []complex128, filter []float64) ([]complex128, error) {
	return ConvolveAndSubsampleFFT(signal, filter)
}

// Name implements Convolver.
func (FFT) Name() string { return "fft" }

// ForFilterLength picks the faster convolver for a filter of length k.
func ForFilterLength(k int) Convolver {
	if k >= MinFilterForFFT {
		return FFT{}
	}
	return Direct{}
}

// SIMDInfo describes the SIMD instruction set used by the direct kernels.
func SIMDInfo() string {
	return cpu.Info()
}
