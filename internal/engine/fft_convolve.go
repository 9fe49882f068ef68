package engine

import (
	"errors"
	"slices"

	"github.com/tphakala/go-wavelet/internal/mathutil"
	"github.com/tphakala/simd/c128"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrSignalTooLong indicates a signal longer than the convolver was sized for.
var ErrSignalTooLong = errors.New("signal exceeds convolver capacity")

// FFTConvolver performs full linear convolution of complex signals with a
// fixed real kernel in the frequency domain.
//
// The FFT size is the next power of two that holds the longest linear
// convolution, so the circular product never wraps. The kernel spectrum is
// computed once. An FFTConvolver owns scratch buffers and is not safe for
// concurrent use.
type FFTConvolver struct {
	fft          *fourier.CmplxFFT
	fftSize      int
	kernelLen    int
	maxSignalLen int

	// Precomputed kernel in frequency domain
	kernelFFT []complex128
	scale     float64 // 1/fftSize, gonum's inverse transform is unnormalized

	// Working buffers
	signalBlock []complex128
	signalFFT   []complex128
	productFFT  []complex128
}

// NewFFTConvolver creates a convolver for kernel that accepts signals of up to
// maxSignalLen samples. It returns nil for an empty kernel or a non-positive
// maximum length.
func NewFFTConvolver(kernel []float64, maxSignalLen int) *FFTConvolver {
	kernelLen := len(kernel)
	if kernelLen == 0 || maxSignalLen < 1 {
		return nil
	}

	fftSize := mathutil.NextPowerOfTwo(maxSignalLen + kernelLen - 1)
	fft := fourier.NewCmplxFFT(fftSize)

	kernelPadded := make([]complex128, fftSize)
	for i, h := range kernel {
		kernelPadded[i] = complex(h, 0)
	}
	kernelFFT := fft.Coefficients(nil, kernelPadded)

	return &FFTConvolver{
		fft:          fft,
		fftSize:      fftSize,
		kernelLen:    kernelLen,
		maxSignalLen: maxSignalLen,
		kernelFFT:    kernelFFT,
		scale:        1.0 / float64(fftSize),
		signalBlock:  make([]complex128, fftSize),
		signalFFT:    make([]complex128, fftSize),
		productFFT:   make([]complex128, fftSize),
	}
}

// Size returns the FFT length in use.
func (c *FFTConvolver) Size() int {
	return c.fftSize
}

// Convolve writes the full linear convolution of signal with the kernel into
// dst[:len(signal)+kernelLen-1].
func (c *FFTConvolver) Convolve(dst, signal []complex128) error {
	if len(signal) == 0 {
		return ErrEmptyInput
	}
	if len(signal) > c.maxSignalLen {
		return ErrSignalTooLong
	}
	outLen := len(signal) + c.kernelLen - 1
	if len(dst) < outLen {
		return errShortDst
	}

	clear(c.signalBlock)
	copy(c.signalBlock, signal)

	c.signalFFT = c.fft.Coefficients(c.signalFFT, c.signalBlock)
	c128.Mul(c.productFFT, c.signalFFT, c.kernelFFT)
	c.signalBlock = c.fft.Sequence(c.signalBlock, c.productFFT)

	cmplxs.ScaleRealTo(dst[:outLen], c.scale, c.signalBlock[:outLen])
	return nil
}

var errShortDst = errors.New("destination shorter than convolution output")

// ConvolveFFT computes the same result as Convolve using an FFT sized for
// signal.
func ConvolveFFT(signal []complex128, filter []float64) ([]complex128, error) {
	if err := checkInputs(signal, filter); err != nil {
		return nil, err
	}
	if len(signal) == 1 {
		return slices.Clone(signal), nil
	}

	conv := NewFFTConvolver(filter, len(signal))
	dst := make([]complex128, len(signal)+len(filter)-1)
	if err := conv.Convolve(dst, signal); err != nil {
		return nil, err
	}
	return dst, nil
}

// ConvolveAndSubsampleFFT computes the same result as ConvolveAndSubsample
// by decimating an FFT convolution.
func ConvolveAndSubsampleFFT(signal []complex128, filter []float64) ([]complex128, error) {
	if err := checkInputs(signal, filter); err != nil {
		return nil, err
	}
	if len(signal) == 1 {
		return slices.Clone(signal), nil
	}

	full, err := ConvolveFFT(signal, subsampleFilter(len(signal), filter))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(full)/decimationFactor)
	for i := range out {
		out[i] = full[i*decimationFactor]
	}
	return out, nil
}
