package wavelet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/cmplxs"
)

// NewDB3 creates a transformer using the DB3 wavelet.
// levels of 0 decomposes each signal as deeply as its length allows.
func NewDB3(levels int) (*Transformer, error) {
	return New(&Config{
		Wavelet: DB3.Name,
		Levels:  levels,
	})
}

// NewWithWavelet creates a transformer for a named wavelet.
func NewWithWavelet(name string, levels int) (*Transformer, error) {
	return New(&Config{
		Wavelet: name,
		Levels:  levels,
	})
}

// NewMultiChannel creates a transformer that processes channels in parallel.
func NewMultiChannel(name string, levels int) (*Transformer, error) {
	return New(&Config{
		Wavelet:        name,
		Levels:         levels,
		EnableParallel: true,
	})
}

// RoundTrip decomposes signal with the named wavelet and reconstructs it to
// the original length. It is mainly useful for checking how faithfully a
// wavelet reconstructs.
func RoundTrip(signal []complex128, name string, levels int) ([]complex128, error) {
	bank, err := NewFilterBank(name)
	if err != nil {
		return nil, err
	}
	tr, err := Decompose(signal, bank, levels)
	if err != nil {
		return nil, err
	}
	out, err := Reconstruct(tr, bank)
	if err != nil {
		return nil, err
	}
	return tr.Trim(out), nil
}

// MaxAbsError returns the largest |a[i]-b[i]|. Slices of different lengths
// have an infinite error.
func MaxAbsError(a, b []complex128) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	return cmplxs.Distance(a, b, math.Inf(1))
}

// SNR returns the signal-to-noise ratio in dB of test against reference.
// Identical signals give +Inf; slices of different lengths give -Inf.
func SNR(reference, test []complex128) float64 {
	if len(reference) != len(test) {
		return math.Inf(-1)
	}
	noise := cmplxs.Distance(reference, test, 2)
	if noise == 0 {
		return math.Inf(1)
	}
	signal := cmplxs.Norm(reference, 2)
	return decibelMultiplier * math.Log10((signal*signal)/(noise*noise))
}

// DeinterleaveChannels splits interleaved samples into per-channel complex
// signals with zero imaginary parts.
func DeinterleaveChannels(interleaved []float64, channels int) ([][]complex128, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: channel count must be positive", ErrInvalidArgument)
	}
	if len(interleaved)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not divide into %d channels",
			ErrInvalidArgument, len(interleaved), channels)
	}

	frames := len(interleaved) / channels
	out := make([][]complex128, channels)
	for ch := range out {
		out[ch] = make([]complex128, frames)
	}
	for i, v := range interleaved {
		out[i%channels][i/channels] = complex(v, 0)
	}
	return out, nil
}

// InterleaveChannels merges the real parts of equal-length channels into one
// interleaved slice.
func InterleaveChannels(channels [][]complex128) ([]float64, error) {
	if len(channels) == 0 {
		return nil, nil
	}
	frames := len(channels[0])
	for ch, c := range channels {
		if len(c) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d samples, expected %d",
				ErrInvalidArgument, ch, len(c), frames)
		}
	}

	out := make([]float64, frames*len(channels))
	for ch, c := range channels {
		for i, v := range c {
			out[i*len(channels)+ch] = real(v)
		}
	}
	return out, nil
}
