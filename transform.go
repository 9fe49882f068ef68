package wavelet

import (
	"fmt"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/cmplxs"
)

// Transform stores the bands of a multi-level decomposition.
//
// Bands[0] is the coarsest approximation. Bands[i] for i >= 1 is a detail
// band; Bands[Levels()] is the finest and Bands[1] the coarsest. SignalLen is
// the length of the decomposed signal, or 0 when unknown.
type Transform struct {
	Bands     [][]complex128
	SignalLen int
}

// Levels returns the number of detail bands.
func (t *Transform) Levels() int {
	if len(t.Bands) == 0 {
		return 0
	}
	return len(t.Bands) - 1
}

// Approximation returns the coarsest approximation band.
func (t *Transform) Approximation() []complex128 {
	if len(t.Bands) == 0 {
		return nil
	}
	return t.Bands[0]
}

// Detail returns detail band i, 1 <= i <= Levels().
func (t *Transform) Detail(i int) ([]complex128, error) {
	if i < 1 || i > t.Levels() {
		return nil, fmt.Errorf("%w: detail band %d out of range 1-%d", ErrInvalidArgument, i, t.Levels())
	}
	return t.Bands[i], nil
}

// Size returns the total number of coefficients stored.
func (t *Transform) Size() int {
	size := 0
	for _, b := range t.Bands {
		size += len(b)
	}
	return size
}

// SparseSize returns the number of non-zero coefficients.
func (t *Transform) SparseSize() int {
	count := 0
	for _, b := range t.Bands {
		count += cmplxs.Count(func(v complex128) bool { return v != 0 }, b)
	}
	return count
}

// Threshold applies hard thresholding to the detail bands: coefficients with
// magnitude below threshold are set to zero. The approximation is kept. It
// returns the number of coefficients zeroed.
func (t *Transform) Threshold(threshold float64) int {
	zeroed := 0
	for _, band := range t.Bands[min(1, len(t.Bands)):] {
		for i, v := range band {
			if v != 0 && cmplx.Abs(v) < threshold {
				band[i] = 0
				zeroed++
			}
		}
	}
	return zeroed
}

// Energy returns the squared L2 norm of every band, in band order.
func (t *Transform) Energy() []float64 {
	energy := make([]float64, len(t.Bands))
	for i, b := range t.Bands {
		n := cmplxs.Norm(b, 2)
		energy[i] = n * n
	}
	return energy
}

// Clone returns a deep copy of the transform.
func (t *Transform) Clone() *Transform {
	bands := make([][]complex128, len(t.Bands))
	for i, b := range t.Bands {
		bands[i] = slices.Clone(b)
	}
	return &Transform{Bands: bands, SignalLen: t.SignalLen}
}

// Trim cuts a signal restored by Reconstruct to SignalLen, dropping the
// trailing sample that stands for the zero after an even-length signal. The
// signal is returned unchanged when SignalLen is unknown or not shorter.
func (t *Transform) Trim(signal []complex128) []complex128 {
	if t.SignalLen > 0 && len(signal) > t.SignalLen {
		return slices.Clip(signal[:t.SignalLen])
	}
	return signal
}

func (t *Transform) bandLengths() []int {
	lengths := make([]int, len(t.Bands))
	for i, b := range t.Bands {
		lengths[i] = len(b)
	}
	return lengths
}
