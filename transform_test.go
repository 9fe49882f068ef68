package wavelet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func haarTransform(t *testing.T) *Transform {
	t.Helper()
	tr, err := Decompose([]complex128{1, 2, 3, 4}, mustBank(t, "haar"), 1)
	require.NoError(t, err)
	return tr
}

func TestTransform_Accessors(t *testing.T) {
	tr := haarTransform(t)

	assert.Equal(t, 1, tr.Levels())
	assert.Equal(t, 6, tr.Size())
	assert.Equal(t, tr.Bands[0], tr.Approximation())

	detail, err := tr.Detail(1)
	require.NoError(t, err)
	assert.Equal(t, tr.Bands[1], detail)

	for _, i := range []int{0, 2, -1} {
		_, err := tr.Detail(i)
		require.ErrorIs(t, err, ErrInvalidArgument, "Detail(%d)", i)
	}

	empty := &Transform{}
	assert.Equal(t, 0, empty.Levels())
	assert.Nil(t, empty.Approximation())
	assert.Equal(t, 0, empty.Size())
}

// TestTransform_Energy tests that the Haar bands of a short ramp hold all of
// its energy.
func TestTransform_Energy(t *testing.T) {
	energy := haarTransform(t).Energy()

	require.Len(t, energy, 2)
	assert.InDelta(t, 21.0, energy[0], 1e-12)
	assert.InDelta(t, 9.0, energy[1], 1e-12)
	assert.InDelta(t, 30.0, energy[0]+energy[1], 1e-12)
}

func TestTransform_Threshold(t *testing.T) {
	tr := haarTransform(t)
	approx := append([]complex128(nil), tr.Bands[0]...)

	assert.Equal(t, 6, tr.SparseSize())
	zeroed := tr.Threshold(1)
	assert.Equal(t, 2, zeroed)
	assert.Equal(t, 4, tr.SparseSize())
	assert.Equal(t, approx, tr.Bands[0], "approximation must be kept")
	assert.Equal(t, complex128(0), tr.Bands[1][0])
	assert.Equal(t, complex128(0), tr.Bands[1][1])
	assert.NotEqual(t, complex128(0), tr.Bands[1][2])

	assert.Equal(t, 0, tr.Threshold(1), "already zeroed coefficients are not counted again")
	assert.Equal(t, 0, (&Transform{}).Threshold(1))
}

// TestTransform_ThresholdReconstruct tests that dropping small details still
// reconstructs a signal of the original length close to the input.
func TestTransform_ThresholdReconstruct(t *testing.T) {
	bank := mustBank(t, "db4")
	signal := make([]complex128, 128)
	for i := range signal {
		signal[i] = complex(float64(i%32)/32, 0)
	}

	tr, err := Decompose(signal, bank, 4)
	require.NoError(t, err)
	tr.Threshold(1e-6)

	out, err := Reconstruct(tr, bank)
	require.NoError(t, err)
	out = tr.Trim(out)
	require.Len(t, out, len(signal))
	assert.Less(t, MaxAbsError(signal, out), 1e-4)
}

func TestTransform_Trim(t *testing.T) {
	signal := []complex128{1, 2, 3, 4, 5}

	tests := []struct {
		name      string
		signalLen int
		expected  []complex128
	}{
		{"drops trailing sample", 4, []complex128{1, 2, 3, 4}},
		{"exact length", 5, signal},
		{"unknown length", 0, signal},
		{"longer than signal", 6, signal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &Transform{SignalLen: tt.signalLen}
			got := tr.Trim(signal)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, len(got), cap(got))
		})
	}
}

func TestTransform_Clone(t *testing.T) {
	tr := haarTransform(t)
	c := tr.Clone()

	assert.Equal(t, tr, c)
	c.Bands[0][0] = 99
	c.SignalLen = 1
	assert.NotEqual(t, complex128(99), tr.Bands[0][0])
	assert.Equal(t, 4, tr.SignalLen)
}
