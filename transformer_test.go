package wavelet

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-wavelet/internal/testutil"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"named wavelet", Config{Wavelet: "db3", Levels: 3}, false},
		{"custom filter", Config{Filter: []float64{0.5, 0.5}}, false},
		{"max levels per signal", Config{Wavelet: "haar"}, false},
		{"fft method", Config{Wavelet: "db4", Method: MethodFFT, MaxWorkers: 2}, false},
		{"neither wavelet nor filter", Config{Levels: 1}, true},
		{"both wavelet and filter", Config{Wavelet: "db2", Filter: []float64{1, 1}}, true},
		{"unknown wavelet", Config{Wavelet: "morlet"}, true},
		{"odd filter", Config{Filter: []float64{0.25, 0.5, 0.25}}, false},
		{"single tap filter", Config{Filter: []float64{1}}, true},
		{"negative levels", Config{Wavelet: "db2", Levels: -1}, true},
		{"too many levels", Config{Wavelet: "db2", Levels: 33}, true},
		{"unknown method", Config{Wavelet: "db2", Method: Method(7)}, true},
		{"negative workers", Config{Wavelet: "db2", MaxWorkers: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range []Method{MethodAuto, MethodDirect, MethodFFT} {
		parsed, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	parsed, err := ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, MethodAuto, parsed)

	_, err = ParseMethod("winograd")
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, "Method(9)", Method(9).String())
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(&Config{Wavelet: "nope"})
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, ErrUnknownWavelet)

	tr, err := New(&Config{Wavelet: "DB1", Levels: 2})
	require.NoError(t, err)
	info := tr.GetInfo()
	assert.Equal(t, "haar", info.Wavelet)
	assert.Equal(t, 2, info.FilterLength)
	assert.Equal(t, 2, info.Levels)
	assert.False(t, info.Parallel)
	assert.NotEmpty(t, info.Method)
	assert.NotEmpty(t, info.SIMDType)
}

func TestNew_CustomFilter(t *testing.T) {
	filter := []float64{0.5, 0.5}
	tr, err := New(&Config{Filter: filter, Levels: 1})
	require.NoError(t, err)
	filter[0] = 9

	assert.Equal(t, customWaveletName, tr.GetInfo().Wavelet)
	assert.Equal(t, []float64{0.5, 0.5}, tr.Bank().LoD, "config filter must be copied")

	bank := tr.Bank()
	bank.LoD[0] = 42
	assert.InDelta(t, 0.5, tr.Bank().LoD[0], 0, "Bank must return a copy")
}

func TestTransformer_MatchesPackageFunctions(t *testing.T) {
	tr, err := NewDB3(2)
	require.NoError(t, err)
	bank := mustBank(t, "db3")
	signal := testutil.Sine(64, 3)

	got, err := tr.Decompose(signal)
	require.NoError(t, err)
	want, err := Decompose(signal, bank, 2)
	require.NoError(t, err)
	assert.Equal(t, want.bandLengths(), got.bandLengths())
	for i := range want.Bands {
		testutil.AssertComplexInDelta(t, want.Bands[i], got.Bands[i], 1e-12, "band %d", i)
	}

	out, err := tr.Reconstruct(got)
	require.NoError(t, err)
	testutil.AssertComplexInDelta(t, signal, out, testutil.TableTolerance)

	// The package function keeps the sample after the even-length signal.
	full, err := Reconstruct(want, bank)
	require.NoError(t, err)
	require.Len(t, full, len(signal)+1)
	testutil.AssertComplexInDelta(t, want.Trim(full), out, 1e-12)

	approx, detail, err := tr.DWT(sinusoid8)
	require.NoError(t, err)
	single, err := tr.IDWT(approx, detail)
	require.NoError(t, err)
	assert.Len(t, single, 9)
}

func TestTransformer_AutoLevels(t *testing.T) {
	tr, err := NewWithWavelet("haar", 0)
	require.NoError(t, err)

	for _, n := range []int{2, 9, 64, 100} {
		transform, err := tr.Decompose(make([]complex128, n))
		require.NoError(t, err)
		assert.Equal(t, MaxLevels(n), transform.Levels(), "N=%d", n)

		plan, err := tr.Plan(n)
		require.NoError(t, err)
		assert.Len(t, plan, MaxLevels(n))
	}
}

// TestTransformer_MethodsAgree tests that direct and FFT convolution give the
// same decomposition.
func TestTransformer_MethodsAgree(t *testing.T) {
	signal := testutil.Chirp(300)

	direct, err := New(&Config{Wavelet: "db4", Levels: 4, Method: MethodDirect})
	require.NoError(t, err)
	fft, err := New(&Config{Wavelet: "db4", Levels: 4, Method: MethodFFT})
	require.NoError(t, err)
	assert.Equal(t, "direct", direct.GetInfo().Method)
	assert.Equal(t, "fft", fft.GetInfo().Method)

	want, err := direct.Decompose(signal)
	require.NoError(t, err)
	got, err := fft.Decompose(signal)
	require.NoError(t, err)

	require.Equal(t, want.bandLengths(), got.bandLengths())
	for i := range want.Bands {
		testutil.AssertComplexInDelta(t, want.Bands[i], got.Bands[i], 1e-9, "band %d", i)
	}

	out, err := fft.Reconstruct(got)
	require.NoError(t, err)
	assert.LessOrEqual(t, MaxAbsError(signal, out), 1e-9)
}

func TestTransformer_Statistics(t *testing.T) {
	tr, err := NewWithWavelet("db2", 1)
	require.NoError(t, err)

	transform, err := tr.Decompose(make([]complex128, 10))
	require.NoError(t, err)
	_, err = tr.Reconstruct(transform)
	require.NoError(t, err)
	_, err = tr.Decompose(nil)
	require.Error(t, err)

	stats := tr.Statistics()
	assert.Equal(t, uint64(1), stats["decomposed"])
	assert.Equal(t, uint64(1), stats["reconstructed"])
	assert.Equal(t, uint64(10), stats["samples_in"])
	assert.Equal(t, uint64(10), stats["samples_out"])
	assert.Equal(t, uint64(transform.Size()), stats["coefficients"])
	assert.Equal(t, uint64(1), stats["failures"])

	tr.ResetStatistics()
	for key, v := range tr.Statistics() {
		assert.Zero(t, v, key)
	}
}

// TestDecomposeMultiParallel tests that parallel processing produces the same
// bands as sequential processing.
func TestDecomposeMultiParallel(t *testing.T) {
	const (
		channels   = 4
		numSamples = 1000
	)

	// Use different phases for each channel so they are processed independently
	input := make([][]complex128, channels)
	for ch := range channels {
		input[ch] = make([]complex128, numSamples)
		phase := float64(ch) * math.Pi / 4
		for i := range numSamples {
			input[ch][i] = complex(math.Sin(2*math.Pi*float64(i)/50+phase), 0)
		}
	}

	seq, err := New(&Config{Wavelet: "db4", Levels: 5})
	if err != nil {
		t.Fatalf("Failed to create sequential transformer: %v", err)
	}
	par, err := New(&Config{Wavelet: "db4", Levels: 5, EnableParallel: true, MaxWorkers: 2})
	if err != nil {
		t.Fatalf("Failed to create parallel transformer: %v", err)
	}

	outputSeq, err := seq.DecomposeMulti(input)
	if err != nil {
		t.Fatalf("Sequential DecomposeMulti failed: %v", err)
	}
	outputPar, err := par.DecomposeMulti(input)
	if err != nil {
		t.Fatalf("Parallel DecomposeMulti failed: %v", err)
	}

	if len(outputSeq) != len(outputPar) {
		t.Fatalf("Channel count mismatch: seq=%d, par=%d", len(outputSeq), len(outputPar))
	}

	for ch := range channels {
		// Bit-exact: both paths run the same kernel on the same data
		assert.Equal(t, outputSeq[ch], outputPar[ch], "channel %d", ch)
	}

	restored, err := par.ReconstructMulti(outputPar)
	if err != nil {
		t.Fatalf("Parallel ReconstructMulti failed: %v", err)
	}
	for ch := range channels {
		if e := MaxAbsError(input[ch], restored[ch]); e > testutil.RoundTripTolerance {
			t.Errorf("Channel %d round-trip error %g", ch, e)
		}
	}
}

// TestDecomposeMultiChannelIndependence verifies channels are processed independently.
func TestDecomposeMultiChannelIndependence(t *testing.T) {
	tr, err := NewMultiChannel("db2", 3)
	require.NoError(t, err)

	input := [][]complex128{
		make([]complex128, 256), // Silent channel
		testutil.Sine(256, 8),
	}

	output, err := tr.DecomposeMulti(input)
	require.NoError(t, err)
	require.Len(t, output, 2)

	assert.Equal(t, 0, output[0].SparseSize(), "silent channel must stay silent")
	assert.Positive(t, output[1].SparseSize())
}

func TestDecomposeMulti_ReportsChannel(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		tr, err := New(&Config{Wavelet: "db2", Levels: 3, EnableParallel: parallel})
		require.NoError(t, err)

		input := [][]complex128{make([]complex128, 64), make([]complex128, 4)}
		_, err = tr.DecomposeMulti(input)
		require.ErrorIs(t, err, ErrTooManyLevels)
		assert.Contains(t, err.Error(), "channel 1")
	}
}

func TestDecomposeMultiContext_Cancelled(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		tr, err := New(&Config{Wavelet: "haar", Levels: 1, EnableParallel: parallel})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		input := [][]complex128{{1, 2}, {3, 4}, {5, 6}}
		_, err = tr.DecomposeMultiContext(ctx, input)
		require.ErrorIs(t, err, context.Canceled)

		_, err = tr.ReconstructMultiContext(ctx, []*Transform{{}, {}})
		require.ErrorIs(t, err, context.Canceled)
	}
}

func TestDecomposeMulti_Empty(t *testing.T) {
	tr, err := NewMultiChannel("haar", 1)
	require.NoError(t, err)

	out, err := tr.DecomposeMulti(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
