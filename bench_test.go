package wavelet

import (
	"testing"
)

// BenchmarkDecomposeMultiSequential benchmarks sequential multi-channel processing.
func BenchmarkDecomposeMultiSequential(b *testing.B) {
	benchmarkDecomposeMulti(b, false)
}

// BenchmarkDecomposeMultiParallel benchmarks parallel multi-channel processing.
func BenchmarkDecomposeMultiParallel(b *testing.B) {
	benchmarkDecomposeMulti(b, true)
}

func benchmarkDecomposeMulti(b *testing.B, parallel bool) {
	b.Helper()

	const (
		channels   = 2     // Stereo
		numSamples = 44100 // 1 second of audio
	)

	t, err := New(&Config{
		Wavelet:        "db4",
		Levels:         6,
		EnableParallel: parallel,
	})
	if err != nil {
		b.Fatalf("Failed to create transformer: %v", err)
	}

	input := rampChannels(channels, numSamples)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := t.DecomposeMulti(input)
		if err != nil {
			b.Fatalf("DecomposeMulti failed: %v", err)
		}
	}
}

// BenchmarkDecomposeMultiChannels benchmarks parallel processing with varying channel counts.
func BenchmarkDecomposeMultiChannels(b *testing.B) {
	channelCounts := []int{1, 2, 4, 6, 8}

	for _, channels := range channelCounts {
		b.Run(channelName(channels), func(b *testing.B) {
			t, err := NewMultiChannel("db4", 6)
			if err != nil {
				b.Fatalf("Failed to create transformer: %v", err)
			}
			input := rampChannels(channels, 44100)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := t.DecomposeMulti(input); err != nil {
					b.Fatalf("DecomposeMulti failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkRoundTrip benchmarks a full decomposition and reconstruction per wavelet.
func BenchmarkRoundTrip(b *testing.B) {
	for _, name := range []string{"haar", "db2", "db3", "db4"} {
		b.Run(name, func(b *testing.B) {
			bank, err := NewFilterBank(name)
			if err != nil {
				b.Fatal(err)
			}
			signal := rampChannels(1, 4096)[0]

			b.ReportAllocs()
			for b.Loop() {
				tr, err := Decompose(signal, bank, 8)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := Reconstruct(tr, bank); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func rampChannels(channels, numSamples int) [][]complex128 {
	input := make([][]complex128, channels)
	for ch := range channels {
		input[ch] = make([]complex128, numSamples)
		for i := range numSamples {
			input[ch][i] = complex(float64(i)/float64(numSamples), 0) // Simple ramp
		}
	}
	return input
}

func channelName(channels int) string {
	switch channels {
	case 1:
		return "Mono"
	case 2:
		return "Stereo"
	case 4:
		return "Quad"
	case 6:
		return "5.1"
	case 8:
		return "7.1"
	default:
		return "Custom"
	}
}
