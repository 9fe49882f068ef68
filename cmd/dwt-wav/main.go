// Command dwt-wav removes low-level detail from WAV audio files by wavelet
// thresholding.
//
// Each channel is decomposed, detail coefficients below the threshold are
// zeroed and the channel is reconstructed.
//
// Usage:
//
//	dwt-wav -threshold 0.001 input.wav output.wav
//	dwt-wav -wavelet db2 -levels 4 -threshold 0.01 input.wav output.wav
//	dwt-wav -parallel=false input.wav output.wav   # Disable parallel processing
//
// With a threshold of zero the file is decomposed and reconstructed
// unchanged, which checks reconstruction accuracy on real material.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"runtime/pprof"
	"slices"
	"time"

	wavelet "github.com/tphakala/go-wavelet"
)

const (
	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// WAV format constants
	wavFormatPCM = 1

	// CLI defaults
	defaultWavelet   = "db4"
	defaultLevels    = 6
	defaultThreshold = 0.0
	minRequiredArgs  = 2
	minSamples       = 2 // Shortest channel that can be decomposed
	percentScale     = 100
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	name := flag.String("wavelet", defaultWavelet, "Wavelet: haar, db2, db3, db4")
	levels := flag.Int("levels", defaultLevels, "Decomposition levels (0 = maximum for the file)")
	threshold := flag.Float64("threshold", defaultThreshold, "Zero detail coefficients below this magnitude (full scale = 1.0)")
	method := flag.String("method", "auto", "Convolution method: auto, direct, fft")
	parallel := flag.Bool("parallel", true, "Enable parallel channel processing (faster for stereo/multichannel)")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	// Validate arguments before setting up profiling
	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -threshold 0.001 in.wav out.wav        # Remove faint detail\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -wavelet haar -levels 3 in.wav out.wav # Round trip with Haar\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	m, err := wavelet.ParseMethod(*method)
	if err != nil {
		return err
	}

	// Start CPU profiling if requested (for PGO)
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	inputPath := args[0]
	outputPath := args[1]

	config := &wavelet.Config{
		Wavelet:        *name,
		Levels:         *levels,
		Method:         m,
		EnableParallel: *parallel,
	}

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Wavelet: %s, levels: %d", *name, *levels)
		log.Printf("Threshold: %g", *threshold)
		if *parallel {
			log.Printf("Parallel: enabled (concurrent channel processing)")
		} else {
			log.Printf("Parallel: disabled (sequential processing)")
		}
	}

	// Process the file
	start := time.Now()
	stats, err := processWAV(inputPath, outputPath, config, *threshold, *verbose)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	// Print summary
	fmt.Printf("Processed %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d channels, %d-bit, %d samples\n",
		stats.sampleRate, stats.channels, stats.bitDepth, stats.samples)
	fmt.Printf("  Coefficients: %d, zeroed: %d (%.1f%%)\n",
		stats.coefficients, stats.zeroed, float64(stats.zeroed)/float64(max(stats.coefficients, 1))*percentScale)
	fmt.Printf("  SNR: %.1f dB\n", stats.snr)
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(),
		float64(stats.samples)/float64(stats.sampleRate)/elapsed.Seconds())

	return nil
}

type processStats struct {
	sampleRate   int
	channels     int
	bitDepth     int
	samples      int
	coefficients int
	zeroed       int
	snr          float64 // Worst channel
}

// processWAV reads a whole WAV file, thresholds the detail bands of every
// channel and writes the reconstruction.
func processWAV(inputPath, outputPath string, config *wavelet.Config, threshold float64, verbose bool) (*processStats, error) {
	// 1. Read and normalize input
	input, err := readWAV(inputPath, verbose)
	if err != nil {
		return nil, err
	}

	channels, err := wavelet.DeinterleaveChannels(normalize(input.data, input.bitDepth), input.channels)
	if err != nil {
		return nil, err
	}
	if len(channels[0]) < minSamples {
		return nil, fmt.Errorf("input has %d samples per channel, need at least %d", len(channels[0]), minSamples)
	}

	// 2. Create transformer
	t, err := wavelet.New(config)
	if err != nil {
		return nil, err
	}
	if verbose {
		info := t.GetInfo()
		log.Printf("Transformer: %s, %d taps, %s convolution, SIMD: %s",
			info.Wavelet, info.FilterLength, info.Method, info.SIMDType)
	}

	// 3. Decompose, threshold and reconstruct
	transforms, err := t.DecomposeMulti(channels)
	if err != nil {
		return nil, fmt.Errorf("decomposition failed: %w", err)
	}
	coefficients, zeroed := thresholdTransforms(transforms, threshold)

	restored, err := t.ReconstructMulti(transforms)
	if err != nil {
		return nil, fmt.Errorf("reconstruction failed: %w", err)
	}

	// 4. Write output
	interleaved, err := wavelet.InterleaveChannels(restored)
	if err != nil {
		return nil, err
	}
	if err := writeWAV(outputPath, input, denormalize(interleaved, input.bitDepth)); err != nil {
		return nil, err
	}

	stats := &processStats{
		sampleRate:   input.sampleRate,
		channels:     input.channels,
		bitDepth:     input.bitDepth,
		samples:      len(channels[0]),
		coefficients: coefficients,
		zeroed:       zeroed,
		snr:          worstSNR(channels, restored),
	}
	if verbose {
		counters := t.Statistics()
		for _, key := range slices.Sorted(maps.Keys(counters)) {
			log.Printf("Statistics: %s = %d", key, counters[key])
		}
	}
	return stats, nil
}
