package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	wavelet "github.com/tphakala/go-wavelet"
)

// wavInput holds a fully decoded WAV file.
type wavInput struct {
	sampleRate int
	channels   int
	bitDepth   int
	format     *audio.Format
	data       []int // Interleaved PCM samples
}

// readWAV opens, validates and decodes a whole WAV file.
func readWAV(path string, verbose bool) (*wavInput, error) {
	// Open input file
	inputFile, err := os.Open(path) //nolint:gosec // User-provided path is expected for CLI tool
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = inputFile.Close() }()

	// Create WAV decoder
	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	// Read format info
	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)
	if !supportedBitDepth(bitDepth) {
		return nil, fmt.Errorf("unsupported bit depth %d in %s", bitDepth, path)
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	if len(buf.Data) == 0 {
		return nil, fmt.Errorf("no audio data in %s", path)
	}

	return &wavInput{
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   bitDepth,
		format:     format,
		data:       buf.Data,
	}, nil
}

// writeWAV encodes interleaved samples with the format of in.
func writeWAV(path string, in *wavInput, data []int) (err error) {
	// Create output file
	outputFile, err := os.Create(path) //nolint:gosec // User-provided path is expected for CLI tool
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	// Close output, capturing close errors on success path
	defer func() {
		if closeErr := outputFile.Close(); err == nil {
			err = closeErr
		}
	}()

	encoder := wav.NewEncoder(outputFile, in.sampleRate, in.bitDepth, in.channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: in.channels, SampleRate: in.sampleRate},
		Data:           data,
		SourceBitDepth: in.bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	// Close finalizes the WAV header sizes
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

func supportedBitDepth(bitDepth int) bool {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return true
	default:
		return false
	}
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// normalize converts PCM integers to floats in [-1.0, 1.0].
func normalize(data []int, bitDepth int) []float64 {
	invMaxVal := 1.0 / getMaxValue(bitDepth)
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v) * invMaxVal
	}
	return out
}

// denormalize converts floats back to PCM integers, clamping to full scale.
func denormalize(samples []float64, bitDepth int) []int {
	maxVal := getMaxValue(bitDepth)
	out := make([]int, len(samples))
	for i, sample := range samples {
		// Clamp to [-1.0, 1.0] and convert
		if sample > 1.0 {
			sample = 1.0
		} else if sample < -1.0 {
			sample = -1.0
		}
		out[i] = int(math.Round(sample * maxVal))
	}
	return out
}

// thresholdTransforms applies hard thresholding to every transform and
// returns the total coefficient count and the number of coefficients zeroed.
func thresholdTransforms(transforms []*wavelet.Transform, threshold float64) (coefficients, zeroed int) {
	for _, tr := range transforms {
		coefficients += tr.Size()
		if threshold > 0 {
			zeroed += tr.Threshold(threshold)
		}
	}
	return coefficients, zeroed
}

// worstSNR returns the lowest per-channel SNR of restored against original.
func worstSNR(original, restored [][]complex128) float64 {
	worst := math.Inf(1)
	for ch := range original {
		worst = math.Min(worst, wavelet.SNR(original[ch], restored[ch]))
	}
	return worst
}
