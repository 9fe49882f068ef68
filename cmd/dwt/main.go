package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	wavelet "github.com/tphakala/go-wavelet"
)

func main() {
	// Command-line flags
	var (
		name    = flag.String("wavelet", defaultWavelet, "Wavelet: haar, db1, db2, db3, db4")
		levels  = flag.Int("levels", defaultLevels, "Decomposition levels (0 = maximum for the signal)")
		method  = flag.String("method", "auto", "Convolution method: auto, direct, fft")
		input   = flag.String("input", "", "Text file with one complex sample per line (default: test sine)")
		dump    = flag.Bool("dump", false, "Print every coefficient instead of a preview")
		demo    = flag.Bool("demo", false, "Run a demonstration")
		verbose = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	m, err := wavelet.ParseMethod(*method)
	if err != nil {
		log.Fatalf("Invalid method: %v", err)
	}

	t, err := wavelet.New(&wavelet.Config{
		Wavelet: *name,
		Levels:  *levels,
		Method:  m,
	})
	if err != nil {
		log.Fatalf("Failed to create transformer: %v", err)
	}

	signal := generateTestSignal(testSignalSamples, testSignalCycles)
	if *input != "" {
		if signal, err = readSignalFile(*input); err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
	}

	info := t.GetInfo()
	fmt.Printf("Transformer created:\n")
	fmt.Printf("  Wavelet: %s (%d taps)\n", info.Wavelet, info.FilterLength)
	fmt.Printf("  Method: %s\n", info.Method)
	fmt.Printf("  SIMD: %s\n", info.SIMDType)

	if *verbose {
		plan, err := t.Plan(len(signal))
		if err != nil {
			log.Fatalf("Invalid level count: %v", err)
		}
		for _, p := range plan {
			log.Printf("level for band %d: %d -> %d samples", p.Band, p.InputLen, p.OutputLen)
		}
	}

	tr, err := t.Decompose(signal)
	if err != nil {
		log.Fatalf("Decomposition failed: %v", err)
	}

	fmt.Printf("\nInput samples: %d\n", len(signal))
	fmt.Printf("Levels: %d\n", tr.Levels())
	energy := tr.Energy()
	for i, band := range tr.Bands {
		kind := "detail"
		if i == 0 {
			kind = "approximation"
		}
		fmt.Printf("Band %d (%s): %d coefficients, energy %.6g\n", i, kind, len(band), energy[i])
		printBand(os.Stdout, band, *dump)
	}

	restored, err := t.Reconstruct(tr)
	if err != nil {
		log.Fatalf("Reconstruction failed: %v", err)
	}
	fmt.Printf("\nReconstructed samples: %d\n", len(restored))
	fmt.Printf("Max abs error: %.3g\n", wavelet.MaxAbsError(signal, restored))
	fmt.Printf("SNR: %.1f dB\n", wavelet.SNR(signal, restored))
}

func generateTestSignal(samples int, cycles float64) []complex128 {
	signal := make([]complex128, samples)
	omega := 2 * math.Pi * cycles / float64(samples)

	for i := range signal {
		signal[i] = complex(math.Sin(omega*float64(i)), 0)
	}

	return signal
}

func runDemo() {
	fmt.Println("=== Go Wavelet Library Demo ===")

	// Demo 1: Reconstruction accuracy per wavelet
	fmt.Println("1. Reconstruction Accuracy")
	fmt.Println("--------------------------")

	signal := generateTestSignal(demoSignalSamples, testSignalCycles)
	for _, name := range wavelet.Wavelets() {
		w, err := wavelet.Lookup(name)
		if err != nil || w.Name != name {
			continue // Skip aliases
		}

		restored, err := wavelet.RoundTrip(signal, name, demoMaxLevels)
		if err != nil {
			fmt.Printf("  %s: Error - %v\n", name, err)
			continue
		}
		fmt.Printf("  %s: %d taps, max error %.2e, SNR %.1f dB\n",
			name, len(w.Coefficients), wavelet.MaxAbsError(signal, restored), wavelet.SNR(signal, restored))
	}

	// Demo 2: Band layout
	fmt.Println("\n2. Band Layout")
	fmt.Println("--------------")

	for _, n := range []int{8, 9, 64, demoSignalSamples} {
		levels := min(wavelet.MaxLevels(n), defaultLevels)
		lengths, err := wavelet.BandLengths(n, len(wavelet.DB3.Coefficients), levels)
		if err != nil {
			fmt.Printf("  N=%d: Error - %v\n", n, err)
			continue
		}
		fmt.Printf("  N=%d, db3, %d levels: %v\n", n, levels, lengths)
	}

	// Demo 3: Multi-channel processing
	fmt.Println("\n3. Multi-channel Processing")
	fmt.Println("---------------------------")

	t, err := wavelet.NewMultiChannel(wavelet.DB4.Name, demoMaxLevels)
	if err != nil {
		fmt.Printf("  Error - %v\n", err)
		return
	}
	channels := make([][]complex128, stereoChannels)
	for ch := range channels {
		channels[ch] = generateTestSignal(demoSignalSamples, float64(ch+1)*testSignalCycles)
	}
	transforms, err := t.DecomposeMulti(channels)
	if err != nil {
		fmt.Printf("  Error - %v\n", err)
		return
	}
	for ch, tr := range transforms {
		fmt.Printf("  Channel %d: %d bands, %d coefficients\n", ch, len(tr.Bands), tr.Size())
	}

	fmt.Println("\n=== Demo Complete ===")
}
