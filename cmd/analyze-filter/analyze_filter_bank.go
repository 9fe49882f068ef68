package main

import (
	"fmt"
	"os"

	wavelet "github.com/tphakala/go-wavelet"
	"github.com/tphakala/go-wavelet/internal/filter"
)

const (
	// Frequency response sampling
	responsePoints = 512 // Points between DC and Nyquist
	responseStride = 64  // Print every Nth point

	// Display limits
	tapsPerLine = 4
)

func main() {
	// Analyze the named wavelets, or every built-in one
	names := os.Args[1:]
	if len(names) == 0 {
		for _, name := range wavelet.Wavelets() {
			if w, err := wavelet.Lookup(name); err == nil && w.Name == name {
				names = append(names, name) // Skip aliases
			}
		}
	}

	for _, name := range names {
		if err := analyze(name); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func analyze(name string) error {
	w, err := wavelet.Lookup(name)
	if err != nil {
		return err
	}
	bank, err := filter.FromCoefficients(w.Coefficients)
	if err != nil {
		return err
	}

	fmt.Printf("=== Analyzing Filter Bank: %s ===\n", w.Name)
	fmt.Printf("Filter bank info:\n")
	fmt.Printf("  Taps: %d\n", bank.Len())
	printTaps("LoD", bank.LoD)
	printTaps("HiD", bank.HiD)
	printTaps("LoR", bank.LoR)
	printTaps("HiR", bank.HiR)

	fmt.Printf("\nDC gain (sqrt(2) for an orthogonal bank): %.10f\n", bank.DCGain())
	fmt.Printf("Orthogonality error: %.3e\n", bank.OrthogonalityError())
	fmt.Printf("Power complementarity error: %.3e\n",
		filter.PowerComplementarityError(bank, responsePoints))

	lo := filter.FrequencyResponse(bank.LoD, responsePoints)
	hi := filter.FrequencyResponse(bank.HiD, responsePoints)

	fmt.Println("\nFrequency response (0.5 = Nyquist):")
	fmt.Println("  Freq      Low-pass dB   High-pass dB")
	for k := 0; k < responsePoints; k += responseStride {
		fmt.Printf("  %.4f  %12.3f  %13.3f\n",
			lo.Frequencies[k], filter.MagnitudeDB(lo.Magnitude[k]), filter.MagnitudeDB(hi.Magnitude[k]))
	}
	fmt.Println()
	return nil
}

func printTaps(label string, taps []float64) {
	fmt.Printf("  %s:", label)
	for i, v := range taps {
		if i > 0 && i%tapsPerLine == 0 {
			fmt.Printf("\n      ")
		}
		fmt.Printf(" %+.10f", v)
	}
	fmt.Println()
}
