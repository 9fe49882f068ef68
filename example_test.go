package wavelet_test

import (
	"fmt"
	"log"
	"math"

	wavelet "github.com/tphakala/go-wavelet"
)

func sine(n int, cycles float64) []complex128 {
	s := make([]complex128, n)
	for i := range s {
		s[i] = complex(math.Sin(2*math.Pi*cycles*float64(i)/float64(n)), 0)
	}
	return s
}

func ExampleDWT() {
	bank, err := wavelet.NewFilterBank("haar")
	if err != nil {
		log.Fatal(err)
	}

	approx, detail, err := wavelet.DWT([]complex128{1, 2, 3, 4}, bank)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("approximation: %.4f\n", wavelet.ToReal(approx))
	fmt.Printf("detail:        %.4f\n", wavelet.ToReal(detail))

	// Output:
	// approximation: [0.7071 3.5355 2.8284]
	// detail:        [-0.7071 -0.7071 2.8284]
}

func ExampleDecompose() {
	bank, err := wavelet.NewFilterBank("db3")
	if err != nil {
		log.Fatal(err)
	}

	signal := sine(64, 3)
	tr, err := wavelet.Decompose(signal, bank, 3)
	if err != nil {
		log.Fatal(err)
	}
	for i, band := range tr.Bands {
		fmt.Printf("band %d: %d coefficients\n", i, len(band))
	}

	restored, err := wavelet.Reconstruct(tr, bank)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("reconstructed samples:", len(restored))
	restored = tr.Trim(restored)
	fmt.Println("restored samples:", len(restored))
	fmt.Println("max error below 1e-3:", wavelet.MaxAbsError(signal, restored) < 1e-3)

	// Output:
	// band 0: 13 coefficients
	// band 1: 13 coefficients
	// band 2: 20 coefficients
	// band 3: 35 coefficients
	// reconstructed samples: 65
	// restored samples: 64
	// max error below 1e-3: true
}

func ExampleTransformer_DecomposeMulti() {
	t, err := wavelet.New(&wavelet.Config{
		Wavelet:        "db4",
		Levels:         2,
		EnableParallel: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	channels := [][]complex128{sine(32, 1), sine(32, 4)}
	transforms, err := t.DecomposeMulti(channels)
	if err != nil {
		log.Fatal(err)
	}
	restored, err := t.ReconstructMulti(transforms)
	if err != nil {
		log.Fatal(err)
	}

	for ch := range channels {
		fmt.Printf("channel %d: %d bands, SNR above 100 dB: %v\n",
			ch, len(transforms[ch].Bands), wavelet.SNR(channels[ch], restored[ch]) > 100)
	}

	// Output:
	// channel 0: 3 bands, SNR above 100 dB: true
	// channel 1: 3 bands, SNR above 100 dB: true
}

func ExampleBandLengths() {
	lengths, err := wavelet.BandLengths(9, 6, 3)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(lengths)

	// Output:
	// [6 6 6 7]
}
