package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var errNoSamples = errors.New("no samples found")

// readSignalFile reads a signal from a text file, see parseSignal.
func readSignalFile(path string) ([]complex128, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided path is expected for CLI tool
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	signal, err := parseSignal(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return signal, nil
}

// parseSignal reads one sample per line. A line holds either a single value
// in Go complex syntax ("1.5", "2-0.5i", "(1+2i)") or a real and an imaginary
// part separated by whitespace. Blank lines and lines starting with '#' are
// skipped.
func parseSignal(r io.Reader) ([]complex128, error) {
	var signal []complex128
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		v, err := parseSample(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		signal = append(signal, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(signal) == 0 {
		return nil, errNoSamples
	}
	return signal, nil
}

func parseSample(line string) (complex128, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		return strconv.ParseComplex(fields[0], 128)
	case 2:
		re, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, err
		}
		im, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return 0, err
		}
		return complex(re, im), nil
	default:
		return 0, fmt.Errorf("expected 1 or 2 fields, got %d", len(fields))
	}
}

// printBand writes band coefficients, all of them when full is set and a
// short preview otherwise.
func printBand(w io.Writer, band []complex128, full bool) {
	n := len(band)
	if !full {
		n = min(n, bandPreviewLen)
	}
	for _, v := range band[:n] {
		if imag(v) == 0 {
			_, _ = fmt.Fprintf(w, "  %.6g\n", real(v))
		} else {
			_, _ = fmt.Fprintf(w, "  %.6g\n", v)
		}
	}
	if n < len(band) {
		_, _ = fmt.Fprintf(w, "  ... %d more\n", len(band)-n)
	}
}
