package main

// Default command-line flag values
const (
	defaultWavelet = "db3"
	defaultLevels  = 3
)

// Test signal parameters
const (
	testSignalSamples = 64 // Default test signal length
	testSignalCycles  = 3  // Sine periods across the test signal
)

// Demo settings
const (
	demoSignalSamples = 1000
	demoMaxLevels     = 6
	stereoChannels    = 2
)

// Output formatting
const (
	bandPreviewLen = 8 // Coefficients printed per band without -dump
)
