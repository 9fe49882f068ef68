package engine

// Export internal functions for testing.
// This file uses the _test.go suffix so it's only included in test builds.

// ExportedTapRange wraps tapRange for testing
func ExportedTapRange(n, sigLen, filterLen int) (lo, hi int) {
	return tapRange(n, sigLen, filterLen)
}

// ExportedSubsampleFilter wraps subsampleFilter for testing
func ExportedSubsampleFilter(sigLen int, filter []float64) []float64 {
	return subsampleFilter(sigLen, filter)
}
