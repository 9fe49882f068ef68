package filter

const (
	// minTaps is the shortest filter that can form a two-channel bank.
	minTaps = 2

	// defaultResponsePoints is the number of frequency points evaluated when
	// the caller does not specify one.
	defaultResponsePoints = 512

	// dbMultiplier converts a magnitude ratio to decibels (20*log10).
	dbMultiplier = 20.0

	// minMagnitude avoids log(0) in MagnitudeDB.
	minMagnitude = 1e-10
)
