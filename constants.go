package wavelet

// Transform constants
const (
	upsampleFactor = 2  // Dyadic zero-insertion factor of the synthesis stage
	maxLevels      = 32 // Upper bound accepted for Config.Levels
)

// Naming constants
const (
	customWaveletName = "custom" // Info.Wavelet for user-supplied filters
)

// Metric constants
const (
	decibelMultiplier = 10.0 // 10*log10 for power ratios
)
