package mathutil

const (
	l2Norm      = 2 // Norm order passed to floats.Norm
	halfDivisor = 2 // Dyadic decimation factor
)
