package pipeline

// Cascade constants
const (
	// defaultStageCapacity is the initial capacity for the stages slice.
	defaultStageCapacity = 8
)
