package model

// Guessing strategy names
const (
	StrategyFrequency = "frequency"
	StrategyRandom    = "random"
)

// DefaultStrategy is used when a caller does not name one
const DefaultStrategy = StrategyFrequency

// StrategyDisplayName returns a human-readable label for a strategy
func StrategyDisplayName(strategy string) string {
	switch strategy {
	case StrategyFrequency:
		return "Letter frequency"
	case StrategyRandom:
		return "Random"
	default:
		return strategy
	}
}

// ValidStrategies returns all valid strategy names
func ValidStrategies() []string {
	return []string{StrategyFrequency, StrategyRandom}
}
