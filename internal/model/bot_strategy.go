package model

// Bot strategy constants
const (
	BotStrategyRandom   = "random"
	BotStrategyHunter   = "hunter"
	BotStrategyAdaptive = "adaptive"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyRandom:
		return "Random"
	case BotStrategyHunter:
		return "Hunter"
	case BotStrategyAdaptive:
		return "Adaptive Hunter"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyRandom, BotStrategyHunter, BotStrategyAdaptive}
}
