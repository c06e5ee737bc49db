package cli

import (
	"os"
	"strconv"

	"github.com/mcoot/battleship-go/internal/services/targeting"
)

// Config holds CLI configuration
type Config struct {
	Output   string
	LogLevel string
	Verbose  bool
	Seed     uint64
	MaxTurns int
	Engine   targeting.Config
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output:   getEnvOrDefault("BATTLESHIP_OUTPUT", "text"),
		LogLevel: getEnvOrDefault("BATTLESHIP_LOG_LEVEL", "warn"),
		Verbose:  false,
		Seed:     getEnvUintOrDefault("BATTLESHIP_SEED", 1),
		MaxTurns: 0,
		Engine:   targeting.DefaultConfig(),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvUintOrDefault(key string, defaultVal uint64) uint64 {
	n, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultVal
	}
	return n
}
