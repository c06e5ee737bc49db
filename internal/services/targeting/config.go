package targeting

import (
	"github.com/mcoot/battleship-go/internal/services/density"
)

// Config parameterizes a targeting Engine
type Config struct {
	// AdjacencyBonus is the density bonus for untried cells next to an unresolved hit
	AdjacencyBonus int
	// IsolationPenalty is the density penalty for positive cells with no positive neighbor
	IsolationPenalty int
	// EndgameThreshold engages endgame priority when the opponent's remaining
	// hitpoints are at or below it
	EndgameThreshold int
	// ParityClass is the (row+col) mod 2 class preferred while hunting
	ParityClass int
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() Config {
	d := density.DefaultConfig()
	return Config{
		AdjacencyBonus:   d.AdjacencyBonus,
		IsolationPenalty: d.IsolationPenalty,
		EndgameThreshold: 3,
		ParityClass:      0,
	}
}

// DensityConfig returns the subset of the configuration used by the density model
func (c Config) DensityConfig() density.Config {
	return density.Config{
		AdjacencyBonus:   c.AdjacencyBonus,
		IsolationPenalty: c.IsolationPenalty,
	}
}

// Option configures optional Engine collaborators
type Option func(*Engine)

// WithObserver registers a callback that receives every engine event
func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

// ShotOption supplies per-call inputs to NextShot
type ShotOption func(*shotRequest)

type shotRequest struct {
	hitpoints    int
	hasHitpoints bool
	threshold    int
	hasThreshold bool
}

// WithOpponentHitpoints passes the opponent's remaining hitpoints, which
// drives endgame priority
func WithOpponentHitpoints(n int) ShotOption {
	return func(r *shotRequest) {
		r.hitpoints = n
		r.hasHitpoints = true
	}
}

// WithEndgameThreshold overrides the configured endgame threshold for one call
func WithEndgameThreshold(n int) ShotOption {
	return func(r *shotRequest) {
		r.threshold = n
		r.hasThreshold = true
	}
}

func (r shotRequest) endgame(defaultThreshold int) (bool, int) {
	threshold := defaultThreshold
	if r.hasThreshold {
		threshold = r.threshold
	}
	return r.hasHitpoints && r.hitpoints <= threshold, threshold
}
