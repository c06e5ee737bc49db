package targeting

import (
	"github.com/mcoot/battleship-go/internal/model"
)

// AdaptiveConfig controls how an Adaptive engine retunes its endgame threshold
type AdaptiveConfig struct {
	Window       int     // Number of recent shots considered
	MinThreshold int     // Lower bound for the endgame threshold
	MaxThreshold int     // Upper bound for the endgame threshold
	LowHitRate   float64 // Below this rate the threshold is raised
	HighHitRate  float64 // Above this rate the threshold is lowered
}

// DefaultAdaptiveConfig returns the default adaptive tuning
func DefaultAdaptiveConfig() AdaptiveConfig {
	return AdaptiveConfig{
		Window:       10,
		MinThreshold: 2,
		MaxThreshold: 7,
		LowHitRate:   0.2,
		HighHitRate:  0.4,
	}
}

// Adaptive wraps an Engine and adjusts the endgame threshold from its
// recent hit rate. A cold streak widens endgame priority so damaged ships
// get finished sooner; a hot streak narrows it. The wrapped engine's
// decisions are otherwise unchanged.
type Adaptive struct {
	*Engine

	cfg       AdaptiveConfig
	threshold int
	recent    []bool
}

// NewAdaptive wraps engine, starting from its configured endgame threshold
func NewAdaptive(engine *Engine, cfg AdaptiveConfig) *Adaptive {
	threshold := min(max(engine.cfg.EndgameThreshold, cfg.MinThreshold), cfg.MaxThreshold)
	return &Adaptive{
		Engine:    engine,
		cfg:       cfg,
		threshold: threshold,
	}
}

// Threshold returns the current endgame threshold
func (a *Adaptive) Threshold() int {
	return a.threshold
}

// HitRate returns the hit rate over the current window, or 0 with no shots
func (a *Adaptive) HitRate() float64 {
	if len(a.recent) == 0 {
		return 0
	}
	hits := 0
	for _, hit := range a.recent {
		if hit {
			hits++
		}
	}
	return float64(hits) / float64(len(a.recent))
}

// NextShot selects a shot using the adapted threshold. The threshold
// overrides any WithEndgameThreshold option passed by the caller.
func (a *Adaptive) NextShot(opts ...ShotOption) (model.Position, error) {
	opts = append(opts, WithEndgameThreshold(a.threshold))
	return a.Engine.NextShot(opts...)
}

// FeedResult forwards the outcome and retunes the threshold
func (a *Adaptive) FeedResult(pos model.Position, outcome model.Outcome) error {
	if err := a.Engine.FeedResult(pos, outcome); err != nil {
		return err
	}
	if outcome == model.OutcomeAlreadyShot {
		return nil
	}

	a.recent = append(a.recent, outcome.IsHit())
	if len(a.recent) > a.cfg.Window {
		a.recent = a.recent[len(a.recent)-a.cfg.Window:]
	}
	if len(a.recent) < a.cfg.Window {
		return nil
	}

	switch rate := a.HitRate(); {
	case rate < a.cfg.LowHitRate && a.threshold < a.cfg.MaxThreshold:
		a.threshold++
	case rate > a.cfg.HighHitRate && a.threshold > a.cfg.MinThreshold:
		a.threshold--
	}
	return nil
}
