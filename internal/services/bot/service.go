package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/targeting"
)

// Service builds shot strategies by name
type Service struct {
	engineConfig   targeting.Config
	adaptiveConfig targeting.AdaptiveConfig
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(engineConfig targeting.Config, adaptiveConfig targeting.AdaptiveConfig, logger *slog.Logger) *Service {
	return &Service{
		engineConfig:   engineConfig,
		adaptiveConfig: adaptiveConfig,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// NewStrategy creates the named strategy for a size x size opponent board
// holding ships of the given lengths. Each strategy owns its own random
// source seeded from seed.
func (s *Service) NewStrategy(name string, size int, fleet []int, seed uint64) (Strategy, error) {
	rnd := random.NewSeeded(seed)

	switch name {
	case model.BotStrategyRandom:
		return NewRandomStrategy(size, rnd), nil
	case model.BotStrategyHunter, model.BotStrategyAdaptive:
		engine, err := targeting.New(size, fleet, s.engineConfig, rnd, s.engineOptions(name)...)
		if err != nil {
			return nil, err
		}
		if name == model.BotStrategyAdaptive {
			return targeting.NewAdaptive(engine, s.adaptiveConfig), nil
		}
		return engine, nil
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
}

// engineOptions attaches the event log only when debug logging is on
func (s *Service) engineOptions(name string) []targeting.Option {
	if !s.logger.Enabled(context.Background(), slog.LevelDebug) {
		return nil
	}
	logger := s.logger.With(slog.String("strategy", name))
	return []targeting.Option{targeting.WithObserver(targeting.LogObserver(logger))}
}

// ValidateStrategy returns ErrUnknownStrategy for names NewStrategy cannot build
func ValidateStrategy(name string) error {
	for _, valid := range model.ValidBotStrategies() {
		if name == valid {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
}
