package board

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
)

// MaxPlacementAttempts bounds the retries for a single ship during random placement
const MaxPlacementAttempts = 1000

// Service creates boards and places fleets on them
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new board Service
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger.With(slog.String("component", "board-service")),
	}
}

// WithRandom returns a Service sharing this one's logger that draws from rnd
func (s *Service) WithRandom(rnd random.Random) *Service {
	return &Service{random: rnd, logger: s.logger}
}

// CreateBoard returns an empty board of the given size
func (s *Service) CreateBoard(size int) (*model.Board, error) {
	if size <= 0 {
		return nil, model.ErrInvalidBoardSize
	}
	return model.NewBoard(size), nil
}

// CreateFleetBoard returns a board of the given size with the fleet placed at random
func (s *Service) CreateFleetBoard(size int, fleet []model.ShipClass) (*model.Board, error) {
	b, err := s.CreateBoard(size)
	if err != nil {
		return nil, err
	}
	if err := s.PlaceFleetRandomly(b, fleet); err != nil {
		return nil, err
	}
	return b, nil
}

// PlaceShip places a named ship of the given class
func (s *Service) PlaceShip(b *model.Board, class model.ShipClass, start model.Position, orientation model.Orientation) (*model.Ship, error) {
	ship, err := b.PlaceShip(class.Length, start, orientation)
	if err != nil {
		return nil, err
	}
	ship.Name = class.Name
	return ship, nil
}

// PlaceFleetRandomly places every ship of the fleet at a random start and
// orientation, retrying on bounds and overlap failures. Ships placed before
// a failure stay on the board.
func (s *Service) PlaceFleetRandomly(b *model.Board, fleet []model.ShipClass) error {
	for _, class := range fleet {
		if class.Length <= 0 || class.Length > b.Size {
			return fmt.Errorf("%w: %s has length %d", model.ErrInvalidShipLength, class.Name, class.Length)
		}
		if err := s.placeRandomly(b, class); err != nil {
			return err
		}
	}

	s.logger.Debug("fleet placed",
		slog.Int("board_size", b.Size),
		slog.Int("ships", len(b.Ships)),
		slog.Int("hitpoints", b.RemainingHitpoints()),
	)
	return nil
}

func (s *Service) placeRandomly(b *model.Board, class model.ShipClass) error {
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		orientation := model.Horizontal
		if s.random.Intn(2) == 1 {
			orientation = model.Vertical
		}
		start := model.Position{
			Row: s.random.Intn(b.Size),
			Col: s.random.Intn(b.Size),
		}

		_, err := s.PlaceShip(b, class, start, orientation)
		if err == nil {
			return nil
		}
		if !errors.Is(err, model.ErrOutOfBounds) && !errors.Is(err, model.ErrOverlap) {
			return err
		}
	}

	s.logger.Warn("ship placement failed",
		slog.String("ship", class.Name),
		slog.Int("length", class.Length),
		slog.Int("attempts", MaxPlacementAttempts),
	)
	return fmt.Errorf("%w: %s after %d attempts", model.ErrPlacementFailed, class.Name, MaxPlacementAttempts)
}
