package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/board"
	"github.com/mcoot/battleship-go/internal/services/bot"
	"github.com/mcoot/battleship-go/internal/services/match"
	"github.com/mcoot/battleship-go/internal/services/targeting"
	"github.com/mcoot/battleship-go/internal/storage/memory"
	"github.com/mcoot/battleship-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	logger := testutil.NopLogger()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	botService := bot.NewService(targeting.DefaultConfig(), targeting.DefaultAdaptiveConfig(), logger)
	controller := match.NewController(s.storage, clk, 0, logger)
	boards := board.New(mocks.NewMockRandom(), logger)
	s.service = New(boards, botService, controller, logger)
	s.ctx = context.Background()
}

func (s *ServiceSuite) config(games int) Config {
	cfg := DefaultConfig()
	cfg.Games = games
	cfg.Seed = 99
	cfg.Parallel = 4
	return cfg
}

// Run tests

func (s *ServiceSuite) TestRunEveryGameHasAWinner() {
	summary, err := s.service.Run(s.ctx, s.config(12))
	s.Require().NoError(err)

	s.Equal(12, summary.Games)
	s.Equal(12, summary.A.Wins+summary.B.Wins)
	s.Len(summary.Results, 12)
	for _, result := range summary.Results {
		s.Contains([]model.PlayerID{PlayerA, PlayerB}, result.Winner)
	}
}

func (s *ServiceSuite) TestRunIsReproducible() {
	first, err := s.service.Run(s.ctx, s.config(8))
	s.Require().NoError(err)

	cfg := s.config(8)
	cfg.Parallel = 1
	second, err := s.service.Run(s.ctx, cfg)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *ServiceSuite) TestRunDifferentSeedsDiffer() {
	first, err := s.service.Run(s.ctx, s.config(8))
	s.Require().NoError(err)

	cfg := s.config(8)
	cfg.Seed = 100
	second, err := s.service.Run(s.ctx, cfg)
	s.Require().NoError(err)

	s.NotEqual(first.Results, second.Results)
}

func (s *ServiceSuite) TestRunAlternatesFirstMover() {
	summary, err := s.service.Run(s.ctx, s.config(4))
	s.Require().NoError(err)

	s.Equal(PlayerA, summary.Results[0].FirstMover)
	s.Equal(PlayerB, summary.Results[1].FirstMover)
	s.Equal(PlayerA, summary.Results[2].FirstMover)
}

func (s *ServiceSuite) TestRunWinnerSinksWholeFleet() {
	summary, err := s.service.Run(s.ctx, s.config(6))
	s.Require().NoError(err)

	fleetSize := len(model.DefaultFleet())
	s.GreaterOrEqual(summary.A.ShipsSunk+summary.B.ShipsSunk, 6*fleetSize)
	hitpoints := model.FleetHitpoints(model.DefaultFleet())
	s.GreaterOrEqual(summary.A.Hits, summary.A.Wins*hitpoints)
	s.GreaterOrEqual(summary.A.AverageShotsPerWin(), float64(hitpoints))
}

func (s *ServiceSuite) TestHunterBeatsRandomMostOfTheTime() {
	summary, err := s.service.Run(s.ctx, s.config(20))
	s.Require().NoError(err)

	s.Greater(summary.A.Wins, summary.B.Wins)
	s.Greater(summary.A.HitRate(), summary.B.HitRate())
}

func (s *ServiceSuite) TestRunDropsMatchesByDefault() {
	_, err := s.service.Run(s.ctx, s.config(3))
	s.Require().NoError(err)

	matches, err := s.storage.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *ServiceSuite) TestRunKeepsMatches() {
	cfg := s.config(3)
	cfg.KeepMatches = true
	_, err := s.service.Run(s.ctx, cfg)
	s.Require().NoError(err)

	matches, err := s.storage.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Len(matches, 3)
}

func (s *ServiceSuite) TestRunCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.service.Run(ctx, s.config(4))
	s.ErrorIs(err, context.Canceled)
}

func (s *ServiceSuite) TestRunRejectsUnknownStrategy() {
	cfg := s.config(1)
	cfg.StrategyB = "psychic"

	_, err := s.service.Run(s.ctx, cfg)
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

func (s *ServiceSuite) TestRunRejectsOversizedFleet() {
	cfg := s.config(1)
	cfg.BoardSize = 4

	_, err := s.service.Run(s.ctx, cfg)
	s.ErrorIs(err, model.ErrInvalidShipLength)
}

// Seed tests

func (s *ServiceSuite) TestGameSeedIsStableAndDistinct() {
	s.Equal(GameSeed(1, 5), GameSeed(1, 5))
	s.NotEqual(GameSeed(1, 5), GameSeed(1, 6))
	s.NotEqual(GameSeed(1, 5), GameSeed(2, 5))
}
