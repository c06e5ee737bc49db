package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/board"
	"github.com/mcoot/battleship-go/internal/services/bot"
	"github.com/mcoot/battleship-go/internal/services/match"
)

// Player IDs used for the two sides of every simulated match
const (
	PlayerA model.PlayerID = "a"
	PlayerB model.PlayerID = "b"
)

// Config describes a batch of simulated matches
type Config struct {
	Games       int
	Seed        uint64
	Parallel    int // Matches run at once; zero means GOMAXPROCS
	BoardSize   int
	Fleet       []model.ShipClass
	StrategyA   string
	StrategyB   string
	KeepMatches bool // Keep finished matches in storage after summarizing
}

// DefaultConfig returns a hunter-versus-random batch on the standard board
func DefaultConfig() Config {
	return Config{
		Games:     100,
		Seed:      1,
		BoardSize: 10,
		Fleet:     model.DefaultFleet(),
		StrategyA: model.BotStrategyHunter,
		StrategyB: model.BotStrategyRandom,
	}
}

// Validate checks the configuration before any match is played
func (c Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.BoardSize <= 0 {
		return model.ErrInvalidBoardSize
	}
	for _, class := range c.Fleet {
		if class.Length <= 0 || class.Length > c.BoardSize {
			return fmt.Errorf("%w: %s has length %d", model.ErrInvalidShipLength, class.Name, class.Length)
		}
	}
	if err := bot.ValidateStrategy(c.StrategyA); err != nil {
		return err
	}
	return bot.ValidateStrategy(c.StrategyB)
}

// SideStats aggregates one side's results across a batch
type SideStats struct {
	Strategy    string `json:"strategy"`
	Wins        int    `json:"wins"`
	Shots       int    `json:"shots"`
	Hits        int    `json:"hits"`
	ShipsSunk   int    `json:"ships_sunk"`
	ShotsInWins int    `json:"shots_in_wins"`
}

// HitRate returns hits per shot, or 0 with no shots
func (s SideStats) HitRate() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}

// AverageShotsPerWin returns the mean number of shots this side fired in
// the matches it won, or 0 with no wins
func (s SideStats) AverageShotsPerWin() float64 {
	if s.Wins == 0 {
		return 0
	}
	return float64(s.ShotsInWins) / float64(s.Wins)
}

// GameResult is the outcome of one simulated match
type GameResult struct {
	Index      int            `json:"index"`
	Seed       uint64         `json:"seed"`
	FirstMover model.PlayerID `json:"first_mover"`
	Winner     model.PlayerID `json:"winner"`
	Turns      int            `json:"turns"`
}

// Summary aggregates a batch of simulated matches
type Summary struct {
	Games     int          `json:"games"`
	Seed      uint64       `json:"seed"`
	BoardSize int          `json:"board_size"`
	A         SideStats    `json:"a"`
	B         SideStats    `json:"b"`
	Results   []GameResult `json:"results,omitempty"`
}

// Service runs batches of AI-versus-AI matches
type Service struct {
	boards     *board.Service
	botService *bot.Service
	controller *match.Controller
	logger     *slog.Logger
}

// New creates a new simulation Service
func New(boards *board.Service, botService *bot.Service, controller *match.Controller, logger *slog.Logger) *Service {
	return &Service{
		boards:     boards,
		botService: botService,
		controller: controller,
		logger:     logger.With(slog.String("component", "simulation")),
	}
}

// Run plays cfg.Games matches in parallel and aggregates the results. Each
// match derives its boards and strategies from the base seed and its index,
// so a batch is reproducible regardless of scheduling. The first error
// cancels the remaining matches.
func (s *Service) Run(ctx context.Context, cfg Config) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	parallel := cfg.Parallel
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}

	s.logger.Info("simulation started",
		slog.Int("games", cfg.Games),
		slog.Uint64("seed", cfg.Seed),
		slog.String("a", cfg.StrategyA),
		slog.String("b", cfg.StrategyB),
		slog.Int("parallel", parallel),
	)

	matches := make([]*model.Match, cfg.Games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := range cfg.Games {
		g.Go(func() error {
			m, err := s.PlayGame(gctx, cfg, i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			matches[i] = m
			if !cfg.KeepMatches {
				return s.controller.DeleteMatch(gctx, m.ID)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("simulation failed", slog.String("error", err.Error()))
		return nil, err
	}

	summary := summarize(cfg, matches)
	s.logger.Info("simulation complete",
		slog.Int("a_wins", summary.A.Wins),
		slog.Int("b_wins", summary.B.Wins),
		slog.Float64("a_avg_shots_per_win", summary.A.AverageShotsPerWin()),
		slog.Float64("b_avg_shots_per_win", summary.B.AverageShotsPerWin()),
	)
	return summary, nil
}

// PlayGame plays the index-th match of a batch. Side A fires first in even
// games and side B in odd ones.
func (s *Service) PlayGame(ctx context.Context, cfg Config, index int) (*model.Match, error) {
	seed := GameSeed(cfg.Seed, index)
	lengths := model.FleetLengths(cfg.Fleet)

	sides := [2]struct {
		id       model.PlayerID
		strategy string
	}{
		{PlayerA, cfg.StrategyA},
		{PlayerB, cfg.StrategyB},
	}

	var participants [2]match.Participant
	for i, side := range sides {
		// Each side's board is the one its opponent fires at
		boards := s.boards.WithRandom(random.NewSeeded(deriveSeed(seed, 2*i)))
		b, err := boards.CreateFleetBoard(cfg.BoardSize, cfg.Fleet)
		if err != nil {
			return nil, err
		}
		strategy, err := s.botService.NewStrategy(side.strategy, cfg.BoardSize, lengths, deriveSeed(seed, 2*i+1))
		if err != nil {
			return nil, err
		}
		participants[i] = match.Participant{
			Player: model.Player{
				ID:       side.id,
				Name:     model.BotStrategyDisplayName(side.strategy),
				Strategy: side.strategy,
			},
			Strategy: strategy,
			Board:    b,
		}
	}

	if index%2 == 1 {
		participants[0], participants[1] = participants[1], participants[0]
	}
	return s.controller.Play(ctx, participants[0], participants[1])
}

func summarize(cfg Config, matches []*model.Match) *Summary {
	summary := &Summary{
		Games:     cfg.Games,
		Seed:      cfg.Seed,
		BoardSize: cfg.BoardSize,
		A:         SideStats{Strategy: cfg.StrategyA},
		B:         SideStats{Strategy: cfg.StrategyB},
		Results:   make([]GameResult, 0, len(matches)),
	}

	for i, m := range matches {
		counts := m.Summarize()
		for _, side := range []struct {
			id    model.PlayerID
			stats *SideStats
		}{
			{PlayerA, &summary.A},
			{PlayerB, &summary.B},
		} {
			side.stats.Shots += counts.ShotsBy[side.id]
			side.stats.Hits += counts.HitsBy[side.id]
			side.stats.ShipsSunk += counts.SunkBy[side.id]
			if m.Winner == side.id {
				side.stats.Wins++
				side.stats.ShotsInWins += counts.ShotsBy[side.id]
			}
		}

		summary.Results = append(summary.Results, GameResult{
			Index:      i,
			Seed:       GameSeed(cfg.Seed, i),
			FirstMover: m.Players[0].ID,
			Winner:     m.Winner,
			Turns:      counts.Turns,
		})
	}
	return summary
}

// GameSeed derives the seed of the index-th game of a batch
func GameSeed(base uint64, index int) uint64 {
	return deriveSeed(base, index)
}

// deriveSeed mixes a stream number into a seed (SplitMix64 finalizer)
func deriveSeed(seed uint64, stream int) uint64 {
	z := seed + uint64(stream+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
