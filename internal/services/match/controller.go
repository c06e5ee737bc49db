package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/battleship-go/internal/dependencies/clock"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/bot"
	"github.com/mcoot/battleship-go/internal/services/targeting"
	"github.com/mcoot/battleship-go/internal/storage"
)

// Participant is one side of a match: who they are, how they shoot and the
// board their opponent fires at
type Participant struct {
	Player   model.Player
	Strategy bot.Strategy
	Board    *model.Board
}

// Controller runs matches between two participants and records every shot
type Controller struct {
	storage  storage.Storage
	clock    clock.Clock
	maxTurns int
	logger   *slog.Logger
}

// NewController creates a new match Controller. A maxTurns of zero allows
// every cell of both boards to be fired upon once.
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	maxTurns int,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		clock:    clock,
		maxTurns: maxTurns,
		logger:   logger.With(slog.String("component", "match-controller")),
	}
}

// GetMatch retrieves a match by ID
func (c *Controller) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	return c.storage.GetMatch(ctx, id)
}

// ListMatches returns every recorded match, oldest first
func (c *Controller) ListMatches(ctx context.Context) ([]*model.Match, error) {
	return c.storage.ListMatches(ctx)
}

// DeleteMatch removes a recorded match
func (c *Controller) DeleteMatch(ctx context.Context, id model.MatchID) error {
	return c.storage.DeleteMatch(ctx, id)
}

// Play runs a match to completion. first fires first; turns alternate.
// Every outcome is fed back to the shooter together with the opponent's
// remaining hitpoints. A strategy failure (including ErrEngineExhausted)
// aborts the match: the aborted match is returned alongside the error.
func (c *Controller) Play(ctx context.Context, first, second Participant) (*model.Match, error) {
	if first.Board == nil || second.Board == nil {
		return nil, fmt.Errorf("%w: both participants need a board", model.ErrInvalidBoardSize)
	}
	if first.Board.Size != second.Board.Size {
		return nil, fmt.Errorf("%w: boards are %d and %d", model.ErrInvalidBoardSize, first.Board.Size, second.Board.Size)
	}

	size := first.Board.Size
	maxTurns := c.maxTurns
	if maxTurns <= 0 {
		maxTurns = 2 * size * size
	}

	match := &model.Match{
		ID:        model.MatchID(uuid.New().String()),
		State:     model.MatchStateInProgress,
		BoardSize: size,
		Players:   [2]model.Player{first.Player, second.Player},
		StartedAt: c.clock.Now(),
	}
	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}

	logger := c.logger.With(slog.String("match_id", string(match.ID)))
	logger.Debug("match started",
		slog.String("first", string(first.Player.ID)),
		slog.String("second", string(second.Player.ID)),
		slog.Int("board_size", size),
	)

	participants := [2]Participant{first, second}
	for turn := 1; turn <= maxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return c.abort(ctx, logger, match, err)
		}

		shooter := participants[(turn-1)%2]
		target := participants[turn%2]

		pos, err := shooter.Strategy.NextShot(targeting.WithOpponentHitpoints(target.Board.RemainingHitpoints()))
		if err != nil {
			return c.abort(ctx, logger, match, fmt.Errorf("player %s: %w", shooter.Player.ID, err))
		}

		outcome, err := target.Board.ReceiveShot(pos)
		if err != nil {
			return c.abort(ctx, logger, match, fmt.Errorf("player %s fired at %s: %w", shooter.Player.ID, pos, err))
		}
		if err := shooter.Strategy.FeedResult(pos, outcome); err != nil {
			return c.abort(ctx, logger, match, fmt.Errorf("player %s: %w", shooter.Player.ID, err))
		}

		shot := model.ShotRecord{
			Turn:     turn,
			Shooter:  shooter.Player.ID,
			Position: pos,
			Outcome:  outcome,
		}
		match.Shots = append(match.Shots, shot)
		if err := c.storage.AppendShot(ctx, match.ID, shot); err != nil {
			return c.abort(ctx, logger, match, fmt.Errorf("recording shot %d: %w", turn, err))
		}

		if target.Board.AllSunk() {
			match.State = model.MatchStateComplete
			match.Winner = shooter.Player.ID
			match.CompletedAt = c.clock.Now()
			if err := c.storage.SaveMatch(ctx, match); err != nil {
				logger.Error("saving completed match failed", slog.String("error", err.Error()))
				return match, fmt.Errorf("saving completed match: %w", err)
			}

			logger.Debug("match complete",
				slog.String("winner", string(match.Winner)),
				slog.Int("turns", turn),
				slog.Duration("duration", c.clock.Since(match.StartedAt)),
			)
			return match, nil
		}
	}

	return c.abort(ctx, logger, match, fmt.Errorf("%w: %d turns", model.ErrMatchTurnLimit, maxTurns))
}

func (c *Controller) abort(ctx context.Context, logger *slog.Logger, match *model.Match, cause error) (*model.Match, error) {
	match.State = model.MatchStateAborted
	match.CompletedAt = c.clock.Now()

	logger.Error("match aborted",
		slog.Int("turns", len(match.Shots)),
		slog.String("error", cause.Error()),
	)

	// The store must not observe a cancelled context as a save failure
	if err := c.storage.SaveMatch(context.WithoutCancel(ctx), match); err != nil {
		return match, errors.Join(cause, err)
	}
	return match, cause
}
