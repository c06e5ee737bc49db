package targeting

import (
	"fmt"

	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/density"
)

// seriesEnd identifies which end of the hit series a candidate extends
type seriesEnd int

const (
	endNone seriesEnd = iota // Neighbor probe around a single hit
	endLow
	endHigh
)

// candidate is a queued targeting shot
type candidate struct {
	pos model.Position
	end seriesEnd
}

// pendingShot remembers the last coordinate handed out by NextShot
type pendingShot struct {
	pos       model.Position
	targeting bool
	end       seriesEnd
}

// Engine selects shots against one opponent board. It alternates between
// hunting (density-scored search) and targeting (finishing a damaged ship).
// An Engine is owned by a single shooter and is not safe for concurrent use.
type Engine struct {
	size     int
	cfg      Config
	density  *density.Model
	random   random.Random
	observer Observer

	view    *model.TargetView
	untried *model.PositionSet

	unresolved []model.Position // Hits not yet part of a sunk group, oldest first
	series     []model.Position // Active hit series, in the order hit
	axis       model.Orientation
	queue      []candidate
	lowProbed  bool
	highProbed bool

	sunkGroups [][]model.Position
	remaining  []int

	mode    model.TargetingMode
	pending *pendingShot
}

// New creates an Engine for a size x size opponent board holding ships of
// the given lengths
func New(size int, fleet []int, cfg Config, rnd random.Random, opts ...Option) (*Engine, error) {
	if size <= 0 {
		return nil, model.ErrInvalidBoardSize
	}
	for _, length := range fleet {
		if length <= 0 || length > size {
			return nil, fmt.Errorf("%w: %d", model.ErrInvalidShipLength, length)
		}
	}

	remaining := make([]int, len(fleet))
	copy(remaining, fleet)

	e := &Engine{
		size:      size,
		cfg:       cfg,
		density:   density.New(cfg.DensityConfig()),
		random:    rnd,
		view:      model.NewTargetView(size),
		untried:   model.NewFullPositionSet(size),
		remaining: remaining,
		mode:      model.ModeHunting,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// NextShot returns the next coordinate to fire at. It never returns a
// coordinate that has already been tried. ErrEngineExhausted means every
// cell has been tried and the caller missed the win condition.
func (e *Engine) NextShot(opts ...ShotOption) (model.Position, error) {
	var req shotRequest
	for _, opt := range opts {
		opt(&req)
	}

	if e.untried.Len() == 0 {
		return model.Position{}, model.ErrEngineExhausted
	}

	endgame, threshold := req.endgame(e.cfg.EndgameThreshold)
	untriedBefore := e.untried.Len()

	for {
		if c, ok := e.nextTargetShot(); ok {
			e.pending = &pendingShot{pos: c.pos, targeting: true, end: c.end}
			e.syncMode()
			e.emit(model.EventShotSelected, c.pos, model.ShotSelectedPayload{
				Endgame: endgame,
				Untried: untriedBefore,
			})
			return c.pos, nil
		}
		if !endgame {
			break
		}
		seed, ok := e.oldestLiveUnresolved()
		if !ok {
			break
		}
		e.emit(model.EventEndgameEngaged, seed, model.EndgameEngagedPayload{
			OpponentHitpoints: req.hitpoints,
			Threshold:         threshold,
		})
		e.startSeries(seed)
	}

	e.syncMode()
	pos, score := e.huntShot()
	e.pending = &pendingShot{pos: pos}
	e.emit(model.EventShotSelected, pos, model.ShotSelectedPayload{
		Score:   score,
		Untried: untriedBefore,
	})
	return pos, nil
}

// FeedResult records the outcome of a shot at pos. It must be called after
// every shot the owner fires.
func (e *Engine) FeedResult(pos model.Position, outcome model.Outcome) error {
	if !e.view.IsValidPosition(pos) {
		return model.ErrOutOfBounds
	}

	switch outcome {
	case model.OutcomeMiss, model.OutcomeHit, model.OutcomeSunk, model.OutcomeAlreadyShot:
	default:
		return fmt.Errorf("unknown outcome %q", outcome)
	}
	if outcome != model.OutcomeAlreadyShot && !e.untried.Contains(pos) {
		return fmt.Errorf("%w: %s", model.ErrPositionAlreadyTried, pos)
	}

	own := e.pending != nil && e.pending.pos == pos
	var shot pendingShot
	if own {
		shot = *e.pending
		e.pending = nil
	}

	e.untried.Remove(pos)
	if outcome == model.OutcomeAlreadyShot {
		// The cell was shot through another path; only stop offering it
		return nil
	}
	if own && shot.targeting {
		e.markProbed(shot.end)
	}

	switch outcome {
	case model.OutcomeMiss:
		e.view.Set(pos, model.MarkMiss)
	case model.OutcomeHit:
		e.view.Set(pos, model.MarkHit)
		e.unresolved = append(e.unresolved, pos)
		if own {
			if shot.targeting && len(e.series) > 0 {
				e.extendSeries(pos, shot.end)
			} else if len(e.series) == 0 {
				e.startSeries(pos)
			}
		}
	case model.OutcomeSunk:
		e.view.Set(pos, model.MarkHit)
		e.unresolved = append(e.unresolved, pos)
		e.resolveSunk(pos, own && shot.targeting)
	}

	e.syncMode()
	return nil
}

// Mode returns the engine's current state
func (e *Engine) Mode() model.TargetingMode {
	return e.mode
}

// Axis returns the inferred axis of the active series, if known
func (e *Engine) Axis() model.Orientation {
	return e.axis
}

// Series returns a copy of the active hit series
func (e *Engine) Series() []model.Position {
	return clonePositions(e.series)
}

// Unresolved returns a copy of the hits not yet attributed to a sunk ship
func (e *Engine) Unresolved() []model.Position {
	return clonePositions(e.unresolved)
}

// SunkGroups returns a copy of the committed sunk-ship coordinate groups
func (e *Engine) SunkGroups() [][]model.Position {
	result := make([][]model.Position, len(e.sunkGroups))
	for i, group := range e.sunkGroups {
		result[i] = clonePositions(group)
	}
	return result
}

// RemainingLengths returns the lengths of ships not yet sunk
func (e *Engine) RemainingLengths() []int {
	result := make([]int, len(e.remaining))
	copy(result, e.remaining)
	return result
}

// UntriedCount returns the number of coordinates not yet fired upon
func (e *Engine) UntriedCount() int {
	return e.untried.Len()
}

// IsUntried reports whether pos has not been fired upon
func (e *Engine) IsUntried(pos model.Position) bool {
	return e.untried.Contains(pos)
}

// View returns a copy of the shooter's view of the opponent board
func (e *Engine) View() *model.TargetView {
	return e.view.Clone()
}

// Scores returns the current density grid, as used while hunting
func (e *Engine) Scores() [][]int {
	return e.density.Compute(e.view, e.remaining)
}

func (e *Engine) syncMode() {
	next := model.ModeHunting
	if len(e.series) > 0 {
		next = model.ModeTargeting
	}
	if next == e.mode {
		return
	}
	prev := e.mode
	e.mode = next
	e.emit(model.EventModeChanged, model.Position{}, model.ModeChangedPayload{From: prev, To: next})
}

func (e *Engine) emit(t model.EventType, pos model.Position, payload any) {
	if e.observer == nil {
		return
	}
	e.observer(model.Event{Type: t, Mode: e.mode, Position: pos, Payload: payload})
}

func clonePositions(positions []model.Position) []model.Position {
	result := make([]model.Position, len(positions))
	copy(result, positions)
	return result
}
