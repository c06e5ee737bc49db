package bot

import (
	"fmt"

	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/targeting"
)

// RandomStrategy fires at uniformly random untried cells. It ignores
// outcomes and is kept as a baseline for simulations.
type RandomStrategy struct {
	size    int
	random  random.Random
	untried *model.PositionSet
}

// NewRandomStrategy creates a new RandomStrategy for a size x size board
func NewRandomStrategy(size int, rnd random.Random) *RandomStrategy {
	return &RandomStrategy{
		size:    size,
		random:  rnd,
		untried: model.NewFullPositionSet(size),
	}
}

// NextShot picks a random untried cell. Shot options are ignored.
func (s *RandomStrategy) NextShot(_ ...targeting.ShotOption) (model.Position, error) {
	if s.untried.Len() == 0 {
		return model.Position{}, model.ErrEngineExhausted
	}
	return s.untried.At(s.random.Intn(s.untried.Len())), nil
}

// FeedResult removes pos from the untried cells
func (s *RandomStrategy) FeedResult(pos model.Position, outcome model.Outcome) error {
	if pos.Row < 0 || pos.Row >= s.size || pos.Col < 0 || pos.Col >= s.size {
		return model.ErrOutOfBounds
	}
	if !s.untried.Remove(pos) && outcome != model.OutcomeAlreadyShot {
		return fmt.Errorf("%w: %s", model.ErrPositionAlreadyTried, pos)
	}
	return nil
}

// Remaining returns the number of untried cells
func (s *RandomStrategy) Remaining() int {
	return s.untried.Len()
}
