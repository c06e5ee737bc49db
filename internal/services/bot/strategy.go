package bot

import (
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/targeting"
)

// Strategy chooses shots against one opponent board and learns from their outcomes
type Strategy interface {
	// NextShot selects the next coordinate to fire at
	NextShot(opts ...targeting.ShotOption) (model.Position, error)
	// FeedResult records the outcome of a shot
	FeedResult(pos model.Position, outcome model.Outcome) error
}

var (
	_ Strategy = (*targeting.Engine)(nil)
	_ Strategy = (*targeting.Adaptive)(nil)
	_ Strategy = (*RandomStrategy)(nil)
)
