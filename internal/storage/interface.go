package storage

import (
	"context"

	"github.com/mcoot/battleship-go/internal/model"
)

// Storage defines the interface for match records. Records live for the
// lifetime of the process only.
type Storage interface {
	// Match operations
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	ListMatches(ctx context.Context) ([]*model.Match, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error

	// Shot log operations
	AppendShot(ctx context.Context, id model.MatchID, shot model.ShotRecord) error
}
