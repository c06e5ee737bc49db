package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func newMatch(id string, started time.Time) *model.Match {
	return &model.Match{
		ID:        model.MatchID(id),
		State:     model.MatchStateInProgress,
		BoardSize: 10,
		Players: [2]model.Player{
			{ID: "a", Name: "Alice", Strategy: model.BotStrategyHunter},
			{ID: "b", Name: "Bob", Strategy: model.BotStrategyRandom},
		},
		StartedAt: started,
	}
}

// Match tests

func (s *StorageSuite) TestSaveAndGetMatch() {
	match := newMatch("match-1", time.Now())

	err := s.storage.SaveMatch(s.ctx, match)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(match.ID, retrieved.ID)
	s.Equal(match.Players, retrieved.Players)
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestSavedMatchIsCopied() {
	match := newMatch("match-1", time.Now())
	_ = s.storage.SaveMatch(s.ctx, match)

	match.Shots = append(match.Shots, model.ShotRecord{Turn: 1})
	match.State = model.MatchStateComplete

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Empty(retrieved.Shots)
	s.Equal(model.MatchStateInProgress, retrieved.State)
}

func (s *StorageSuite) TestDeleteMatch() {
	_ = s.storage.SaveMatch(s.ctx, newMatch("match-1", time.Now()))

	err := s.storage.DeleteMatch(s.ctx, "match-1")
	s.Require().NoError(err)

	_, err = s.storage.GetMatch(s.ctx, "match-1")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestListMatchesOldestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveMatch(s.ctx, newMatch("late", base.Add(time.Hour)))
	_ = s.storage.SaveMatch(s.ctx, newMatch("early", base))

	matches, err := s.storage.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(matches, 2)
	s.Equal(model.MatchID("early"), matches[0].ID)
	s.Equal(model.MatchID("late"), matches[1].ID)
}

// Shot log tests

func (s *StorageSuite) TestAppendShot() {
	_ = s.storage.SaveMatch(s.ctx, newMatch("match-1", time.Now()))

	shot := model.ShotRecord{Turn: 1, Shooter: "a", Position: model.Position{Row: 2, Col: 3}, Outcome: model.OutcomeHit}
	s.Require().NoError(s.storage.AppendShot(s.ctx, "match-1", shot))

	retrieved, _ := s.storage.GetMatch(s.ctx, "match-1")
	s.Equal([]model.ShotRecord{shot}, retrieved.Shots)
}

func (s *StorageSuite) TestAppendShotUnknownMatch() {
	err := s.storage.AppendShot(s.ctx, "missing", model.ShotRecord{})
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestConcurrentAppends() {
	_ = s.storage.SaveMatch(s.ctx, newMatch("match-1", time.Now()))

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.storage.AppendShot(s.ctx, "match-1", model.ShotRecord{Turn: i})
		}()
	}
	wg.Wait()

	retrieved, _ := s.storage.GetMatch(s.ctx, "match-1")
	s.Len(retrieved.Shots, 50)
}
