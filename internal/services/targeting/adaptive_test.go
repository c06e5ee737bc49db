package targeting

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go/internal/model"
)

type AdaptiveSuite struct {
	suite.Suite
	recorder *Recorder
	adaptive *Adaptive
}

func TestAdaptiveSuite(t *testing.T) {
	suite.Run(t, new(AdaptiveSuite))
}

func (s *AdaptiveSuite) SetupTest() {
	s.recorder = &Recorder{}
	engine, err := New(10, []int{5, 4, 3, 3, 2}, DefaultConfig(), mocks.NewMockRandom(), WithObserver(s.recorder.Observe))
	s.Require().NoError(err)
	s.adaptive = NewAdaptive(engine, DefaultAdaptiveConfig())
}

func (s *AdaptiveSuite) shoot(n int, outcome model.Outcome) {
	for i := 0; i < n; i++ {
		shot, err := s.adaptive.NextShot()
		s.Require().NoError(err)
		s.Require().NoError(s.adaptive.FeedResult(shot, outcome))
	}
}

func (s *AdaptiveSuite) TestStartsFromEngineThreshold() {
	s.Equal(3, s.adaptive.Threshold())
	s.Equal(0.0, s.adaptive.HitRate())
}

func (s *AdaptiveSuite) TestThresholdClampedToRange() {
	cfg := DefaultConfig()
	cfg.EndgameThreshold = 20
	engine, err := New(10, []int{2}, cfg, mocks.NewMockRandom())
	s.Require().NoError(err)

	s.Equal(7, NewAdaptive(engine, DefaultAdaptiveConfig()).Threshold())
}

func (s *AdaptiveSuite) TestNoChangeBeforeWindowFills() {
	s.shoot(9, model.OutcomeMiss)
	s.Equal(3, s.adaptive.Threshold())
}

func (s *AdaptiveSuite) TestColdStreakRaisesThreshold() {
	s.shoot(10, model.OutcomeMiss)
	s.Equal(4, s.adaptive.Threshold())

	s.shoot(1, model.OutcomeMiss)
	s.Equal(5, s.adaptive.Threshold())
}

func (s *AdaptiveSuite) TestHotStreakLowersThresholdToMinimum() {
	s.shoot(10, model.OutcomeHit)
	s.Equal(2, s.adaptive.Threshold())

	s.shoot(1, model.OutcomeHit)
	s.Equal(2, s.adaptive.Threshold())
	s.Equal(1.0, s.adaptive.HitRate())
}

func (s *AdaptiveSuite) TestAdaptedThresholdDrivesEndgame() {
	s.shoot(10, model.OutcomeMiss)
	s.Require().Equal(4, s.adaptive.Threshold())

	var dormant model.Position
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			candidate := model.Position{Row: row, Col: col}
			if !s.adaptive.IsUntried(candidate) {
				continue
			}
			for _, n := range candidate.Neighbors() {
				if s.adaptive.IsUntried(n) {
					dormant = candidate
				}
			}
		}
	}
	s.Require().NoError(s.adaptive.FeedResult(dormant, model.OutcomeHit))
	threshold := s.adaptive.Threshold()
	s.Require().GreaterOrEqual(threshold, 4)

	shot, err := s.adaptive.NextShot(WithOpponentHitpoints(4), WithEndgameThreshold(0))
	s.Require().NoError(err)
	s.True(shot.IsAdjacent(dormant))

	engaged := s.recorder.OfType(model.EventEndgameEngaged)
	s.Require().Len(engaged, 1)
	s.Equal(threshold, engaged[0].Payload.(model.EndgameEngagedPayload).Threshold)
}

func (s *AdaptiveSuite) TestAlreadyShotIsNotCounted() {
	s.Require().NoError(s.adaptive.FeedResult(model.Position{Row: 0, Col: 0}, model.OutcomeAlreadyShot))
	s.Equal(0.0, s.adaptive.HitRate())
}
