package board

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	service    *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.service = New(s.mockRandom, testutil.NopLogger())
}

// CreateBoard tests

func (s *ServiceSuite) TestCreateBoardSucceeds() {
	b, err := s.service.CreateBoard(10)
	s.Require().NoError(err)
	s.Equal(10, b.Size)
	s.Equal(0, b.ShipCellCount())
}

func (s *ServiceSuite) TestCreateBoardInvalidSize() {
	_, err := s.service.CreateBoard(0)
	s.ErrorIs(err, model.ErrInvalidBoardSize)
}

// PlaceShip tests

func (s *ServiceSuite) TestPlaceShipSetsName() {
	b, _ := s.service.CreateBoard(10)

	ship, err := s.service.PlaceShip(b, model.ShipClass{Name: "Cruiser", Length: 3}, model.Position{Row: 1, Col: 1}, model.Vertical)
	s.Require().NoError(err)
	s.Equal("Cruiser", ship.Name)
	s.Equal(3, ship.Length)
}

// PlaceFleetRandomly tests

func (s *ServiceSuite) TestPlaceFleetUsesRandomDraws() {
	b, _ := s.service.CreateBoard(5)
	// Orientation, row, col per attempt
	s.mockRandom.QueueIntn(0, 0, 0, 1, 1, 4)

	err := s.service.PlaceFleetRandomly(b, []model.ShipClass{
		{Name: "Cruiser", Length: 3},
		{Name: "Destroyer", Length: 2},
	})
	s.Require().NoError(err)

	s.Require().Len(b.Ships, 2)
	s.Equal([]model.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, b.Ships[0].Cells)
	s.Equal([]model.Position{{Row: 1, Col: 4}, {Row: 2, Col: 4}}, b.Ships[1].Cells)
	s.Equal("Destroyer", b.Ships[1].Name)
}

func (s *ServiceSuite) TestPlaceFleetRetriesOnOverlapAndBounds() {
	b, _ := s.service.CreateBoard(5)
	s.mockRandom.QueueIntn(
		0, 0, 0, // Cruiser at A1 horizontal
		1, 0, 1, // Destroyer overlaps the cruiser
		0, 4, 4, // Destroyer runs off the right edge
		0, 4, 0, // Destroyer fits on the bottom row
	)

	err := s.service.PlaceFleetRandomly(b, []model.ShipClass{
		{Name: "Cruiser", Length: 3},
		{Name: "Destroyer", Length: 2},
	})
	s.Require().NoError(err)
	s.Equal([]model.Position{{Row: 4, Col: 0}, {Row: 4, Col: 1}}, b.Ships[1].Cells)
}

func (s *ServiceSuite) TestPlaceFleetFailsWhenNoRoom() {
	logger, logs := testutil.CaptureLogger()
	service := New(s.mockRandom, logger)
	b, _ := service.CreateBoard(2)

	// With no queued draws every attempt lands on A1 horizontal
	err := service.PlaceFleetRandomly(b, []model.ShipClass{
		{Name: "One", Length: 2},
		{Name: "Two", Length: 2},
	})
	s.ErrorIs(err, model.ErrPlacementFailed)
	s.Len(b.Ships, 1)
	s.Contains(logs.String(), "ship placement failed")
	s.Contains(logs.String(), "ship=Two")
	s.Contains(logs.String(), "attempts=1000")
}

func (s *ServiceSuite) TestPlaceFleetRejectsOversizedShip() {
	b, _ := s.service.CreateBoard(3)
	err := s.service.PlaceFleetRandomly(b, []model.ShipClass{{Name: "Carrier", Length: 5}})
	s.ErrorIs(err, model.ErrInvalidShipLength)
}

func (s *ServiceSuite) TestWithRandomDrawsFromNewSource() {
	derived := s.service.WithRandom(random.NewSeeded(7))
	again := s.service.WithRandom(random.NewSeeded(7))

	first, err := derived.CreateFleetBoard(10, model.DefaultFleet())
	s.Require().NoError(err)
	second, err := again.CreateFleetBoard(10, model.DefaultFleet())
	s.Require().NoError(err)

	s.Equal(first.Snapshot(), second.Snapshot())
	s.Empty(s.mockRandom.Calls)
}

func (s *ServiceSuite) TestRandomFleetsAreAlwaysValid() {
	for seed := uint64(0); seed < 50; seed++ {
		service := New(random.NewSeeded(seed), testutil.NopLogger())
		b, err := service.CreateFleetBoard(10, model.DefaultFleet())
		s.Require().NoError(err)

		s.Equal(model.FleetHitpoints(model.DefaultFleet()), b.ShipCellCount())
		s.Len(b.Ships, 5)

		occupied := make(map[model.Position]bool)
		for _, ship := range b.Ships {
			s.Len(ship.Cells, ship.Length)
			for i, cell := range ship.Cells {
				s.True(b.IsValidPosition(cell))
				s.False(occupied[cell], "seed %d: overlap at %v", seed, cell)
				occupied[cell] = true
				if i > 0 {
					s.True(cell.IsAdjacent(ship.Cells[i-1]))
				}
			}
			first, last := ship.Cells[0], ship.Cells[len(ship.Cells)-1]
			s.True(first.Row == last.Row || first.Col == last.Col)
		}
	}
}
