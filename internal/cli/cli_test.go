package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/density"
	"github.com/mcoot/battleship-go/internal/services/simulation"
)

type CLISuite struct {
	suite.Suite
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
}

func (s *CLISuite) run(args ...string) error {
	cmd := NewRootCmd()
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// Simulate tests

func (s *CLISuite) TestSimulateJSON() {
	err := s.run("simulate", "--games", "4", "--parallel", "2", "--results", "-o", "json")
	s.Require().NoError(err)

	var summary simulation.Summary
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &summary))
	s.Equal(4, summary.Games)
	s.Equal(4, summary.A.Wins+summary.B.Wins)
	s.Len(summary.Results, 4)
	s.Equal(model.BotStrategyHunter, summary.A.Strategy)
}

func (s *CLISuite) TestSimulateIsReproducible() {
	s.Require().NoError(s.run("simulate", "--games", "3", "--seed", "9", "-o", "json"))
	first := s.stdout.String()

	s.stdout.Reset()
	s.Require().NoError(s.run("simulate", "--games", "3", "--seed", "9", "-o", "json"))
	s.Equal(first, s.stdout.String())
}

func (s *CLISuite) TestSimulateText() {
	err := s.run("simulate", "--games", "2", "--a", "adaptive", "--b", "hunter")
	s.Require().NoError(err)
	s.Contains(s.stdout.String(), "Games: 2")
	s.Contains(s.stdout.String(), "adaptive")
}

func (s *CLISuite) TestSimulateUnknownStrategy() {
	err := s.run("simulate", "--games", "1", "--a", "psychic")
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

// Duel tests

func (s *CLISuite) TestDuelPrintsShotLog() {
	err := s.run("duel", "--a", "hunter", "--b", "random")
	s.Require().NoError(err)

	out := s.stdout.String()
	s.Contains(out, "State: complete")
	s.Contains(out, "Shots:")
	s.Contains(out, "Winner: ")
}

func (s *CLISuite) TestDuelMatchesBatchGame() {
	s.Require().NoError(s.run("duel", "--game", "1", "--seed", "4", "-o", "json"))
	var result MatchResult
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &result))

	s.stdout.Reset()
	s.Require().NoError(s.run("simulate", "--games", "2", "--seed", "4", "--results", "-o", "json"))
	var summary simulation.Summary
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &summary))

	s.Equal(string(summary.Results[1].Winner), result.Winner)
	s.Equal(summary.Results[1].Turns, result.Turns)
	s.Len(result.Shots, result.Turns)
}

func (s *CLISuite) TestDuelNegativeGame() {
	s.Error(s.run("duel", "--game", "-1"))
}

// Density tests

func (s *CLISuite) TestDensityBestCell() {
	err := s.run("density", "--board-size", "5", "--remaining", "3",
		"--adjacency-bonus", "0", "--isolation-penalty", "0", "-o", "json")
	s.Require().NoError(err)

	var result DensityResult
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &result))
	s.Equal(5, result.Size)
	s.Equal(6, result.Max)
	s.Equal([]string{"C3"}, result.Best)
	s.Equal(2, result.Scores[0][0])
}

func (s *CLISuite) TestDensityMarks() {
	err := s.run("density", "--board-size", "5", "--remaining", "3",
		"--miss", "C3", "--hit", "A1", "-o", "json")
	s.Require().NoError(err)

	var result DensityResult
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &result))
	s.Zero(result.Scores[2][2])
	s.Zero(result.Scores[0][0])
	s.Contains(result.Best, "B1")
}

func (s *CLISuite) TestDensityHonoursZeroTuning() {
	err := s.run("density", "--board-size", "5", "--remaining", "2", "--hit", "C3",
		"--adjacency-bonus", "0", "--isolation-penalty", "0", "--endgame-threshold", "0", "-o", "json")
	s.Require().NoError(err)
	s.Equal(density.Config{}, app.DensityModel.Config())
	s.Equal(0, app.EngineConfig.EndgameThreshold)

	var result DensityResult
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &result))
	// C2 next to the hit: two windows each way and no bonus
	s.Equal(4, result.Scores[1][2])
}

func (s *CLISuite) TestDensityText() {
	s.Require().NoError(s.run("density", "--board-size", "4", "--remaining", "2"))
	out := s.stdout.String()
	s.Contains(out, "   A   B   C   D")
	s.Contains(out, "Remaining: 2")
}

func (s *CLISuite) TestDensityInvalidCell() {
	s.ErrorIs(s.run("density", "--miss", "Z1"), model.ErrOutOfBounds)
	s.ErrorIs(s.run("density", "--miss", "5"), model.ErrInvalidPosition)
	s.ErrorIs(s.run("density", "--board-size", "4", "--remaining", "5"), model.ErrInvalidShipLength)
}

// Config tests

func (s *CLISuite) TestInvalidLogLevel() {
	s.Error(s.run("density", "--log-level", "loud"))
}

func (s *CLISuite) TestDefaultConfigFromEnv() {
	s.T().Setenv("BATTLESHIP_SEED", "42")
	s.T().Setenv("BATTLESHIP_OUTPUT", "json")

	c := DefaultConfig()
	s.Equal(uint64(42), c.Seed)
	s.Equal("json", c.Output)
	s.Equal("warn", c.LogLevel)
}

func (s *CLISuite) TestDefaultConfigIgnoresMalformedEnv() {
	s.T().Setenv("BATTLESHIP_SEED", "lots")
	s.T().Setenv("BATTLESHIP_GAMES", "-")

	s.Equal(uint64(1), DefaultConfig().Seed)
	s.Equal(7, getEnvIntOrDefault("BATTLESHIP_GAMES", 7))
}
