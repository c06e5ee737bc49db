package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// MatchState represents the current phase of a match
type MatchState string

const (
	MatchStateInProgress MatchState = "in_progress"
	MatchStateComplete   MatchState = "complete"
	MatchStateAborted    MatchState = "aborted" // A shooter failed an invariant
)

// ShotRecord is one entry in a match's append-only shot log
type ShotRecord struct {
	Turn     int
	Shooter  PlayerID
	Position Position
	Outcome  Outcome
}

// Match represents a single two-player duel
type Match struct {
	ID        MatchID
	State     MatchState
	BoardSize int
	Players   [2]Player
	Winner    PlayerID // Empty until complete

	Shots []ShotRecord

	StartedAt   time.Time
	CompletedAt time.Time
}

// ShotsBy returns the shot log entries fired by the given player
func (m *Match) ShotsBy(playerID PlayerID) []ShotRecord {
	var result []ShotRecord
	for _, shot := range m.Shots {
		if shot.Shooter == playerID {
			result = append(result, shot)
		}
	}
	return result
}

// MatchSummary is a lightweight record of a completed match
type MatchSummary struct {
	ID        MatchID
	Winner    PlayerID
	Turns     int
	ShotsBy   map[PlayerID]int
	HitsBy    map[PlayerID]int
	SunkBy    map[PlayerID]int
	Completed time.Time
}

// Summarize computes per-player counters from the shot log
func (m *Match) Summarize() MatchSummary {
	summary := MatchSummary{
		ID:        m.ID,
		Winner:    m.Winner,
		Turns:     len(m.Shots),
		ShotsBy:   make(map[PlayerID]int),
		HitsBy:    make(map[PlayerID]int),
		SunkBy:    make(map[PlayerID]int),
		Completed: m.CompletedAt,
	}
	for _, shot := range m.Shots {
		summary.ShotsBy[shot.Shooter]++
		if shot.Outcome.IsHit() {
			summary.HitsBy[shot.Shooter]++
		}
		if shot.Outcome == OutcomeSunk {
			summary.SunkBy[shot.Shooter]++
		}
	}
	return summary
}

// Clone returns a copy of the match with its own shot log
func (m *Match) Clone() *Match {
	clone := *m
	clone.Shots = make([]ShotRecord, len(m.Shots))
	copy(clone.Shots, m.Shots)
	return &clone
}
