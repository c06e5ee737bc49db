package model

// PlayerID identifies a participant within a match
type PlayerID string

// Player is a match participant controlled by a bot strategy
type Player struct {
	ID       PlayerID
	Name     string
	Strategy string // One of the BotStrategy constants
}
