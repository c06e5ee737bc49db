package model

import "errors"

// Common errors used across the application
var (
	// Placement errors
	ErrOutOfBounds        = errors.New("position is out of bounds")
	ErrOverlap            = errors.New("cell is already occupied by a ship")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidShipLength  = errors.New("invalid ship length")
	ErrPlacementFailed    = errors.New("could not place fleet")

	// Coordinate errors
	ErrInvalidPosition = errors.New("invalid board position")

	// Engine errors
	ErrEngineExhausted      = errors.New("targeting engine has no untried positions left")
	ErrPositionAlreadyTried = errors.New("position has already been tried")
	ErrInvalidBoardSize     = errors.New("invalid board size")

	// Strategy errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")

	// Match errors
	ErrMatchNotFound  = errors.New("match not found")
	ErrMatchTurnLimit = errors.New("match exceeded the turn limit")
)
