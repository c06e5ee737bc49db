package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// String formats the position in console notation: column letter, 1-based row (e.g. "B5")
func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row+1)
}

// Neighbors returns the four orthogonal neighbors (up, down, left, right).
// Callers filter out-of-bounds results.
func (p Position) Neighbors() []Position {
	return []Position{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}
}

// Step returns the position n cells away along the given orientation
func (p Position) Step(o Orientation, n int) Position {
	if o == Horizontal {
		return Position{Row: p.Row, Col: p.Col + n}
	}
	return Position{Row: p.Row + n, Col: p.Col}
}

// Parity returns (row+col) mod 2
func (p Position) Parity() int {
	return ((p.Row+p.Col)%2 + 2) % 2
}

// IsAdjacent returns true if q is an orthogonal neighbor of p
func (p Position) IsAdjacent(q Position) bool {
	dr := p.Row - q.Row
	dc := p.Col - q.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// ParsePosition converts console notation ("B5") into a Position.
// The letter selects the column, the number the 1-based row.
func ParsePosition(s string, size int) (Position, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}

	letter := strings.ToUpper(s[:1])[0]
	if letter < 'A' || letter > 'Z' {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}

	pos := Position{Row: row - 1, Col: int(letter - 'A')}
	if pos.Row < 0 || pos.Row >= size || pos.Col >= size {
		return Position{}, fmt.Errorf("%w: %q", ErrOutOfBounds, s)
	}
	return pos, nil
}

// Orientation is a ship's axis. The zero value means the axis is unknown.
type Orientation string

const (
	OrientationUnknown Orientation = ""
	Horizontal         Orientation = "horizontal"
	Vertical           Orientation = "vertical"
)

// ParseOrientation accepts "H"/"V" and the full names, case-insensitively
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal":
		return Horizontal, nil
	case "v", "vertical":
		return Vertical, nil
	default:
		return OrientationUnknown, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
	}
}

// IsValid returns true for Horizontal and Vertical
func (o Orientation) IsValid() bool {
	return o == Horizontal || o == Vertical
}
