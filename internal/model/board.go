package model

// CellState is the owner's view of a cell
type CellState string

const (
	CellWater   CellState = "water"
	CellShip    CellState = "ship"
	CellShipHit CellState = "ship_hit"
	CellMiss    CellState = "miss"
)

// Outcome is the result of a shot
type Outcome string

const (
	OutcomeMiss        Outcome = "miss"
	OutcomeHit         Outcome = "hit"
	OutcomeSunk        Outcome = "sunk"
	OutcomeAlreadyShot Outcome = "already_shot"
)

// IsHit returns true for Hit and Sunk
func (o Outcome) IsHit() bool {
	return o == OutcomeHit || o == OutcomeSunk
}

// Board is one player's grid together with the ships placed on it
type Board struct {
	Size  int
	Cells [][]CellState // Row-major: Cells[row][col]
	Ships []*Ship

	owners map[Position]*Ship
}

// NewBoard creates a board of the given size filled with water
func NewBoard(size int) *Board {
	cells := make([][]CellState, size)
	for i := range cells {
		cells[i] = make([]CellState, size)
		for j := range cells[i] {
			cells[i][j] = CellWater
		}
	}
	return &Board{
		Size:   size,
		Cells:  cells,
		owners: make(map[Position]*Ship),
	}
}

// Get returns the state at the given position, or "" if out of bounds
func (b *Board) Get(pos Position) CellState {
	if !b.IsValidPosition(pos) {
		return ""
	}
	return b.Cells[pos.Row][pos.Col]
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// ShipCells computes the cells a ship of the given length would occupy
func ShipCells(length int, start Position, orientation Orientation) []Position {
	cells := make([]Position, length)
	for i := range cells {
		cells[i] = start.Step(orientation, i)
	}
	return cells
}

// PlaceShip validates and places a ship of the given length. It is the only
// way cells become CellShip.
func (b *Board) PlaceShip(length int, start Position, orientation Orientation) (*Ship, error) {
	if !orientation.IsValid() {
		return nil, ErrInvalidOrientation
	}
	if length <= 0 {
		return nil, ErrInvalidShipLength
	}

	cells := ShipCells(length, start, orientation)
	for _, cell := range cells {
		if !b.IsValidPosition(cell) {
			return nil, ErrOutOfBounds
		}
	}
	for _, cell := range cells {
		if state := b.Get(cell); state == CellShip || state == CellShipHit {
			return nil, ErrOverlap
		}
	}

	ship := NewShip(len(b.Ships), "", length)
	ship.Cells = cells
	for _, cell := range cells {
		b.Cells[cell.Row][cell.Col] = CellShip
		b.owners[cell] = ship
	}
	b.Ships = append(b.Ships, ship)
	return ship, nil
}

// ReceiveShot resolves an incoming shot. Shooting a cell twice returns
// OutcomeAlreadyShot and leaves the board unchanged.
func (b *Board) ReceiveShot(pos Position) (Outcome, error) {
	if !b.IsValidPosition(pos) {
		return "", ErrOutOfBounds
	}

	switch b.Cells[pos.Row][pos.Col] {
	case CellWater:
		b.Cells[pos.Row][pos.Col] = CellMiss
		return OutcomeMiss, nil
	case CellShip:
		b.Cells[pos.Row][pos.Col] = CellShipHit
		ship := b.owners[pos]
		ship.HitPart(pos)
		if ship.IsSunk() {
			return OutcomeSunk, nil
		}
		return OutcomeHit, nil
	default:
		return OutcomeAlreadyShot, nil
	}
}

// ShipAt returns the ship occupying pos, or nil
func (b *Board) ShipAt(pos Position) *Ship {
	return b.owners[pos]
}

// AllSunk returns true if every placed ship is sunk
func (b *Board) AllSunk() bool {
	for _, ship := range b.Ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

// RemainingHitpoints returns the number of ship cells not yet hit
func (b *Board) RemainingHitpoints() int {
	total := 0
	for _, ship := range b.Ships {
		total += ship.Length - ship.HitCount()
	}
	return total
}

// SunkCount returns the number of sunk ships
func (b *Board) SunkCount() int {
	count := 0
	for _, ship := range b.Ships {
		if ship.IsSunk() {
			count++
		}
	}
	return count
}

// ShipCellCount returns the number of cells in CellShip or CellShipHit state
func (b *Board) ShipCellCount() int {
	count := 0
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if s := b.Cells[row][col]; s == CellShip || s == CellShipHit {
				count++
			}
		}
	}
	return count
}

// Snapshot returns a copy of the grid
func (b *Board) Snapshot() [][]CellState {
	result := make([][]CellState, b.Size)
	for row := range result {
		result[row] = make([]CellState, b.Size)
		copy(result[row], b.Cells[row])
	}
	return result
}
