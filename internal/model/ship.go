package model

// ShipClass names a ship length in a fleet
type ShipClass struct {
	Name   string
	Length int
}

// DefaultFleet returns the standard five-ship fleet
func DefaultFleet() []ShipClass {
	return []ShipClass{
		{Name: "Carrier", Length: 5},
		{Name: "Battleship", Length: 4},
		{Name: "Cruiser", Length: 3},
		{Name: "Submarine", Length: 3},
		{Name: "Destroyer", Length: 2},
	}
}

// FleetLengths returns the lengths of the given fleet, in order
func FleetLengths(fleet []ShipClass) []int {
	lengths := make([]int, len(fleet))
	for i, class := range fleet {
		lengths[i] = class.Length
	}
	return lengths
}

// FleetHitpoints returns the total number of cells the fleet occupies
func FleetHitpoints(fleet []ShipClass) int {
	total := 0
	for _, class := range fleet {
		total += class.Length
	}
	return total
}

// Ship is one vessel placed on a board. Cells is fixed at placement;
// Hits[i] records whether Cells[i] has been hit.
type Ship struct {
	ID     int
	Name   string
	Length int
	Cells  []Position
	Hits   []bool
}

// NewShip creates an unplaced ship of the given length
func NewShip(id int, name string, length int) *Ship {
	return &Ship{
		ID:     id,
		Name:   name,
		Length: length,
		Hits:   make([]bool, length),
	}
}

// HitPart marks the cell at pos as hit. It returns false without mutating
// if pos is not one of the ship's cells or was already hit.
func (s *Ship) HitPart(pos Position) bool {
	i := s.cellIndex(pos)
	if i < 0 || s.Hits[i] {
		return false
	}
	s.Hits[i] = true
	return true
}

// IsSunk returns true when every cell has been hit
func (s *Ship) IsSunk() bool {
	for _, hit := range s.Hits {
		if !hit {
			return false
		}
	}
	return true
}

// HitCount returns the number of cells hit so far
func (s *Ship) HitCount() int {
	count := 0
	for _, hit := range s.Hits {
		if hit {
			count++
		}
	}
	return count
}

func (s *Ship) cellIndex(pos Position) int {
	for i, cell := range s.Cells {
		if cell == pos {
			return i
		}
	}
	return -1
}
