package model

import "sort"

// PositionSet is an insertion-indexed set of positions with O(1) membership
// test and removal. Removal swaps the last element into the freed slot, so
// iteration order is deterministic for a given sequence of operations.
type PositionSet struct {
	items []Position
	index map[Position]int
}

// NewPositionSet creates an empty set
func NewPositionSet() *PositionSet {
	return &PositionSet{index: make(map[Position]int)}
}

// NewFullPositionSet creates a set holding every cell of a size x size grid in row-major order
func NewFullPositionSet(size int) *PositionSet {
	s := &PositionSet{
		items: make([]Position, 0, size*size),
		index: make(map[Position]int, size*size),
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			s.Add(Position{Row: row, Col: col})
		}
	}
	return s
}

// Add inserts pos, returning false if it was already present
func (s *PositionSet) Add(pos Position) bool {
	if _, ok := s.index[pos]; ok {
		return false
	}
	s.index[pos] = len(s.items)
	s.items = append(s.items, pos)
	return true
}

// Remove deletes pos, returning false if it was not present
func (s *PositionSet) Remove(pos Position) bool {
	i, ok := s.index[pos]
	if !ok {
		return false
	}
	last := len(s.items) - 1
	if i != last {
		moved := s.items[last]
		s.items[i] = moved
		s.index[moved] = i
	}
	s.items = s.items[:last]
	delete(s.index, pos)
	return true
}

// Contains reports whether pos is in the set
func (s *PositionSet) Contains(pos Position) bool {
	_, ok := s.index[pos]
	return ok
}

// Len returns the number of positions in the set
func (s *PositionSet) Len() int {
	return len(s.items)
}

// At returns the i-th position in internal order
func (s *PositionSet) At(i int) Position {
	return s.items[i]
}

// Sorted returns a row-major sorted copy of the members
func (s *PositionSet) Sorted() []Position {
	result := make([]Position, len(s.items))
	copy(result, s.items)
	SortPositions(result)
	return result
}

// SortPositions sorts positions in row-major order
func SortPositions(positions []Position) {
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Row != positions[j].Row {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Col < positions[j].Col
	})
}
