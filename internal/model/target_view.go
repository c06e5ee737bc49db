package model

// Mark is the shooter's record of one cell on the opponent's board
type Mark string

const (
	MarkUntried Mark = "untried"
	MarkHit     Mark = "hit"  // Hit, not yet attributed to a sunk ship
	MarkMiss    Mark = "miss"
	MarkSunk    Mark = "sunk" // Hit, committed to a sunk-ship group
)

// TargetView is a shooter's knowledge of the opponent's grid
type TargetView struct {
	Size  int
	Marks [][]Mark // Row-major: Marks[row][col]
}

// NewTargetView creates a view with every cell untried
func NewTargetView(size int) *TargetView {
	marks := make([][]Mark, size)
	for i := range marks {
		marks[i] = make([]Mark, size)
		for j := range marks[i] {
			marks[i][j] = MarkUntried
		}
	}
	return &TargetView{Size: size, Marks: marks}
}

// Get returns the mark at pos, or "" if out of bounds
func (v *TargetView) Get(pos Position) Mark {
	if !v.IsValidPosition(pos) {
		return ""
	}
	return v.Marks[pos.Row][pos.Col]
}

// Set records a mark at pos; out-of-bounds positions are ignored
func (v *TargetView) Set(pos Position, mark Mark) {
	if v.IsValidPosition(pos) {
		v.Marks[pos.Row][pos.Col] = mark
	}
}

// IsValidPosition returns true if the position is within bounds
func (v *TargetView) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < v.Size && pos.Col >= 0 && pos.Col < v.Size
}

// IsUntried returns true for in-bounds cells not yet fired upon
func (v *TargetView) IsUntried(pos Position) bool {
	return v.Get(pos) == MarkUntried
}

// Clone returns a deep copy of the view
func (v *TargetView) Clone() *TargetView {
	marks := make([][]Mark, v.Size)
	for i := range marks {
		marks[i] = make([]Mark, v.Size)
		copy(marks[i], v.Marks[i])
	}
	return &TargetView{Size: v.Size, Marks: marks}
}
