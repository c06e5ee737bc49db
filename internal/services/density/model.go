package density

import (
	"github.com/mcoot/battleship-go/internal/model"
)

// Config holds the score adjustments applied on top of raw placement counts
type Config struct {
	// AdjacencyBonus is added to every untried cell next to an unresolved hit
	AdjacencyBonus int
	// IsolationPenalty is subtracted from a positive cell with no positive neighbor
	IsolationPenalty int
}

// DefaultConfig returns the default density adjustments
func DefaultConfig() Config {
	return Config{
		AdjacencyBonus:   15,
		IsolationPenalty: 3,
	}
}

// Model scores untried cells by how many placements of the remaining ships
// could cover them. It holds no mutable state: identical inputs always give
// identical grids.
type Model struct {
	cfg Config
}

// New creates a new density Model
func New(cfg Config) *Model {
	return &Model{cfg: cfg}
}

// Config returns the model's configuration
func (m *Model) Config() Config {
	return m.cfg
}

// Compute returns a Size x Size score grid. Only untried cells receive
// non-zero scores.
func (m *Model) Compute(view *model.TargetView, remaining []int) [][]int {
	size := view.Size
	scores := newGrid(size)

	for _, length := range remaining {
		if length <= 0 || length > size {
			continue
		}
		for _, orientation := range []model.Orientation{model.Horizontal, model.Vertical} {
			m.countWindows(view, scores, length, orientation)
		}
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pos := model.Position{Row: row, Col: col}
			if !view.IsUntried(pos) {
				scores[row][col] = 0
				continue
			}
			if m.cfg.AdjacencyBonus > 0 && nextToUnresolvedHit(view, pos) {
				scores[row][col] += m.cfg.AdjacencyBonus
			}
		}
	}

	if m.cfg.IsolationPenalty > 0 {
		scores = m.applyIsolationPenalty(view, scores)
	}
	return scores
}

// countWindows adds one to every cell of each window of the given length
// and orientation that contains no miss
func (m *Model) countWindows(view *model.TargetView, scores [][]int, length int, orientation model.Orientation) {
	size := view.Size
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			start := model.Position{Row: row, Col: col}
			end := start.Step(orientation, length-1)
			if !view.IsValidPosition(end) {
				continue
			}
			if windowBlocked(view, start, orientation, length) {
				continue
			}
			for i := 0; i < length; i++ {
				cell := start.Step(orientation, i)
				scores[cell.Row][cell.Col]++
			}
		}
	}
}

func windowBlocked(view *model.TargetView, start model.Position, orientation model.Orientation, length int) bool {
	for i := 0; i < length; i++ {
		if view.Get(start.Step(orientation, i)) == model.MarkMiss {
			return true
		}
	}
	return false
}

func nextToUnresolvedHit(view *model.TargetView, pos model.Position) bool {
	for _, n := range pos.Neighbors() {
		if view.Get(n) == model.MarkHit {
			return true
		}
	}
	return false
}

// applyIsolationPenalty reads neighbor scores from the unpenalized grid
func (m *Model) applyIsolationPenalty(view *model.TargetView, scores [][]int) [][]int {
	size := view.Size
	result := newGrid(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			score := scores[row][col]
			result[row][col] = score
			if score <= 0 {
				continue
			}
			pos := model.Position{Row: row, Col: col}
			isolated := true
			for _, n := range pos.Neighbors() {
				if view.IsValidPosition(n) && scores[n.Row][n.Col] > 0 {
					isolated = false
					break
				}
			}
			if isolated {
				result[row][col] = max(0, score-m.cfg.IsolationPenalty)
			}
		}
	}
	return result
}

func newGrid(size int) [][]int {
	grid := make([][]int, size)
	for i := range grid {
		grid[i] = make([]int, size)
	}
	return grid
}
