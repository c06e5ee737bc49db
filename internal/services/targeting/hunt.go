package targeting

import (
	"github.com/mcoot/battleship-go/internal/model"
)

// huntShot picks the untried cell with the highest density score. Ties are
// narrowed to the configured parity class while every remaining ship spans
// at least two cells, then broken at random.
func (e *Engine) huntShot() (model.Position, int) {
	scores := e.density.Compute(e.view, e.remaining)

	best := -1
	var candidates []model.Position
	for i := 0; i < e.untried.Len(); i++ {
		pos := e.untried.At(i)
		score := scores[pos.Row][pos.Col]
		switch {
		case score > best:
			best = score
			candidates = []model.Position{pos}
		case score == best:
			candidates = append(candidates, pos)
		}
	}

	// Set order depends on removal history; sort so the random pick is reproducible
	model.SortPositions(candidates)

	if e.smallestRemaining() >= 2 {
		if onParity := filterParity(candidates, e.cfg.ParityClass); len(onParity) > 0 {
			candidates = onParity
		}
	}

	return candidates[e.random.Intn(len(candidates))], best
}

func (e *Engine) smallestRemaining() int {
	smallest := 0
	for _, length := range e.remaining {
		if smallest == 0 || length < smallest {
			smallest = length
		}
	}
	return smallest
}

func filterParity(positions []model.Position, class int) []model.Position {
	var result []model.Position
	for _, p := range positions {
		if p.Parity() == class {
			result = append(result, p)
		}
	}
	return result
}
