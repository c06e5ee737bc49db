package targeting

import (
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
)

// nextTargetShot pops queued candidates until an untried one is found,
// rebuilding the queue from the active series when it runs dry. A freshly
// built queue with nothing usable exhausts the series.
func (e *Engine) nextTargetShot() (candidate, bool) {
	for len(e.series) > 0 {
		rebuilt := false
		if len(e.queue) == 0 {
			e.queue = e.buildCandidates()
			rebuilt = true
		}
		for len(e.queue) > 0 {
			c := e.queue[0]
			e.queue = e.queue[1:]
			if e.untried.Contains(c.pos) {
				return c, true
			}
		}
		if rebuilt {
			e.exhaustSeries()
		}
	}
	return candidate{}, false
}

func (e *Engine) buildCandidates() []candidate {
	if len(e.series) == 1 {
		return e.neighborCandidates(e.series[0])
	}

	if e.axis == model.OrientationUnknown {
		axis, ok := inferAxis(e.series)
		if !ok {
			latest := e.series[len(e.series)-1]
			e.emit(model.EventDegenerateAxis, latest, model.DegenerateAxisPayload{Series: e.Series()})
			return e.neighborCandidates(latest)
		}
		e.axis = axis
		e.emit(model.EventAxisInferred, e.series[len(e.series)-1], model.AxisInferredPayload{
			Axis:   axis,
			Series: e.Series(),
		})
	}
	return e.axisCandidates()
}

// neighborCandidates returns the untried orthogonal neighbors of pos in random order
func (e *Engine) neighborCandidates(pos model.Position) []candidate {
	var result []candidate
	for _, n := range pos.Neighbors() {
		if e.untried.Contains(n) {
			result = append(result, candidate{pos: n, end: endNone})
		}
	}
	random.Shuffle(e.random, result)
	return result
}

// axisCandidates returns the untried cells one step beyond each end of the
// series, unprobed end first
func (e *Engine) axisCandidates() []candidate {
	low, high := seriesBounds(e.series, e.axis)

	var ends []candidate
	if next := low.Step(e.axis, -1); e.untried.Contains(next) {
		ends = append(ends, candidate{pos: next, end: endLow})
	}
	if next := high.Step(e.axis, 1); e.untried.Contains(next) {
		ends = append(ends, candidate{pos: next, end: endHigh})
	}
	if len(ends) < 2 {
		return ends
	}

	var highFirst bool
	if e.lowProbed != e.highProbed {
		highFirst = e.lowProbed
	} else {
		highFirst = e.random.Intn(2) == 1
	}
	if highFirst {
		ends[0], ends[1] = ends[1], ends[0]
	}
	return ends
}

func (e *Engine) startSeries(seed model.Position) {
	e.series = []model.Position{seed}
	e.resetSeriesState()
}

func (e *Engine) extendSeries(pos model.Position, end seriesEnd) {
	e.series = append(e.series, pos)
	e.queue = nil
	if end == endNone {
		// A neighbor probe that hit fixes which end of the seed was explored
		seed := e.series[0]
		if pos.Row < seed.Row || pos.Col < seed.Col {
			e.lowProbed = true
		} else {
			e.highProbed = true
		}
	}
}

func (e *Engine) markProbed(end seriesEnd) {
	switch end {
	case endLow:
		e.lowProbed = true
	case endHigh:
		e.highProbed = true
	}
}

func (e *Engine) resetSeriesState() {
	e.axis = model.OrientationUnknown
	e.queue = nil
	e.lowProbed = false
	e.highProbed = false
}

// exhaustSeries drops the oldest hit from the active series. The dropped
// hit stays unresolved and may seed a later series.
func (e *Engine) exhaustSeries() {
	dropped := e.series[0]
	e.series = clonePositions(e.series[1:])
	e.resetSeriesState()
	if len(e.series) == 0 {
		if seed, ok := e.oldestLiveUnresolved(); ok {
			e.startSeries(seed)
		}
	}
	e.emit(model.EventSeriesExhausted, dropped, model.SeriesExhaustedPayload{
		Dropped:   dropped,
		Remaining: e.Series(),
	})
}

// resolveSunk commits the cells of the ship sunk at pos
func (e *Engine) resolveSunk(pos model.Position, ownTargeting bool) {
	var group []model.Position
	if ownTargeting && len(e.series) > 0 {
		group = append(clonePositions(e.series), pos)
	} else {
		group = e.contiguousHits(pos)
	}
	model.SortPositions(group)

	members := make(map[model.Position]bool, len(group))
	for _, cell := range group {
		members[cell] = true
		e.view.Set(cell, model.MarkSunk)
	}
	e.unresolved = without(e.unresolved, members)
	e.series = without(e.series, members)
	e.sunkGroups = append(e.sunkGroups, group)
	e.removeRemaining(len(group))
	e.resetSeriesState()

	if len(e.series) == 0 {
		if seed, ok := e.oldestLiveUnresolved(); ok {
			e.startSeries(seed)
		}
	}

	e.emit(model.EventShipSunk, pos, model.ShipSunkPayload{
		Cells:            clonePositions(group),
		RemainingLengths: e.RemainingLengths(),
	})
}

// contiguousHits returns pos plus the unresolved hits running from it along
// whichever axis yields the longer run; ties go to horizontal
func (e *Engine) contiguousHits(pos model.Position) []model.Position {
	best := []model.Position{pos}
	for _, axis := range []model.Orientation{model.Horizontal, model.Vertical} {
		run := []model.Position{pos}
		for _, dir := range []int{-1, 1} {
			for next := pos.Step(axis, dir); e.view.Get(next) == model.MarkHit; next = next.Step(axis, dir) {
				run = append(run, next)
			}
		}
		if len(run) > len(best) {
			best = run
		}
	}
	return best
}

// removeRemaining drops the length that best matches a sunk group of n
// cells: an exact match, else the largest shorter length, else the shortest
func (e *Engine) removeRemaining(n int) {
	if len(e.remaining) == 0 {
		return
	}
	idx := -1
	for i, length := range e.remaining {
		if length == n {
			idx = i
			break
		}
	}
	if idx < 0 {
		for i, length := range e.remaining {
			if length < n && (idx < 0 || length > e.remaining[idx]) {
				idx = i
			}
		}
	}
	if idx < 0 {
		for i, length := range e.remaining {
			if idx < 0 || length < e.remaining[idx] {
				idx = i
			}
		}
	}
	e.remaining = append(e.remaining[:idx], e.remaining[idx+1:]...)
}

// oldestLiveUnresolved returns the oldest unresolved hit that still has an
// untried neighbor
func (e *Engine) oldestLiveUnresolved() (model.Position, bool) {
	for _, hit := range e.unresolved {
		for _, n := range hit.Neighbors() {
			if e.untried.Contains(n) {
				return hit, true
			}
		}
	}
	return model.Position{}, false
}

// inferAxis returns Horizontal if every hit shares a row, Vertical if every
// hit shares a column
func inferAxis(series []model.Position) (model.Orientation, bool) {
	sameRow, sameCol := true, true
	for _, p := range series[1:] {
		if p.Row != series[0].Row {
			sameRow = false
		}
		if p.Col != series[0].Col {
			sameCol = false
		}
	}
	switch {
	case sameRow:
		return model.Horizontal, true
	case sameCol:
		return model.Vertical, true
	default:
		return model.OrientationUnknown, false
	}
}

func seriesBounds(series []model.Position, axis model.Orientation) (model.Position, model.Position) {
	low, high := series[0], series[0]
	for _, p := range series[1:] {
		if axis == model.Horizontal {
			if p.Col < low.Col {
				low = p
			}
			if p.Col > high.Col {
				high = p
			}
		} else {
			if p.Row < low.Row {
				low = p
			}
			if p.Row > high.Row {
				high = p
			}
		}
	}
	return low, high
}

func without(positions []model.Position, drop map[model.Position]bool) []model.Position {
	result := make([]model.Position, 0, len(positions))
	for _, p := range positions {
		if !drop[p] {
			result = append(result, p)
		}
	}
	return result
}
