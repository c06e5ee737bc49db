package model

// EventType identifies the type of targeting event
type EventType string

const (
	EventModeChanged     EventType = "mode_changed"
	EventShotSelected    EventType = "shot_selected"
	EventAxisInferred    EventType = "axis_inferred"
	EventDegenerateAxis  EventType = "degenerate_axis"
	EventShipSunk        EventType = "ship_sunk"
	EventSeriesExhausted EventType = "series_exhausted"
	EventEndgameEngaged  EventType = "endgame_engaged"
)

// TargetingMode is the targeting engine's current state
type TargetingMode string

const (
	ModeHunting   TargetingMode = "hunting"
	ModeTargeting TargetingMode = "targeting"
)

// Event is emitted by the targeting engine to an optional observer
type Event struct {
	Type     EventType
	Mode     TargetingMode
	Position Position // The shot or hit the event concerns, if any
	Payload  any      // Type-specific data
}

// ModeChangedPayload contains data for mode changed events
type ModeChangedPayload struct {
	From TargetingMode
	To   TargetingMode
}

// ShotSelectedPayload contains data for shot selected events
type ShotSelectedPayload struct {
	Score   int  // Density score for hunting shots, 0 otherwise
	Endgame bool // Selected under endgame priority
	Untried int  // Untried positions remaining before this shot
}

// AxisInferredPayload contains data for axis inferred events
type AxisInferredPayload struct {
	Axis   Orientation
	Series []Position
}

// DegenerateAxisPayload contains data for degenerate axis events
type DegenerateAxisPayload struct {
	Series []Position
}

// ShipSunkPayload contains data for ship sunk events
type ShipSunkPayload struct {
	Cells            []Position
	RemainingLengths []int
}

// SeriesExhaustedPayload contains data for series exhausted events
type SeriesExhaustedPayload struct {
	Dropped   Position
	Remaining []Position
}

// EndgameEngagedPayload contains data for endgame engaged events
type EndgameEngagedPayload struct {
	OpponentHitpoints int
	Threshold         int
}
