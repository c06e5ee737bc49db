package targeting

import (
	"log/slog"

	"github.com/mcoot/battleship-go/internal/model"
)

// Observer receives engine events. It must not call back into the engine.
type Observer func(model.Event)

// LogObserver returns an Observer that writes events to the logger at debug level
func LogObserver(logger *slog.Logger) Observer {
	logger = logger.With(slog.String("component", "targeting"))
	return func(ev model.Event) {
		attrs := []any{
			slog.String("event", string(ev.Type)),
			slog.String("mode", string(ev.Mode)),
			slog.String("position", ev.Position.String()),
		}
		switch p := ev.Payload.(type) {
		case model.ModeChangedPayload:
			attrs = append(attrs, slog.String("from", string(p.From)), slog.String("to", string(p.To)))
		case model.ShotSelectedPayload:
			attrs = append(attrs, slog.Int("score", p.Score), slog.Bool("endgame", p.Endgame), slog.Int("untried", p.Untried))
		case model.AxisInferredPayload:
			attrs = append(attrs, slog.String("axis", string(p.Axis)), slog.Int("series_length", len(p.Series)))
		case model.DegenerateAxisPayload:
			attrs = append(attrs, slog.Int("series_length", len(p.Series)))
		case model.ShipSunkPayload:
			attrs = append(attrs, slog.Int("ship_length", len(p.Cells)), slog.Any("remaining_lengths", p.RemainingLengths))
		case model.SeriesExhaustedPayload:
			attrs = append(attrs, slog.String("dropped", p.Dropped.String()), slog.Int("series_length", len(p.Remaining)))
		case model.EndgameEngagedPayload:
			attrs = append(attrs, slog.Int("opponent_hitpoints", p.OpponentHitpoints), slog.Int("threshold", p.Threshold))
		}
		logger.Debug("targeting event", attrs...)
	}
}

// Recorder is an Observer that keeps every event, for tests and replays
type Recorder struct {
	Events []model.Event
}

// Observe appends the event
func (r *Recorder) Observe(ev model.Event) {
	r.Events = append(r.Events, ev)
}

// OfType returns the recorded events of the given type
func (r *Recorder) OfType(t model.EventType) []model.Event {
	var result []model.Event
	for _, ev := range r.Events {
		if ev.Type == t {
			result = append(result, ev)
		}
	}
	return result
}
