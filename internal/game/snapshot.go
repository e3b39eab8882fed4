package game

import "github.com/imjvdn/vision-snake/internal/core"

// Snapshot is a copy of the engine state at one tick, safe to hold
// across further Steps. Used by the HUD and by tests asserting
// determinism of seeded runs.
type Snapshot struct {
	Body      []core.Point
	Velocity  core.Point
	Food      core.Point
	Score     int
	Length    int
	PeakLen   int
	FoodEaten int
	Ticks     int
}

// Snapshot captures the current engine state. The body slice is copied.
func (e *Engine) Snapshot() Snapshot {
	body := make([]core.Point, len(e.body))
	copy(body, e.body)
	return Snapshot{
		Body:      body,
		Velocity:  e.vel,
		Food:      e.food,
		Score:     e.score,
		Length:    len(e.body),
		PeakLen:   e.peak,
		FoodEaten: e.eaten,
		Ticks:     e.ticks,
	}
}
