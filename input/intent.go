// Package input turns device state into a per-tick Intent. Exactly one
// Source is authoritative for a scene; it is chosen once when the scene is
// built.
package input

import (
	"time"

	"github.com/yohamta/donburi/features/math"
)

// Intent is what the simulation sees of the player's input for one tick.
// Move components are in [-1, 1].
type Intent struct {
	Move   math.Vec2
	Attack bool // requested this tick; edge-triggered
}

// Source produces one Intent per tick. Poll is called exactly once per tick
// with the simulation clock.
type Source interface {
	Poll(now time.Duration) Intent
}

// SourceFunc adapts a function to Source.
type SourceFunc func(now time.Duration) Intent

func (f SourceFunc) Poll(now time.Duration) Intent {
	return f(now)
}
