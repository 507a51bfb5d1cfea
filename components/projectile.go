package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ProjectileData is a spit in flight. The tweens carry the centre from the
// launch point along Velocity for Flight; landing is driven by the timer
// queue, not by the tweens finishing.
type ProjectileData struct {
	Owner    donburi.Entity
	Start    math.Vec2
	Velocity math.Vec2
	Flight   time.Duration
	Damage   int // carried over to the puddle
	TweenX   *gween.Tween
	TweenY   *gween.Tween
	Landed   bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
