package factory

import (
	"time"

	"github.com/automoto/sushi-knight/archetypes"
	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile launches a spit from start so that it reaches aim after
// flight. The caller schedules the landing.
func CreateProjectile(ecs *ecs.ECS, owner donburi.Entity, start, aim math.Vec2, flight time.Duration, damage int) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	newBody(ecs, p, start.X, start.Y, cfg.Ranged.Size, cfg.Ranged.Size, tags.ResolvProjectile)

	seconds := flight.Seconds()
	velocity := math.Vec2{}
	if seconds > 0 {
		velocity = aim.Sub(start).MulScalar(1 / seconds)
	}
	end := start.Add(velocity.MulScalar(seconds))

	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:    owner,
		Start:    start,
		Velocity: velocity,
		Flight:   flight,
		Damage:   damage,
		TweenX:   gween.New(float32(start.X), float32(end.X), float32(seconds), ease.Linear),
		TweenY:   gween.New(float32(start.Y), float32(end.Y), float32(seconds), ease.Linear),
	})

	return p
}
