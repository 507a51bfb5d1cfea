package systems

import (
	"math"
	"time"

	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// rangedBehavior keeps its distance and spits on a randomised cadence. It
// never deals contact damage; only the hazards its spit leaves do.
type rangedBehavior struct{}

func (rangedBehavior) Tick(e *ecs.ECS, enemy, player *donburi.Entry) {
	data := components.Enemy.Get(enemy)
	physics := components.Physics.Get(enemy)

	if physics.Knockback > 0 {
		return
	}

	if distanceBetween(enemy, player) > data.TypeConfig.SpitRange {
		components.State.Get(enemy).Set(cfg.StateChase)
		chase(e.World, enemy, data, player, data.TypeConfig.ChaseSpeed)
		return
	}

	physics.Stop()
	components.State.Get(enemy).Set(cfg.StateHold)
	data.Facing = facingToward(
		components.Object.Get(enemy).Center(),
		components.Object.Get(player).Center(),
		data.Facing,
	)
}

func (rangedBehavior) OnCooldownElapsed(e *ecs.ECS, enemy, player *donburi.Entry) {
	data := components.Enemy.Get(enemy)
	tc := data.TypeConfig

	if distanceBetween(enemy, player) <= tc.SpitRange {
		launchProjectile(e, enemy, player)
	}
	data.AttackCooldown = randomOf(e.World).Duration(tc.SpitIntervalMin, tc.SpitIntervalMax)
}

func (rangedBehavior) OnPlayerContact(*ecs.ECS, *donburi.Entry, *donburi.Entry) {}

// FlightTime is distance over the nominal spit speed, clamped so spits are
// never instant nor overlong.
func FlightTime(distance float64) time.Duration {
	if cfg.Ranged.Speed <= 0 {
		return cfg.Ranged.MaxFlight
	}
	flight := time.Duration(distance / cfg.Ranged.Speed * float64(time.Second))
	return min(max(flight, cfg.Ranged.MinFlight), cfg.Ranged.MaxFlight)
}

// launchProjectile aims at the player's current centre with a random
// angular spread and schedules the landing. The spit covers the whole
// distance in the clamped flight time, so it always lands on its aim
// point; its speed varies with distance instead of staying at
// cfg.Ranged.Speed.
func launchProjectile(e *ecs.ECS, enemy, player *donburi.Entry) {
	start := components.Object.Get(enemy).Center()
	target := components.Object.Get(player).Center()
	delta := target.Sub(start)
	dist := delta.Magnitude()

	angle := math.Atan2(delta.Y, delta.X) + randomOf(e.World).Spread(cfg.Ranged.Spread)
	aim := start.Add(dmath.NewVec2(math.Cos(angle), math.Sin(angle)).MulScalar(dist))

	flight := FlightTime(dist)
	p := factory.CreateProjectile(e, enemy.Entity(), start, aim, flight, components.Enemy.Get(enemy).Atk)
	Schedule(e.World, flight, p.Entity(), components.EffectProjectileLand, 0)
}

// UpdateProjectiles moves spits along their flight.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := float32(clockOf(ecs.World).Delta.Seconds())
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if p.Landed {
			return
		}
		x, _ := p.TweenX.Update(dt)
		y, _ := p.TweenY.Update(dt)
		components.Object.Get(e).SetCenter(dmath.NewVec2(float64(x), float64(y)))
	})
}

// landProjectile deactivates the spit where it is now, which is not
// necessarily where it was aimed, and leaves a hazard there.
func landProjectile(ecs *ecs.ECS, entry *donburi.Entry) {
	p := components.Projectile.Get(entry)
	if p.Landed {
		return
	}
	p.Landed = true
	at := components.Object.Get(entry).Center()
	damage := p.Damage
	destroyEntity(ecs.World, entry)

	hazard := factory.CreateHazard(ecs, at.X, at.Y, damage)
	Schedule(ecs.World, cfg.Hazard.Lifespan, hazard.Entity(), components.EffectHazardExpire, 0)
}
