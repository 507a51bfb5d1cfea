package systems

import (
	"time"

	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DamagePlayer applies amount from a source at the given point unless the
// player is invulnerable or the run is over. On success the player gets an
// invulnerability window, knockback away from the source and a red flash.
// Reports whether damage was applied.
func DamagePlayer(w donburi.World, amount int, source math.Vec2, invuln time.Duration, knockbackSpeed float64) bool {
	if IsGameOver(w) {
		return false
	}
	entry, ok := playerEntry(w)
	if !ok {
		return false
	}

	player := components.Player.Get(entry)
	t := now(w)
	if player.Invulnerable(t) {
		return false
	}

	health := components.Health.Get(entry)
	health.Damage(amount)
	player.InvulnerableUntil = t + invuln

	applyKnockback(entry, source, knockbackSpeed, cfg.Combat.PlayerKnockbackDuration)
	components.Flash.Get(entry).Start(cfg.Combat.DamageFlash, cfg.Red)

	ReportStats(w)

	if health.Current <= 0 {
		enterGameOver(w)
	}
	return true
}

// DamageEnemy applies amount and knocks the enemy away from source. An
// enemy at zero hp is removed from the space and the world immediately.
// Reports whether the enemy died.
func DamageEnemy(w donburi.World, entry *donburi.Entry, amount int, source math.Vec2) bool {
	health := components.Health.Get(entry)
	health.Damage(amount)

	if health.Current <= 0 {
		destroyEntity(w, entry)
		ReportStats(w)
		return true
	}

	applyKnockback(entry, source, cfg.Combat.EnemyKnockbackSpeed, cfg.Combat.EnemyKnockbackDuration)
	components.Flash.Get(entry).Start(cfg.Combat.HitFlash, cfg.White)

	ReportStats(w)
	return false
}

// applyKnockback sets velocity away from source. A source on top of the
// target pushes opposite to its facing.
func applyKnockback(entry *donburi.Entry, source math.Vec2, speed float64, d time.Duration) {
	if speed <= 0 || d <= 0 {
		return
	}
	physics := components.Physics.Get(entry)
	center := components.Object.Get(entry).Center()

	dir := center.Sub(source)
	if dir.Magnitude() == 0 {
		dir = math.NewVec2(-facingOf(entry), 0)
	} else {
		dir = dir.Normalized()
	}

	physics.Velocity = dir.MulScalar(speed)
	physics.Knockback = d
}

func facingOf(entry *donburi.Entry) float64 {
	switch {
	case entry.HasComponent(components.Player):
		return components.Player.Get(entry).Facing
	case entry.HasComponent(components.Enemy):
		return components.Enemy.Get(entry).Facing
	}
	return cfg.DirectionRight
}

// facingToward returns the horizontal facing from a toward b, keeping
// current when they are vertically aligned.
func facingToward(a, b math.Vec2, current float64) float64 {
	switch {
	case b.X > a.X:
		return cfg.DirectionRight
	case b.X < a.X:
		return cfg.DirectionLeft
	}
	return current
}
