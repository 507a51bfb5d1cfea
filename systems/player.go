package systems

import (
	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns the tick's movement intent into velocity. Intent is
// ignored while the player is attacking (frozen in place) or being knocked
// back.
func UpdatePlayer(ecs *ecs.ECS) {
	entry, ok := playerEntry(ecs.World)
	if !ok {
		return
	}

	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)

	if physics.Knockback > 0 {
		return
	}

	if player.IsAttacking {
		physics.Stop()
		return
	}

	intent := currentIntent(ecs.World)
	physics.Velocity = intent.Move.MulScalar(cfg.Player.Speed)

	if physics.Velocity.X > 0 {
		player.Facing = cfg.DirectionRight
	} else if physics.Velocity.X < 0 {
		player.Facing = cfg.DirectionLeft
	}

	if physics.Velocity.Magnitude() > 0 {
		state.Set(cfg.Running)
		anim.Play(cfg.Combat.RunAnim, false)
	} else {
		state.Set(cfg.Idle)
		anim.Stop()
	}
}

// UpdatePlayerAttack starts a swing when one was requested this tick, the
// cooldown has run out and no swing is in progress. Other requests are
// dropped silently.
func UpdatePlayerAttack(ecs *ecs.ECS) {
	entry, ok := playerEntry(ecs.World)
	if !ok {
		return
	}

	if !currentIntent(ecs.World).Attack {
		return
	}
	startPlayerAttack(ecs.World, entry)
}

func startPlayerAttack(w donburi.World, entry *donburi.Entry) bool {
	player := components.Player.Get(entry)
	if player.IsAttacking || player.AttackCooldown > 0 {
		return false
	}

	player.IsAttacking = true
	player.AttackCooldown = cfg.Combat.AttackCooldown
	player.AttackSeq++

	components.Physics.Get(entry).Stop()
	components.State.Get(entry).Set(cfg.Windup)
	components.Animation.Get(entry).Play(cfg.Combat.AttackAnim, true)

	Schedule(w, cfg.Combat.SlashDelay, entry.Entity(), components.EffectPlayerSlash, player.AttackSeq)
	return true
}

// playerSlash is the instantaneous area check of the hit phase: every enemy
// whose centre is within the slash radius takes the player's atk.
func playerSlash(w donburi.World, entry *donburi.Entry, token uint64) {
	player := components.Player.Get(entry)
	if !player.IsAttacking || player.AttackSeq != token {
		return
	}

	state := components.State.Get(entry)
	state.Set(cfg.ActiveHit)

	origin := components.Object.Get(entry).Center()

	var hits []*donburi.Entry
	tags.Enemy.Each(w, func(enemy *donburi.Entry) {
		c := components.Object.Get(enemy).Center()
		if c.Distance(origin) <= cfg.Combat.SlashRadius {
			hits = append(hits, enemy)
		}
	})

	for _, enemy := range hits {
		DamageEnemy(w, enemy, player.Atk, origin)
	}

	components.Flash.Get(entry).Start(cfg.Combat.HitFlash, cfg.White)
	state.Set(cfg.Recovery)
}

// finishPlayerAttack ends the swing when its animation completes.
func finishPlayerAttack(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	if !player.IsAttacking {
		return
	}
	player.IsAttacking = false
	components.State.Get(entry).Set(cfg.Idle)
	components.Animation.Get(entry).Stop()
}
