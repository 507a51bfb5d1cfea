package systems

import (
	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// meleeBehavior: Chase -> Windup -> ActiveHit -> Recovery -> Chase.
//
// Recovery ends on whichever comes first: the attack animation completing
// or the recover timeout. Every timer armed by a swing carries the swing's
// sequence number, so a late timer from an earlier swing cannot touch the
// current one.
type meleeBehavior struct{}

func (meleeBehavior) Tick(e *ecs.ECS, enemy, player *donburi.Entry) {
	data := components.Enemy.Get(enemy)
	physics := components.Physics.Get(enemy)

	if physics.Knockback > 0 {
		return
	}
	if data.IsAttacking {
		physics.Stop()
		return
	}

	if distanceBetween(enemy, player) > data.TypeConfig.AttackStartRange {
		components.State.Get(enemy).Set(cfg.StateChase)
		chase(e.World, enemy, data, player, data.TypeConfig.ChaseSpeed)
		return
	}

	physics.Stop()
	if data.AttackCooldown <= 0 {
		meleeStartAttack(e.World, enemy, player)
	}
}

func (meleeBehavior) OnCooldownElapsed(e *ecs.ECS, enemy, player *donburi.Entry) {
	data := components.Enemy.Get(enemy)
	if data.IsAttacking || components.Physics.Get(enemy).Knockback > 0 {
		return
	}
	if distanceBetween(enemy, player) <= data.TypeConfig.AttackStartRange {
		meleeStartAttack(e.World, enemy, player)
	}
}

func (meleeBehavior) OnPlayerContact(e *ecs.ECS, enemy, player *donburi.Entry) {
	data := components.Enemy.Get(enemy)
	if !data.HitActive {
		return
	}
	source := components.Object.Get(enemy).Center()
	DamagePlayer(e.World, data.Atk, source, cfg.Combat.ContactInvulnerability, cfg.Combat.PlayerKnockbackSpeed)
}

func meleeStartAttack(w donburi.World, enemy, player *donburi.Entry) {
	data := components.Enemy.Get(enemy)
	tc := data.TypeConfig

	data.IsAttacking = true
	data.HitActive = false
	data.AttackCooldown = tc.AttackCooldown
	data.AttackSeq++

	components.Physics.Get(enemy).Stop()
	data.Facing = facingToward(
		components.Object.Get(enemy).Center(),
		components.Object.Get(player).Center(),
		data.Facing,
	)
	components.State.Get(enemy).Set(cfg.Windup)
	components.Animation.Get(enemy).Play(tc.AttackAnimation, true)

	id := enemy.Entity()
	Schedule(w, tc.HitOpenDelay, id, components.EffectEnemyHitOpen, data.AttackSeq)
	Schedule(w, tc.HitOpenDelay+tc.HitWindow, id, components.EffectEnemyHitClose, data.AttackSeq)
	Schedule(w, tc.RecoverTimeout, id, components.EffectEnemyRecover, data.AttackSeq)
}

func meleeHitOpen(enemy *donburi.Entry, token uint64) {
	data := components.Enemy.Get(enemy)
	if !data.IsAttacking || data.AttackSeq != token {
		return
	}
	data.HitActive = true
	components.State.Get(enemy).Set(cfg.ActiveHit)
}

func meleeHitClose(enemy *donburi.Entry, token uint64) {
	data := components.Enemy.Get(enemy)
	if !data.IsAttacking || data.AttackSeq != token {
		return
	}
	data.HitActive = false
	components.State.Get(enemy).Set(cfg.Recovery)
}

// meleeRecover is reached from the recover timeout and from the attack
// animation completing; the second arrival is a no-op.
func meleeRecover(enemy *donburi.Entry, token uint64) {
	data := components.Enemy.Get(enemy)
	if !data.IsAttacking || data.AttackSeq != token {
		return
	}
	data.IsAttacking = false
	data.HitActive = false
	components.State.Get(enemy).Set(cfg.StateChase)
	components.Animation.Get(enemy).Stop()
}
