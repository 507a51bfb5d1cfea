package systems

import (
	"time"

	"github.com/automoto/sushi-knight/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Schedule arms a one-shot effect against owner. It fires on the first
// later tick whose clock reaches now+after. The owner is re-validated at
// dispatch; a destroyed owner turns the effect into a no-op.
func Schedule(w donburi.World, after time.Duration, owner donburi.Entity, effect components.TimerEffect, token uint64) {
	timers, ok := timersOf(w)
	if !ok {
		return
	}
	clock := clockOf(w)
	timers.Push(components.ScheduledEvent{
		FireAt:    clock.Now + after,
		ArmedTick: clock.Tick,
		Owner:     owner,
		Effect:    effect,
		Token:     token,
	})
}

// UpdateTimers dispatches every due effect. Each runs to completion before
// the next is popped.
func UpdateTimers(ecs *ecs.ECS) {
	timers, ok := timersOf(ecs.World)
	if !ok {
		return
	}
	clock := clockOf(ecs.World)

	for {
		ev, due := timers.PopDue(clock.Now, clock.Tick)
		if !due {
			return
		}
		dispatchTimer(ecs, ev)
	}
}

func dispatchTimer(ecs *ecs.ECS, ev components.ScheduledEvent) {
	w := ecs.World
	if !w.Valid(ev.Owner) {
		return
	}

	switch ev.Effect {
	case components.EffectPlayerSlash:
		if entry, ok := liveEntry(w, ev.Owner, components.Player); ok {
			playerSlash(w, entry, ev.Token)
		}
	case components.EffectEnemyHitOpen:
		if entry, ok := liveEntry(w, ev.Owner, components.Enemy); ok {
			meleeHitOpen(entry, ev.Token)
		}
	case components.EffectEnemyHitClose:
		if entry, ok := liveEntry(w, ev.Owner, components.Enemy); ok {
			meleeHitClose(entry, ev.Token)
		}
	case components.EffectEnemyRecover:
		if entry, ok := liveEntry(w, ev.Owner, components.Enemy); ok {
			meleeRecover(entry, ev.Token)
		}
	case components.EffectProjectileLand:
		if entry, ok := liveEntry(w, ev.Owner, components.Projectile); ok {
			landProjectile(ecs, entry)
		}
	case components.EffectHazardExpire:
		if entry, ok := liveEntry(w, ev.Owner, components.Hazard); ok {
			destroyEntity(w, entry)
		}
	}
}

// ClearTimers drops every pending effect. Used on teardown.
func ClearTimers(w donburi.World) {
	if timers, ok := timersOf(w); ok {
		timers.Clear()
	}
}
