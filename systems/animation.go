package systems

import (
	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// AnimationFinishedEvent fires once when a non-looping animation completes.
type AnimationFinishedEvent struct {
	Entity donburi.Entity
	Key    string
}

var AnimationFinished = events.NewEventType[AnimationFinishedEvent]()

// SubscribeEvents registers the gameplay handlers on a world.
func SubscribeEvents(w donburi.World) {
	AnimationFinished.Subscribe(w, onAnimationFinished)
}

// UnsubscribeEvents removes what SubscribeEvents registered.
func UnsubscribeEvents(w donburi.World) {
	AnimationFinished.Unsubscribe(w, onAnimationFinished)
}

// UpdateAnimations advances every playing animation and delivers
// completion events in the same tick.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := clockOf(ecs.World).Delta

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation == nil {
			return
		}
		if anim.CurrentAnimation.Update(dt) {
			AnimationFinished.Publish(ecs.World, AnimationFinishedEvent{
				Entity: e.Entity(),
				Key:    anim.CurrentAnimation.Key,
			})
		}
	})

	AnimationFinished.ProcessEvents(ecs.World)
}

func onAnimationFinished(w donburi.World, ev AnimationFinishedEvent) {
	if !w.Valid(ev.Entity) {
		return
	}
	entry := w.Entry(ev.Entity)

	switch {
	case entry.HasComponent(components.Player):
		if ev.Key == cfg.Combat.AttackAnim {
			finishPlayerAttack(entry)
		}
	case entry.HasComponent(components.Enemy):
		data := components.Enemy.Get(entry)
		if data.TypeConfig != nil && ev.Key == data.TypeConfig.AttackAnimation {
			meleeRecover(entry, data.AttackSeq)
		}
	}
}
