package systems

import (
	"github.com/automoto/sushi-knight/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects counts down flash tints.
func UpdateEffects(ecs *ecs.ECS) {
	dt := clockOf(ecs.World).Delta
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Remaining > 0 {
			flash.Remaining = max(0, flash.Remaining-dt)
		}
	})
}
