package systems

import (
	"github.com/automoto/sushi-knight/components"
	"github.com/automoto/sushi-knight/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the authoritative source once per tick.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	in := components.Input.Get(entry)
	if in.Source == nil {
		in.Intent = input.Intent{}
		return
	}
	in.Intent = in.Source.Poll(now(ecs.World))
}

func currentIntent(w donburi.World) input.Intent {
	entry, ok := components.Input.First(w)
	if !ok {
		return input.Intent{}
	}
	return components.Input.Get(entry).Intent
}
