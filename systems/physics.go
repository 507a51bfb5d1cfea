package systems

import (
	"github.com/automoto/sushi-knight/components"
	"github.com/automoto/sushi-knight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates velocity for every moving body, stopping at
// walls and clamping to the arena bounds. Knocked-back bodies lose speed
// to drag until the knockback runs out.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := clockOf(ecs.World).Delta
	seconds := dt.Seconds()
	if seconds <= 0 {
		return
	}

	width, height := arenaSize(ecs.World)

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		if physics.Knockback > 0 {
			physics.Knockback -= dt
			if physics.Knockback <= 0 {
				physics.Knockback = 0
				physics.Stop()
			} else {
				physics.ApplyDrag(dt)
			}
		} else if mag := physics.Velocity.Magnitude(); physics.MaxSpeed > 0 && mag > physics.MaxSpeed {
			physics.Velocity = physics.Velocity.MulScalar(physics.MaxSpeed / mag)
		}

		dx := physics.Velocity.X * seconds
		dy := physics.Velocity.Y * seconds

		if dx != 0 {
			obj.X += resolveAxis(obj.Object, dx, 0)
		}
		if dy != 0 {
			obj.Y += resolveAxis(obj.Object, 0, dy)
		}

		clampToBounds(obj.Object, width, height)
		obj.Update()
	})
}

// resolveAxis returns how far the body may move along one axis before it
// touches a wall. resolv's check is cell based, so candidates are narrowed
// to walls the moved rectangle actually overlaps.
func resolveAxis(obj *resolv.Object, dx, dy float64) float64 {
	move := dx + dy
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return move
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsAt(obj, dx, dy, solid) {
			continue
		}
		contact := check.ContactWithObject(solid)
		limit := contact.Y()
		if dx != 0 {
			limit = contact.X()
		}
		if move > 0 {
			move = min(move, max(limit, 0))
		} else {
			move = max(move, min(limit, 0))
		}
	}
	return move
}

// overlapsAt reports whether a, offset by (dx, dy), intersects b.
func overlapsAt(a *resolv.Object, dx, dy float64, b *resolv.Object) bool {
	ax, ay := a.X+dx, a.Y+dy
	return ax < b.X+b.W && ax+a.W > b.X && ay < b.Y+b.H && ay+a.H > b.Y
}

func clampToBounds(obj *resolv.Object, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	obj.X = min(max(obj.X, 0), width-obj.W)
	obj.Y = min(max(obj.Y, 0), height-obj.H)
}

func arenaSize(w donburi.World) (float64, float64) {
	entry, ok := components.Level.First(w)
	if !ok {
		return 0, 0
	}
	level := components.Level.Get(entry).CurrentLevel
	if level == nil {
		return 0, 0
	}
	return float64(level.Width), float64(level.Height)
}
