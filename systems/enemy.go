package systems

import (
	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// EnemyBehavior is one enemy kind's state machine. Each kind owns its own
// transitions; the systems only decide when to call in.
type EnemyBehavior interface {
	// Tick steers the enemy for this frame.
	Tick(e *ecs.ECS, enemy, player *donburi.Entry)
	// OnCooldownElapsed runs on the tick the enemy's cooldown reaches zero.
	OnCooldownElapsed(e *ecs.ECS, enemy, player *donburi.Entry)
	// OnPlayerContact runs while the enemy's body overlaps the player's.
	OnPlayerContact(e *ecs.ECS, enemy, player *donburi.Entry)
}

var behaviors = map[cfg.BehaviorKind]EnemyBehavior{
	cfg.BehaviorMelee:  meleeBehavior{},
	cfg.BehaviorRanged: rangedBehavior{},
}

// BehaviorFor returns the state machine for an enemy entry.
func BehaviorFor(enemy *donburi.Entry) EnemyBehavior {
	data := components.Enemy.Get(enemy)
	if data.TypeConfig != nil {
		if b, ok := behaviors[data.TypeConfig.Behavior]; ok {
			return b
		}
	}
	return meleeBehavior{}
}

// UpdateEnemies runs each enemy's Tick against the player.
func UpdateEnemies(ecs *ecs.ECS) {
	player, ok := playerEntry(ecs.World)
	if !ok {
		return
	}

	for _, enemy := range enemyEntries(ecs.World) {
		if !enemy.Valid() {
			continue
		}
		BehaviorFor(enemy).Tick(ecs, enemy, player)
	}
}

// UpdateCooldowns counts down the player's attack cooldown and every
// enemy's cooldown, never below zero. An enemy whose cooldown runs out this
// tick gets OnCooldownElapsed.
func UpdateCooldowns(ecs *ecs.ECS) {
	dt := clockOf(ecs.World).Delta

	player, hasPlayer := playerEntry(ecs.World)
	if hasPlayer {
		p := components.Player.Get(player)
		p.AttackCooldown = max(0, p.AttackCooldown-dt)
	}

	for _, enemy := range enemyEntries(ecs.World) {
		if !enemy.Valid() {
			continue
		}
		data := components.Enemy.Get(enemy)
		if data.AttackCooldown <= 0 {
			continue
		}
		data.AttackCooldown -= dt
		if data.AttackCooldown > 0 {
			continue
		}
		data.AttackCooldown = 0
		if hasPlayer {
			BehaviorFor(enemy).OnCooldownElapsed(ecs, enemy, player)
		}
	}
}

// enemyEntries snapshots the enemy set so behaviours can destroy or spawn
// entities while it is walked.
func enemyEntries(w donburi.World) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	return entries
}

// steerTo sets velocity toward a point at speed and updates facing.
func steerTo(enemy *donburi.Entry, data *components.EnemyData, to math.Vec2, speed float64) {
	physics := components.Physics.Get(enemy)
	from := components.Object.Get(enemy).Center()

	dir := to.Sub(from)
	if dir.Magnitude() == 0 {
		physics.Stop()
		return
	}
	physics.Velocity = dir.Normalized().MulScalar(speed)
	data.Facing = facingToward(from, to, data.Facing)
}

func distanceBetween(a, b *donburi.Entry) float64 {
	return components.Object.Get(a).Center().Distance(components.Object.Get(b).Center())
}

// chase steers toward the player directly while the line between them is
// open, and along an A* route around the walls otherwise. The route is
// recomputed every cfg.Nav.RepathInterval.
func chase(w donburi.World, enemy *donburi.Entry, data *components.EnemyData, player *donburi.Entry, speed float64) {
	from := components.Object.Get(enemy).Center()
	target := components.Object.Get(player).Center()

	grid := navGrid(w)
	if grid == nil || grid.ClearLine(from, target) {
		data.Path = nil
		data.RepathAt = 0
		steerTo(enemy, data, target, speed)
		return
	}

	// A failed search is throttled like a successful one
	t := now(w)
	if t >= data.RepathAt {
		data.Path = grid.FindPath(from, target)
		data.RepathAt = t + cfg.Nav.RepathInterval
	}
	for len(data.Path) > 0 && from.Distance(data.Path[0]) <= cfg.Nav.WaypointReach {
		data.Path = data.Path[1:]
	}
	if len(data.Path) == 0 {
		steerTo(enemy, data, target, speed)
		return
	}
	steerTo(enemy, data, data.Path[0], speed)
}
