package factory

import (
	"github.com/automoto/sushi-knight/archetypes"
	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the knight centred on (x, y). The player starts with
// a short spawn protection window.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	newBody(ecs, player, x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer)

	now := clockNow(ecs)
	components.Player.SetValue(player, components.PlayerData{
		Facing:            cfg.DirectionRight,
		Atk:               cfg.Player.Attack,
		InvulnerableUntil: now + cfg.Player.SpawnInvulnerability,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Drag:     cfg.Player.Drag,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Animation.SetValue(player, components.AnimationData{})

	return player
}
