package factory

import (
	"log"

	"github.com/automoto/sushi-knight/archetypes"
	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the named type centred on (x, y).
// Unknown types fall back to cfg.Enemy.DefaultType.
func CreateEnemy(ecs *ecs.ECS, enemyTypeName string, x, y float64) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[enemyTypeName]
	if !exists {
		log.Printf("Warning: unknown enemy type %q, using %q", enemyTypeName, cfg.Enemy.DefaultType)
		enemyTypeName = cfg.Enemy.DefaultType
		enemyType = cfg.Enemy.Types[enemyTypeName]
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	newBody(ecs, enemy, x, y, enemyType.CollisionWidth, enemyType.CollisionHeight, tags.ResolvEnemy)

	enemyData := components.EnemyData{
		TypeName:   enemyTypeName,
		TypeConfig: &enemyType,
		Facing:     cfg.DirectionLeft,
		Atk:        enemyType.Damage,
	}

	// Ranged enemies start on a random point of their spit cadence
	if enemyType.Behavior == cfg.BehaviorRanged {
		if rng, ok := components.Random.First(ecs.World); ok {
			enemyData.AttackCooldown = components.Random.Get(rng).Duration(enemyType.SpitIntervalMin, enemyType.SpitIntervalMax)
		} else {
			enemyData.AttackCooldown = enemyType.SpitIntervalMax
		}
	}

	state := cfg.StateChase
	if enemyType.Behavior == cfg.BehaviorRanged {
		state = cfg.StateHold
	}

	components.Enemy.SetValue(enemy, enemyData)
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  state,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Drag:     enemyType.Drag,
		MaxSpeed: enemyType.ChaseSpeed,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Animation.SetValue(enemy, components.AnimationData{})

	return enemy
}
