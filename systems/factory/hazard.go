package factory

import (
	"github.com/automoto/sushi-knight/archetypes"
	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard leaves a puddle centred on (x, y). Its expiry time is fixed
// here; the caller schedules the removal.
func CreateHazard(ecs *ecs.ECS, x, y float64, damage int) *donburi.Entry {
	h := archetypes.Hazard.Spawn(ecs)

	newBody(ecs, h, x, y, cfg.Hazard.CollisionWidth, cfg.Hazard.CollisionHeight, tags.ResolvHazard)

	components.Hazard.SetValue(h, components.HazardData{
		Damage:         damage,
		KnockbackSpeed: cfg.Hazard.KnockbackSpeed,
		ExpiresAt:      clockNow(ecs) + cfg.Hazard.Lifespan,
	})

	return h
}
