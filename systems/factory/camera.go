package factory

import (
	"github.com/automoto/sushi-knight/archetypes"
	"github.com/automoto/sushi-knight/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: math.NewVec2(x, y)})
}
