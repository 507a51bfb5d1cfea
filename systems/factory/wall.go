package factory

import (
	"github.com/automoto/sushi-knight/archetypes"
	"github.com/automoto/sushi-knight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall places a solid rectangle; x, y is the top-left corner.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	newBody(ecs, wall, x+w/2, y+h/2, w, h, tags.ResolvSolid)
	return wall
}
