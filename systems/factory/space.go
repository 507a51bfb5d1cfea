package factory

import (
	"github.com/automoto/sushi-knight/archetypes"
	"github.com/automoto/sushi-knight/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// newBody builds a resolv rectangle centred on (cx, cy), links it to the
// entity and adds it to the space if one exists.
func newBody(ecs *ecs.ECS, entry *donburi.Entry, cx, cy, w, h float64, resolvTags ...string) *resolv.Object {
	obj := resolv.NewObject(cx-w/2, cy-h/2, w, h, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry.Entity()

	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
