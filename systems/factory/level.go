package factory

import (
	"errors"

	"github.com/automoto/sushi-knight/archetypes"
	"github.com/automoto/sushi-knight/assets"
	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/nav"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: level})
	return entry
}

// CreateArena builds everything a level declares: the collision space,
// walls and their nav grid, camera, player, enemies and items. It returns
// the player.
func CreateArena(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	if level == nil {
		panic(errors.New("no level to build the arena from"))
	}

	levelEntry := CreateLevel(ecs, level)
	space := CreateSpace(ecs, level.Width, level.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)
	CreateCamera(ecs, level.PlayerX, level.PlayerY)

	for _, w := range level.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}

	components.Level.Get(levelEntry).Nav = nav.NewGrid(
		components.Space.Get(space),
		level.Width, level.Height,
		cfg.Nav.CellSize, cfg.Nav.Clearance,
	)

	player := CreatePlayer(ecs, level.PlayerX, level.PlayerY)

	for _, s := range level.Enemies {
		CreateEnemy(ecs, s.Type, s.X, s.Y)
	}
	for _, s := range level.Items {
		CreateItem(ecs, s.Type, s.X, s.Y)
	}

	return player
}
