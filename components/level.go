package components

import (
	"github.com/automoto/sushi-knight/assets"
	"github.com/automoto/sushi-knight/nav"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	Nav          *nav.Grid // built once the walls are in the space
}

var Level = donburi.NewComponentType[LevelData]()
