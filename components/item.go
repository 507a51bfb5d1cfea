package components

import (
	"github.com/automoto/sushi-knight/config"
	"github.com/yohamta/donburi"
)

type ItemData struct {
	Type   string // "heart", "sword"
	Kind   config.ItemKind
	Amount int
}

var Item = donburi.NewComponentType[ItemData]()
