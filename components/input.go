package components

import (
	"github.com/automoto/sushi-knight/input"
	"github.com/yohamta/donburi"
)

// InputData holds the authoritative source, chosen once when the scene is
// built, and the intent it produced this tick.
type InputData struct {
	Source input.Source
	Intent input.Intent
}

var Input = donburi.NewComponentType[InputData]()
