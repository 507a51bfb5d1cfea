package components

import "github.com/yohamta/donburi"

// PauseData freezes the whole simulation, clock included, while set.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
