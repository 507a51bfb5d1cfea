package components

import "github.com/yohamta/donburi"

// GameOverData is set once the player's hp reaches zero. Only a full scene
// restart clears it.
type GameOverData struct {
	Active       bool
	MessageShown bool
	Final        Snapshot
}

var GameOver = donburi.NewComponentType[GameOverData]()
