package systems

import (
	"log"

	"github.com/automoto/sushi-knight/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WithGameplayChecks wraps a system to skip execution once the run is over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsGameOver(e.World) {
			return
		}
		system(e)
	}
}

// IsGameOver reports whether the player has died in this world.
func IsGameOver(w donburi.World) bool {
	gameOver, ok := gameOverOf(w)
	return ok && gameOver.Active
}

// enterGameOver freezes the simulation. The end message is logged once.
func enterGameOver(w donburi.World) {
	gameOver, ok := gameOverOf(w)
	if !ok || gameOver.Active {
		return
	}
	gameOver.Active = true
	gameOver.Final = Snapshot(w)

	components.Physics.Each(w, func(e *donburi.Entry) {
		components.Physics.Get(e).Stop()
	})

	if !gameOver.MessageShown {
		gameOver.MessageShown = true
		log.Printf("Game over: atk %d, %d enemies left", gameOver.Final.Atk, gameOver.Final.Enemies)
	}
}

// FinalSnapshot returns the stats captured when the run ended.
func FinalSnapshot(w donburi.World) (components.Snapshot, bool) {
	gameOver, ok := gameOverOf(w)
	if !ok || !gameOver.Active {
		return components.Snapshot{}, false
	}
	return gameOver.Final, true
}
