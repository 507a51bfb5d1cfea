package systems

import (
	"github.com/automoto/sushi-knight/components"
	"github.com/automoto/sushi-knight/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const cameraSmoothing = 0.15

// UpdateCamera eases the camera toward the player, keeping the view inside
// the arena.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	player, ok := playerEntry(e.World)
	if !ok {
		return
	}
	target := components.Object.Get(player).Center()

	camera.Position = camera.Position.Add(target.Sub(camera.Position).MulScalar(cameraSmoothing))
	camera.Position = clampCamera(e, camera.Position)
}

func clampCamera(e *ecs.ECS, p math.Vec2) math.Vec2 {
	levelWidth, levelHeight := arenaSize(e.World)
	halfW := float64(config.C.Width) / 2
	halfH := float64(config.C.Height) / 2

	if levelWidth > 2*halfW {
		p.X = min(max(p.X, halfW), levelWidth-halfW)
	} else {
		p.X = levelWidth / 2
	}
	if levelHeight > 2*halfH {
		p.Y = min(max(p.Y, halfH), levelHeight-halfH)
	} else {
		p.Y = levelHeight / 2
	}
	return p
}

// cameraOffset converts world coordinates to screen coordinates for the
// given screen size.
func cameraOffset(e *ecs.ECS, screenW, screenH int) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return float64(screenW)/2 - camera.Position.X, float64(screenH)/2 - camera.Position.Y
}
