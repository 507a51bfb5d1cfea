package systems

import (
	"image/color"

	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHitboxes outlines every collision object when the overlay is on.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	camX, camY := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255}
		} else if obj.HasTags(tags.ResolvHazard) {
			c = color.RGBA{0, 255, 0, 255}
		}

		vector.StrokeRect(screen,
			float32(obj.X+camX), float32(obj.Y+camY),
			float32(obj.W), float32(obj.H),
			1, c, false)
	}
}
