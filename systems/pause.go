package systems

import (
	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TogglePause flips the pause flag. A finished run cannot be paused.
func TogglePause(w donburi.World) bool {
	entry, ok := components.Pause.First(w)
	if !ok || IsGameOver(w) {
		return false
	}
	pause := components.Pause.Get(entry)
	pause.IsPaused = !pause.IsPaused
	return pause.IsPaused
}

func IsPaused(w donburi.World) bool {
	entry, ok := components.Pause.First(w)
	return ok && components.Pause.Get(entry).IsPaused
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs.World) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	titleFace := fonts.Title.Get()
	title := text.BoundString(titleFace, cfg.Pause.Title)
	text.Draw(screen, cfg.Pause.Title, titleFace,
		int(width/2)-title.Dx()/2, int(height/2), cfg.Pause.TextColor)

	hintFace := fonts.Small.Get()
	hint := text.BoundString(hintFace, cfg.Pause.Hint)
	text.Draw(screen, cfg.Pause.Hint, hintFace,
		int(width/2)-hint.Dx()/2, int(height)-16, cfg.Pause.TextColor)
}
