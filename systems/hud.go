package systems

import (
	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the stats line mirrored by ReportStats.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Stats.First(ecs.World)
	if !ok {
		return
	}
	line := components.Stats.Get(entry).HUDText
	if line == "" {
		return
	}

	face := fonts.HUD.Get()
	bounds := text.BoundString(face, line)

	w := float64(bounds.Dx()) + 2*cfg.HUD.Padding
	h := max(float64(bounds.Dy())+cfg.HUD.Padding, cfg.HUD.MinHeight)

	vector.FillRect(screen,
		float32(cfg.HUD.X), float32(cfg.HUD.Y),
		float32(w), float32(h),
		cfg.HUD.BackgroundColor, false)

	baseline := cfg.HUD.Y + h/2 + float64(bounds.Dy())/2 - float64(bounds.Max.Y)
	text.Draw(screen, line, face, int(cfg.HUD.X+cfg.HUD.Padding), int(baseline), cfg.HUD.TextColor)
}
