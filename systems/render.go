package systems

import (
	"image/color"

	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Entities are drawn as flat shapes tinted per kind; sprite art is out of
// scope for the simulation.

// DrawArena renders the floor and walls.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	camX, camY := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen,
			float32(o.X+camX), float32(o.Y+camY),
			float32(o.W), float32(o.H),
			cfg.WallColor, false)
	})
}

// DrawEntities renders hazards, items, projectiles, enemies and the player,
// back to front.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())

	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		c := o.Center()
		vector.FillCircle(screen, float32(c.X+camX), float32(c.Y+camY), float32(o.W/2), cfg.Olive, true)
	})

	tags.Item.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		c := o.Center()
		clr := cfg.Pink
		if components.Item.Get(e).Kind == cfg.ItemAttackBoost {
			clr = cfg.Steel
		}
		vector.FillCircle(screen, float32(c.X+camX), float32(c.Y+camY), float32(o.W/2), clr, true)
	})

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		c := o.Center()
		vector.FillCircle(screen, float32(c.X+camX), float32(c.Y+camY), float32(o.W/2), cfg.Yellow, true)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		data := components.Enemy.Get(e)
		clr := cfg.Salmon
		if data.TypeConfig != nil {
			clr = data.TypeConfig.TintColor
		}
		if data.HitActive {
			clr = cfg.Orange
		}
		drawBody(screen, e, camX, camY, clr)
	})

	if player, ok := playerEntry(ecs.World); ok {
		drawBody(screen, player, camX, camY, cfg.Steel)

		p := components.Player.Get(player)
		if p.IsAttacking {
			c := components.Object.Get(player).Center()
			vector.StrokeCircle(screen,
				float32(c.X+camX), float32(c.Y+camY),
				float32(cfg.Combat.SlashRadius), 2, cfg.White, true)
		}
	}
}

// drawBody fills the entity's rectangle, replacing the colour while a flash
// is running.
func drawBody(screen *ebiten.Image, e *donburi.Entry, camX, camY float64, clr color.RGBA) {
	o := components.Object.Get(e)
	if e.HasComponent(components.Flash) {
		if flash := components.Flash.Get(e); flash.Active() {
			clr = flash.Color
		}
	}
	vector.FillRect(screen,
		float32(o.X+camX), float32(o.Y+camY),
		float32(o.W), float32(o.H),
		clr, false)
}
