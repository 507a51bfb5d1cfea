package scenes

import (
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/automoto/sushi-knight/assets"
	"github.com/automoto/sushi-knight/components"
	cfg "github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/input"
	"github.com/automoto/sushi-knight/systems"
	"github.com/automoto/sushi-knight/systems/factory"
	"github.com/automoto/sushi-knight/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a PlayScene. Zero values pick the defaults: the
// probed device source, the embedded arena and cfg.Debug.Seed.
type Options struct {
	// OnStats receives every snapshot synchronously. May be nil.
	OnStats func(components.Snapshot)
	Source  input.Source
	Level   *assets.Level
	Seed    int64
}

// PlayScene runs the arena simulation. One Step is one tick.
type PlayScene struct {
	ecs    *ecs.ECS
	opts   Options
	source input.Source
	once   sync.Once
	closed bool

	gameOverUI *ui.GameOverUI
}

func NewPlayScene(opts Options) *PlayScene {
	return &PlayScene{opts: opts}
}

// Update advances one fixed tick at the configured TPS.
func (ps *PlayScene) Update() {
	ps.Step(time.Second / time.Duration(cfg.C.TPS))

	if ps.gameOverUI != nil {
		ps.gameOverUI.Update()
	}
}

// Step advances the simulation by dt: the clock moves first, then every
// system runs once in order. Nothing moves while paused.
func (ps *PlayScene) Step(dt time.Duration) {
	ps.once.Do(ps.configure)
	if ps.closed || systems.IsPaused(ps.ecs.World) {
		return
	}

	if entry, ok := components.Clock.First(ps.ecs.World); ok {
		components.Clock.Get(entry).Advance(dt)
	}
	ps.ecs.Update()
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	ps.once.Do(ps.configure)
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if final, over := systems.FinalSnapshot(ps.ecs.World); over {
		if ps.gameOverUI == nil {
			ps.gameOverUI = ui.NewGameOverUI(final, ps.Restart)
		}
		ps.gameOverUI.Draw(screen)
	}
}

// Restart tears the current run down and builds a fresh one. There is no
// in-place revive.
func (ps *PlayScene) Restart() {
	ps.once.Do(func() {})
	ps.Close()
	ps.closed = false
	ps.gameOverUI = nil
	ps.configure()
}

// Close releases every pending timer and event handler and detaches the
// host callback. A closed scene ignores Step.
func (ps *PlayScene) Close() {
	if ps.ecs == nil || ps.closed {
		return
	}
	w := ps.ecs.World
	systems.ClearTimers(w)
	systems.UnsubscribeEvents(w)
	if entry, ok := components.Stats.First(w); ok {
		components.Stats.Get(entry).OnStats = nil
	}
	ps.closed = true
}

// TogglePause pauses or resumes the run and reports the new state.
func (ps *PlayScene) TogglePause() bool {
	ps.once.Do(ps.configure)
	return systems.TogglePause(ps.ecs.World)
}

// Snapshot returns the current host-facing stats.
func (ps *PlayScene) Snapshot() components.Snapshot {
	ps.once.Do(ps.configure)
	return systems.Snapshot(ps.ecs.World)
}

func (ps *PlayScene) IsGameOver() bool {
	ps.once.Do(ps.configure)
	return systems.IsGameOver(ps.ecs.World)
}

// World exposes the entity registry for the host's debug tooling.
func (ps *PlayScene) World() donburi.World {
	ps.once.Do(ps.configure)
	return ps.ecs.World
}

func (ps *PlayScene) configure() {
	// Touch capability is probed once per scene, not per tick
	if ps.source == nil {
		ps.source = ps.opts.Source
		if ps.source == nil {
			ps.source = input.NewSource(input.DetectTouch())
		}
	}

	seed := ps.opts.Seed
	if seed == 0 {
		seed = cfg.Debug.Seed
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateInput))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCooldowns))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerAttack))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTimers))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimations))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateContacts))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Runs after GameOver too so the host sees the final state
	ecs.AddSystem(systems.UpdateStats)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawHitboxes)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	factory.CreateSession(ps.ecs, ps.source, ps.opts.OnStats, seed)
	systems.SubscribeEvents(ps.ecs.World)
	factory.CreateArena(ps.ecs, ps.level())

	systems.ReportStats(ps.ecs.World)
}

func (ps *PlayScene) level() *assets.Level {
	if ps.opts.Level != nil {
		return ps.opts.Level
	}
	level, err := LoadLevel(cfg.Debug.LevelPath)
	if err != nil {
		log.Printf("Warning: %v, using the built-in arena", err)
		return assets.DefaultLevel()
	}
	return level
}

// LoadLevel reads an external TMX file, or the embedded arena when path is
// empty.
func LoadLevel(path string) (*assets.Level, error) {
	if path == "" {
		return assets.LoadArena()
	}
	return assets.LoadLevel(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
