package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/automoto/sushi-knight/components"
	"github.com/automoto/sushi-knight/config"
	"github.com/automoto/sushi-knight/fonts"
	"github.com/automoto/sushi-knight/scenes"
	"github.com/automoto/sushi-knight/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const appName = "sushi-knight"

type Game struct {
	bounds image.Rectangle
	scene  *scenes.PlayScene
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlayScene(scenes.Options{
		OnStats: g.onStats,
		Seed:    config.Debug.Seed,
	})
	return g
}

// onStats is the host side of the stats contract: it renders, never writes back.
func (g *Game) onStats(s components.Snapshot) {
	ebiten.SetWindowTitle(fmt.Sprintf("Sushi Knight - HP %d/%d  ATK %d  Enemies %d", s.HP, s.MaxHP, s.Atk, s.Enemies))
}

func (g *Game) Update() error {
	g.handleHostKeys()
	g.scene.Update()
	return nil
}

func (g *Game) handleHostKeys() {
	if justPressed(config.ActionRestart) && g.scene.IsGameOver() {
		g.scene.Restart()
	}
	if justPressed(config.ActionPause) {
		g.scene.TogglePause()
	}
	if justPressed(config.ActionToggleFullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		_ = systems.SaveSettings(systems.CurrentSettings())
	}
	if justPressed(config.ActionToggleHitboxes) {
		config.Debug.ShowHitboxes = !config.Debug.ShowHitboxes
		_ = systems.SaveSettings(systems.CurrentSettings())
	}
}

func justPressed(action config.ActionID) bool {
	for _, key := range config.Input.Bindings[action].Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	forceTouch := flag.Bool("touch", false, "force touch input")
	seed := flag.Int64("seed", config.Debug.Seed, "random seed")
	level := flag.String("level", "", "path to a TMX arena")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Sushi Knight")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(appName); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	config.Debug.ForceTouch = config.Debug.ForceTouch || *forceTouch
	config.Debug.Seed = *seed
	config.Debug.LevelPath = *level

	game := NewGame()
	err := ebiten.RunGame(game)
	game.scene.Close()
	if err != nil {
		log.Fatal(err)
	}
}
