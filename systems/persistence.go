package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/sushi-knight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings is the host preferences stored on disk. Game state is
// never persisted.
type SavedSettings struct {
	Fullscreen   bool `json:"fullscreen"`
	ForceTouch   bool `json:"forceTouch"`
	ShowHitboxes bool `json:"showHitboxes"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result means defaults.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings captures the live host preferences.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Fullscreen:   ebiten.IsFullscreen(),
		ForceTouch:   cfg.Debug.ForceTouch,
		ShowHitboxes: cfg.Debug.ShowHitboxes,
	}
}

// ApplySavedSettings applies loaded settings. Command-line flags that were
// set explicitly win over saved values, so forceTouch only ever turns on.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
	cfg.Debug.ShowHitboxes = saved.ShowHitboxes
	cfg.Debug.ForceTouch = cfg.Debug.ForceTouch || saved.ForceTouch
}
