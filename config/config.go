package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
)

// BehaviorKind selects the state machine an enemy type runs.
type BehaviorKind int

const (
	BehaviorMelee BehaviorKind = iota
	BehaviorRanged
)

// ItemKind identifies the effect applied when an item is picked up.
type ItemKind int

const (
	ItemHeal ItemKind = iota
	ItemAttackBoost
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Stats
	Health int
	Attack int

	// Movement (units per second)
	Speed    float64
	Drag     float64
	MaxSpeed float64

	// Spawn protection so the player cannot lose hp on the first frame
	SpawnInvulnerability time.Duration

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name     string
	Behavior BehaviorKind
	Health   int
	Damage   int // melee: hit window damage, ranged: damage of the puddle its spit leaves

	ChaseSpeed float64
	Drag       float64

	// Melee attack timing
	AttackStartRange float64
	AttackCooldown   time.Duration
	HitOpenDelay     time.Duration // windup start -> hit window opens
	HitWindow        time.Duration // how long hitActive stays true
	RecoverTimeout   time.Duration // safety net if the animation-complete event is missed
	AttackAnimation  string

	// Ranged spit cadence
	SpitIntervalMin time.Duration
	SpitIntervalMax time.Duration
	SpitRange       float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Visual
	SpriteKey string
	TintColor color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	// Fallback type name when a spawn names an unknown type
	DefaultType string
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Player swing
	AttackCooldown time.Duration
	SlashDelay     time.Duration // windup -> instantaneous area check
	SlashRadius    float64
	AttackAnim     string
	RunAnim        string

	// Knockback applied to enemies hit by the slash
	EnemyKnockbackSpeed    float64
	EnemyKnockbackDuration time.Duration

	// Knockback and invulnerability applied to the player
	PlayerKnockbackSpeed    float64
	PlayerKnockbackDuration time.Duration
	ContactInvulnerability  time.Duration
	HazardInvulnerability   time.Duration

	// Flash effects
	HitFlash    time.Duration // white tint on the player when swinging
	DamageFlash time.Duration // red tint on the player when hurt
}

// RangedConfig contains enemy projectile configuration
type RangedConfig struct {
	Speed     float64       // nominal speed used to derive flight time
	MinFlight time.Duration // lower clamp for flight time
	MaxFlight time.Duration // upper clamp for flight time
	Spread    float64       // max random angular offset in radians (either side)
	Size      float64
	SpriteKey string
}

// HazardConfig contains ground hazard (puddle) configuration
type HazardConfig struct {
	Lifespan        time.Duration
	KnockbackSpeed  float64
	CollisionWidth  float64
	CollisionHeight float64
	SpriteKey       string
}

// ItemTypeConfig describes a single pickup type
type ItemTypeConfig struct {
	Kind      ItemKind
	Amount    int
	SpriteKey string
}

// ItemConfig contains pickup configuration
type ItemConfig struct {
	Types        map[string]ItemTypeConfig
	PickupRadius float64 // centre distance required on top of shape overlap
	Size         float64
}

// TouchConfig contains touch-drag configuration
type TouchConfig struct {
	MaxDragRadius float64
	Deadzone      float64
	TapMaxTime    time.Duration
}

// Rect is an axis-aligned rectangle in world units
type Rect struct {
	X, Y, W, H float64
}

// Spawn is a named entity placement (centre coordinates)
type Spawn struct {
	Type string
	X, Y float64
}

// ArenaConfig is the built-in layout used when no level file is supplied
type ArenaConfig struct {
	Width, Height int
	CellSize      int
	WallThickness float64
	Obstacles     []Rect
	PlayerX       float64
	PlayerY       float64
	Enemies       []Spawn
	Items         []Spawn
}

// NavConfig contains enemy pathfinding configuration
type NavConfig struct {
	CellSize       float64
	Clearance      float64       // walls are grown by this much when marking blocked cells
	RepathInterval time.Duration // how long a computed route is followed before recomputing
	WaypointReach  float64       // distance at which a waypoint counts as reached
}

// HUDConfig contains HUD configuration values
type HUDConfig struct {
	X, Y            float64
	Padding         float64
	MinHeight       float64
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	Format          string
}

// GameOverConfig contains the end-of-run message configuration
type GameOverConfig struct {
	Title        string
	Hint         string
	TitleColor   color.RGBA
	OverlayColor color.RGBA
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	Title        string
	Hint         string
	TextColor    color.RGBA
	OverlayColor color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ForceTouch   bool
	ShowHitboxes bool
	Seed         int64
	LevelPath    string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Ranged RangedConfig
var Hazard HazardConfig
var Items ItemConfig
var Touch TouchConfig
var Arena ArenaConfig
var Nav NavConfig
var HUD HUDConfig
var GameOver GameOverConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 170, B: 170, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	Salmon       = color.RGBA{R: 230, G: 90, B: 90, A: 255}
	Olive        = color.RGBA{R: 140, G: 150, B: 60, A: 160}
	Pink         = color.RGBA{R: 255, G: 110, B: 160, A: 255}
	Steel        = color.RGBA{R: 170, G: 190, B: 220, A: 255}
	Background   = color.RGBA{R: 11, G: 15, B: 26, A: 255}
	WallColor    = color.RGBA{R: 27, G: 36, B: 54, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	HUDBack      = color.RGBA{R: 0, G: 0, B: 0, A: 115}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Enemy type names used by spawns and level files
const (
	EnemyMaguro = "maguro"
	EnemyTamago = "tamago"
)

// Item type names used by spawns and level files
const (
	ItemHeart = "heart"
	ItemSword = "sword"
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Player = PlayerConfig{
		Health: 100,
		Attack: 20,

		Speed:    280,
		Drag:     1400,
		MaxSpeed: 280,

		SpawnInvulnerability: time.Second,

		CollisionWidth:  44,
		CollisionHeight: 52,
	}

	maguroType := EnemyTypeConfig{
		Name:     EnemyMaguro,
		Behavior: BehaviorMelee,
		Health:   70,
		Damage:   10,

		ChaseSpeed: 95,
		Drag:       1400,

		AttackStartRange: 52,
		AttackCooldown:   1200 * time.Millisecond,
		HitOpenDelay:     140 * time.Millisecond,
		HitWindow:        140 * time.Millisecond,
		RecoverTimeout:   320 * time.Millisecond,
		AttackAnimation:  "maguro-attack",

		CollisionWidth:  64,
		CollisionHeight: 64,

		SpriteKey: "maguro",
		TintColor: Salmon,
	}

	tamagoType := EnemyTypeConfig{
		Name:     EnemyTamago,
		Behavior: BehaviorRanged,
		Health:   50,
		Damage:   8,

		ChaseSpeed: 60,
		Drag:       1400,

		SpitIntervalMin: 1200 * time.Millisecond,
		SpitIntervalMax: 1900 * time.Millisecond,
		SpitRange:       520,

		CollisionWidth:  48,
		CollisionHeight: 48,

		SpriteKey: "tamago",
		TintColor: Yellow,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			EnemyMaguro: maguroType,
			EnemyTamago: tamagoType,
		},
		DefaultType: EnemyMaguro,
	}

	Combat = CombatConfig{
		AttackCooldown: 550 * time.Millisecond,
		SlashDelay:     120 * time.Millisecond,
		SlashRadius:    90,
		AttackAnim:     "knight-attack",
		RunAnim:        "knight-run",

		EnemyKnockbackSpeed:    420,
		EnemyKnockbackDuration: 180 * time.Millisecond,

		PlayerKnockbackSpeed:    380,
		PlayerKnockbackDuration: 150 * time.Millisecond,
		ContactInvulnerability:  500 * time.Millisecond,
		HazardInvulnerability:   450 * time.Millisecond,

		HitFlash:    60 * time.Millisecond,
		DamageFlash: 120 * time.Millisecond,
	}

	Ranged = RangedConfig{
		Speed:     220,
		MinFlight: 180 * time.Millisecond,
		MaxFlight: 650 * time.Millisecond,
		Spread:    0.12,
		Size:      16,
		SpriteKey: "rottenEgg",
	}

	Hazard = HazardConfig{
		Lifespan:        4500 * time.Millisecond,
		KnockbackSpeed:  260,
		CollisionWidth:  56,
		CollisionHeight: 32,
		SpriteKey:       "rottenPuddle",
	}

	Items = ItemConfig{
		Types: map[string]ItemTypeConfig{
			ItemHeart: {Kind: ItemHeal, Amount: 25, SpriteKey: "heart"},
			ItemSword: {Kind: ItemAttackBoost, Amount: 5, SpriteKey: "sword"},
		},
		PickupRadius: 30,
		Size:         24,
	}

	Touch = TouchConfig{
		MaxDragRadius: 60,
		Deadzone:      10,
		TapMaxTime:    200 * time.Millisecond,
	}

	Arena = ArenaConfig{
		Width:         2000,
		Height:        1200,
		CellSize:      16,
		WallThickness: 40,
		Obstacles: []Rect{
			{X: 450, Y: 250, W: 300, H: 40},
			{X: 900, Y: 420, W: 40, H: 280},
			{X: 1200, Y: 700, W: 420, H: 40},
			{X: 650, Y: 820, W: 280, H: 40},
		},
		PlayerX: 180,
		PlayerY: 260,
		// Enemies start far from the player so the first seconds are safe
		Enemies: []Spawn{
			{Type: EnemyTamago, X: 1400, Y: 300},
			{Type: EnemyMaguro, X: 1600, Y: 700},
			{Type: EnemyTamago, X: 1200, Y: 900},
		},
		Items: []Spawn{
			{Type: ItemHeart, X: 500, Y: 500},
			{Type: ItemSword, X: 800, Y: 650},
			{Type: ItemHeart, X: 1100, Y: 500},
		},
	}

	Nav = NavConfig{
		CellSize:       32,
		Clearance:      24,
		RepathInterval: 250 * time.Millisecond,
		WaypointReach:  12,
	}

	HUD = HUDConfig{
		X:               12,
		Y:               12,
		Padding:         12,
		MinHeight:       34,
		BackgroundColor: HUDBack,
		TextColor:       White,
		Format:          "HP: %d/%d   ATK: %d   Enemies: %d",
	}

	GameOver = GameOverConfig{
		Title:        "GAME OVER",
		Hint:         "Press ENTER to try again",
		TitleColor:   LightRed,
		OverlayColor: BlackOverlay,
	}

	Pause = PauseConfig{
		Title:        "PAUSED",
		Hint:         "Esc / P: Resume",
		TextColor:    White,
		OverlayColor: BlackOverlay,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Seed: 1,
	}
}
