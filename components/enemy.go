package components

import (
	"time"

	"github.com/automoto/sushi-knight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type EnemyData struct {
	TypeName   string                  // "maguro", "tamago"...
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	Facing     float64
	Atk        int

	// Combat
	AttackCooldown time.Duration // melee: until next windup, ranged: until next spit
	IsAttacking    bool
	HitActive      bool   // melee only, true while the hit window is open
	AttackSeq      uint64 // token for timers armed by the current attack

	// Route around walls when the player is out of sight
	Path     []math.Vec2
	RepathAt time.Duration
}

var Enemy = donburi.NewComponentType[EnemyData]()
