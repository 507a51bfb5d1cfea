package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// HazardData is a ground puddle. ExpiresAt is fixed at spawn.
type HazardData struct {
	Damage         int
	KnockbackSpeed float64
	ExpiresAt      time.Duration
}

var Hazard = donburi.NewComponentType[HazardData]()
