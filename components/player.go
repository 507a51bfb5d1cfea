package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing float64 // config.DirectionLeft or config.DirectionRight
	Atk    int     // only grows, via pickups

	AttackCooldown time.Duration // never negative
	IsAttacking    bool          // windup entry until the attack animation completes
	AttackSeq      uint64        // bumped on every windup so stale timers can be told apart

	InvulnerableUntil time.Duration // clock time; damage is ignored while Now < InvulnerableUntil
}

// Invulnerable reports whether damage is suppressed at the given clock time.
func (p *PlayerData) Invulnerable(now time.Duration) bool {
	return now < p.InvulnerableUntil
}

var Player = donburi.NewComponentType[PlayerData]()
