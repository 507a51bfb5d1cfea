package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Heal raises Current by amount without passing Max and returns the gain.
func (h *HealthData) Heal(amount int) int {
	before := h.Current
	h.Current = min(h.Max, h.Current+amount)
	return h.Current - before
}

// Damage lowers Current by amount, never below zero.
func (h *HealthData) Damage(amount int) {
	h.Current = max(0, h.Current-amount)
}

var Health = donburi.NewComponentType[HealthData]()
