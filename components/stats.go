package components

import (
	"github.com/yohamta/donburi"
)

// Snapshot is what the host UI renders.
type Snapshot struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"maxHp"`
	Atk     int `json:"atk"`
	Enemies int `json:"enemies"`
}

// StatsData owns the host callback and the HUD mirror.
type StatsData struct {
	OnStats func(Snapshot) // may be nil
	Last    Snapshot
	Reports int
	HUDText string
}

var Stats = donburi.NewComponentType[StatsData]()
