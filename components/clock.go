package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the simulation clock, advanced once per tick before any system runs.
type ClockData struct {
	Now   time.Duration
	Delta time.Duration
	Tick  uint64
}

// Advance moves the clock forward by dt.
func (c *ClockData) Advance(dt time.Duration) {
	c.Delta = dt
	c.Now += dt
	c.Tick++
}

var Clock = donburi.NewComponentType[ClockData]()
