package components

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi"
)

// FlashData tracks a sprite tint (hit flash, damage flash)
type FlashData struct {
	Remaining time.Duration
	Color     color.RGBA
}

// Start restarts the flash with the given tint.
func (f *FlashData) Start(d time.Duration, c color.RGBA) {
	f.Remaining = d
	f.Color = c
}

func (f *FlashData) Active() bool {
	return f.Remaining > 0
}

var Flash = donburi.NewComponentType[FlashData]()
