package input

import (
	"runtime"

	"github.com/automoto/sushi-knight/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// KeyPressed reports whether any key bound to action is held.
func KeyPressed(action config.ActionID) bool {
	for _, key := range config.Input.Bindings[action].Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// EbitenTouches returns the current contacts from ebiten.
func EbitenTouches() []TouchPoint {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	points := make([]TouchPoint, 0, len(touchIDs))
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		points = append(points, TouchPoint{ID: int(id), X: float64(x), Y: float64(y)})
	}
	return points
}

// DetectTouch probes for a touch-first device. The -touch flag forces it.
func DetectTouch() bool {
	if config.Debug.ForceTouch {
		return true
	}
	return runtime.GOOS == "android" || runtime.GOOS == "ios"
}

// NewSource builds the authoritative source for a scene. Keyboard input is
// always read; on touch devices it sits behind the touch source.
func NewSource(touchCapable bool) Source {
	keyboard := NewKeyboardSource(KeyPressed)
	if touchCapable {
		return NewTouchSource(EbitenTouches, keyboard)
	}
	return keyboard
}
