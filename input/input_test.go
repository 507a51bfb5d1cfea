package input

import (
	stdmath "math"
	"testing"
	"time"

	"github.com/automoto/sushi-knight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = time.Second / 60

func keys(held ...config.ActionID) func(config.ActionID) bool {
	set := make(map[config.ActionID]bool)
	for _, a := range held {
		set[a] = true
	}
	return func(a config.ActionID) bool { return set[a] }
}

func TestKeyboardDiagonalIsNormalized(t *testing.T) {
	src := NewKeyboardSource(keys(config.ActionMoveRight, config.ActionMoveDown))

	intent := src.Poll(0)

	assert.InDelta(t, 1.0, intent.Move.Magnitude(), 1e-9)
	assert.InDelta(t, stdmath.Sqrt2/2, intent.Move.X, 1e-9)
	assert.InDelta(t, stdmath.Sqrt2/2, intent.Move.Y, 1e-9)
	assert.False(t, intent.Attack)
}

func TestKeyboardOpposingKeysCancel(t *testing.T) {
	src := NewKeyboardSource(keys(config.ActionMoveLeft, config.ActionMoveRight, config.ActionMoveUp))

	intent := src.Poll(0)

	assert.Equal(t, 0.0, intent.Move.X)
	assert.Equal(t, -1.0, intent.Move.Y)
}

func TestKeyboardAttackIsRisingEdge(t *testing.T) {
	held := false
	src := NewKeyboardSource(func(a config.ActionID) bool {
		return a == config.ActionAttack && held
	})

	assert.False(t, src.Poll(0).Attack)

	held = true
	assert.True(t, src.Poll(tick).Attack, "press fires")
	assert.False(t, src.Poll(2*tick).Attack, "holding does not repeat")
	assert.False(t, src.Poll(3*tick).Attack)

	held = false
	assert.False(t, src.Poll(4*tick).Attack)
	held = true
	assert.True(t, src.Poll(5*tick).Attack, "second press fires again")
}

type touchScript struct {
	points []TouchPoint
}

func (s *touchScript) get() []TouchPoint { return s.points }

func TestTouchDragScalesAndClamps(t *testing.T) {
	script := &touchScript{}
	src := NewTouchSource(script.get, nil)

	script.points = []TouchPoint{{ID: 1, X: 100, Y: 100}}
	intent := src.Poll(0)
	assert.Equal(t, 0.0, intent.Move.Magnitude(), "no displacement yet")
	require.True(t, src.Dragging())

	// Half the drag radius to the right
	script.points = []TouchPoint{{ID: 1, X: 100 + config.Touch.MaxDragRadius/2, Y: 100}}
	intent = src.Poll(tick)
	assert.InDelta(t, 0.5, intent.Move.X, 1e-9)
	assert.InDelta(t, 0.0, intent.Move.Y, 1e-9)

	// Far past the radius: clamped to length 1
	script.points = []TouchPoint{{ID: 1, X: 100, Y: 100 - 10*config.Touch.MaxDragRadius}}
	intent = src.Poll(2 * tick)
	assert.InDelta(t, 0.0, intent.Move.X, 1e-9)
	assert.InDelta(t, -1.0, intent.Move.Y, 1e-9)

	// Diagonal half-radius drag is not renormalised to unit length
	d := config.Touch.MaxDragRadius / 2 / stdmath.Sqrt2
	script.points = []TouchPoint{{ID: 1, X: 100 + d, Y: 100 + d}}
	intent = src.Poll(3 * tick)
	assert.InDelta(t, 0.5, intent.Move.Magnitude(), 1e-9)
}

func TestTouchReleaseResetsMovement(t *testing.T) {
	script := &touchScript{}
	src := NewTouchSource(script.get, nil)

	script.points = []TouchPoint{{ID: 3, X: 0, Y: 0}}
	src.Poll(0)
	script.points = []TouchPoint{{ID: 3, X: 50, Y: 0}}
	assert.Greater(t, src.Poll(tick).Move.X, 0.0)

	// Long drag released: no tap, movement is zero straight away
	script.points = nil
	intent := src.Poll(time.Second)
	assert.Equal(t, 0.0, intent.Move.Magnitude())
	assert.False(t, intent.Attack)
	assert.False(t, src.Dragging())
}

func TestTouchQuickTapIsAttack(t *testing.T) {
	script := &touchScript{}
	src := NewTouchSource(script.get, nil)

	script.points = []TouchPoint{{ID: 7, X: 200, Y: 200}}
	src.Poll(0)
	script.points = []TouchPoint{{ID: 7, X: 203, Y: 201}}
	intent := src.Poll(tick)
	assert.Equal(t, 0.0, intent.Move.Magnitude(), "inside the deadzone")

	script.points = nil
	intent = src.Poll(5 * tick)
	assert.True(t, intent.Attack)
	assert.Equal(t, 0.0, intent.Move.Magnitude())
}

func TestTouchSlowOrLongReleaseIsNotAttack(t *testing.T) {
	script := &touchScript{}
	src := NewTouchSource(script.get, nil)

	script.points = []TouchPoint{{ID: 1, X: 0, Y: 0}}
	src.Poll(0)
	script.points = nil
	assert.False(t, src.Poll(config.Touch.TapMaxTime+tick).Attack, "held too long")

	script.points = []TouchPoint{{ID: 2, X: 0, Y: 0}}
	src.Poll(time.Second)
	script.points = []TouchPoint{{ID: 2, X: config.Touch.Deadzone * 3, Y: 0}}
	src.Poll(time.Second + tick)
	script.points = nil
	assert.False(t, src.Poll(time.Second+2*tick).Attack, "moved past the deadzone")
}

func TestTouchSecondContactIsAttack(t *testing.T) {
	script := &touchScript{}
	src := NewTouchSource(script.get, nil)

	script.points = []TouchPoint{{ID: 1, X: 0, Y: 0}}
	src.Poll(0)
	script.points = []TouchPoint{{ID: 1, X: 40, Y: 0}, {ID: 2, X: 500, Y: 300}}
	intent := src.Poll(tick)
	assert.True(t, intent.Attack)
	assert.Greater(t, intent.Move.X, 0.0, "drag continues")

	// The second finger staying down does not repeat
	assert.False(t, src.Poll(2*tick).Attack)
}

func TestTouchOverridesFallbackOnlyWhileDragging(t *testing.T) {
	script := &touchScript{}
	fallback := SourceFunc(func(time.Duration) Intent {
		return Intent{Move: NewKeyboardSource(keys(config.ActionMoveLeft)).Poll(0).Move}
	})
	src := NewTouchSource(script.get, fallback)

	assert.Equal(t, -1.0, src.Poll(0).Move.X, "fallback applies with no drag")

	script.points = []TouchPoint{{ID: 1, X: 0, Y: 0}}
	src.Poll(tick)
	script.points = []TouchPoint{{ID: 1, X: 0, Y: 30}}
	intent := src.Poll(2 * tick)
	assert.Equal(t, 0.0, intent.Move.X)
	assert.InDelta(t, 0.5, intent.Move.Y, 1e-9)
}
