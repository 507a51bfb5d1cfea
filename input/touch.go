package input

import (
	"time"

	"github.com/automoto/sushi-knight/config"
	"github.com/yohamta/donburi/features/math"
)

// TouchPoint is one active contact in screen space.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// TouchSource implements drag-to-move and tap-to-attack.
//
// The first new contact becomes the move pointer. Its displacement from
// where it went down, clamped to config.Touch.MaxDragRadius and divided by
// it, is the movement intent; the magnitude is kept rather than
// normalised. Any other new contact while the pointer is held is an
// attack. Releasing the pointer quickly without moving past the deadzone
// is also an attack.
//
// While a drag is active it fully replaces the fallback's movement. The
// fallback's attack requests still pass through.
type TouchSource struct {
	touches  func() []TouchPoint
	fallback Source

	seen map[int]bool

	moving    bool
	moveID    int
	start     math.Vec2
	last      math.Vec2
	startedAt time.Duration
}

func NewTouchSource(touches func() []TouchPoint, fallback Source) *TouchSource {
	return &TouchSource{
		touches:  touches,
		fallback: fallback,
		seen:     make(map[int]bool),
	}
}

func (t *TouchSource) Poll(now time.Duration) Intent {
	var fb Intent
	if t.fallback != nil {
		fb = t.fallback.Poll(now)
	}

	points := t.touches()
	prev := t.seen
	t.seen = make(map[int]bool, len(points))
	for _, p := range points {
		t.seen[p.ID] = true
	}

	attack := false

	if t.moving {
		if p, ok := findTouch(points, t.moveID); ok {
			t.last = math.NewVec2(p.X, p.Y)
		} else {
			if now-t.startedAt <= config.Touch.TapMaxTime &&
				t.last.Distance(t.start) <= config.Touch.Deadzone {
				attack = true
			}
			t.moving = false
		}
	}

	for _, p := range points {
		if prev[p.ID] {
			continue
		}
		if !t.moving {
			t.moving = true
			t.moveID = p.ID
			t.start = math.NewVec2(p.X, p.Y)
			t.last = t.start
			t.startedAt = now
			continue
		}
		if p.ID != t.moveID {
			attack = true
		}
	}

	if !t.moving {
		return Intent{Move: fb.Move, Attack: attack || fb.Attack}
	}
	return Intent{Move: t.dragVector(), Attack: attack || fb.Attack}
}

// Dragging reports whether a move pointer is held.
func (t *TouchSource) Dragging() bool {
	return t.moving
}

func (t *TouchSource) dragVector() math.Vec2 {
	radius := config.Touch.MaxDragRadius
	d := t.last.Sub(t.start)
	mag := d.Magnitude()
	if mag <= config.Touch.Deadzone || radius <= 0 {
		return math.Vec2{}
	}
	if mag > radius {
		d = d.MulScalar(radius / mag)
	}
	return d.MulScalar(1 / radius)
}

func findTouch(points []TouchPoint, id int) (TouchPoint, bool) {
	for _, p := range points {
		if p.ID == id {
			return p, true
		}
	}
	return TouchPoint{}, false
}
