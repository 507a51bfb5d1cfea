package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	Velocity math.Vec2 // units per second
	Drag     float64   // deceleration in units/s² while sliding under knockback
	MaxSpeed float64

	// While Knockback > 0 the body slides on Velocity and ignores steering.
	Knockback time.Duration
}

// Stop zeroes velocity.
func (p *PhysicsData) Stop() {
	p.Velocity = math.Vec2{}
}

// ApplyDrag slows the body by Drag over dt without reversing it.
func (p *PhysicsData) ApplyDrag(dt time.Duration) {
	mag := p.Velocity.Magnitude()
	if mag == 0 || p.Drag <= 0 {
		return
	}
	next := max(0, mag-p.Drag*dt.Seconds())
	p.Velocity = p.Velocity.MulScalar(next / mag)
}

var Physics = donburi.NewComponentType[PhysicsData]()
