package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData wraps the resolv body. Position is the top-left corner; most
// gameplay code works with Center.
type ObjectData struct {
	*resolv.Object
}

func (o *ObjectData) Center() math.Vec2 {
	return math.NewVec2(o.X+o.W/2, o.Y+o.H/2)
}

// SetCenter moves the body so its centre lands on c and refreshes the space.
func (o *ObjectData) SetCenter(c math.Vec2) {
	o.X = c.X - o.W/2
	o.Y = c.Y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
