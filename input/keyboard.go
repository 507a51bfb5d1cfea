package input

import (
	"time"

	"github.com/automoto/sushi-knight/config"
	"github.com/yohamta/donburi/features/math"
)

// KeyboardSource maps held direction actions to movement and the attack
// action's rising edge to an attack request.
type KeyboardSource struct {
	pressed    func(config.ActionID) bool
	attackHeld bool
}

func NewKeyboardSource(pressed func(config.ActionID) bool) *KeyboardSource {
	return &KeyboardSource{pressed: pressed}
}

func (k *KeyboardSource) Poll(_ time.Duration) Intent {
	var mx, my float64
	if k.pressed(config.ActionMoveLeft) {
		mx--
	}
	if k.pressed(config.ActionMoveRight) {
		mx++
	}
	if k.pressed(config.ActionMoveUp) {
		my--
	}
	if k.pressed(config.ActionMoveDown) {
		my++
	}

	move := math.NewVec2(mx, my)
	if mx != 0 && my != 0 {
		move = move.Normalized()
	}

	held := k.pressed(config.ActionAttack)
	attack := held && !k.attackHeld
	k.attackHeld = held

	return Intent{Move: move, Attack: attack}
}
