package components

import (
	"github.com/automoto/sushi-knight/assets/animations"
	"github.com/automoto/sushi-knight/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	Animations       map[string]*animations.Animation
}

// Play switches to the named animation from config.Animations, restarting
// it when it is already current and restart is set. Unknown keys clear the
// current animation.
func (a *AnimationData) Play(key string, restart bool) {
	if a.CurrentAnimation != nil && a.CurrentAnimation.Key == key {
		if restart {
			a.CurrentAnimation.Restart()
		}
		return
	}

	if a.Animations == nil {
		a.Animations = make(map[string]*animations.Animation)
	}

	anim, ok := a.Animations[key]
	if !ok {
		def, found := config.Animations[key]
		if !found {
			a.CurrentAnimation = nil
			return
		}
		anim = animations.NewAnimation(key, def.Frames, def.FPS, def.Loop)
		a.Animations[key] = anim
	}
	anim.Restart()
	a.CurrentAnimation = anim
}

// Stop clears the current animation.
func (a *AnimationData) Stop() {
	a.CurrentAnimation = nil
}

var Animation = donburi.NewComponentType[AnimationData]()
