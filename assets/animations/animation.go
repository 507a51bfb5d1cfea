package animations

import "time"

// Animation plays a fixed number of frames at a fixed rate. Non-looping
// animations stop on their last frame and report completion exactly once.
type Animation struct {
	Key     string
	Frames  int
	FPS     float64
	Loop    bool
	elapsed time.Duration
	frame   int
	done    bool
}

// Update advances the animation by dt and reports whether a non-looping
// animation completed during this call.
func (a *Animation) Update(dt time.Duration) bool {
	if a.done || a.Frames <= 0 || a.FPS <= 0 {
		return false
	}

	a.elapsed += dt
	total := a.Duration()
	if a.Loop {
		if total > 0 {
			a.elapsed %= total
		}
		a.frame = int(a.elapsed.Seconds() * a.FPS)
		return false
	}

	if a.elapsed >= total {
		a.elapsed = total
		a.frame = a.Frames - 1
		a.done = true
		return true
	}
	a.frame = int(a.elapsed.Seconds() * a.FPS)
	return false
}

// Duration is the time one pass over all frames takes.
func (a *Animation) Duration() time.Duration {
	if a.FPS <= 0 {
		return 0
	}
	return time.Duration(float64(a.Frames) / a.FPS * float64(time.Second))
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Done() bool {
	return a.done
}

func (a *Animation) Restart() {
	a.elapsed = 0
	a.frame = 0
	a.done = false
}

func NewAnimation(key string, frames int, fps float64, loop bool) *Animation {
	return &Animation{
		Key:    key,
		Frames: frames,
		FPS:    fps,
		Loop:   loop,
	}
}
