package config

// AnimationDef describes a sprite-sheet animation by symbolic key. Frame
// curation happens in the asset pipeline; the simulation only needs the
// frame count and rate to know when a non-looping animation completes.
type AnimationDef struct {
	Frames int
	FPS    float64
	Loop   bool
}

// Animations maps animation keys to their definitions.
var Animations = map[string]AnimationDef{
	"knight-run":    {Frames: 8, FPS: 7, Loop: true},
	"knight-attack": {Frames: 6, FPS: 14, Loop: false},
	"maguro-attack": {Frames: 3, FPS: 10, Loop: false},
}
