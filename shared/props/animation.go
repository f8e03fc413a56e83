package props

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Effect timings in seconds.
const (
	CollectSeconds = 0.3
	SpinSeconds    = 2
	SpinTurns      = 6
)

// Animation is the frame and effect state embedded in every prop. Frames
// cycle every TicksPerFrame ticks; Effect, when set, drives Value once from
// its start to its end.
type Animation struct {
	Frame         int
	Frames        int
	TicksPerFrame int
	ticks         int

	Effect *gween.Tween
	Value  float32
	Done   bool
}

// Advance moves the animation forward one tick of dt seconds.
func (a *Animation) Advance(dt float32) {
	if a.Frames > 1 && a.TicksPerFrame > 0 {
		a.ticks++
		if a.ticks >= a.TicksPerFrame {
			a.ticks = 0
			a.Frame = (a.Frame + 1) % a.Frames
		}
	}
	if a.Effect != nil && !a.Done {
		a.Value, a.Done = a.Effect.Update(dt)
	}
}

// Play starts an effect from its first value.
func (a *Animation) Play(t *gween.Tween) {
	a.Effect = t
	a.Done = false
	a.Value, _ = t.Update(0)
}

// Playing reports whether an effect is running.
func (a *Animation) Playing() bool {
	return a.Effect != nil && !a.Done
}

// CollectEffect shrinks a collected ring's scale from 1 to 0.
func CollectEffect() *gween.Tween {
	return gween.New(1, 0, CollectSeconds, ease.OutQuad)
}

// SpinEffect turns the goal post SpinTurns times, slowing to a stop. Value is
// the rotation in radians.
func SpinEffect() *gween.Tween {
	return gween.New(0, float32(SpinTurns*2*math.Pi), SpinSeconds, ease.OutCubic)
}
