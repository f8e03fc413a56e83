// Package animations steps frame indices through a sprite sheet.
package animations

type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the animation by one tick at its own speed.
func (a *Animation) Update() {
	a.Advance(1)
}

// Advance counts rate ticks toward the next frame. Movement animations pass
// a rate that grows with ground speed so faster running cycles faster.
func (a *Animation) Advance(rate float32) {
	if rate <= 0 {
		return
	}
	a.frameCounter -= rate
	for a.frameCounter < 0 {
		a.frameCounter += a.SpeedInTps + 1
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				a.frame = a.Last
			} else {
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Frames is the number of sheet cells the animation spans.
func (a *Animation) Frames() int {
	return a.Last - a.First + 1
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}
