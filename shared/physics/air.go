package physics

import (
	"image"
	"math"

	"github.com/automoto/ringrush/shared/terrain"
)

// AirProbes returns the two 1 px tall probes the air search tests: along the
// top edge inset 1 px on the left, and along the bottom edge inset 1 px on
// both sides. Both carry the body-wide strip mask.
func (b *Body) AirProbes() [2]Probe {
	r := b.Rect()
	mask := b.stripMask()
	return [2]Probe{
		{Rect: image.Rect(r.Min.X+1, r.Min.Y, r.Max.X, r.Min.Y+1), Mask: mask},
		{Rect: image.Rect(r.Min.X+1, r.Max.Y-1, r.Max.X-1, r.Max.Y), Mask: mask},
	}
}

// airSearch looks for ground a vertical step away. On a hit the vertical
// speed is cut to the largest free distance and the body lands. The angle is
// flat while airborne.
func airSearch(idx *terrain.Index, b *Body) bool {
	landed := false
	for _, p := range b.AirProbes() {
		dy := int(math.Round(b.SpeedY))
		if !collides(idx, p, 0, dy) {
			continue
		}
		b.SpeedY = float64(AdjustPosition(idx, p, [2]int{0, dy}, 1))
		landed = true
	}
	if landed {
		b.Land()
	}
	b.Angle = 0
	return landed
}
