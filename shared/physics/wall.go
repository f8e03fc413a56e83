package physics

import (
	"math"

	"github.com/automoto/ringrush/shared/terrain"
)

// WallProbe returns the probe used for wall contact: the wall sensor strip on
// the ground, the whole body in the air.
func (b *Body) WallProbe() Probe {
	if b.Grounded {
		return Probe{Rect: b.Sensors().Wall, Mask: b.stripMask()}
	}
	return Probe{Rect: b.Rect(), Mask: b.fullMask()}
}

// DetectWall tests the wall probe one tick of horizontal speed ahead. On
// contact the horizontal speed is cut to the largest free distance, zero when
// the body is already against the wall. It reports whether a wall was hit.
func DetectWall(idx *terrain.Index, b *Body) bool {
	p := b.WallProbe()
	dx := int(math.Round(b.SpeedX))
	if dx == 0 {
		return false
	}
	if !collides(idx, p, dx, 0) {
		return false
	}
	b.SpeedX = float64(AdjustPosition(idx, p, [2]int{dx, 0}, 0))
	return true
}
