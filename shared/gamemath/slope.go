package gamemath

import "math"

// SnapToSurfaceY returns the top Y that rests a body of height h on surfaceY,
// shifted by the art offset between the sprite and its collision box.
func SnapToSurfaceY(surfaceY, h, offset int) float64 {
	return float64(surfaceY - h + offset)
}

// AngleRadians converts a slope angle in degrees, positive rising to the
// right, into the screen rotation that tilts a sprite onto it. Screen Y grows
// downward so the rotation is negated.
func AngleRadians(deg int) float64 {
	return -float64(deg) * math.Pi / 180
}

// ScatterVelocity returns the launch velocity of a scattered object thrown at
// speed along angle radians.
func ScatterVelocity(speed, angle float64) (vx, vy float64) {
	return speed * math.Cos(angle), speed * math.Sin(angle)
}
