package gamemath

import "math"

// CalculateHomingVelocity returns velocity components to home toward a target.
func CalculateHomingVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - fromX
	dirY := targetY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// HomingDashSpeed returns the horizontal burst of a homing dash toward dir
// (-1 or 1): base plus half the accumulated acceleration, less air drag. A zero
// dir gives no burst.
func HomingDashSpeed(dir, base, accel, airDrag float64) float64 {
	speed := math.Max(base+math.Floor(accel/2)-airDrag, 0)
	switch {
	case dir > 0:
		return speed
	case dir < 0:
		return -speed
	}
	return 0
}

// Nearest returns the index of the point closest to (x, y) within maxDist, or
// -1 if none is.
func Nearest(x, y float64, points [][2]float64, maxDist float64) int {
	best, bestDist := -1, maxDist*maxDist
	for i, p := range points {
		dx, dy := p[0]-x, p[1]-y
		if d := dx*dx + dy*dy; d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
