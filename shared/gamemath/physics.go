package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Accelerate returns the next ground speed for a direction input of -1, 0 or
// 1. Holding a direction adds accel, releasing it applies friction, and the
// result is clamped to top speed.
func Accelerate(speed, dir, accel, friction, top float64) float64 {
	if dir != 0 {
		speed += dir * accel
	} else {
		speed = ApplyFriction(speed, friction)
	}
	return ClampSpeed(speed, top)
}

// Roll returns the next rolling speed. On flat ground the roll decays by
// friction+decel toward zero; on slopes slopeFactor pulls the roll downhill,
// capped at top speed. Positive angles rise to the right.
func Roll(speed float64, angle int, friction, decel, slopeFactor, top float64) float64 {
	switch {
	case angle == 0:
		return ApplyFriction(speed, friction+decel)
	case angle > 0:
		return math.Max(speed-slopeFactor, -top)
	default:
		return math.Min(speed+slopeFactor, top)
	}
}

// Rolling reports whether a body rolling at speed on angle keeps rolling.
func Rolling(speed float64, angle int) bool {
	return speed != 0 || angle != 0
}

// AirDrag applies the rising-jump drag: while -4 < speedY < 0 the speed loses
// floor(speedY/0.125)/256.
func AirDrag(speedY float64) float64 {
	if speedY < 0 && speedY > -4 {
		speedY -= math.Floor(speedY/0.125) / 256
	}
	return speedY
}

// JumpSpeed returns the vertical speed after a jump impulse of force, with air
// drag applied and the result held at or above maxSpeed (both negative).
func JumpSpeed(speedY, force, maxSpeed float64) float64 {
	return math.Max(AirDrag(speedY+force), maxSpeed)
}

// SpinDashSpeed turns accumulated spin revs into a release speed in the
// facing direction: 8 + floor(revs/2), less roll friction and deceleration,
// never reversing direction.
func SpinDashSpeed(revs float64, facingLeft bool, rollFriction, rollDecel float64) float64 {
	speed := math.Max(8+math.Floor(revs/2)-rollFriction-rollDecel, 0)
	if facingLeft {
		return -speed
	}
	return speed
}

// Knockback returns the hurt bounce away from the facing direction.
func Knockback(facingLeft bool, forceX, forceY float64) (vx, vy float64) {
	if facingLeft {
		return forceX, forceY
	}
	return -forceX, forceY
}
