// Package physics is the slope-following collision core: sensors derived from
// a body's rectangle, the grounded/airborne state machine, wall and air
// resolution against the terrain index and the substepped tick. Every call
// takes the terrain index and the body explicitly; the index is never mutated.
package physics

import (
	"image"
	"math"

	"github.com/automoto/ringrush/shared/pixelmask"
)

// Body is the bounding state of a moving entity. X and Y are the rectangle's
// top-left corner; the rectangle used for collision is floored to whole pixels.
type Body struct {
	X, Y float64
	W, H int

	SpeedX, SpeedY float64
	// Angle is the slope under the body in degrees, positive rising to the
	// right. It stays 0 while airborne.
	Angle int

	Grounded bool
	Airborne bool

	// Action flags cleared when an airborne body lands.
	Jumping    bool
	SpringJump bool
	Hurt       bool
	HomingDash bool

	full, strip *pixelmask.Mask
}

// NewBody returns a grounded body at (x, y).
func NewBody(x, y float64, w, h int) *Body {
	return &Body{X: x, Y: y, W: w, H: h, Grounded: true}
}

// Rect returns the body's collision rectangle.
func (b *Body) Rect() image.Rectangle {
	x, y := int(math.Floor(b.X)), int(math.Floor(b.Y))
	return image.Rect(x, y, x+b.W, y+b.H)
}

// Launch puts the body in the air.
func (b *Body) Launch() {
	b.Grounded = false
	b.Airborne = true
	b.Angle = 0
}

// Land clears the airborne state and every action flag that ends on landing.
func (b *Body) Land() {
	b.Airborne = false
	b.Grounded = true
	b.Jumping = false
	b.SpringJump = false
	b.Hurt = false
	b.HomingDash = false
}

// Mask returns the opaque mask covering the body rectangle, for prop contact.
func (b *Body) Mask() *pixelmask.Mask {
	return b.fullMask()
}

// fullMask is the opaque mask covering the whole body rectangle.
func (b *Body) fullMask() *pixelmask.Mask {
	if w, h := sizeOf(b.full); b.full == nil || w != b.W || h != b.H {
		b.full = pixelmask.Filled(b.W, b.H)
	}
	return b.full
}

// stripMask is the opaque one-pixel-tall mask, body wide, used by the wall
// sensor and by the air search probes.
func (b *Body) stripMask() *pixelmask.Mask {
	if w, _ := sizeOf(b.strip); b.strip == nil || w != b.W {
		b.strip = pixelmask.Filled(b.W, 1)
	}
	return b.strip
}

func sizeOf(m *pixelmask.Mask) (int, int) {
	if m == nil {
		return 0, 0
	}
	return m.Size()
}
