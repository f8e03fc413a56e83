package props

import (
	"image"
	"math"

	"github.com/automoto/ringrush/shared/physics"
	"github.com/automoto/ringrush/shared/pixelmask"
	"github.com/solarlune/resolv"
)

// Default prop sizes in pixels.
var defaultSize = map[Kind][2]float64{
	KindRing:          {16, 16},
	KindSpring:        {64, 64},
	KindGoal:          {48, 64},
	KindEnemy:         {20, 20},
	KindScatteredRing: {16, 16},
}

// Prop is one level object. Kind selects its behaviour through
// Kind.Capabilities; the optional parts (Mask, Walker, Enemy) are set only
// for the kinds that use them.
type Prop struct {
	ID   int
	Kind Kind
	Animation

	X, Y, W, H float64

	// Mask, when set, refines contact to opaque pixels of the prop's art.
	Mask *pixelmask.Mask

	// Walker moves walking kinds against terrain.
	Walker *physics.Walker
	Enemy  *Enemy

	// Age counts ticks since spawn. Expiring kinds are removed once Age
	// reaches Lifetime; collecting kinds ignore contact before CollectAfter.
	Age          int
	Lifetime     int
	CollectAfter int

	// Triggered is set once a goal has been touched or a spring is recoiling.
	Triggered bool

	object  *resolv.Object
	removed bool
}

// Rect returns the prop's rectangle in whole pixels.
func (p *Prop) Rect() image.Rectangle {
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	return image.Rect(x, y, x+int(p.W), y+int(p.H))
}

// Center returns the centre of the prop's rectangle.
func (p *Prop) Center() (float64, float64) {
	return p.X + p.W/2, p.Y + p.H/2
}

// Removed reports whether the prop has left the field.
func (p *Prop) Removed() bool {
	return p.removed
}

// Collectable reports whether touching the prop collects it now.
func (p *Prop) Collectable() bool {
	return p.Kind.Capabilities().Collects && !p.removed && !p.Playing() && p.Age >= p.CollectAfter
}

// Expired reports whether an expiring prop has outlived its lifetime.
func (p *Prop) Expired() bool {
	return p.Kind.Capabilities().Expires && p.Lifetime > 0 && p.Age >= p.Lifetime
}

// Touches reports whether the rectangle r, optionally refined by mask m
// anchored at r.Min, touches the prop. Without masks on both sides the
// rectangles decide.
func (p *Prop) Touches(r image.Rectangle, m *pixelmask.Mask) bool {
	pr := p.Rect()
	if !pr.Overlaps(r) {
		return false
	}
	if p.Mask == nil || m == nil {
		return true
	}
	return p.Mask.Overlaps(m, r.Min.X-pr.Min.X, r.Min.Y-pr.Min.Y)
}

// syncWalker copies the walker's position into the prop.
func (p *Prop) syncWalker() {
	if p.Walker != nil {
		p.X, p.Y = p.Walker.Position()
	}
}
