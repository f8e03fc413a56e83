package physics

import (
	"image"
	"math"

	"github.com/automoto/ringrush/shared/terrain"
	"github.com/solarlune/resolv"
)

// Contacts records which sides of a walker touched terrain during its last
// step.
type Contacts struct {
	Left, Right, Up, Down bool
}

// Walker is a rectangle entity (enemy, scattered ring) that collides with
// terrain rectangles only. It lives in a space built by terrain.Index.NewSpace
// and resolves horizontal movement before vertical. Object holds space
// coordinates; Position and Rect are in level coordinates.
type Walker struct {
	Object *resolv.Object
	space  *terrain.Space

	VX, VY   float64
	Gravity  float64 // added to VY after each step
	MaxFall  float64
	Drag     float64 // VX multiplier per step; 1 keeps VX
	Contacts Contacts
}

// Walker defaults.
const (
	WalkerGravity = 0.1
	WalkerMaxFall = 2
)

// NewWalker adds a w×h walker at level position (x, y) to space.
func NewWalker(space *terrain.Space, x, y, w, h float64, tags ...string) *Walker {
	lx, ly := space.Local(x, y)
	obj := resolv.NewObject(lx, ly, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Add(obj)
	return &Walker{
		Object:  obj,
		space:   space,
		Gravity: WalkerGravity,
		MaxFall: WalkerMaxFall,
		Drag:    1,
	}
}

// Position returns the walker's top-left corner in level coordinates.
func (w *Walker) Position() (float64, float64) {
	return w.space.World(w.Object.X, w.Object.Y)
}

// SetPosition moves the walker to level position (x, y) without resolving
// terrain.
func (w *Walker) SetPosition(x, y float64) {
	w.Object.X, w.Object.Y = w.space.Local(x, y)
	w.Object.Update()
}

// Rect returns the walker's rectangle in whole pixels.
func (w *Walker) Rect() image.Rectangle {
	fx, fy := w.Position()
	x, y := int(math.Floor(fx)), int(math.Floor(fy))
	return image.Rect(x, y, x+int(w.Object.W), y+int(w.Object.H))
}

// Step moves the walker by its velocity plus (moveX, 0), stopping flush
// against any solid terrain it would enter, then applies gravity and drag.
// Vertical speed resets when the walker hits a floor or ceiling.
func (w *Walker) Step(moveX float64) {
	w.Contacts = Contacts{}
	o := w.Object

	if dx := moveX + w.VX; dx != 0 {
		o.X += w.clip(dx, 0)
	}
	if dy := w.VY; dy != 0 {
		o.Y += w.clip(0, dy)
	}
	o.Update()

	w.VY = min(w.MaxFall, w.VY+w.Gravity)
	if w.Contacts.Down || w.Contacts.Up {
		w.VY = 0
	}
	w.VX *= w.Drag
}

// clip shortens a single-axis move so the walker stops at the nearest solid
// in the way, recording the contact side.
func (w *Walker) clip(dx, dy float64) float64 {
	o := w.Object
	check := o.Check(dx, dy, terrain.TagSolid)
	if check == nil {
		return dx + dy
	}

	moveX, moveY := o.X+dx, o.Y+dy
	for _, s := range check.ObjectsByTags(terrain.TagSolid) {
		if moveX >= s.X+s.W || moveX+o.W <= s.X || moveY >= s.Y+s.H || moveY+o.H <= s.Y {
			continue
		}
		switch {
		case dx > 0:
			dx = min(dx, s.X-(o.X+o.W))
			w.Contacts.Right = true
		case dx < 0:
			dx = max(dx, s.X+s.W-o.X)
			w.Contacts.Left = true
		case dy > 0:
			dy = min(dy, s.Y-(o.Y+o.H))
			w.Contacts.Down = true
		case dy < 0:
			dy = max(dy, s.Y+s.H-o.Y)
			w.Contacts.Up = true
		}
		moveX, moveY = o.X+dx, o.Y+dy
	}
	return dx + dy
}

// Remove takes the walker out of its space.
func (w *Walker) Remove() {
	if w.Object.Space != nil {
		w.Object.Space.Remove(w.Object)
	}
}

// ledgeProbeX and ledgeProbeY locate the point a patrolling walker tests for
// ground ahead of itself.
const (
	ledgeProbeX = 8
	ledgeProbeY = 20
)

// GroundAhead reports whether solid terrain lies ahead of and below a walker
// facing left (flip) or right.
func GroundAhead(idx *terrain.Index, w *Walker, flip bool) bool {
	dx := ledgeProbeX
	if flip {
		dx = -ledgeProbeX
	}
	r := w.Rect()
	return idx.SolidCheck(image.Pt(r.Min.X+dx, r.Min.Y+ledgeProbeY))
}
