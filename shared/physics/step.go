package physics

import "github.com/automoto/ringrush/shared/terrain"

// Bounds clamps the body horizontally to a level. It is disabled when End is
// not beyond Start.
type Bounds struct {
	Start, End float64
	// StartInset and EndInset place a clamped body at Start+StartInset or
	// End-EndInset. A body is never placed further right than End minus its
	// width.
	StartInset, EndInset float64
}

// Clamp pulls a body that crossed either edge back inside and stops its
// vertical motion. It reports whether the body was moved.
func (bd Bounds) Clamp(b *Body) bool {
	if bd.End <= bd.Start {
		return false
	}
	r := b.Rect()
	moved := false
	if float64(r.Min.X) < bd.Start {
		b.X = bd.Start + bd.StartInset
		b.SpeedY = 0
		moved = true
	}
	if float64(r.Max.X) > bd.End {
		b.X = bd.End - max(bd.EndInset, float64(b.W))
		b.SpeedY = 0
		moved = true
	}
	return moved
}

// Params control a physics tick.
type Params struct {
	Substeps  int
	Gravity   float64 // added to SpeedY once per tick while airborne
	MaxFall   float64 // zero disables the clamp
	ArtOffset int
	Bounds    Bounds
}

// DefaultParams returns the classic tuning: six substeps, gravity 0.21875 px
// per tick squared, the 66 px art offset and bounds insets of 2 and 32 px.
// Bounds.End is left for the caller to set from the level width.
func DefaultParams() Params {
	return Params{
		Substeps:  6,
		Gravity:   0.21875,
		MaxFall:   16,
		ArtOffset: DefaultArtOffset,
		Bounds:    Bounds{StartInset: 2, EndInset: 32},
	}
}

// Step advances the body by one tick. Gravity is applied once, then each
// substep moves the body horizontally and resolves walls before moving it
// vertically and running the ground pass, so fast bodies cannot tunnel through
// thin geometry. The last substep's ground pass is returned.
func Step(idx *terrain.Index, b *Body, p Params) GroundResult {
	if b.Airborne {
		b.SpeedY += p.Gravity
		if p.MaxFall > 0 {
			b.SpeedY = min(b.SpeedY, p.MaxFall)
		}
	} else {
		b.SpeedY = 0
	}

	n := max(p.Substeps, 1)
	var res GroundResult
	for range n {
		p.Bounds.Clamp(b)

		b.X += b.SpeedX / float64(n)
		DetectWall(idx, b)

		b.Y += b.SpeedY / float64(n)
		res = DetectGround(idx, b, p.ArtOffset)
	}
	return res
}
