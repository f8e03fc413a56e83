package props

import (
	"math/rand/v2"

	"github.com/automoto/ringrush/shared/gamemath"
	"github.com/automoto/ringrush/shared/physics"
	"github.com/automoto/ringrush/shared/terrain"
)

// Scattered ring tuning.
const (
	ScatterMax      = 20
	ScatterSpeed    = 4    // launch speed is uniform in [-ScatterSpeed, ScatterSpeed)
	ScatterSpread   = 0.5  // launch angle is uniform in [-ScatterSpread, ScatterSpread) radians
	ScatterDrag     = 0.99 // horizontal speed multiplier per tick
	ScatterLifetime = 300  // ticks, 5 s at 60 TPS
	// RecollectDelay keeps scattered rings out of reach right after a hit
	// (2.5 s at 60 TPS).
	RecollectDelay = 150
)

// TagScatteredRing marks scattered ring walkers in the terrain space.
const TagScatteredRing = "scattered-ring"

// Scatter throws up to ScatterMax rings from (x, y). Each is a walker in the
// terrain space with a random launch; rings bounce off terrain rectangles,
// slow with ScatterDrag and expire after ScatterLifetime ticks.
func (f *Field) Scatter(space *terrain.Space, rng *rand.Rand, x, y float64, rings int) []*Prop {
	n := min(rings, ScatterMax)
	out := make([]*Prop, 0, n)
	for range n {
		speed := (rng.Float64()*2 - 1) * ScatterSpeed
		angle := (rng.Float64()*2 - 1) * ScatterSpread

		p := f.Spawn(KindScatteredRing, x, y)
		p.Lifetime = ScatterLifetime
		p.CollectAfter = RecollectDelay

		w := physics.NewWalker(space, x, y, p.W, p.H, TagScatteredRing)
		w.Drag = ScatterDrag
		w.VX, w.VY = gamemath.ScatterVelocity(speed, angle)
		p.Walker = w
		out = append(out, p)
	}
	return out
}
