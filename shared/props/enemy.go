package props

import (
	"image"
	"math/rand/v2"

	"github.com/automoto/ringrush/shared/physics"
	"github.com/automoto/ringrush/shared/terrain"
)

// Enemy patrol and shooting tuning, per tick.
const (
	EnemyWalkSpeed  = 0.5
	EnemyWalkChance = 0.01
	EnemyWalkMin    = 30
	EnemyWalkMax    = 120

	ShotSpeed    = 1.5
	ShotCooldown = 60
	ShotLifetime = 240
	// ShotSightY is how far below the enemy's top the player's centre may be
	// for the enemy to see it.
	ShotSightY = 5
)

// TagEnemy marks enemy walkers in the terrain space.
const TagEnemy = "enemy"

// Enemy is the patrol state of a hostile prop.
type Enemy struct {
	Walking  int // ticks of walking left
	Cooldown int // ticks until the next shot
	Flip     bool
}

// Projectile is an enemy shot travelling horizontally.
type Projectile struct {
	X, Y float64
	VX   float64
	Age  int
}

// Step moves the shot and reports whether it has outlived ShotLifetime.
func (s *Projectile) Step() bool {
	s.X += s.VX
	s.Age++
	return s.Age > ShotLifetime
}

// Hits reports whether the shot's point lies inside r.
func (s *Projectile) Hits(r image.Rectangle) bool {
	return image.Pt(int(s.X), int(s.Y)).In(r)
}

// SpawnEnemy adds an enemy prop at (x, y) with a walker in the terrain space.
func (f *Field) SpawnEnemy(space *terrain.Space, x, y float64) *Prop {
	p := f.Spawn(KindEnemy, x, y)
	p.Walker = physics.NewWalker(space, x, y, p.W, p.H, TagEnemy)
	p.Enemy = &Enemy{}
	return p
}

// Think runs one patrol tick for enemy prop p and steps its walker. While
// walking it turns at ledges and walls and fires at a player ahead of it whose centre is
// less than ShotSightY below its top. The fired shot, if any, is returned.
func Think(idx *terrain.Index, p *Prop, rng *rand.Rand, playerCenter image.Point) *Projectile {
	e, w := p.Enemy, p.Walker
	if e == nil || w == nil {
		return nil
	}

	var move float64
	var shot *Projectile
	switch {
	case e.Walking > 0:
		if physics.GroundAhead(idx, w, e.Flip) {
			move = EnemyWalkSpeed
			if e.Flip {
				move = -EnemyWalkSpeed
			}
		} else {
			e.Flip = !e.Flip
		}
		e.Walking--
		if e.Cooldown > 0 {
			e.Cooldown--
		}
		shot = e.aim(w, playerCenter)
	case rng.Float64() < EnemyWalkChance:
		e.Walking = EnemyWalkMin + rng.IntN(EnemyWalkMax-EnemyWalkMin+1)
	}

	w.Step(move)
	if w.Contacts.Left || w.Contacts.Right {
		e.Flip = !e.Flip
	}
	p.syncWalker()
	return shot
}

func (e *Enemy) aim(w *physics.Walker, player image.Point) *Projectile {
	if e.Cooldown != 0 {
		return nil
	}
	x, y := w.Position()
	dx := float64(player.X) - x
	dy := float64(player.Y) - y
	if dy >= ShotSightY {
		return nil
	}
	var vx float64
	switch {
	case e.Flip && dx < 0:
		vx = -ShotSpeed
	case !e.Flip && dx > 0:
		vx = ShotSpeed
	default:
		return nil
	}
	e.Cooldown = ShotCooldown
	r := w.Rect()
	c := r.Min.Add(r.Size().Div(2))
	return &Projectile{X: float64(c.X), Y: float64(c.Y), VX: vx}
}
