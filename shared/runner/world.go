package runner

import (
	"image"
	"math/rand/v2"
	"time"

	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/automoto/ringrush/shared/physics"
	"github.com/automoto/ringrush/shared/pixelmask"
	"github.com/automoto/ringrush/shared/props"
	"github.com/automoto/ringrush/shared/terrain"
)

// TicksPerSecond is the fixed simulation rate.
const TicksPerSecond = 60

// TickSeconds is the length of one tick, for tweens.
const TickSeconds = float32(1) / TicksPerSecond

// World is one level in play: geometry, the walker space, props and enemy
// shots. It is driven one tick at a time and is not safe for concurrent use.
type World struct {
	Index  *terrain.Index
	Space  *terrain.Space
	Field  *props.Field
	Params physics.Params
	Tuning Tuning
	Rand   *rand.Rand

	Shots []*props.Projectile
	Start image.Point
	// DeathY is the body top below which a fall costs a life.
	DeathY float64
	Ticks  int

	goal *props.Prop
}

// Config assembles a World.
type Config struct {
	Params        physics.Params
	Tuning        Tuning
	SpaceCellSize int
	DeathMargin   float64
	Seed          uint64
	// Masks refine contact for prop kinds whose art does not fill their
	// rectangle.
	Masks map[props.Kind]*pixelmask.Mask
}

// DefaultConfig returns the classic physics and movement tuning.
func DefaultConfig() Config {
	return Config{
		Params:        physics.DefaultParams(),
		Tuning:        DefaultTuning(),
		SpaceCellSize: 16,
		DeathMargin:   128,
	}
}

// NewWorld builds the walker space and prop field for a level whose index has
// already been built.
func NewWorld(level *leveldata.Level, idx *terrain.Index, cfg Config) *World {
	bounds := idx.Bounds()
	if level.Width > 0 && level.Height > 0 {
		bounds = bounds.Union(image.Rect(level.Origin.X, level.Origin.Y, level.Origin.X+level.Width, level.Origin.Y+level.Height))
	}
	w := &World{
		Index:  idx,
		Space:  idx.NewSpace(max(cfg.SpaceCellSize, 1)),
		Field:  props.NewField(bounds),
		Params: cfg.Params,
		Tuning: cfg.Tuning,
		Rand:   rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		Start:  level.Start,
		DeathY: float64(bounds.Max.Y) + cfg.DeathMargin,
	}
	w.Field.Populate(level, w.Space)
	for _, p := range w.Field.Props() {
		if m, ok := cfg.Masks[p.Kind]; ok {
			p.Mask = m
		}
	}
	return w
}

// Elapsed is the level clock.
func (w *World) Elapsed() time.Duration {
	return time.Duration(w.Ticks) * time.Second / TicksPerSecond
}

// SpawnPlayer places a fresh player at the level start.
func (w *World) SpawnPlayer(width, height, lives int) *Player {
	return NewPlayer(float64(w.Start.X), float64(w.Start.Y), width, height, lives)
}

// Respawn puts a dead player back at the start with its score and remaining
// lives and no rings.
func (w *World) Respawn(p *Player) {
	b := p.Body
	*p = Player{
		Body:         physics.NewBody(float64(w.Start.X), float64(w.Start.Y), b.W, b.H),
		Tally:        p.Tally,
		FacingLeft:   false,
		InvulnFrames: w.Tuning.RespawnInvulnFrames,
	}
	p.Tally.Rings = 0
}

// Targets returns the centres of live enemies for homing.
func (w *World) Targets() [][2]float64 {
	enemies := w.Field.Of(props.KindEnemy)
	out := make([][2]float64, 0, len(enemies))
	for _, e := range enemies {
		x, y := e.Center()
		out = append(out, [2]float64{x, y})
	}
	return out
}

// Tick runs one full simulation tick: input, physics, props, enemies and
// contacts, in the order the game's systems run them.
func (w *World) Tick(p *Player, in Intent) Events {
	if p.Dead {
		return w.Dying(p)
	}
	Control(p, in, w.Tuning, w.Targets())
	w.Move(p)
	w.Field.Tick(TickSeconds)
	ev := w.UpdateEnemies(p)
	ev.Merge(w.Interact(p))
	w.Clock()
	return ev
}

// Clock advances the level clock by one tick. It stops once the goal post
// has been touched.
func (w *World) Clock() {
	if w.goal == nil {
		w.Ticks++
	}
}

// Move steps the player's body through the physics core and applies the
// death plane.
func (w *World) Move(p *Player) {
	if p.Dead {
		return
	}
	p.Ground = physics.Step(w.Index, p.Body, w.Params)
	if p.Body.Y > w.DeathY {
		p.die(w.Tuning, false)
	}
}

// Dying advances the death fall. The body ignores terrain. DeathOver is set on
// the tick the sequence ends; the caller then respawns or ends the game.
func (w *World) Dying(p *Player) Events {
	if !p.Dead {
		return Events{}
	}
	b := p.Body
	b.SpeedY += w.Params.Gravity
	if w.Params.MaxFall > 0 {
		b.SpeedY = min(b.SpeedY, w.Params.MaxFall)
	}
	b.Y += b.SpeedY
	w.Field.Tick(TickSeconds)

	if p.DeathTimer > 0 {
		p.DeathTimer--
	}
	return Events{DeathOver: p.DeathTimer == 0}
}

// GoalSpinning reports whether the goal post was touched and is still
// spinning.
func (w *World) GoalSpinning() bool {
	return w.goal != nil && w.goal.Playing()
}

// Complete reports whether the goal post was touched and finished spinning.
func (w *World) Complete() bool {
	return w.goal != nil && !w.goal.Playing()
}
