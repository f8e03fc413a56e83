package runner

import (
	"image"
	"testing"
	"time"

	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/automoto/ringrush/shared/pixelmask"
	"github.com/automoto/ringrush/shared/props"
	"github.com/automoto/ringrush/shared/terrain"
	"github.com/automoto/ringrush/shared/tileprofile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restY is where a 16 px body settles on a flat cell whose top is y=0.
const restY = -13.0

func flatIndex(t *testing.T, cells int) *terrain.Index {
	t.Helper()
	p := tileprofile.Extract("flat.png", tileprofile.FlatTile(0), nil, pixelmask.DefaultAlphaThreshold)
	var src []terrain.Source
	for i := range cells {
		src = append(src, terrain.Source{Key: terrain.Key{X: i * terrain.CellSize, Y: 0}, Profile: p})
	}
	return terrain.Build(src)
}

func newWorld(t *testing.T, objects ...leveldata.Object) (*World, *Player) {
	t.Helper()
	level := &leveldata.Level{
		Name:    "test",
		Start:   image.Pt(50, int(restY)),
		Objects: objects,
	}
	w := NewWorld(level, flatIndex(t, 10), DefaultConfig())
	return w, w.SpawnPlayer(16, 16, 3)
}

func groundedPlayer() *Player {
	p := NewPlayer(50, restY, 16, 16, 3)
	return p
}

func TestControl_AccelerateAndFriction(t *testing.T) {
	tn := DefaultTuning()
	p := groundedPlayer()

	Control(p, Intent{Right: true}, tn, nil)
	assert.Equal(t, 0.046875, p.Body.SpeedX)
	assert.False(t, p.FacingLeft)

	Control(p, Intent{}, tn, nil)
	assert.Equal(t, 0.0, p.Body.SpeedX, "friction stops slow bodies")
}

func TestControl_BrakeAndTopSpeed(t *testing.T) {
	tn := DefaultTuning()
	p := groundedPlayer()

	p.Body.SpeedX = 2
	Control(p, Intent{Left: true}, tn, nil)
	assert.Equal(t, 1.375, p.Body.SpeedX)
	assert.True(t, p.FacingLeft)

	p.Body.SpeedX = 7.49
	Control(p, Intent{Right: true}, tn, nil)
	assert.Equal(t, 7.5, p.Body.SpeedX)
}

func TestControl_Jump(t *testing.T) {
	tn := DefaultTuning()
	p := groundedPlayer()

	Control(p, Intent{Jump: true}, tn, nil)

	b := p.Body
	assert.True(t, b.Airborne)
	assert.True(t, b.Jumping)
	assert.Equal(t, -6.0, b.SpeedY)

	b.SpeedY = -1
	Control(p, Intent{Jump: true}, tn, nil)
	assert.True(t, b.HomingDash, "a second press in the air is the homing dash")
}

func TestControl_CrouchWhileMovingRolls(t *testing.T) {
	tn := DefaultTuning()
	p := groundedPlayer()
	p.Body.SpeedX = 3

	Control(p, Intent{Down: true}, tn, nil)

	assert.True(t, p.Crouching)
	assert.True(t, p.Rolling)
	assert.InDelta(t, 3-0.1484375, p.Body.SpeedX, 1e-9)
	assert.True(t, p.Attacking())

	Control(p, Intent{}, tn, nil)
	assert.False(t, p.Rolling, "releasing down ends the roll")
}

func TestControl_SpinDash(t *testing.T) {
	tn := DefaultTuning()
	p := groundedPlayer()

	Control(p, Intent{Down: true}, tn, nil)
	require.True(t, p.Crouching)
	require.False(t, p.Rolling)

	Control(p, Intent{Down: true, Jump: true}, tn, nil)
	require.True(t, p.Charging)
	assert.False(t, p.Body.Airborne, "charging does not jump")

	for range 5 {
		Control(p, Intent{Down: true, Jump: true}, tn, nil)
	}
	assert.Equal(t, 8.0, p.SpinRevs)

	Control(p, Intent{Right: true}, tn, nil)
	assert.False(t, p.Charging)
	assert.True(t, p.SpinDashing)
	assert.True(t, p.Rolling)
	assert.InDelta(t, 8+4-0.0234375-0.125-0.1484375, p.Body.SpeedX, 1e-9)
	assert.False(t, p.FacingLeft, "direction input is ignored while dashing")
}

func TestControl_ControlLock(t *testing.T) {
	tn := DefaultTuning()
	p := groundedPlayer()
	p.ControlLock = 2

	Control(p, Intent{Right: true, Jump: true}, tn, nil)

	assert.Equal(t, 0.0, p.Body.SpeedX)
	assert.False(t, p.Body.Airborne)
	assert.Equal(t, 1, p.ControlLock)
}

func TestControl_LookUp(t *testing.T) {
	tn := DefaultTuning()
	p := groundedPlayer()

	Control(p, Intent{Up: true}, tn, nil)
	assert.True(t, p.LookingUp)

	Control(p, Intent{Up: true, Right: true}, tn, nil)
	assert.False(t, p.LookingUp)
}

func TestControl_HomingDash(t *testing.T) {
	tn := DefaultTuning()
	const burst = 8 - 0.0234735

	tests := []struct {
		name    string
		targets func(cx, cy float64) [][2]float64
		vx, vy  float64
	}{
		{
			name:    "no target dashes ahead",
			targets: func(cx, cy float64) [][2]float64 { return nil },
			vx:      burst,
			vy:      -1,
		},
		{
			name: "nearest target ahead",
			targets: func(cx, cy float64) [][2]float64 {
				return [][2]float64{{cx - 20, cy}, {cx + 30, cy + 40}, {cx + 90, cy + 120}}
			},
			vx: 0.6 * burst,
			vy: 0.8 * burst,
		},
		{
			name: "targets out of range are ignored",
			targets: func(cx, cy float64) [][2]float64 {
				return [][2]float64{{cx + 300, cy}}
			},
			vx: burst,
			vy: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := groundedPlayer()
			b := p.Body
			b.Launch()
			b.Jumping = true
			b.SpeedY = -1

			cx, cy := p.Center()
			Control(p, Intent{Jump: true}, tn, tt.targets(cx, cy))

			assert.True(t, b.HomingDash)
			assert.InDelta(t, tt.vx, b.SpeedX, 1e-9)
			assert.InDelta(t, tt.vy, b.SpeedY, 1e-9)
		})
	}
}

func TestWorld_RestsOnFlatGround(t *testing.T) {
	w, p := newWorld(t)

	for range 3 {
		w.Tick(p, Intent{})
	}

	assert.Equal(t, restY, p.Body.Y)
	assert.True(t, p.Body.Grounded)
	assert.Equal(t, 3, w.Ticks)
}

func TestWorld_CollectRing(t *testing.T) {
	w, p := newWorld(t, leveldata.Object{Kind: leveldata.KindRing, X: 50, Y: restY})

	ev := w.Tick(p, Intent{})
	assert.Equal(t, 1, ev.Rings)
	assert.Equal(t, 1, p.Tally.Rings)
	assert.Equal(t, props.RingScore, p.Tally.Score)

	ev = w.Tick(p, Intent{})
	assert.Zero(t, ev.Rings, "a collecting ring is not collected twice")

	for range 30 {
		w.Tick(p, Intent{})
	}
	assert.Empty(t, w.Field.Of(props.KindRing))
}

func TestWorld_ExtraLife(t *testing.T) {
	w, p := newWorld(t, leveldata.Object{Kind: leveldata.KindRing, X: 50, Y: restY})
	p.Tally.Rings = 99

	ev := w.Tick(p, Intent{})

	assert.Equal(t, 1, ev.ExtraLives)
	assert.Equal(t, 4, p.Tally.Lives)
}

func TestWorld_Spring(t *testing.T) {
	w, p := newWorld(t, leveldata.Object{Kind: leveldata.KindSpring, X: 50, Y: restY, W: 16, H: 16})

	ev := w.Tick(p, Intent{})

	require.True(t, ev.Sprung)
	b := p.Body
	assert.True(t, b.Airborne)
	assert.True(t, b.SpringJump)
	assert.Equal(t, -7.0, b.SpeedY)
	assert.True(t, w.Field.Of(props.KindSpring)[0].Triggered)
}

func TestWorld_SpringMask(t *testing.T) {
	level := &leveldata.Level{
		Name:    "test",
		Start:   image.Pt(50, int(restY)),
		Objects: []leveldata.Object{{Kind: leveldata.KindSpring, X: 40, Y: restY - 40}},
	}
	// Only the bottom rows are solid, below the player's feet.
	buried := pixelmask.New(64, 64)
	for y := 60; y < 64; y++ {
		for x := range 64 {
			buried.Set(x, y, true)
		}
	}

	cfg := DefaultConfig()
	cfg.Masks = map[props.Kind]*pixelmask.Mask{props.KindSpring: buried}
	w := NewWorld(level, flatIndex(t, 10), cfg)
	p := w.SpawnPlayer(16, 16, 3)
	assert.Same(t, buried, w.Field.Of(props.KindSpring)[0].Mask)
	assert.False(t, w.Tick(p, Intent{}).Sprung, "rectangles overlap but the masks do not")

	plain := NewWorld(level, flatIndex(t, 10), DefaultConfig())
	assert.True(t, plain.Tick(plain.SpawnPlayer(16, 16, 3), Intent{}).Sprung)
}

func TestWorld_DefeatEnemy(t *testing.T) {
	w, p := newWorld(t, leveldata.Object{Kind: leveldata.KindEnemy, X: 52, Y: -20})
	b := p.Body
	b.Launch()
	b.Jumping = true
	b.SpeedY = 2

	ev := w.Interact(p)

	assert.Equal(t, 1, ev.Defeated)
	assert.Equal(t, props.EnemyScore, p.Tally.Score)
	assert.Empty(t, w.Field.Of(props.KindEnemy))
	assert.Equal(t, -6.5, b.SpeedY, "the player rebounds")
	assert.Empty(t, w.Targets())
}

func TestWorld_EnemyHurtsAndScatters(t *testing.T) {
	w, p := newWorld(t, leveldata.Object{Kind: leveldata.KindEnemy, X: 52, Y: -20})
	p.Tally.Rings = 5

	ev := w.Interact(p)

	require.True(t, ev.Hurt)
	assert.Equal(t, 5, ev.Scattered)
	assert.Zero(t, p.Tally.Rings)
	assert.Len(t, w.Field.Of(props.KindScatteredRing), 5)
	assert.Len(t, w.Field.Of(props.KindEnemy), 1)

	b := p.Body
	assert.True(t, b.Airborne)
	assert.True(t, b.Hurt)
	assert.Equal(t, -2.0, b.SpeedX)
	assert.Equal(t, -4.0, b.SpeedY)
	assert.Equal(t, 120, p.InvulnFrames)
	assert.Equal(t, 120, p.ControlLock)

	assert.Equal(t, Events{}, w.Interact(p), "hurt players are untouchable")
}

func TestWorld_DeathAndRespawn(t *testing.T) {
	w, p := newWorld(t, leveldata.Object{Kind: leveldata.KindEnemy, X: 52, Y: -20})
	p.Tally.Score = 700

	ev := w.Interact(p)
	require.True(t, ev.Died)
	assert.True(t, p.Dead)
	assert.Equal(t, 2, p.Tally.Lives)
	assert.Equal(t, -5.0, p.Body.SpeedY)

	y := p.Body.Y
	var over int
	for i := range 200 {
		if w.Tick(p, Intent{Right: true}).DeathOver {
			over = i + 1
			break
		}
	}
	assert.Equal(t, DefaultTuning().DeathFrames, over)
	assert.Greater(t, p.Body.Y, y, "the body falls through the floor")
	assert.Equal(t, 0.0, p.Body.SpeedX)

	w.Respawn(p)
	assert.False(t, p.Dead)
	assert.Equal(t, 50.0, p.Body.X)
	assert.Equal(t, 2, p.Tally.Lives)
	assert.Equal(t, 700, p.Tally.Score)
	assert.Equal(t, 60, p.InvulnFrames)
}

func TestWorld_DeathPlane(t *testing.T) {
	w, p := newWorld(t)
	p.Body.Launch()
	p.Body.Y = w.DeathY + 1

	w.Move(p)

	assert.True(t, p.Dead)
	assert.Equal(t, 2, p.Tally.Lives)
	assert.Equal(t, 0.0, p.Body.SpeedY)
}

func TestWorld_Goal(t *testing.T) {
	w, p := newWorld(t, leveldata.Object{Kind: leveldata.KindGoal, X: 50, Y: restY, W: 16, H: 16})

	ev := w.Tick(p, Intent{})
	require.True(t, ev.Goal)
	assert.True(t, w.GoalSpinning())
	assert.False(t, w.Complete())
	stopped := w.Ticks

	for range 2*TicksPerSecond + 10 {
		if w.Complete() {
			break
		}
		assert.False(t, w.Tick(p, Intent{}).Goal, "the goal triggers once")
	}
	assert.True(t, w.Complete())
	assert.False(t, w.GoalSpinning())
	assert.Equal(t, stopped, w.Ticks, "the clock stops at the goal")
}

func TestWorld_ShotHurtsPlayer(t *testing.T) {
	w, p := newWorld(t)
	p.Tally.Rings = 3
	cx, cy := p.Center()
	w.Shots = append(w.Shots,
		&props.Projectile{X: cx - 1, Y: cy, VX: props.ShotSpeed},
		&props.Projectile{X: cx + 200, Y: cy, VX: props.ShotSpeed},
	)

	ev := w.UpdateEnemies(p)

	assert.True(t, ev.Hurt)
	assert.Equal(t, 3, ev.Scattered)
	require.Len(t, w.Shots, 1)
	assert.Equal(t, cx+200+props.ShotSpeed, w.Shots[0].X)
}

func TestWorld_Elapsed(t *testing.T) {
	w, _ := newWorld(t)
	w.Ticks = 90
	assert.Equal(t, 1500*time.Millisecond, w.Elapsed())
}
