// Package runner drives the player character over the physics core: input
// intent to ground speed, jumps, rolls, spin dashes and homing dashes, and the
// per-tick world pass that resolves rings, springs, enemies, shots and the
// goal post. It has no dependency on ebitengine or donburi so the headless
// simulator and tests drive exactly the code the game runs.
package runner

import (
	"math"

	"github.com/automoto/ringrush/shared/gamemath"
	"github.com/automoto/ringrush/shared/physics"
	"github.com/automoto/ringrush/shared/props"
)

// Tuning holds the player's movement constants.
type Tuning struct {
	Acceleration float64
	Friction     float64
	TopSpeed     float64
	Deceleration float64

	JumpForce      float64
	MaxJumpSpeed   float64
	SpringForce    float64
	MaxSpringSpeed float64

	RollFriction     float64
	RollDeceleration float64
	SlopeFactor      float64
	LookUpMaxSpeed   float64

	SpinDashRevStep float64
	SpinDashMaxRevs float64

	HomingBaseSpeed float64
	HomingAirDrag   float64
	HomingAccel     float64
	HomingRange     float64

	HurtForceX          float64
	HurtForceY          float64
	InvulnFrames        int
	ControlLockFrames   int
	DeathFrames         int
	DeathBounce         float64
	RespawnInvulnFrames int
}

// DefaultTuning returns the classic movement constants.
func DefaultTuning() Tuning {
	return Tuning{
		Acceleration: 0.046875,
		Friction:     0.125,
		TopSpeed:     7.5,
		Deceleration: 0.625,

		JumpForce:      -6,
		MaxJumpSpeed:   -6.5,
		SpringForce:    -7,
		MaxSpringSpeed: -7.5,

		RollFriction:     0.0234375,
		RollDeceleration: 0.125,
		SlopeFactor:      0.078125,
		LookUpMaxSpeed:   0.48675,

		SpinDashRevStep: 2,
		SpinDashMaxRevs: 8,

		HomingBaseSpeed: 8,
		HomingAirDrag:   0.0234735,
		HomingRange:     160,

		HurtForceX:          2,
		HurtForceY:          -4,
		InvulnFrames:        120,
		ControlLockFrames:   120,
		DeathFrames:         90,
		DeathBounce:         -5,
		RespawnInvulnFrames: 60,
	}
}

// Intent is one tick of player input.
type Intent struct {
	Left, Right bool
	Up, Down    bool
	Jump        bool // pressed this tick
}

// Player is the controllable character.
type Player struct {
	Body   *physics.Body
	Ground physics.GroundResult
	Tally  props.Tally

	FacingLeft  bool
	Rolling     bool
	Crouching   bool
	LookingUp   bool
	Charging    bool
	SpinDashing bool
	SpinRevs    float64

	InvulnFrames int
	ControlLock  int
	Dead         bool
	DeathTimer   int

	downHeld bool
}

// NewPlayer returns a player standing at (x, y) with lives lives.
func NewPlayer(x, y float64, w, h, lives int) *Player {
	return &Player{
		Body:  physics.NewBody(x, y, w, h),
		Tally: props.Tally{Lives: lives},
	}
}

// Attacking reports whether touching an enemy defeats it.
func (p *Player) Attacking() bool {
	return p.Body.Jumping || p.Rolling || p.Body.HomingDash
}

// Invulnerable reports whether hostiles currently pass through the player.
func (p *Player) Invulnerable() bool {
	return p.Dead || p.Body.Hurt || p.InvulnFrames > 0
}

// Center returns the centre of the player's rectangle.
func (p *Player) Center() (float64, float64) {
	r := p.Body.Rect()
	return float64(r.Min.X+r.Max.X) / 2, float64(r.Min.Y+r.Max.Y) / 2
}

// Control applies one tick of input to the player's speed and action flags.
// targets are homing dash candidates (enemy centres).
func Control(p *Player, in Intent, t Tuning, targets [][2]float64) {
	if p.Dead {
		return
	}
	if p.InvulnFrames > 0 {
		p.InvulnFrames--
	}
	if p.ControlLock > 0 {
		p.ControlLock--
		in = Intent{}
	}

	b := p.Body
	var dir float64
	switch {
	case in.Right && !in.Left:
		dir = 1
	case in.Left && !in.Right:
		dir = -1
	}
	if p.Charging || p.SpinDashing {
		dir = 0
	}

	pressedDown := in.Down && !p.downHeld
	releasedDown := !in.Down && p.downHeld
	p.downHeld = in.Down

	if b.Airborne {
		p.Crouching = false
		p.LookingUp = false
		p.Rolling = false
		p.Charging = false
	} else {
		p.LookingUp = in.Up && dir == 0 && math.Abs(b.SpeedX) <= t.LookUpMaxSpeed
		switch {
		case pressedDown && !p.Crouching && !p.Charging:
			p.Crouching = true
			p.Rolling = dir != 0 || b.SpeedX != 0
		case releasedDown:
			p.releaseDown(t)
		}
	}

	if in.Jump {
		p.jump(t, dir, targets)
	}

	switch {
	case b.HomingDash:
		// The dash keeps its velocity until the body lands.
	case p.Rolling:
		b.SpeedX = gamemath.Roll(b.SpeedX, b.Angle, t.RollFriction, t.RollDeceleration, t.SlopeFactor, t.TopSpeed)
		if !gamemath.Rolling(b.SpeedX, b.Angle) {
			p.Rolling = false
			p.SpinDashing = false
		}
	case !p.Crouching && !p.Charging:
		accel := t.Acceleration
		if dir*b.SpeedX < 0 {
			accel = t.Deceleration
		}
		b.SpeedX = gamemath.Accelerate(b.SpeedX, dir, accel, t.Friction, t.TopSpeed)
	}

	if dir > 0 {
		p.FacingLeft = false
	} else if dir < 0 {
		p.FacingLeft = true
	}
}

func (p *Player) releaseDown(t Tuning) {
	if p.Charging {
		p.Charging = false
		p.SpinDashing = true
		p.Rolling = true
		p.Body.SpeedX = gamemath.SpinDashSpeed(p.SpinRevs, p.FacingLeft, t.RollFriction, t.RollDeceleration)
		p.SpinRevs = 0
		p.Crouching = false
		return
	}
	p.Crouching = false
	p.Rolling = false
}

func (p *Player) jump(t Tuning, dir float64, targets [][2]float64) {
	b := p.Body
	switch {
	case p.Charging:
		p.SpinRevs = min(p.SpinRevs+t.SpinDashRevStep, t.SpinDashMaxRevs)
	case p.Crouching && !p.Rolling && dir == 0 && b.SpeedX == 0 && !b.Airborne:
		p.Charging = true
		p.Crouching = false
		p.SpinRevs = 0
	case !b.Airborne && !b.Jumping:
		b.Launch()
		b.Jumping = true
		b.SpringJump = false
		b.HomingDash = false
		b.SpeedY = gamemath.JumpSpeed(0, t.JumpForce, t.MaxJumpSpeed)
		p.Crouching = false
		p.Rolling = false
		p.SpinDashing = false
	case b.Airborne && b.Jumping && !b.HomingDash:
		p.homingDash(t, targets)
	}
}

// homingDash bursts toward the nearest target ahead within range, or straight
// ahead when there is none. It is allowed once per jump.
func (p *Player) homingDash(t Tuning, targets [][2]float64) {
	b := p.Body
	b.HomingDash = true

	dir := 1.0
	if p.FacingLeft {
		dir = -1
	}
	speed := gamemath.HomingDashSpeed(dir, t.HomingBaseSpeed, t.HomingAccel, t.HomingAirDrag)

	cx, cy := p.Center()
	var ahead [][2]float64
	for _, tg := range targets {
		if (tg[0]-cx)*dir > 0 {
			ahead = append(ahead, tg)
		}
	}
	if i := gamemath.Nearest(cx, cy, ahead, t.HomingRange); i >= 0 {
		b.SpeedX, b.SpeedY = gamemath.CalculateHomingVelocity(cx, cy, ahead[i][0], ahead[i][1], math.Abs(speed))
		return
	}
	b.SpeedX = speed
}

// hurt knocks the player back and locks its controls.
func (p *Player) hurt(t Tuning) {
	b := p.Body
	b.Launch()
	b.Jumping = false
	b.HomingDash = false
	b.Hurt = true
	b.SpeedX, b.SpeedY = gamemath.Knockback(p.FacingLeft, t.HurtForceX, t.HurtForceY)
	p.InvulnFrames = t.InvulnFrames
	p.ControlLock = t.ControlLockFrames
	p.Rolling = false
	p.Crouching = false
	p.Charging = false
	p.SpinDashing = false
}

// rebound bounces an airborne attacker off whatever it hit.
func (p *Player) rebound(t Tuning) {
	b := p.Body
	if !b.Airborne {
		return
	}
	b.SpeedY = gamemath.JumpSpeed(b.SpeedY, 2*t.JumpForce, t.MaxJumpSpeed)
}

// spring launches the player off a spring.
func (p *Player) spring(t Tuning) {
	b := p.Body
	b.Launch()
	b.Jumping = false
	b.HomingDash = false
	b.SpringJump = true
	b.SpeedY = gamemath.JumpSpeed(0, t.SpringForce, t.MaxSpringSpeed)
	p.Rolling = false
	p.Crouching = false
	p.SpinDashing = false
}

// die starts the death sequence. The body leaves the terrain and falls off
// screen; lives are taken here.
func (p *Player) die(t Tuning, bounce bool) {
	b := p.Body
	p.Dead = true
	p.DeathTimer = t.DeathFrames
	p.Rolling = false
	p.Crouching = false
	p.Charging = false
	p.SpinDashing = false
	b.Launch()
	b.SpeedX = 0
	b.SpeedY = 0
	if bounce {
		b.SpeedY = t.DeathBounce
	}
	p.Tally.LoseLife()
}
