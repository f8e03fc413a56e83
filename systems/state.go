package systems

import (
	"math"

	"github.com/automoto/ringrush/components"
	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/runner"
	"github.com/automoto/ringrush/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates picks the player's animation state and advances its animation.
func UpdateStates(ecs *ecs.ECS) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	if player.Player == nil {
		return
	}
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)

	next := SelectState(player.Player, cfg.Animation)
	state.PreviousState = state.CurrentState
	if next != state.CurrentState {
		state.CurrentState = next
		state.StateTimer = 0
	} else {
		state.StateTimer++
	}

	anim.SetAnimation(state.CurrentState)
	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Advance(AnimationRate(state.CurrentState, player.Body.SpeedX, cfg.Player.Movement.TopSpeed))
	}
}

// SelectState maps the player's flags and ground speed to an animation state.
// Earlier checks win: death over damage over actions over speed.
func SelectState(p *runner.Player, a cfg.AnimationConfig) cfg.StateID {
	b := p.Body
	switch {
	case p.Dead:
		return cfg.Die
	case b.Hurt:
		return cfg.Hurt
	case p.Charging:
		return cfg.SpinDash
	case b.SpringJump:
		return cfg.SpringJump
	case b.Jumping || b.HomingDash:
		return cfg.Jump
	case p.Rolling:
		return cfg.Rolling
	case p.Crouching:
		return cfg.Crouch
	case p.LookingUp:
		return cfg.LookUp
	}

	speed := math.Abs(b.SpeedX)
	switch {
	case speed == 0:
		return cfg.Idle
	case speed < a.WalkMax:
		return cfg.Walk
	case speed < a.JogMax:
		return cfg.Jog
	case speed < a.FastJogMax:
		return cfg.FastJog
	case speed < a.RunMax:
		return cfg.Run
	}
	return cfg.TopSpeed
}

// AnimationRate is how many ticks an animation advances per game tick.
// Running and rolling cycle faster the closer the player is to top speed.
func AnimationRate(state cfg.StateID, speedX, topSpeed float64) float32 {
	switch state {
	case cfg.Walk, cfg.Jog, cfg.FastJog, cfg.Run, cfg.TopSpeed, cfg.Rolling:
		if topSpeed <= 0 {
			return 1
		}
		return float32(1 + math.Min(math.Abs(speedX)/topSpeed, 1))
	}
	return 1
}
