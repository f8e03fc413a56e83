package systems

import (
	"testing"

	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/runner"
	"github.com/stretchr/testify/assert"
)

func TestSelectState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *runner.Player)
		want  cfg.StateID
	}{
		{"standing", func(p *runner.Player) {}, cfg.Idle},
		{"walking", func(p *runner.Player) { p.Body.SpeedX = 1 }, cfg.Walk},
		{"jogging left", func(p *runner.Player) { p.Body.SpeedX = -3 }, cfg.Jog},
		{"fast jog", func(p *runner.Player) { p.Body.SpeedX = 4 }, cfg.FastJog},
		{"running", func(p *runner.Player) { p.Body.SpeedX = 6 }, cfg.Run},
		{"top speed", func(p *runner.Player) { p.Body.SpeedX = 7.5 }, cfg.TopSpeed},
		{"rolling", func(p *runner.Player) { p.Rolling = true; p.Body.SpeedX = 6 }, cfg.Rolling},
		{"crouching", func(p *runner.Player) { p.Crouching = true }, cfg.Crouch},
		{"looking up", func(p *runner.Player) { p.LookingUp = true }, cfg.LookUp},
		{"charging", func(p *runner.Player) { p.Charging = true; p.Crouching = true }, cfg.SpinDash},
		{"jumping", func(p *runner.Player) { p.Body.Jumping = true; p.Body.SpeedX = 7 }, cfg.Jump},
		{"homing", func(p *runner.Player) { p.Body.HomingDash = true }, cfg.Jump},
		{"sprung", func(p *runner.Player) { p.Body.SpringJump = true }, cfg.SpringJump},
		{"hurt while jumping", func(p *runner.Player) { p.Body.Hurt = true; p.Body.Jumping = true }, cfg.Hurt},
		{"dead", func(p *runner.Player) { p.Dead = true; p.Body.Hurt = true }, cfg.Die},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := runner.NewPlayer(0, 0, 16, 32, 3)
			tt.setup(p)
			assert.Equal(t, tt.want, SelectState(p, cfg.Animation))
		})
	}
}

func TestAnimationRate(t *testing.T) {
	assert.Equal(t, float32(1), AnimationRate(cfg.Idle, 5, 7.5))
	assert.Equal(t, float32(1), AnimationRate(cfg.Jump, 5, 7.5))
	assert.InDelta(t, 1.5, AnimationRate(cfg.Run, -3.75, 7.5), 1e-6)
	assert.Equal(t, float32(2), AnimationRate(cfg.Rolling, 12, 7.5), "capped at twice the base rate")
	assert.Equal(t, float32(1), AnimationRate(cfg.Walk, 1, 0))
}
