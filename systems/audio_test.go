package systems

import (
	"testing"

	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/runner"
	"github.com/stretchr/testify/assert"
)

func TestSoundsFor(t *testing.T) {
	assert.Empty(t, SoundsFor(runner.Events{}))
	assert.Equal(t, []cfg.SoundID{cfg.SoundRing}, SoundsFor(runner.Events{Rings: 2}))
	assert.Equal(t, []cfg.SoundID{cfg.SoundExtraLife}, SoundsFor(runner.Events{Rings: 1, ExtraLives: 1}))
	assert.Equal(t,
		[]cfg.SoundID{cfg.SoundDefeat, cfg.SoundShot},
		SoundsFor(runner.Events{Defeated: 1, Shots: 1}))
	assert.Equal(t,
		[]cfg.SoundID{cfg.SoundHurt, cfg.SoundDeath},
		SoundsFor(runner.Events{Hurt: true, Died: true, DeathOver: true}))
	assert.Equal(t, []cfg.SoundID{cfg.SoundSpring, cfg.SoundGoal}, SoundsFor(runner.Events{Sprung: true, Goal: true}))
}
