package config

import (
	"testing"

	"github.com/automoto/ringrush/shared/physics"
	"github.com/automoto/ringrush/shared/runner"
	"github.com/stretchr/testify/assert"
)

func TestPhysicsParamsMatchCore(t *testing.T) {
	got := Physics.Params()
	want := physics.DefaultParams()

	assert.Equal(t, want.Substeps, got.Substeps)
	assert.Equal(t, want.Gravity, got.Gravity)
	assert.Equal(t, want.MaxFall, got.MaxFall)
	assert.Equal(t, want.ArtOffset, got.ArtOffset)
	assert.Equal(t, 2.0, got.Bounds.StartInset)
	assert.Equal(t, 32.0, got.Bounds.EndInset)
}

func TestWorldConfig(t *testing.T) {
	c := World(7)

	assert.Equal(t, runner.DefaultTuning(), c.Tuning)
	assert.Equal(t, uint64(7), c.Seed)
	assert.Equal(t, Physics.SpaceCellSize, c.SpaceCellSize)
	assert.Equal(t, Level.DeathMargin, c.DeathMargin)
}

func TestStateNames(t *testing.T) {
	for s := Idle; s <= Die; s++ {
		assert.NotEqual(t, "none", s.String(), "state %d", s)
		_, ok := CharacterAnimations["player"][s]
		assert.True(t, ok, "animation for %s", s)
	}
	assert.Equal(t, "none", StateNone.String())
}

func TestBindingsCoverActions(t *testing.T) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		b, ok := Input.Bindings[id]
		assert.True(t, ok, "action %d", id)
		assert.NotEmpty(t, b.Keys, "action %d", id)
	}
}
