package main

import (
	"testing"

	"github.com/automoto/ringrush/shared/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	segs, err := parseScript("right:3, right+jump:2,idle:1")
	require.NoError(t, err)
	require.Len(t, segs, 3)

	assert.Equal(t, runner.Intent{Right: true}, intentAt(segs, 0))
	assert.Equal(t, runner.Intent{Right: true, Jump: true}, intentAt(segs, 3))
	assert.Equal(t, runner.Intent{Right: true}, intentAt(segs, 4), "jump is pressed once")
	assert.Equal(t, runner.Intent{}, intentAt(segs, 5))
	assert.Equal(t, runner.Intent{}, intentAt(segs, 100))
}

func TestParseScript_Errors(t *testing.T) {
	for _, s := range []string{"right", "right:0", "right:x", "fly:3"} {
		_, err := parseScript(s)
		assert.Error(t, err, s)
	}
}

func TestSimulateGreenHill(t *testing.T) {
	level, err := loadLevel("green_hill")
	require.NoError(t, err)
	assert.Equal(t, "green_hill", level.Name)
}
