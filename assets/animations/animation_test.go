package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimation_Loops(t *testing.T) {
	a := NewAnimation(0, 2, 1, 1)

	var frames []int
	for range 6 {
		a.Update()
		frames = append(frames, a.Frame())
	}

	assert.Equal(t, []int{0, 1, 1, 2, 2, 0}, frames)
	assert.True(t, a.Looped)
}

func TestAnimation_FreezeOnComplete(t *testing.T) {
	a := NewAnimation(0, 1, 1, 0)
	a.FreezeOnComplete = true

	for range 5 {
		a.Update()
	}

	assert.Equal(t, 1, a.Frame())
	assert.True(t, a.Looped)
}

func TestAnimation_AdvanceRate(t *testing.T) {
	slow := NewAnimation(0, 3, 1, 4)
	fast := NewAnimation(0, 3, 1, 4)

	for range 4 {
		slow.Advance(1)
		fast.Advance(2)
	}

	assert.Equal(t, 0, slow.Frame())
	assert.Equal(t, 1, fast.Frame())

	fast.Advance(0)
	assert.Equal(t, 1, fast.Frame(), "zero rate holds the frame")
}

func TestAnimation_Restart(t *testing.T) {
	a := NewAnimation(2, 5, 1, 0)
	a.Update()
	a.Update()
	a.Restart()

	assert.Equal(t, 2, a.Frame())
	assert.False(t, a.Looped)
	assert.Equal(t, 4, a.Frames())
}
