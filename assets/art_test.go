package assets

import (
	"image"
	"testing"

	"github.com/automoto/ringrush/assets/levels"
	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/pixelmask"
	"github.com/automoto/ringrush/shared/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropArtMatchesPropSize(t *testing.T) {
	field := props.NewField(image.Rect(0, 0, 64, 64))
	for _, kind := range []props.Kind{props.KindRing, props.KindSpring, props.KindEnemy, props.KindScatteredRing} {
		p := field.Spawn(kind, 0, 0)
		b := PropArt(kind, 0, PropFrames).Bounds()
		assert.Equal(t, int(p.W), b.Dx(), kind.String())
		assert.Equal(t, int(p.H), b.Dy(), kind.String())
	}
}

func TestSpringArtInsideMask(t *testing.T) {
	mask := levels.PropMasks()[props.KindSpring]
	require.NotNil(t, mask)
	art := pixelmask.FromImage(springArt(), pixelmask.DefaultAlphaThreshold)

	w, h := art.Size()
	require.Equal(t, 64, w)
	for y := range h {
		for x := range w {
			if art.Get(x, y) {
				assert.True(t, mask.Get(x, y), "pixel (%d,%d) outside the mask", x, y)
			}
		}
	}
	assert.True(t, art.Get(32, 0), "the pad reaches the top of the cell")
	assert.False(t, mask.Get(32, levels.Lip), "the mask stops at the lip")
}

func TestRingTurns(t *testing.T) {
	face := pixelmask.FromImage(ringArt(0, PropFrames), pixelmask.DefaultAlphaThreshold)
	edge := pixelmask.FromImage(ringArt(2, PropFrames), pixelmask.DefaultAlphaThreshold)
	assert.Greater(t, face.Count(), edge.Count())
	assert.Positive(t, edge.Count())
}

func TestPlayerSheet(t *testing.T) {
	w, h := config.Player.FrameWidth, config.Player.FrameHeight
	sheet := PlayerSheet(config.Walk, 4, w, h)
	assert.Equal(t, 4*w, sheet.Bounds().Dx())
	assert.Equal(t, h, sheet.Bounds().Dy())

	for f := range 4 {
		cell := sheet.SubImage(image.Rect(f*w, 0, (f+1)*w, h))
		m := pixelmask.FromImage(cell, pixelmask.DefaultAlphaThreshold)
		assert.Positive(t, m.Count(), "frame %d is empty", f)
	}
}
