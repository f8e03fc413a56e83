package pixelmask

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImage_AlphaThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 20})
	img.SetNRGBA(1, 0, color.NRGBA{A: 21})
	img.SetNRGBA(2, 0, color.NRGBA{A: 255})

	m := FromImage(img, DefaultAlphaThreshold)

	assert.False(t, m.Get(0, 0), "alpha equal to the threshold is transparent")
	assert.True(t, m.Get(1, 0))
	assert.True(t, m.Get(2, 0))
	assert.Equal(t, 2, m.Count())
}

func TestFromImage_SubImageOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	img.SetNRGBA(5, 6, color.NRGBA{A: 255})

	sub := img.SubImage(image.Rect(4, 4, 8, 8))
	m := FromImage(sub, DefaultAlphaThreshold)

	w, h := m.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)
	assert.True(t, m.Get(1, 2))
	assert.Equal(t, 1, m.Count())
}

func TestMask_WideRowsCrossWordBoundary(t *testing.T) {
	m := New(130, 2)
	m.Set(63, 0, true)
	m.Set(64, 0, true)
	m.Set(129, 1, true)

	assert.True(t, m.Get(63, 0))
	assert.True(t, m.Get(64, 0))
	assert.True(t, m.Get(129, 1))
	assert.False(t, m.Get(129, 0))
	assert.Equal(t, 3, m.Count())

	m.Set(64, 0, false)
	assert.False(t, m.Get(64, 0))
}

func TestMask_OutOfRangeIsTransparent(t *testing.T) {
	m := Filled(4, 4)
	assert.False(t, m.Get(-1, 0))
	assert.False(t, m.Get(4, 0))
	assert.False(t, m.Get(0, 4))

	m.Set(10, 10, true)
	assert.Equal(t, 16, m.Count())
}

func TestMask_Overlaps(t *testing.T) {
	// Two diagonal corner pixels: the rectangles share area, the pixels do not.
	a := New(4, 4)
	a.Set(0, 0, true)
	b := New(4, 4)
	b.Set(3, 3, true)

	tests := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"same origin, disjoint pixels", 0, 0, false},
		{"b shifted so its pixel lands on a's", -3, -3, true},
		{"no rectangle overlap", 4, 0, false},
		{"partial rectangle overlap, no pixel overlap", 2, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(b, tt.dx, tt.dy))
		})
	}
}

func TestMask_OverlapArea(t *testing.T) {
	a := Filled(4, 4)
	b := Filled(2, 2)

	assert.Equal(t, 4, a.OverlapArea(b, 1, 1))
	assert.Equal(t, 1, a.OverlapArea(b, 3, 3))
	assert.Equal(t, 0, a.OverlapArea(b, 4, 4))
	assert.Equal(t, 0, a.OverlapArea(nil, 0, 0))
}

func TestMask_Equal(t *testing.T) {
	a := Filled(3, 3)
	b := Filled(3, 3)
	require.True(t, a.Equal(b))

	b.Set(1, 1, false)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(Filled(3, 2)))
}
