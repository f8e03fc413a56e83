package tileprofile

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/automoto/ringrush/shared/pixelmask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHeights_Flat(t *testing.T) {
	h := ExtractHeights(FlatTile(0), pixelmask.DefaultAlphaThreshold)
	for x, v := range h {
		assert.Equal(t, Size, v, "column %d", x)
	}

	h = ExtractHeights(FlatTile(40), pixelmask.DefaultAlphaThreshold)
	for x, v := range h {
		assert.Equal(t, 24, v, "column %d", x)
	}
}

func TestExtractHeights_TransparentColumnIsZero(t *testing.T) {
	img := SurfaceTile(func(x int) int {
		if x == 10 {
			return -1
		}
		return 32
	})

	h := ExtractHeights(img, pixelmask.DefaultAlphaThreshold)
	assert.Equal(t, 0, h[10])
	assert.Equal(t, 32, h[9])
	assert.Equal(t, 32, h[11])
}

func TestExtractHeights_Ramp(t *testing.T) {
	h := ExtractHeights(RampTile(63, 0), pixelmask.DefaultAlphaThreshold)
	assert.Equal(t, 1, h[0])
	assert.Equal(t, Size, h[Size-1])
	for x := 1; x < Size; x++ {
		assert.Greater(t, h[x], h[x-1], "height must rise at column %d", x)
	}
}

func TestExtractHeights_IgnoresFaintPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, Size, Size))
	img.SetNRGBA(0, 5, color.NRGBA{A: 20})
	img.SetNRGBA(0, 9, color.NRGBA{A: 200})

	h := ExtractHeights(img, pixelmask.DefaultAlphaThreshold)
	assert.Equal(t, Size-9, h[0])
}

func TestExtractHeights_SmallImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		img.SetNRGBA(x, 7, color.NRGBA{A: 255})
	}

	h := ExtractHeights(img, pixelmask.DefaultAlphaThreshold)
	assert.Equal(t, Size-7, h[0])
	assert.Equal(t, 0, h[8], "columns beyond the image stay at zero")
}

func TestAngleTable_LookupDefaultsToFlat(t *testing.T) {
	table := AngleTable{"ramp.png": RampAngles(63, 0)}

	assert.Equal(t, Angles{}, table.Lookup("grass.png"))
	assert.Equal(t, 45, table.Lookup("ramp.png")[0])
}

func TestLoadAngleTable(t *testing.T) {
	table, err := LoadAngleTable(strings.NewReader(`{"a.png": [1, 2, 3], "b.png": []}`))
	require.NoError(t, err)

	a := table.Lookup("a.png")
	assert.Equal(t, 1, a[0])
	assert.Equal(t, 3, a[2])
	assert.Equal(t, 0, a[63])
	assert.Equal(t, Angles{}, table.Lookup("b.png"))
}

func TestLoadAngleTable_Errors(t *testing.T) {
	_, err := LoadAngleTable(strings.NewReader(`not json`))
	assert.Error(t, err)

	long := "[" + strings.Repeat("0,", Size) + "0]"
	_, err = LoadAngleTable(strings.NewReader(`{"x.png": ` + long + `}`))
	assert.ErrorContains(t, err, "x.png")
}

func TestExtract_Profile(t *testing.T) {
	angles := AngleTable{"ramp": RampAngles(63, 0)}
	p := Extract("ramp", RampTile(63, 0), angles, pixelmask.DefaultAlphaThreshold)

	assert.Equal(t, angles["ramp"], p.Angles)
	assert.Equal(t, 1, p.Heights[0])
	require.NotNil(t, p.Mask)
	assert.True(t, p.Mask.Get(63, 0))
	assert.False(t, p.Mask.Get(0, 0))
}
