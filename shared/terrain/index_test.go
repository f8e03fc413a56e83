package terrain

import (
	"image"
	"testing"

	"github.com/automoto/ringrush/shared/pixelmask"
	"github.com/automoto/ringrush/shared/tileprofile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoTiles() TileList {
	return TileList{
		{Name: "flat.png", Image: tileprofile.FlatTile(0)},
		{Name: "ramp.png", Image: tileprofile.RampTile(63, 0)},
		{Name: "half.png", Image: tileprofile.FlatTile(32)},
	}
}

func demoAngles() tileprofile.AngleTable {
	return tileprofile.AngleTable{"ramp.png": tileprofile.RampAngles(63, 0)}
}

func opts() Options {
	return Options{AlphaThreshold: pixelmask.DefaultAlphaThreshold}
}

func TestBuildGrid_Maps(t *testing.T) {
	grid := Grid{
		{-1, -1, 1},
		{0, 0, 0},
	}
	idx, err := BuildGrid(grid, demoTiles(), demoAngles(), opts())
	require.NoError(t, err)

	assert.Equal(t, 4, idx.Len())
	assert.Equal(t, []Key{{128, 0}, {0, 64}, {64, 64}, {128, 64}}, idx.Keys())

	ramp := Key{128, 0}
	assert.Equal(t, image.Rect(128, 0, 192, 64), idx.RectAt(ramp))
	assert.Equal(t, "ramp.png", idx.NameAt(ramp))
	assert.Equal(t, 1, idx.HeightProfileAt(ramp)[0])
	assert.Equal(t, 45, idx.AngleProfileAt(ramp)[10])

	flat := Key{0, 64}
	assert.Equal(t, tileprofile.Size, idx.HeightProfileAt(flat)[31])
	assert.Equal(t, tileprofile.Angles{}, idx.AngleProfileAt(flat))
	require.NotNil(t, idx.MaskAt(flat))
	assert.Equal(t, 64*64, idx.MaskAt(flat).Count())

	assert.Equal(t, image.Rect(0, 0, 192, 128), idx.Bounds())
}

func TestBuildGrid_Origin(t *testing.T) {
	o := opts()
	o.Origin = image.Pt(0, -48)
	idx, err := BuildGrid(Grid{{0}}, demoTiles(), nil, o)
	require.NoError(t, err)
	assert.Equal(t, []Key{{0, -48}}, idx.Keys())
}

func TestBuildGrid_UnknownTile(t *testing.T) {
	_, err := BuildGrid(Grid{{0, 7}}, demoTiles(), nil, opts())
	assert.ErrorIs(t, err, ErrUnknownTile)
}

func TestBuild_EmptyIndex(t *testing.T) {
	idx := Build(nil)

	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Keys())
	assert.False(t, idx.SolidCheck(image.Pt(0, 0)))
	assert.Empty(t, idx.Overlapping(image.Rect(-100, -100, 100, 100)))
}

func TestBuild_Deterministic(t *testing.T) {
	grid := Grid{
		{0, 1, 2, -1},
		{2, -1, 0, 1},
	}
	a, err := BuildGrid(grid, demoTiles(), demoAngles(), opts())
	require.NoError(t, err)
	b, err := BuildGrid(grid, demoTiles(), demoAngles(), opts())
	require.NoError(t, err)

	require.Equal(t, a.Keys(), b.Keys())
	for _, k := range a.Keys() {
		assert.Equal(t, a.RectAt(k), b.RectAt(k))
		assert.Equal(t, a.HeightProfileAt(k), b.HeightProfileAt(k))
		assert.Equal(t, a.AngleProfileAt(k), b.AngleProfileAt(k))
		assert.True(t, a.MaskAt(k).Equal(b.MaskAt(k)), "mask %v", k)
	}
}

func TestSolidCheck(t *testing.T) {
	idx, err := BuildGrid(Grid{{0, -1}, {-1, 0}}, demoTiles(), nil, opts())
	require.NoError(t, err)

	tests := []struct {
		p    image.Point
		want bool
	}{
		{image.Pt(0, 0), true},
		{image.Pt(63, 63), true},
		{image.Pt(64, 0), false},
		{image.Pt(64, 64), true},
		{image.Pt(127, 127), true},
		{image.Pt(128, 127), false},
		{image.Pt(-1, 10), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, idx.SolidCheck(tt.p), "point %v", tt.p)
	}
}

func TestOverlapping(t *testing.T) {
	idx, err := BuildGrid(Grid{{0, 0}, {0, 0}}, demoTiles(), nil, opts())
	require.NoError(t, err)

	assert.Equal(t, []Key{{0, 0}}, idx.Overlapping(image.Rect(10, 10, 11, 20)))
	assert.Equal(t, []Key{{0, 0}, {64, 0}, {0, 64}, {64, 64}}, idx.Overlapping(image.Rect(60, 60, 70, 70)))
	assert.Empty(t, idx.Overlapping(image.Rect(64, -10, 70, 0)), "touching edges do not overlap")
	assert.Empty(t, idx.Overlapping(image.Rect(10, 10, 10, 20)), "empty rectangles overlap nothing")
}

func TestOverlapping_UnalignedCells(t *testing.T) {
	p := tileprofile.Extract("flat.png", tileprofile.FlatTile(0), nil, pixelmask.DefaultAlphaThreshold)
	idx := Build([]Source{{Key: Key{X: 30, Y: -48}, Profile: p}})

	assert.Equal(t, []Key{{30, -48}}, idx.Overlapping(image.Rect(90, 10, 91, 11)))
	assert.True(t, idx.SolidCheck(image.Pt(93, 15)))
	assert.False(t, idx.SolidCheck(image.Pt(94, 15)))
}

func TestNewSpace(t *testing.T) {
	idx, err := BuildGrid(Grid{{0, 0}}, demoTiles(), nil, opts())
	require.NoError(t, err)

	space := idx.NewSpace(16)
	objs := space.Objects()
	require.Len(t, objs, 2)
	for _, o := range objs {
		assert.True(t, o.HasTags(TagSolid))
		k, ok := o.Data.(Key)
		require.True(t, ok)
		assert.True(t, idx.Has(k))
	}
}

func TestNewSpace_ShiftedOrigin(t *testing.T) {
	o := opts()
	o.Origin = image.Pt(0, -48)
	idx, err := BuildGrid(Grid{{0}}, demoTiles(), nil, o)
	require.NoError(t, err)

	space := idx.NewSpace(16)
	assert.Equal(t, image.Pt(-4*CellSize, -48-4*CellSize), space.Origin)

	objs := space.Objects()
	require.Len(t, objs, 1)
	obj := objs[0]
	assert.Equal(t, idx.RectAt(Key{0, -48}), space.ObjectRect(obj))

	// Every space cell the terrain rectangle covers holds it, including the
	// ones above y=0.
	r := space.ObjectRect(obj)
	for y := r.Min.Y; y < r.Max.Y; y += 16 {
		cell := space.Cell(space.WorldToSpace(space.Local(float64(r.Min.X), float64(y))))
		require.NotNil(t, cell, "y=%d", y)
		assert.True(t, cell.Contains(obj), "y=%d", y)
	}

	x, y := space.World(space.Local(12, -30))
	assert.Equal(t, 12.0, x)
	assert.Equal(t, -30.0, y)
}
