package physics

import (
	"image"
	"testing"

	"github.com/automoto/ringrush/shared/pixelmask"
	"github.com/automoto/ringrush/shared/terrain"
	"github.com/automoto/ringrush/shared/tileprofile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type placed struct {
	x, y  int
	img   image.Image
	angle tileprofile.Angles
}

func buildIndex(t *testing.T, cells ...placed) *terrain.Index {
	t.Helper()
	var sources []terrain.Source
	for _, c := range cells {
		p := tileprofile.Extract("", c.img, nil, pixelmask.DefaultAlphaThreshold)
		p.Angles = c.angle
		sources = append(sources, terrain.Source{Key: terrain.Key{X: c.x, Y: c.y}, Profile: p})
	}
	return terrain.Build(sources)
}

func flatCell(x, y int) placed {
	return placed{x: x, y: y, img: tileprofile.FlatTile(0)}
}

func noGravity() Params {
	p := DefaultParams()
	p.Gravity = 0
	return p
}

func TestSensorsFor(t *testing.T) {
	s := SensorsFor(image.Rect(10, 20, 26, 36))

	assert.Equal(t, image.Rect(11, 20, 12, 44), s.Floor[0])
	assert.Equal(t, image.Rect(24, 20, 25, 44), s.Floor[1])
	assert.Equal(t, image.Rect(10, 20, 26, 21), s.Wall)
}

func TestBodyRectFloors(t *testing.T) {
	b := NewBody(-0.5, 3.9, 16, 16)
	assert.Equal(t, image.Rect(-1, 3, 15, 19), b.Rect())
}

func TestConcreteScenario(t *testing.T) {
	idx := buildIndex(t, flatCell(0, 0))
	b := &Body{X: 0, Y: -10, W: 16, H: 16, Airborne: true, SpeedY: 2}
	p := noGravity()

	for range 10 {
		Step(idx, b, p)
	}

	// surface Y = 0 + 1 - 64, top = round(-63 - 16) + 66
	assert.Equal(t, -13.0, b.Y)
	assert.Equal(t, 3, b.Rect().Max.Y)
	assert.True(t, b.Grounded)
	assert.False(t, b.Airborne)
	assert.Equal(t, 0, b.Angle)

	for range 30 {
		Step(idx, b, p)
		require.Equal(t, -13.0, b.Y, "resting body must not drift")
	}
}

func TestFlatGroundRest(t *testing.T) {
	tests := []struct {
		name   string
		cellY  int
		startY float64
		speedY float64
	}{
		{"from just above", 0, -20, 0},
		{"from high", 128, -40, 0},
		{"fast fall", 64, -100, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := buildIndex(t, flatCell(0, tt.cellY), flatCell(64, tt.cellY))
			b := &Body{X: 40, Y: tt.startY, W: 20, H: 30, Airborne: true, SpeedY: tt.speedY}

			for range 300 {
				Step(idx, b, DefaultParams())
			}

			require.True(t, b.Grounded)
			assert.Equal(t, float64(tt.cellY+1-64-30+DefaultArtOffset), b.Y)
			assert.Equal(t, tt.cellY+3, b.Rect().Max.Y)
			assert.Equal(t, 0, b.Angle)
		})
	}
}

func TestGroundedPass_ResolvesMinimumAndArtOffset(t *testing.T) {
	idx := buildIndex(t,
		placed{x: 0, y: 0, img: tileprofile.FlatTile(40)},
		placed{x: 64, y: 0, img: tileprofile.FlatTile(10)},
	)
	b := NewBody(50, 0, 20, 20)

	res := DetectGround(idx, b, DefaultArtOffset)

	assert.Equal(t, [2]bool{true, true}, res.Pads)
	assert.False(t, res.Swept)
	require.True(t, res.Found)
	assert.Equal(t, 1-54, res.SurfaceY, "the taller column wins")
	assert.Equal(t, float64(1-54-20+DefaultArtOffset), b.Y)
}

func TestGroundedPass_LastCandidateAngleWins(t *testing.T) {
	var left, right tileprofile.Angles
	for i := range left {
		left[i] = 10
		right[i] = -20
	}
	idx := buildIndex(t,
		placed{x: 0, y: 0, img: tileprofile.FlatTile(0), angle: left},
		placed{x: 64, y: 0, img: tileprofile.FlatTile(30), angle: right},
	)
	b := NewBody(50, 0, 20, 20)

	res := DetectGround(idx, b, DefaultArtOffset)

	assert.Equal(t, 1-64, res.SurfaceY)
	assert.Equal(t, -20, b.Angle, "angle comes from the last probe processed, not the chosen surface")
}

func TestGroundedPass_NoGroundLaunches(t *testing.T) {
	idx := buildIndex(t, flatCell(0, 200))
	b := NewBody(0, 0, 16, 16)
	b.SpeedY = 3

	res := DetectGround(idx, b, DefaultArtOffset)

	assert.False(t, res.Found)
	assert.True(t, b.Airborne)
	assert.False(t, b.Grounded)
	assert.Equal(t, 0.0, b.SpeedY)
	assert.Equal(t, 0.0, b.Y, "position is untouched")
}

func TestClampColumn(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 0},
		{0, 0},
		{31, 31},
		{63, 63},
		{64, 63},
		{100, 63},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampColumn(tt.in), "column %d", tt.in)
	}
}

func TestGlitchFix_Engages(t *testing.T) {
	// A ramp rising to the right ends at x=64; the left probe is over it and
	// the right probe over the gap beyond.
	idx := buildIndex(t, placed{x: 0, y: 0, img: tileprofile.RampTile(63, 0), angle: tileprofile.RampAngles(63, 0)})
	b := NewBody(50, 0, 20, 20)
	sensors := b.Sensors()
	require.True(t, sensors.Floor[0].Overlaps(image.Rect(0, 0, 64, 64)))
	require.False(t, sensors.Floor[1].Overlaps(image.Rect(0, 0, 64, 64)))

	single := 1 - tileprofile.ExtractHeights(tileprofile.RampTile(63, 0), pixelmask.DefaultAlphaThreshold)[51]

	res := DetectGround(idx, b, DefaultArtOffset)

	assert.Equal(t, [2]bool{true, false}, res.Pads)
	assert.True(t, res.Swept)
	assert.LessOrEqual(t, res.SurfaceY, single)
	assert.Equal(t, 1-64, res.SurfaceY, "the right probe, swept left, finds the ramp's top column")
	assert.Equal(t, 45, b.Angle)
}

func TestGlitchFix_KeepsSurfaceWhenNothingHigher(t *testing.T) {
	idx := buildIndex(t, flatCell(64, 0))
	b := NewBody(60, 0, 20, 20) // left probe at 61 over the gap, right at 78

	res := DetectGround(idx, b, DefaultArtOffset)

	assert.Equal(t, [2]bool{false, true}, res.Pads)
	assert.True(t, res.Swept)
	assert.Equal(t, 1-64, res.SurfaceY)
}

func TestSlopeMonotonicity(t *testing.T) {
	idx := buildIndex(t,
		placed{x: -64, y: 0, img: tileprofile.FlatTile(63)},
		placed{x: 0, y: 0, img: tileprofile.RampTile(63, 32), angle: tileprofile.RampAngles(63, 32)},
	)
	b := NewBody(-10, 0, 16, 16)
	require.True(t, DetectGround(idx, b, DefaultArtOffset).Found)

	prev := DetectGround(idx, b, DefaultArtOffset).SurfaceY
	rising := 0
	for x := -9; x <= 40; x++ {
		b.X = float64(x)
		res := DetectGround(idx, b, DefaultArtOffset)
		require.True(t, res.Found, "x=%d", x)
		assert.LessOrEqual(t, res.SurfaceY, prev, "x=%d: ground must never drop while climbing", x)
		assert.GreaterOrEqual(t, res.SurfaceY, prev-1, "x=%d: no snap larger than one pixel", x)
		if res.SurfaceY < prev {
			rising++
		}
		prev = res.SurfaceY
	}
	assert.Greater(t, rising, 10)
}

func TestCollide_MaskPrecision(t *testing.T) {
	// Only the top-left corner of cell A and bottom-right corner of cell B are
	// opaque; the probe overlaps both rectangles but neither opaque block.
	idx := buildIndex(t,
		placed{x: 0, y: 0, img: tileprofile.CornerTile(8, true)},
		placed{x: 64, y: 0, img: tileprofile.CornerTile(8, false)},
	)
	probe := Probe{Rect: image.Rect(30, 30, 100, 40), Mask: pixelmask.Filled(70, 10)}

	assert.Len(t, idx.Overlapping(probe.Rect), 2)
	assert.Empty(t, Collide(idx, probe, 0, 0))

	assert.Equal(t, []terrain.Key{{X: 0, Y: 0}}, Collide(idx, probe, -25, -25))
	assert.Equal(t, []terrain.Key{{X: 64, Y: 0}}, Collide(idx, probe, 25, 20))
}

func TestCollide_EmptyIndex(t *testing.T) {
	idx := terrain.Build(nil)
	assert.Empty(t, Collide(idx, Probe{Rect: image.Rect(0, 0, 10, 10), Mask: pixelmask.Filled(10, 10)}, 3, 3))
}

func TestAdjustPosition(t *testing.T) {
	idx := buildIndex(t, flatCell(0, 0))
	probe := Probe{Rect: image.Rect(0, -10, 16, -9), Mask: pixelmask.Filled(16, 1)}

	tests := []struct {
		name   string
		offset [2]int
		axis   int
		want   int
	}{
		{"lands flush", [2]int{0, 12}, 1, 9},
		{"one pixel shrinks to zero", [2]int{0, 1}, 1, 0},
		{"zero input", [2]int{0, 0}, 1, 0},
		{"free upward", [2]int{0, -5}, 1, -4},
		{"horizontal free", [2]int{7, 0}, 0, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdjustPosition(idx, probe, tt.offset, tt.axis))
		})
	}
}

func TestAdjustPosition_Terminates(t *testing.T) {
	idx := buildIndex(t, flatCell(0, 0), flatCell(64, 0), flatCell(0, 64), flatCell(64, 64))
	inside := Probe{Rect: image.Rect(40, 40, 60, 60), Mask: pixelmask.Filled(20, 20)}

	for off := -60; off <= 64; off++ {
		for axis := 0; axis < 2; axis++ {
			var o [2]int
			o[axis] = off
			got := AdjustPosition(idx, inside, o, axis)
			assert.Equal(t, 0, got, "a fully buried probe is blocked for offset %d", off)
		}
	}

	edge := Probe{Rect: image.Rect(-30, 10, -10, 20), Mask: pixelmask.Filled(20, 10)}
	for off := -64; off <= 64; off++ {
		got := AdjustPosition(idx, edge, [2]int{off, 0}, 0)
		assert.LessOrEqual(t, abs(got), abs(off))
		if off != 0 && got != 0 {
			assert.Equal(t, off > 0, got > 0, "sign is preserved")
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestDetectWall(t *testing.T) {
	idx := buildIndex(t, flatCell(0, 64), flatCell(64, 64), flatCell(128, 0))
	b := NewBody(100, 64-13, 16, 16)
	b.SpeedX = 20

	hit := DetectWall(idx, b)

	require.True(t, hit)
	assert.Equal(t, 12.0, b.SpeedX, "right edge 116 may move up to the wall at 128")

	b.SpeedX = -3
	assert.False(t, DetectWall(idx, b))
	assert.Equal(t, -3.0, b.SpeedX)
}

func TestDetectWall_AirborneUsesFullBody(t *testing.T) {
	idx := buildIndex(t, placed{x: 64, y: 0, img: tileprofile.FlatTile(60)})
	b := &Body{X: 40, Y: 50, W: 16, H: 16, Airborne: true, SpeedX: 10}

	require.True(t, DetectWall(idx, b))
	assert.Equal(t, 8.0, b.SpeedX)

	b.Grounded, b.Airborne = true, false
	b.SpeedX = 10
	assert.False(t, DetectWall(idx, b), "the wall sensor runs above the low step")
}

func TestAirSearch_LandsAndClearsFlags(t *testing.T) {
	idx := buildIndex(t, flatCell(0, 0))
	b := &Body{
		X: 10, Y: -20, W: 16, H: 16, SpeedY: 6, Angle: 30,
		Airborne: true, Jumping: true, SpringJump: true, Hurt: true, HomingDash: true,
	}

	res := DetectGround(idx, b, DefaultArtOffset)

	assert.True(t, res.Landed)
	assert.Equal(t, 4.0, b.SpeedY, "the bottom row at -5 has four free rows above the surface")
	assert.True(t, b.Grounded)
	assert.False(t, b.Airborne)
	assert.False(t, b.Jumping || b.SpringJump || b.Hurt || b.HomingDash)
	assert.Equal(t, 0, b.Angle)
}

func TestAirSearch_MissKeepsFalling(t *testing.T) {
	idx := buildIndex(t, flatCell(0, 0))
	b := &Body{X: 10, Y: -100, W: 16, H: 16, SpeedY: 3, Angle: 12, Airborne: true, Jumping: true}

	res := DetectGround(idx, b, DefaultArtOffset)

	assert.False(t, res.Landed)
	assert.True(t, b.Airborne)
	assert.True(t, b.Jumping)
	assert.Equal(t, 3.0, b.SpeedY)
	assert.Equal(t, 0, b.Angle)
}

func TestStep_JumpAndLand(t *testing.T) {
	idx := buildIndex(t, flatCell(0, 0), flatCell(64, 0), flatCell(128, 0))
	b := NewBody(50, -13, 16, 16)
	p := DefaultParams()
	Step(idx, b, p)
	require.Equal(t, -13.0, b.Y)

	b.SpeedY = -6
	b.Jumping = true
	b.Launch()

	minY := b.Y
	for range 200 {
		Step(idx, b, p)
		minY = min(minY, b.Y)
		if b.Grounded {
			break
		}
	}

	assert.Less(t, minY, -60.0, "the jump gains height")
	assert.True(t, b.Grounded)
	assert.False(t, b.Jumping)
	for range 3 {
		Step(idx, b, p)
	}
	assert.Equal(t, -13.0, b.Y)
}

func TestStep_RunsOffLedge(t *testing.T) {
	idx := buildIndex(t, flatCell(0, 0), flatCell(64, 200))
	b := NewBody(20, -13, 16, 16)
	b.SpeedX = 4

	p := DefaultParams()
	for range 20 {
		Step(idx, b, p)
	}
	assert.True(t, b.Airborne)
	assert.Greater(t, b.Y, -13.0)
}

func TestStep_Bounds(t *testing.T) {
	idx := buildIndex(t, flatCell(0, 0), flatCell(64, 0))
	p := DefaultParams()
	p.Bounds = Bounds{Start: 0, End: 128, StartInset: 2, EndInset: 32}

	b := NewBody(1, -13, 16, 16)
	b.SpeedX = -6
	Step(idx, b, p)
	assert.GreaterOrEqual(t, b.X, 0.0-6.0/float64(p.Substeps))

	b = NewBody(120, -13, 16, 16)
	b.SpeedX = 0
	assert.True(t, p.Bounds.Clamp(b))
	assert.Equal(t, 96.0, b.X)

	assert.False(t, Bounds{}.Clamp(b), "zero bounds are disabled")
}

func TestStep_DefaultBoundsKeepBodyInLevel(t *testing.T) {
	idx := buildIndex(t, flatCell(0, 64), flatCell(64, 64))
	p := DefaultParams()
	p.Bounds.End = 128

	b := NewBody(100, -13, 16, 16)
	b.Launch()
	b.SpeedX = 4

	for range 40 {
		Step(idx, b, p)
		require.Less(t, b.X, 120.0, "the body stays inside the level")
	}
	assert.Greater(t, b.Y, -13.0, "the clamped body keeps falling")
}

func TestBounds_NeverPastEnd(t *testing.T) {
	bd := Bounds{Start: 0, End: 128, EndInset: 8}
	b := NewBody(120, 0, 16, 16)

	assert.True(t, bd.Clamp(b))
	assert.Equal(t, 112.0, b.X)
	assert.False(t, bd.Clamp(b), "a clamped body stays put")
}

func TestStep_GravityClamp(t *testing.T) {
	idx := terrain.Build(nil)
	b := &Body{W: 16, H: 16, Airborne: true, SpeedY: 15.9}
	p := DefaultParams()

	Step(idx, b, p)

	assert.Equal(t, p.MaxFall, b.SpeedY)
}
