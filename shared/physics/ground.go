package physics

import (
	"image"

	"github.com/automoto/ringrush/shared/gamemath"
	"github.com/automoto/ringrush/shared/terrain"
	"github.com/automoto/ringrush/shared/tileprofile"
)

// DefaultArtOffset ties the sprite's visual baseline to its collision box:
// a grounded body's top is placed at surfaceY - H + DefaultArtOffset.
const DefaultArtOffset = 66

// GroundResult describes one ground pass, for tests and the debug overlay.
type GroundResult struct {
	Pads     [2]bool // floor probes that overlapped a cell
	Found    bool    // a surface was resolved
	SurfaceY int     // topmost surface under the probes
	Swept    bool    // the single-pad sweep ran
	Landed   bool    // the air search found ground
}

// DetectGround runs one pass of the ground state machine: the air search when
// the body is airborne, otherwise the grounded pass that keeps it on the
// surface under its floor probes.
func DetectGround(idx *terrain.Index, b *Body, artOffset int) GroundResult {
	if b.Airborne {
		return GroundResult{Landed: airSearch(idx, b)}
	}
	return grounded(idx, b, artOffset)
}

func grounded(idx *terrain.Index, b *Body, artOffset int) GroundResult {
	var res GroundResult
	floor := b.Sensors().Floor

	for i, probe := range floor {
		keys := idx.Overlapping(probe)
		if len(keys) == 0 {
			continue
		}
		res.Pads[i] = true
		b.Grounded = true
		res.SurfaceY, res.Found = surfaceY(idx, b, probe, keys, res.SurfaceY, res.Found)
	}

	if res.Pads[0] != res.Pads[1] {
		res.Swept = true
		res.SurfaceY = sweepSurface(idx, b, floor, res.Pads, res.SurfaceY)
	}

	if !res.Found {
		b.Launch()
		b.SpeedY = 0
		return res
	}
	b.Y = gamemath.SnapToSurfaceY(res.SurfaceY, b.H, artOffset)
	return res
}

// surfaceY folds the surface under probe for every candidate cell into cur
// (the running minimum) and writes the column's angle to the body. The last
// candidate's angle wins.
func surfaceY(idx *terrain.Index, b *Body, probe image.Rectangle, keys []terrain.Key, cur int, have bool) (int, bool) {
	for _, k := range keys {
		col := clampColumn(probe.Min.X - k.X)
		y := k.Y + 1 - idx.HeightProfileAt(k)[col]
		b.Angle = idx.AngleProfileAt(k)[col]
		if !have || y < cur {
			cur, have = y, true
		}
	}
	return cur, have
}

// sweepSurface slides a copy of the probe without a pad one pixel at a time
// toward the other probe and returns the first surface strictly above y, or y
// when the sweep reaches the other probe without finding one. It stops the
// visible snap on upward slope transitions.
func sweepSurface(idx *terrain.Index, b *Body, floor [2]image.Rectangle, pads [2]bool, y int) int {
	i := 0
	if pads[0] {
		i = 1
	}
	probe := floor[i]
	target := floor[1-i].Min.X
	step := 1
	if target < probe.Min.X {
		step = -1
	}

	best := y
	for probe.Min.X != target {
		probe = probe.Add(image.Pt(step, 0))
		best, _ = surfaceY(idx, b, probe, idx.Overlapping(probe), best, true)
		if best < y {
			return best
		}
	}
	return y
}

func clampColumn(x int) int {
	return min(max(x, 0), tileprofile.Size-1)
}
