package physics

import (
	"image"

	"github.com/automoto/ringrush/shared/pixelmask"
	"github.com/automoto/ringrush/shared/terrain"
)

// Probe is a rectangle plus the mask tested against terrain masks. The mask
// origin is the rectangle's top-left corner; it may be larger or smaller than
// the rectangle.
type Probe struct {
	Rect image.Rectangle
	Mask *pixelmask.Mask
}

// Collide translates the probe by (dx, dy) and returns, row-major, the cells
// whose rectangle overlaps it (broad phase) and whose mask shares an opaque
// pixel with the probe mask (narrow phase).
func Collide(idx *terrain.Index, p Probe, dx, dy int) []terrain.Key {
	moved := p.Rect.Add(image.Pt(dx, dy))
	var hits []terrain.Key
	for _, k := range idx.Overlapping(moved) {
		cell := idx.RectAt(k)
		if idx.MaskAt(k).Overlaps(p.Mask, moved.Min.X-cell.Min.X, moved.Min.Y-cell.Min.Y) {
			hits = append(hits, k)
		}
	}
	return hits
}

// collides reports whether Collide would return any cell.
func collides(idx *terrain.Index, p Probe, dx, dy int) bool {
	moved := p.Rect.Add(image.Pt(dx, dy))
	for _, k := range idx.Overlapping(moved) {
		cell := idx.RectAt(k)
		if idx.MaskAt(k).Overlaps(p.Mask, moved.Min.X-cell.Min.X, moved.Min.Y-cell.Min.Y) {
			return true
		}
	}
	return false
}

// AdjustPosition shrinks offset[axis] toward zero one pixel at a time until
// the probe no longer collides, and returns the first free value. It returns 0
// when the shrink reaches zero, which means the probe is fully blocked, and
// for a zero offset. The result never has a larger magnitude than the input.
func AdjustPosition(idx *terrain.Index, p Probe, offset [2]int, axis int) int {
	step := -1
	if offset[axis] < 0 {
		step = 1
	}
	for offset[axis] != 0 {
		offset[axis] += step
		if offset[axis] == 0 {
			return 0
		}
		if !collides(idx, p, offset[0], offset[1]) {
			return offset[axis]
		}
	}
	return 0
}
