// Package pixelmask holds per-pixel occupancy masks and the pixel-exact overlap
// test used by the narrow phase of terrain collision. It has no dependencies on
// ebitengine so the headless simulator can use it.
package pixelmask

import "image"

// DefaultAlphaThreshold is the alpha value a pixel must exceed to count as solid.
const DefaultAlphaThreshold uint8 = 20

const wordBits = 64

// Mask is a fixed-size grid of opaque/transparent bits, stored row-major in
// 64-bit words.
type Mask struct {
	w, h  int
	words int // words per row
	bits  []uint64
}

// New returns an empty (fully transparent) mask of the given size.
func New(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	words := (w + wordBits - 1) / wordBits
	return &Mask{
		w:     w,
		h:     h,
		words: words,
		bits:  make([]uint64, words*h),
	}
}

// Filled returns a fully opaque mask of the given size.
func Filled(w, h int) *Mask {
	m := New(w, h)
	m.Fill()
	return m
}

// FromImage builds a mask from img's alpha channel. Pixels with alpha strictly
// greater than threshold are opaque. The mask origin is img.Bounds().Min.
func FromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if Opaque(img, b.Min.X+x, b.Min.Y+y, threshold) {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Opaque reports whether the pixel at (x, y) has an 8-bit alpha above threshold.
func Opaque(img image.Image, x, y int, threshold uint8) bool {
	_, _, _, a := img.At(x, y).RGBA()
	return uint8(a>>8) > threshold
}

// Size returns the mask dimensions.
func (m *Mask) Size() (int, int) {
	return m.w, m.h
}

// Fill marks every pixel opaque.
func (m *Mask) Fill() {
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			m.Set(x, y, true)
		}
	}
}

// Get reports whether (x, y) is opaque. Out-of-range coordinates are transparent.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.words+x/wordBits]&(1<<uint(x%wordBits)) != 0
}

// Set changes the pixel at (x, y). Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int, opaque bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	i := y*m.words + x/wordBits
	bit := uint64(1) << uint(x%wordBits)
	if opaque {
		m.bits[i] |= bit
	} else {
		m.bits[i] &^= bit
	}
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.Get(x, y) {
				n++
			}
		}
	}
	return n
}

// Overlaps reports whether any opaque pixel of other, placed with its origin
// at (dx, dy) in m's coordinate space, lands on an opaque pixel of m.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	return m.overlap(other, dx, dy, true) > 0
}

// OverlapArea returns the number of opaque pixels shared by m and other placed
// at (dx, dy).
func (m *Mask) OverlapArea(other *Mask, dx, dy int) int {
	return m.overlap(other, dx, dy, false)
}

func (m *Mask) overlap(other *Mask, dx, dy int, first bool) int {
	if other == nil {
		return 0
	}
	x0, y0 := max(0, dx), max(0, dy)
	x1, y1 := min(m.w, dx+other.w), min(m.h, dy+other.h)
	if x0 >= x1 || y0 >= y1 {
		return 0
	}

	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Get(x, y) && other.Get(x-dx, y-dy) {
				n++
				if first {
					return n
				}
			}
		}
	}
	return n
}

// Equal reports whether two masks have the same size and bits.
func (m *Mask) Equal(other *Mask) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.w != other.w || m.h != other.h {
		return false
	}
	for i := range m.bits {
		if m.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}
