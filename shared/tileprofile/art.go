package tileprofile

import (
	"image"
	"image/color"
	"math"
)

// Procedural tile art. The demo level and the tests draw their terrain with
// these instead of shipping bitmaps.

var (
	groundColor  = color.NRGBA{R: 139, G: 90, B: 43, A: 255}
	surfaceColor = color.NRGBA{R: 60, G: 170, B: 60, A: 255}
)

// SurfaceTile draws a tile whose column x is solid from row surface(x) down to
// the bottom edge. A surface row outside [0, Size) leaves the column empty.
func SurfaceTile(surface func(x int) int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Size, Size))
	for x := 0; x < Size; x++ {
		top := surface(x)
		if top < 0 || top >= Size {
			continue
		}
		for y := top; y < Size; y++ {
			c := groundColor
			if y-top < 4 {
				c = surfaceColor
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// FlatTile is solid from row top to the bottom edge in every column.
func FlatTile(top int) *image.NRGBA {
	return SurfaceTile(func(int) int { return top })
}

// RampTile rises linearly from row left (column 0) to row right (column 63).
func RampTile(left, right int) *image.NRGBA {
	return SurfaceTile(func(x int) int {
		return left + int(math.Round(float64(right-left)*float64(x)/float64(Size-1)))
	})
}

// RampAngles is the angle profile matching RampTile(left, right): positive for
// surfaces rising to the right.
func RampAngles(left, right int) Angles {
	var a Angles
	deg := int(math.Round(math.Atan2(float64(left-right), float64(Size-1)) * 180 / math.Pi))
	for i := range a {
		a[i] = deg
	}
	return a
}

// CornerTile is a single opaque pixel block in the chosen corner: a square of
// side n at the top-left when topLeft is true, else at the bottom-right.
func CornerTile(n int, topLeft bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Size, Size))
	x0, y0 := 0, 0
	if !topLeft {
		x0, y0 = Size-n, Size-n
	}
	for y := y0; y < y0+n; y++ {
		for x := x0; x < x0+n; x++ {
			img.SetNRGBA(x, y, groundColor)
		}
	}
	return img
}
