package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/props"
)

// Procedural art. Everything is drawn into image.NRGBA first so collision
// masks come from the same pixels the game shows.

var (
	ringColor      = color.NRGBA{R: 255, G: 210, B: 30, A: 255}
	ringShade      = color.NRGBA{R: 200, G: 140, B: 0, A: 255}
	springPad      = color.NRGBA{R: 220, G: 40, B: 40, A: 255}
	springCoil     = color.NRGBA{R: 170, G: 170, B: 180, A: 255}
	goalPost       = color.NRGBA{R: 120, G: 120, B: 130, A: 255}
	goalFace       = color.NRGBA{R: 40, G: 120, B: 255, A: 255}
	enemyShell     = color.NRGBA{R: 200, G: 30, B: 60, A: 255}
	enemyEye       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	shotColor      = color.NRGBA{R: 255, G: 140, B: 0, A: 255}
	playerBody     = color.NRGBA{R: 30, G: 80, B: 230, A: 255}
	playerSkin     = color.NRGBA{R: 250, G: 200, B: 150, A: 255}
	playerShoe     = color.NRGBA{R: 220, G: 30, B: 30, A: 255}
	playerHurtTint = color.NRGBA{R: 255, G: 120, B: 120, A: 255}
	playerDeadTint = color.NRGBA{R: 130, G: 130, B: 150, A: 255}
)

// ShotSize is the side of an enemy shot's square.
const ShotSize = 4

func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// fillEllipse paints pixels whose centres fall inside the ellipse, minus the
// inner ellipse when hole is positive.
func fillEllipse(img *image.NRGBA, cx, cy, rx, ry, hole float64, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			d := dx*dx + dy*dy
			if d > 1 {
				continue
			}
			if hole > 0 && d < hole*hole {
				continue
			}
			img.SetNRGBA(x, y, c)
		}
	}
}

// PropArt draws frame of a prop kind at the kind's prop size. Ground props
// (springs, the goal) stand on the tile lip Lip rows below the top of their
// rectangle.
func PropArt(kind props.Kind, frame, frames int) *image.NRGBA {
	switch kind {
	case props.KindRing, props.KindScatteredRing:
		return ringArt(frame, frames)
	case props.KindSpring:
		return springArt()
	case props.KindGoal:
		return goalArt()
	case props.KindEnemy:
		return enemyArt(frame)
	}
	return image.NewNRGBA(image.Rect(0, 0, 1, 1))
}

// ringArt is a ring turning about its vertical axis.
func ringArt(frame, frames int) *image.NRGBA {
	const size = 16
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	turn := 1.0
	if frames > 1 {
		turn = math.Abs(math.Cos(float64(frame) * math.Pi / float64(frames)))
	}
	rx := max(2, 7*turn)
	fillEllipse(img, size/2, size/2, rx, 7, 0.55, ringShade)
	fillEllipse(img, size/2-0.5, size/2-0.5, max(1.5, rx-1), 6, 0.6, ringColor)
	return img
}

// springArt fills its 64 px cell above the lip only; the rest stays clear so
// the mask ignores the part buried in the ground.
func springArt() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for i := range 3 {
		y := 6 + i*3
		fillRect(img, image.Rect(20, y, 44, y+2), springCoil)
	}
	fillRect(img, image.Rect(12, 0, 52, 6), springPad)
	fillRect(img, image.Rect(16, 14, 48, 16), springCoil)
	return img
}

// goalArt is a sign on a post. It is drawn taller than the goal's rectangle
// and anchored at the lip.
func goalArt() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 48, 64))
	fillRect(img, image.Rect(22, 24, 26, 64), goalPost)
	fillEllipse(img, 24, 14, 14, 14, 0, goalPost)
	fillEllipse(img, 24, 14, 12, 12, 0, goalFace)
	return img
}

func enemyArt(frame int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	fillEllipse(img, 10, 10, 10, 10, 0, enemyShell)
	fillRect(img, image.Rect(12, 5, 16, 9), enemyEye)
	// legs alternate
	leg := 3 + (frame%2)*2
	fillRect(img, image.Rect(leg, 17, leg+3, 20), springCoil)
	fillRect(img, image.Rect(17-leg, 17, 20-leg, 20), springCoil)
	return img
}

func shotArt() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, ShotSize, ShotSize))
	fillRect(img, img.Bounds(), shotColor)
	return img
}

// PlayerSheet draws a horizontal strip of frames for state, frame cells of
// w by h with the character standing on the bottom edge.
func PlayerSheet(state config.StateID, frames, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w*frames, h))
	for f := range frames {
		cell := image.Rect(f*w, 0, (f+1)*w, h)
		drawPlayerFrame(img.SubImage(cell).(*image.NRGBA), state, f, frames)
	}
	return img
}

func drawPlayerFrame(img *image.NRGBA, state config.StateID, frame, frames int) {
	b := img.Bounds()
	cx := float64(b.Min.X+b.Max.X) / 2
	body := playerBody
	switch state {
	case config.Hurt:
		body = playerHurtTint
	case config.Die:
		body = playerDeadTint
	}

	switch state {
	case config.Jump, config.Rolling, config.SpinDash:
		// A ball with a stripe that turns with the frame.
		r := float64(b.Dx()) / 2.5
		cy := float64(b.Max.Y) - r
		fillEllipse(img, cx, cy, r, r, 0, body)
		a := float64(frame) * 2 * math.Pi / float64(max(frames, 1))
		for s := 0.0; s < r; s++ {
			x := int(cx + math.Cos(a)*s)
			y := int(cy + math.Sin(a)*s)
			img.SetNRGBA(x, y, playerSkin)
		}
		return
	}

	top := b.Min.Y + 4
	switch state {
	case config.Crouch:
		top = b.Max.Y - b.Dy()/2
	case config.LookUp, config.SpringJump:
		top = b.Min.Y
	}
	bottom := b.Max.Y - 4
	fillEllipse(img, cx, float64(top)+7, 7, 7, 0, body)
	fillRect(img, image.Rect(int(cx)+2, top+5, int(cx)+6, top+9), playerSkin)
	fillRect(img, image.Rect(int(cx)-5, top+13, int(cx)+5, bottom), body)
	fillRect(img, image.Rect(int(cx)-3, top+15, int(cx)+4, bottom-2), playerSkin)

	// Legs swing with the frame while moving.
	stride := 0
	if frames > 1 {
		stride = []int{-3, 0, 3, 0}[frame%4]
	}
	fillRect(img, image.Rect(int(cx)-4+stride, bottom, int(cx)+stride, b.Max.Y), playerShoe)
	fillRect(img, image.Rect(int(cx)-stride, bottom, int(cx)+4-stride, b.Max.Y), playerShoe)
}
