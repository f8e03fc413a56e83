// Package assets turns the procedural art into cached ebitengine images.
package assets

import (
	"fmt"
	"image"

	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/props"
	"github.com/hajimehoshi/ebiten/v2"
)

// PropFrames is the number of animation frames drawn for animated props.
const PropFrames = 4

type ImageLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

// MustLoadImage returns the image cached under key, drawing it on first use.
func (l *ImageLoader) MustLoadImage(key string, draw func() image.Image) *ebiten.Image {
	if img, ok := l.cache[key]; ok {
		return img
	}
	src := draw()
	if src == nil || src.Bounds().Empty() {
		panic(fmt.Sprintf("Failed to draw image %s", key))
	}
	img := ebiten.NewImageFromImage(src)
	l.cache[key] = img
	return img
}

// GetFrame returns a cached sub-image for a specific animation frame.
// This prevents creating thousands of duplicate *ebiten.Image structs for the same frame.
func (l *ImageLoader) GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", dir, state.String(), frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	frame := l.sheet(dir, state).SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

func (l *ImageLoader) sheet(dir string, state config.StateID) *ebiten.Image {
	key := fmt.Sprintf("spritesheets/%s/%s", dir, state.String())
	return l.MustLoadImage(key, func() image.Image {
		def := config.CharacterAnimations[dir][state]
		return PlayerSheet(state, def.Last+1, config.Player.FrameWidth, config.Player.FrameHeight)
	})
}

var imageLoader = NewImageLoader()

// GetSheet returns the sprite sheet for a character state.
func GetSheet(dir string, state config.StateID) *ebiten.Image {
	return imageLoader.sheet(dir, state)
}

func GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	return imageLoader.GetFrame(dir, state, frameIndex, srcRect)
}

// GetTileImage returns the ebitengine copy of a terrain tile.
func GetTileImage(name string, src image.Image) *ebiten.Image {
	return imageLoader.MustLoadImage("tiles/"+name, func() image.Image { return src })
}

// GetPropImage returns frame of a prop kind's art.
func GetPropImage(kind props.Kind, frame int) *ebiten.Image {
	frames := propFrames(kind)
	frame %= frames
	key := fmt.Sprintf("props/%s/%d", kind, frame)
	return imageLoader.MustLoadImage(key, func() image.Image { return PropArt(kind, frame, frames) })
}

// GetShotImage returns the enemy shot image.
func GetShotImage() *ebiten.Image {
	return imageLoader.MustLoadImage("props/shot", func() image.Image { return shotArt() })
}

func propFrames(kind props.Kind) int {
	if kind.Capabilities().Animates {
		return PropFrames
	}
	return 1
}

// PreloadAllAnimations draws every sprite sheet and prop frame up front so the
// first use of each does not stall a frame.
func PreloadAllAnimations() {
	for dir, defs := range config.CharacterAnimations {
		for state := range defs {
			imageLoader.sheet(dir, state)
		}
	}
	for _, kind := range []props.Kind{props.KindRing, props.KindSpring, props.KindGoal, props.KindEnemy, props.KindScatteredRing} {
		for f := range propFrames(kind) {
			GetPropImage(kind, f)
		}
	}
	GetShotImage()
}
