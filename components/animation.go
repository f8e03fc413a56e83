package components

import (
	"github.com/automoto/ringrush/assets/animations"
	"github.com/automoto/ringrush/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	SpriteSheets     map[config.StateID]*ebiten.Image
	CachedFrames     map[config.StateID]map[int]*ebiten.Image // Pre-calculated subimages keyed by sheet index
	CurrentSheet     config.StateID
	FrameWidth       int
	FrameHeight      int
	Animations       map[config.StateID]*animations.Animation
}

func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && (a.CurrentAnimation != nil || a.Animations[state] == nil) {
		return
	}

	anim, ok := a.Animations[state]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.CurrentSheet = state
			a.CurrentAnimation.Restart()
		}
	} else {
		a.CurrentAnimation = nil
		a.CurrentSheet = state
	}
}

// Frame returns the current frame image, or nil when the state has none.
func (a *AnimationData) Frame() *ebiten.Image {
	if a.CurrentAnimation == nil {
		return nil
	}
	return a.CachedFrames[a.CurrentSheet][a.CurrentAnimation.Frame()]
}

var Animation = donburi.NewComponentType[AnimationData]()
