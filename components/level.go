package components

import (
	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/automoto/ringrush/shared/runner"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// LevelData is the loaded level and the world simulating it.
type LevelData struct {
	Level *leveldata.Level
	World *runner.World

	// Tiles caches one ebiten image per terrain cell name.
	Tiles map[string]*ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()
