package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/automoto/ringrush/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *leveldata.Level
	score, best  int
	newBest      bool
	once         sync.Once
}

// NewGameOverScene creates a new game over scene for a run that ended with
// score. Continuing replays level.
func NewGameOverScene(sc SceneChanger, level *leveldata.Level, score, best int, newBest bool) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, level: level, score: score, best: best, newBest: newBest}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createPlatformerScene := func() interface{} {
		return NewPlatformerScene(gs.sceneChanger, gs.level)
	}

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createPlatformerScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	systems.SetGameOverScore(gs.ecs, gs.score, gs.best, gs.newBest)
}
