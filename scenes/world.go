package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/ringrush/assets"
	"github.com/automoto/ringrush/components"
	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/automoto/ringrush/systems"
	"github.com/automoto/ringrush/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger switches the game to another scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PlatformerScene plays one level until it is completed or the last life is
// lost.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *leveldata.Level
	once         sync.Once
}

// NewPlatformerScene creates a scene playing level from its start.
func NewPlatformerScene(sc SceneChanger, level *leveldata.Level) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, level: level}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.IsGameOver(ps.ecs) {
		game := systems.GetOrCreateGame(ps.ecs)
		best := systems.BestScore(ps.ecs)
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.level, game.FinalScore, best, game.NewBest))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) restart() {
	ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.level))
}

func (ps *PlatformerScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()
	assets.PreloadAllAnimations()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.NewUpdateSettingsMenu(ps.restart))
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateMute)

	// The tick order: input, physics, props, enemies, contacts
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateStates))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAudio))

	ecs.AddSystem(systems.NewUpdateLevelComplete(ps.restart))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawProps)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawSparks)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ecs.AddRenderer(cfg.Default, systems.DrawLevelComplete)

	ps.ecs = ecs

	level := factory.CreateLevel(ps.ecs, ps.level)
	factory.CreatePlayer(ps.ecs, components.Level.Get(level).World)
	factory.CreateCamera(ps.ecs, 0, 0)
	systems.SnapCamera(ps.ecs)
}
