package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/ringrush/assets/levels"
	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/fonts"
	"github.com/automoto/ringrush/scenes"
	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/automoto/ringrush/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(level *leveldata.Level) *Game {
	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, level)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadLevel loads a level from disk when path is set, or the bundled level.
func loadLevel(path string) *leveldata.Level {
	if path == "" {
		return levels.MustLoad(config.Level.Name)
	}
	level, err := levels.LoadPath(path)
	if err != nil {
		log.Printf("Warning: Could not load level %s: %v", path, err)
		return levels.MustLoad(config.Level.Name)
	}
	return level
}

func main() {
	debug := flag.Bool("debug", false, "Show the sensor overlay")
	levelPath := flag.String("level", "", "Level directory of CSV layers or a Tiled .tmx file")
	seed := flag.Uint64("seed", 0, "Seed for enemy patrols and scattered rings (0 = random)")
	flag.Parse()

	config.Debug.ShowOverlay = *debug
	config.Physics.Seed = *seed

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(loadLevel(*levelPath))); err != nil {
		log.Fatal(err)
	}
}
