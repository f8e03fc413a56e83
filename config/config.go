package config

import (
	"image/color"

	"github.com/automoto/ringrush/shared/physics"
	"github.com/automoto/ringrush/shared/pixelmask"
	"github.com/automoto/ringrush/shared/runner"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
)

// PhysicsConfig holds the substepped terrain collision tuning
type PhysicsConfig struct {
	Substeps     int
	Gravity      float64 // px per tick squared while airborne
	MaxFallSpeed float64
	ArtOffset    int // px between the body bottom and the art's lip

	// Horizontal level limits. A body crossing them is put back at
	// LevelStart+StartInset or LevelEnd-EndInset. A zero LevelEnd uses the
	// level's width.
	LevelStart float64
	LevelEnd   float64
	StartInset float64
	EndInset   float64

	// Cell size of the resolv spaces used for walkers and props
	SpaceCellSize int
	// Alpha at or below which a tile pixel is empty
	AlphaThreshold uint8
	// Seed for enemy patrols and scattered rings; zero picks one per run
	Seed uint64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, jumping, rolling, dashing and damage tuning
	Movement runner.Tuning

	StartingLives int

	// Dimensions
	CollisionWidth  int
	CollisionHeight int
	FrameWidth      int
	FrameHeight     int
}

// AnimationConfig holds the speed thresholds used to pick a movement state
type AnimationConfig struct {
	WalkMax    float64
	JogMax     float64
	FastJogMax float64
	RunMax     float64

	DefaultSpeed int // ticks per frame
}

// CameraConfig contains camera configuration values
type CameraConfig struct {
	SmoothingFactor   float64
	LookAheadDistance float64
	LookAheadSpeed    float64
	LookUpDistance    float64
	LookDownDistance  float64
	LookDelayFrames   int
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	Margin      float64
	LineHeight  float64
	FontSize    float64
	LabelColor  color.RGBA
	ValueColor  color.RGBA
	WarnColor   color.RGBA // rings label flashes this color at zero rings
	FlashPeriod int
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go directly to game
	ShowOverlay  bool // Start with the sensor overlay visible
	SensorColor  color.RGBA
	CellColor    color.RGBA
	WalkerColor  color.RGBA
	OverlayAlpha float32
}

// LevelConfig selects and frames the level being played
type LevelConfig struct {
	Name          string // embedded level directory or a path given on the command line
	BackdropColor color.RGBA
	DeathMargin   float64 // px below the level before a fall costs a life
}

// GameOverConfig contains game over screen configuration
type GameOverConfig struct {
	OverlayColor  color.RGBA
	TitleColor    color.RGBA
	TextColor     color.RGBA
	TitleY        float64
	ScoreY        float64
	HintY         float64
	InputDelay    int // frames before input is accepted
	TitleText     string
	ContinueHint  string
	NewBestText   string
	BestScoreText string
}

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Message      string
	ContinueHint string
	InputDelay   int
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor  color.RGBA
	TextColor     color.RGBA
	SelectedColor color.RGBA
	Title         string
	TitleY        float64
	MenuY         float64
	ItemHeight    float64
}

// EffectsConfig tunes the purely visual feedback
type EffectsConfig struct {
	HurtShakeIntensity float64
	HurtShakeFrames    int
	DeathShakeFrames   int

	SquashLandX, SquashLandY       float64
	StretchSpringX, StretchSpringY float64
	SquashLerpSpeed                float64

	SparkCount  int
	SparkSpeed  float64
	SparkFrames int
	SparkSize   float32
	SparkColor  color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Animation AnimationConfig
var Camera CameraConfig
var HUD HUDConfig
var Debug DebugConfig
var Level LevelConfig
var GameOver GameOverConfig
var LevelComplete LevelCompleteConfig
var Pause PauseConfig
var Effects EffectsConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	SkyBlue      = color.RGBA{R: 80, G: 140, B: 220, A: 255}
	Brown        = color.RGBA{R: 150, G: 90, B: 40, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Ring Rush",
	}

	Physics = PhysicsConfig{
		Substeps:     6,
		Gravity:      0.21875,
		MaxFallSpeed: 16,
		ArtOffset:    66,

		LevelStart: 0,
		LevelEnd:   0,
		StartInset: 2,
		EndInset:   32,

		SpaceCellSize:  16,
		AlphaThreshold: pixelmask.DefaultAlphaThreshold,
	}

	Player = PlayerConfig{
		Movement:      runner.DefaultTuning(),
		StartingLives: 3,

		CollisionWidth:  16,
		CollisionHeight: 32,
		FrameWidth:      32,
		FrameHeight:     40,
	}

	Animation = AnimationConfig{
		WalkMax:      2,
		JogMax:       3.5,
		FastJogMax:   4.5,
		RunMax:       6.5,
		DefaultSpeed: 5,
	}

	Camera = CameraConfig{
		SmoothingFactor:   0.1,
		LookAheadDistance: 48,
		LookAheadSpeed:    0.05,
		LookUpDistance:    96,
		LookDownDistance:  88,
		LookDelayFrames:   60,
	}

	HUD = HUDConfig{
		Margin:      10,
		LineHeight:  20,
		FontSize:    16,
		LabelColor:  Yellow,
		ValueColor:  White,
		WarnColor:   Red,
		FlashPeriod: 16,
	}

	Debug = DebugConfig{
		SensorColor:  Red,
		CellColor:    Green,
		WalkerColor:  Magenta,
		OverlayAlpha: 0.6,
	}

	Level = LevelConfig{
		Name:          "green_hill",
		BackdropColor: SkyBlue,
		DeathMargin:   128,
	}

	GameOver = GameOverConfig{
		OverlayColor:  BlackOverlay,
		TitleColor:    Red,
		TextColor:     White,
		TitleY:        120,
		ScoreY:        170,
		HintY:         240,
		InputDelay:    30,
		TitleText:     "GAME OVER",
		ContinueHint:  "Press Enter to try again",
		NewBestText:   "New best score!",
		BestScoreText: "Best",
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Message:      "LEVEL COMPLETE",
		ContinueHint: "Press Enter to play again",
		InputDelay:   30,
	}

	Pause = PauseConfig{
		OverlayColor:  BlackOverlay,
		TextColor:     White,
		SelectedColor: Yellow,
		Title:         "PAUSED",
		TitleY:        90,
		MenuY:         150,
		ItemHeight:    32,
	}

	Effects = EffectsConfig{
		HurtShakeIntensity: 4,
		HurtShakeFrames:    20,
		DeathShakeFrames:   30,

		SquashLandX:     1.3,
		SquashLandY:     0.7,
		StretchSpringX:  0.7,
		StretchSpringY:  1.4,
		SquashLerpSpeed: 0.2,

		SparkCount:  8,
		SparkSpeed:  2.5,
		SparkFrames: 20,
		SparkSize:   3,
		SparkColor:  BrightYellow,
	}
}

// Params converts the physics tuning for physics.Step.
func (p PhysicsConfig) Params() physics.Params {
	return physics.Params{
		Substeps:  p.Substeps,
		Gravity:   p.Gravity,
		MaxFall:   p.MaxFallSpeed,
		ArtOffset: p.ArtOffset,
		Bounds: physics.Bounds{
			Start:      p.LevelStart,
			End:        p.LevelEnd,
			StartInset: p.StartInset,
			EndInset:   p.EndInset,
		},
	}
}

// World returns the runner configuration for a level.
func World(seed uint64) runner.Config {
	return runner.Config{
		Params:        Physics.Params(),
		Tuning:        Player.Movement,
		SpaceCellSize: Physics.SpaceCellSize,
		DeathMargin:   Level.DeathMargin,
		Seed:          seed,
	}
}
