package systems

import (
	"fmt"
	"log"

	"github.com/automoto/ringrush/components"
	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/fonts"
	"github.com/automoto/ringrush/shared/props"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewUpdateLevelComplete creates the system that finishes the level once the
// goal post stops spinning, and restarts it on confirm.
func NewUpdateLevelComplete(restart func()) ecs.System {
	return func(e *ecs.ECS) {
		levelComplete := GetOrCreateLevelComplete(e)
		world := getWorld(e)
		if world == nil {
			return
		}
		levelComplete.Spinning = world.GoalSpinning()

		if !levelComplete.IsComplete {
			if world.Complete() {
				finishLevel(e, levelComplete)
			}
			return
		}

		if levelComplete.InputDelay > 0 {
			levelComplete.InputDelay--
			return
		}
		if GetAction(getOrCreateInput(e), cfg.ActionMenuSelect).JustPressed && restart != nil {
			restart()
		}
	}
}

func finishLevel(e *ecs.ECS, levelComplete *components.LevelCompleteData) {
	levelComplete.IsComplete = true
	levelComplete.InputDelay = cfg.LevelComplete.InputDelay

	player, ok := getPlayer(e)
	if !ok {
		return
	}
	world := getWorld(e)
	game := GetOrCreateGame(e)
	game.Phase = components.PhaseComplete
	game.FinalScore = player.Tally.FinalScore(world.Elapsed())
	game.NewBest = RecordScore(e, game.FinalScore)
	log.Printf("Level complete in %s with score %d", FormatClock(world.Elapsed()), game.FinalScore)
}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}
	game := GetOrCreateGame(e)
	world := getWorld(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.LevelComplete.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.LevelComplete.Message
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height/3), cfg.LevelComplete.TextColor)

	msgFont := fonts.Bold.Get()
	lines := []string{fmt.Sprintf("SCORE %d", game.FinalScore)}
	if world != nil {
		lines = append(lines, fmt.Sprintf("TIME %s  BONUS %d", FormatClock(world.Elapsed()), props.TimeBonus(world.Elapsed())))
	}
	if game.NewBest {
		lines = append(lines, cfg.GameOver.NewBestText)
	}
	for i, msg := range lines {
		text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(height/2)+i*28, cfg.LevelComplete.TextColor)
	}

	if levelComplete.InputDelay == 0 {
		hintFont := fonts.Small.Get()
		hint := cfg.LevelComplete.ContinueHint
		text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-24, cfg.LevelComplete.TextColor)
	}
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.LevelComplete))
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	return GetOrCreateLevelComplete(e).IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) || IsGameOver(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or level is complete
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithLevelCompleteCheck(system))
}
