package systems

import (
	"fmt"

	"github.com/automoto/ringrush/components"
	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createPlatformerScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		if gameOver.InputDelay > 0 {
			gameOver.InputDelay--
			return
		}
		if GetAction(getOrCreateInput(e), cfg.ActionMenuSelect).JustPressed {
			sceneChanger.ChangeScene(createPlatformerScene())
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.GameOver.TitleText
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	bold := fonts.Bold.Get()
	score := fmt.Sprintf("SCORE %d", gameOver.Score)
	text.Draw(screen, score, bold, centerTextX(score, bold, width), int(cfg.GameOver.ScoreY), cfg.GameOver.TextColor)

	regular := fonts.Regular.Get()
	best := fmt.Sprintf("%s %d", cfg.GameOver.BestScoreText, gameOver.BestScore)
	if gameOver.NewBest {
		best = cfg.GameOver.NewBestText
	}
	text.Draw(screen, best, regular, centerTextX(best, regular, width), int(cfg.GameOver.ScoreY)+28, cfg.GameOver.TextColor)

	if gameOver.InputDelay == 0 {
		hintFont := fonts.Small.Get()
		hint := cfg.GameOver.ContinueHint
		text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(cfg.GameOver.HintY), cfg.GameOver.TextColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			InputDelay: cfg.GameOver.InputDelay,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}

// SetGameOverScore seeds the game over screen with the run's result.
func SetGameOverScore(e *ecs.ECS, score, best int, newBest bool) {
	gameOver := GetOrCreateGameOver(e)
	gameOver.Score = score
	gameOver.BestScore = best
	gameOver.NewBest = newBest
}

// BestScore returns the highest recorded score, or zero.
func BestScore(e *ecs.ECS) int {
	if scores := GetOrCreateSettings(e).BestScores; len(scores) > 0 {
		return scores[0]
	}
	return 0
}
