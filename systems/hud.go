package systems

import (
	"fmt"
	"image/color"
	"time"

	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders score, time, rings and lives in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	player, ok := getPlayer(ecs)
	if !ok {
		return
	}
	world := getWorld(ecs)
	if world == nil {
		return
	}

	face := fonts.Regular.Get()
	x := int(cfg.HUD.Margin)
	labelX := x + int(cfg.HUD.FontSize*4)
	y := int(cfg.HUD.Margin + cfg.HUD.FontSize)
	line := int(cfg.HUD.LineHeight)

	ringLabel := cfg.HUD.LabelColor
	if player.Tally.Rings == 0 && (world.Ticks/cfg.HUD.FlashPeriod)%2 == 0 {
		ringLabel = cfg.HUD.WarnColor
	}

	rows := []struct {
		label string
		value string
		color color.RGBA
	}{
		{"SCORE", fmt.Sprint(player.Tally.Score), cfg.HUD.LabelColor},
		{"TIME", FormatClock(world.Elapsed()), cfg.HUD.LabelColor},
		{"RINGS", fmt.Sprint(player.Tally.Rings), ringLabel},
	}
	for i, r := range rows {
		text.Draw(screen, r.label, face, x, y+i*line, r.color)
		text.Draw(screen, r.value, face, labelX, y+i*line, cfg.HUD.ValueColor)
	}

	lives := fmt.Sprintf("x %d", max(player.Tally.Lives, 0))
	text.Draw(screen, lives, face, x, screen.Bounds().Dy()-int(cfg.HUD.Margin), cfg.HUD.ValueColor)
}

// FormatClock renders the level clock as minutes and seconds.
func FormatClock(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
