package systems

import (
	"image"

	"github.com/automoto/ringrush/components"
	cfg "github.com/automoto/ringrush/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var levelDrawOp = &ebiten.DrawImageOptions{}

// DrawLevel fills the backdrop and draws the terrain cells in view.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Level.BackdropColor)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.World == nil {
		return
	}
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := image.Rect(int(-camX), int(-camY), int(-camX)+width, int(-camY)+height)
	idx := levelData.World.Index
	for _, k := range idx.Overlapping(view) {
		img := levelData.Tiles[idx.NameAt(k)]
		if img == nil {
			continue
		}
		levelDrawOp.GeoM.Reset()
		levelDrawOp.GeoM.Translate(float64(k.X)+camX, float64(k.Y)+camY)
		screen.DrawImage(img, levelDrawOp)
	}
}
