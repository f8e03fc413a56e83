package systems

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/ringrush/components"
	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/terrain"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collision overlay and remembers the choice.
func UpdateDebug(ecs *ecs.ECS) {
	if !GetAction(getOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		return
	}
	settings := GetOrCreateSettings(ecs)
	settings.DebugOverlay = !settings.DebugOverlay
	SaveCurrentSettings(settings)
}

// DrawDebug outlines the terrain cells in view, the walkers and the player's
// sensors, and prints the ground state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.DebugOverlay {
		return
	}
	world := getWorld(ecs)
	if world == nil {
		return
	}
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := image.Rect(int(-camX), int(-camY), int(-camX)+width, int(-camY)+height)
	alpha := cfg.Debug.OverlayAlpha

	for _, k := range world.Index.Overlapping(view) {
		strokeRect(screen, world.Index.RectAt(k), camX, camY, fade(cfg.Debug.CellColor, alpha))
	}

	for _, obj := range world.Space.Objects() {
		if obj.HasTags(terrain.TagSolid) {
			continue
		}
		strokeRect(screen, world.Space.ObjectRect(obj), camX, camY, fade(cfg.Debug.WalkerColor, alpha))
	}

	player, ok := getPlayer(ecs)
	if !ok {
		return
	}
	b := player.Body
	sensors := b.Sensors()
	sensorColor := fade(cfg.Debug.SensorColor, alpha)
	for _, f := range sensors.Floor {
		strokeRect(screen, f, camX, camY, sensorColor)
	}
	strokeRect(screen, sensors.Wall, camX, camY, sensorColor)
	strokeRect(screen, b.Rect(), camX, camY, fade(cfg.White, alpha))
	if player.Ground.Found {
		y := float32(float64(player.Ground.SurfaceY) + camY)
		vector.StrokeLine(screen, float32(float64(b.Rect().Min.X)+camX)-8, y, float32(float64(b.Rect().Max.X)+camX)+8, y, 1, sensorColor, false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"x %.1f y %.1f\nspeed %.2f, %.2f\nangle %d grounded %t airborne %t\npads %v swept %t",
		b.X, b.Y, b.SpeedX, b.SpeedY, b.Angle, b.Grounded, b.Airborne,
		player.Ground.Pads, player.Ground.Swept,
	), 8, height-72)
}

// cameraOffset is the translation from world to screen coordinates.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

func strokeRect(screen *ebiten.Image, r image.Rectangle, camX, camY float64, c color.Color) {
	x := float32(float64(r.Min.X) + camX)
	y := float32(float64(r.Min.Y) + camY)
	vector.StrokeRect(screen, x, y, float32(r.Dx()), float32(r.Dy()), 1, c, false)
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
