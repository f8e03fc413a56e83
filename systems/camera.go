package systems

import (
	"math"

	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	player, ok := getPlayer(e)
	if !ok || player.Dead {
		return // the camera holds still while the player falls off screen
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)

	// Only update look-ahead when moving; the offset freezes when idle
	if math.Abs(player.Body.SpeedX) > config.Player.Movement.LookUpMaxSpeed {
		dir := config.DirectionRight
		if player.FacingLeft {
			dir = config.DirectionLeft
		}
		targetLookAhead := dir * config.Camera.LookAheadDistance
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSpeed
	}

	camera.LookY = lookOffset(camera, player)

	px, py := player.Center()
	targetX, targetY := clampToLevel(levelData, px+camera.LookAheadX, py+camera.LookY)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.SmoothingFactor
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.SmoothingFactor
}

// lookOffset pans the view up or down once the player has held look up or
// crouch for LookDelayFrames, and back when they let go.
func lookOffset(camera *components.CameraData, player *components.PlayerData) float64 {
	target := 0.0
	if player.LookingUp || (player.Crouching && !player.Rolling) {
		camera.LookTimer++
		if camera.LookTimer >= config.Camera.LookDelayFrames {
			if player.LookingUp {
				target = -config.Camera.LookUpDistance
			} else {
				target = config.Camera.LookDownDistance
			}
		}
	} else {
		camera.LookTimer = 0
	}
	return camera.LookY + (target-camera.LookY)*config.Camera.SmoothingFactor
}

// clampToLevel keeps the view inside the level so the backdrop never shows
// past its edges.
func clampToLevel(levelData *components.LevelData, x, y float64) (float64, float64) {
	if levelData.Level == nil {
		return x, y
	}
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	minX := float64(levelData.Level.Origin.X) + screenWidth/2
	maxX := float64(levelData.Level.Origin.X+levelData.Level.Width) - screenWidth/2
	minY := float64(levelData.Level.Origin.Y) + screenHeight/2
	maxY := float64(levelData.Level.Origin.Y+levelData.Level.Height) - screenHeight/2

	if maxX > minX {
		x = math.Max(minX, math.Min(maxX, x))
	}
	if maxY > minY {
		y = math.Max(minY, math.Min(maxY, y))
	}
	return x, y
}

// SnapCamera centres the camera on the player with no smoothing.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	player, ok := getPlayer(e)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	px, py := player.Center()
	camera.Position.X, camera.Position.Y = clampToLevel(components.Level.Get(levelEntry), px, py)
	camera.LookAheadX, camera.LookY, camera.LookTimer = 0, 0, 0
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
