package systems

import (
	"log"

	"github.com/automoto/ringrush/components"
	cfg "github.com/automoto/ringrush/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths shakes the camera when the player dies and, once the death
// sequence is over, respawns it or ends the game when no lives are left.
func UpdateDeaths(ecs *ecs.ECS) {
	player, ok := getPlayer(ecs)
	if !ok {
		return
	}
	world := getWorld(ecs)
	if world == nil {
		return
	}

	if player.Events.Died {
		TriggerScreenShake(ecs, cfg.Effects.HurtShakeIntensity, cfg.Effects.DeathShakeFrames)
	}
	if !player.Events.DeathOver {
		return
	}

	if player.Tally.Lives <= 0 {
		game := GetOrCreateGame(ecs)
		game.Phase = components.PhaseGameOver
		game.FinalScore = player.Tally.Score
		game.NewBest = RecordScore(ecs, game.FinalScore)
		log.Printf("Game over with score %d", game.FinalScore)
		return
	}

	world.Respawn(player.Player)
	if entry, ok := getPlayerEntry(ecs); ok {
		state := components.State.Get(entry)
		state.CurrentState = cfg.Idle
		state.StateTimer = 0
	}
	SnapCamera(ecs)
}

// GetOrCreateGame returns the singleton Game component, creating if needed.
func GetOrCreateGame(ecs *ecs.ECS) *components.GameData {
	if _, ok := components.Game.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Game))
	}

	ent, _ := components.Game.First(ecs.World)
	return components.Game.Get(ent)
}

// IsGameOver reports whether the last life has been lost.
func IsGameOver(ecs *ecs.ECS) bool {
	return GetOrCreateGame(ecs).Phase == components.PhaseGameOver
}
