package systems

import (
	cfg "github.com/automoto/ringrush/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics moves the player's body through the terrain, or drops it
// through everything while the death sequence plays.
func UpdatePhysics(ecs *ecs.ECS) {
	player, ok := getPlayer(ecs)
	if !ok {
		return
	}
	world := getWorld(ecs)
	if world == nil {
		return
	}

	if player.Dead {
		player.Events.Merge(world.Dying(player.Player))
		return
	}

	wasAirborne := player.Body.Airborne
	world.Move(player.Player)

	if player.Ground.Landed && wasAirborne {
		if entry, ok := getPlayerEntry(ecs); ok {
			TriggerSquashStretch(entry, cfg.Effects.SquashLandX, cfg.Effects.SquashLandY)
		}
	}
	if player.Dead {
		player.Events.Died = true
	}
}
