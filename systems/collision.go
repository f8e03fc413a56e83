package systems

import (
	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves the player's contacts with props and advances the
// level clock. Hits and springs get their visual feedback here.
func UpdateCollisions(ecs *ecs.ECS) {
	player, ok := getPlayer(ecs)
	if !ok || player.Dead {
		return
	}
	world := getWorld(ecs)
	if world == nil {
		return
	}

	player.Events.Merge(world.Interact(player.Player))
	world.Clock()

	ev := player.Events
	cx, cy := player.Center()
	if ev.Hurt || ev.Defeated > 0 {
		factory.SpawnSparks(ecs, world.Rand, cx, cy, cfg.Effects.SparkCount)
	}
	if ev.Hurt {
		TriggerScreenShake(ecs, cfg.Effects.HurtShakeIntensity, cfg.Effects.HurtShakeFrames)
	}
	if ev.Sprung {
		if entry, ok := getPlayerEntry(ecs); ok {
			TriggerSquashStretch(entry, cfg.Effects.StretchSpringX, cfg.Effects.StretchSpringY)
		}
	}
}
