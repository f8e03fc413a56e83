package systems

import (
	"github.com/automoto/ringrush/shared/runner"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects ages and animates the level's props. While the player is dying
// the death sequence ticks them instead.
func UpdateObjects(ecs *ecs.ECS) {
	player, ok := getPlayer(ecs)
	if !ok || player.Dead {
		return
	}
	if world := getWorld(ecs); world != nil {
		world.Field.Tick(runner.TickSeconds)
	}
}
