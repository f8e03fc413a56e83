package systems

import "github.com/yohamta/donburi/ecs"

// UpdateEnemies runs enemy patrols and moves their shots.
func UpdateEnemies(ecs *ecs.ECS) {
	player, ok := getPlayer(ecs)
	if !ok || player.Dead {
		return
	}
	if world := getWorld(ecs); world != nil {
		player.Events.Merge(world.UpdateEnemies(player.Player))
	}
}
