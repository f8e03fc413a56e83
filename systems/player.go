package systems

import (
	"github.com/automoto/ringrush/components"
	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/runner"
	"github.com/automoto/ringrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns this tick's input into the player's speed and action
// flags. It also clears the player's events for the systems that follow.
func UpdatePlayer(ecs *ecs.ECS) {
	player, ok := getPlayer(ecs)
	if !ok {
		return
	}
	world := getWorld(ecs)
	if world == nil {
		return
	}

	player.Events = runner.Events{}
	player.Intent = IntentFor(getOrCreateInput(ecs))
	if player.Dead {
		return
	}
	wasJumping, revs := player.Body.Jumping, player.SpinRevs
	runner.Control(player.Player, player.Intent, world.Tuning, world.Targets())

	switch {
	case player.Body.Jumping && !wasJumping:
		PlaySFX(ecs, cfg.SoundJump)
	case player.Charging && (player.SpinRevs > revs || player.Intent.Jump):
		PlaySFX(ecs, cfg.SoundSpinDash)
	}
}

// getPlayer returns the player's data, if there is a player.
func getPlayer(ecs *ecs.ECS) (*components.PlayerData, bool) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil, false
	}
	player := components.Player.Get(entry)
	return player, player.Player != nil
}

// getPlayerEntry returns the player entity.
func getPlayerEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}

// getWorld returns the simulated level, or nil before the level is loaded.
func getWorld(ecs *ecs.ECS) *runner.World {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).World
}
