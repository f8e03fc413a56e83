package components

import (
	"github.com/automoto/ringrush/shared/runner"
	"github.com/yohamta/donburi"
)

// PlayerData is the controllable runner. The embedded runner.Player holds the
// body the physics core moves and the controller state layered on top.
type PlayerData struct {
	*runner.Player
	// Events is what happened to the player during the last tick.
	Events runner.Events
	Intent runner.Intent
}

var Player = donburi.NewComponentType[PlayerData]()
