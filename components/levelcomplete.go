package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the level complete overlay
type LevelCompleteData struct {
	IsComplete bool
	InputDelay int
	// Spinning is set while the goal post plays its spin before the overlay.
	Spinning bool
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
