package components

import "github.com/yohamta/donburi"

// Phase is the run's progress through a level.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseComplete
	PhaseGameOver
)

// GameData is the per-run singleton.
type GameData struct {
	Phase      Phase
	FinalScore int
	NewBest    bool
}

var Game = donburi.NewComponentType[GameData]()
