package components

import "github.com/yohamta/donburi"

// GameOverData stores the game over screen state
type GameOverData struct {
	InputDelay int
	Score      int
	BestScore  int
	NewBest    bool
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
