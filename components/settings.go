package components

import "github.com/yohamta/donburi"

// SettingsData holds the persisted player preferences and records
type SettingsData struct {
	ResolutionIndex int
	Fullscreen      bool
	DebugOverlay    bool
	Muted           bool
	BestScores      []int // highest first
}

var Settings = donburi.NewComponentType[SettingsData]()
