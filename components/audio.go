package components

import (
	cfg "github.com/automoto/ringrush/config"
	"github.com/yohamta/donburi"
)

// AudioData queues the sound effects raised during a tick (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
