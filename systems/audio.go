package systems

import (
	"sync"

	"github.com/automoto/ringrush/assets"
	"github.com/automoto/ringrush/components"
	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/runner"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes all sound effects up front to avoid a stall on
// first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Audio.Tones {
		globalAudioLoader.PreloadSFX(id)
	}
}

// UpdateAudio plays the sounds for this tick's player events and anything
// queued with PlaySFX. It runs after the gameplay systems.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	if player, ok := getPlayer(e); ok {
		audioData.PendingSFX = append(audioData.PendingSFX, SoundsFor(player.Events)...)
	}
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID, audioData.SFXVolume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// SoundsFor lists the sound effects a tick's events call for.
func SoundsFor(ev runner.Events) []cfg.SoundID {
	var out []cfg.SoundID
	add := func(cond bool, id cfg.SoundID) {
		if cond {
			out = append(out, id)
		}
	}
	add(ev.Rings > 0 && ev.ExtraLives == 0, cfg.SoundRing)
	add(ev.ExtraLives > 0, cfg.SoundExtraLife)
	add(ev.Sprung, cfg.SoundSpring)
	add(ev.Defeated > 0, cfg.SoundDefeat)
	add(ev.Hurt, cfg.SoundHurt)
	add(ev.Died, cfg.SoundDeath)
	add(ev.Shots > 0, cfg.SoundShot)
	add(ev.Goal, cfg.SoundGoal)
	return out
}

func playSFX(soundID cfg.SoundID, volume float64) {
	if volume <= 0 {
		return
	}
	player := globalAudioLoader.LoadSFX(soundID)
	if player == nil {
		return
	}
	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// UpdateMute toggles sound effects and remembers the choice.
func UpdateMute(e *ecs.ECS) {
	if !GetAction(getOrCreateInput(e), cfg.ActionMute).JustPressed {
		return
	}
	settings := GetOrCreateSettings(e)
	settings.Muted = !settings.Muted
	volume := cfg.Audio.DefaultSFXVol
	if settings.Muted {
		volume = 0
	}
	SetSFXVolume(e, volume)
	SaveCurrentSettings(settings)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	GetOrCreateAudio(e).SFXVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
