package systems

import (
	"encoding/json"
	"log"
	"slices"

	"github.com/automoto/ringrush/components"
	cfg "github.com/automoto/ringrush/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool  `json:"fullscreen"`
	ResolutionIndex int   `json:"resolutionIndex"`
	DebugOverlay    bool  `json:"debugOverlay"`
	Muted           bool  `json:"muted"`
	BestScores      []int `json:"bestScores"`
}

const settingsItem = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsItem)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsItem, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		DebugOverlay:    s.DebugOverlay,
		Muted:           s.Muted,
		BestScores:      s.BestScores,
	})
}

// ApplySavedSettingsGlobal applies window settings during startup, before any
// scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
	if saved.Muted {
		globalSFXVolume = 0
	}

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeding it
// from disk on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		settings := components.SettingsData{
			ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
			DebugOverlay:    cfg.Debug.ShowOverlay,
		}
		if saved, _ := LoadSettings(); saved != nil {
			settings.ResolutionIndex = saved.ResolutionIndex
			settings.Fullscreen = saved.Fullscreen
			settings.DebugOverlay = saved.DebugOverlay || cfg.Debug.ShowOverlay
			settings.Muted = saved.Muted
			settings.BestScores = saved.BestScores
		}
		components.Settings.SetValue(ent, settings)
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

// RecordScore adds a finished run's score to the best scores and saves them.
// It reports whether the score beats every earlier one.
func RecordScore(ecs *ecs.ECS, score int) bool {
	settings := GetOrCreateSettings(ecs)
	var best bool
	settings.BestScores, best = InsertScore(settings.BestScores, score, cfg.Settings.MaxBestScores)
	SaveCurrentSettings(settings)
	return best
}

// InsertScore places score into scores (highest first), keeping at most limit
// entries. best is true when score is strictly higher than all previous ones.
func InsertScore(scores []int, score, limit int) (out []int, best bool) {
	best = len(scores) == 0 || score > scores[0]
	i, _ := slices.BinarySearchFunc(scores, score, func(have, want int) int {
		// descending order; equal scores keep the older one first
		if have >= want {
			return -1
		}
		return 1
	})
	out = slices.Insert(slices.Clone(scores), i, score)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, best && score > 0
}
