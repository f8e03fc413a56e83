package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains persisted settings defaults
type SettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	AppName                string // gdata storage namespace
	MaxBestScores          int
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
		AppName:                "ringrush",
		MaxBestScores:          5,
	}
}
