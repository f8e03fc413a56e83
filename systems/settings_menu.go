package systems

import (
	"github.com/automoto/ringrush/components"
	cfg "github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptRestart) + 1

// NewUpdateSettingsMenu creates the system driving the menu shown while
// paused. restart replays the level from the start.
func NewUpdateSettingsMenu(restart func()) ecs.System {
	return func(e *ecs.ECS) {
		if !GetOrCreatePause(e).IsPaused {
			return
		}
		menu := GetOrCreateSettingsMenu(e)
		settings := GetOrCreateSettings(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionLookUp).JustPressed {
			menu.SelectedOption = stepOption(menu.SelectedOption, -1, settings)
		}
		if GetAction(input, cfg.ActionCrouch).JustPressed {
			menu.SelectedOption = stepOption(menu.SelectedOption, 1, settings)
		}

		switch {
		case GetAction(input, cfg.ActionMoveLeft).JustPressed:
			adjustValue(e, menu.SelectedOption, settings, -1)
		case GetAction(input, cfg.ActionMoveRight).JustPressed:
			adjustValue(e, menu.SelectedOption, settings, 1)
		case GetAction(input, cfg.ActionMenuSelect).JustPressed, GetAction(input, cfg.ActionJump).JustPressed:
			handleSelect(e, menu, settings, restart)
		}
	}
}

// stepOption moves the cursor by dir, wrapping and skipping hidden options.
func stepOption(opt components.SettingsOption, dir int, s *components.SettingsData) components.SettingsOption {
	for {
		opt = components.SettingsOption((int(opt) + dir + numSettingsOptions) % numSettingsOptions)
		if !isOptionHidden(s, opt) {
			return opt
		}
	}
}

// isOptionHidden returns true if the option should be hidden
func isOptionHidden(s *components.SettingsData, opt components.SettingsOption) bool {
	// Hide resolution when fullscreen is enabled
	return opt == components.SettingsOptResolution && s.Fullscreen
}

// adjustValue changes the value for the selected option
func adjustValue(e *ecs.ECS, opt components.SettingsOption, s *components.SettingsData, direction int) {
	switch opt {
	case components.SettingsOptSound:
		toggleMute(e, s)
	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
	case components.SettingsOptResolution:
		cycleResolution(s, direction)
	default:
		return
	}
	SaveCurrentSettings(s)
}

func handleSelect(e *ecs.ECS, menu *components.SettingsMenuData, s *components.SettingsData, restart func()) {
	switch menu.SelectedOption {
	case components.SettingsOptResume:
		GetOrCreatePause(e).IsPaused = false
		// The confirming press must not also jump.
		input := getOrCreateInput(e)
		input.Previous[cfg.ActionJump] = input.Current[cfg.ActionJump]
	case components.SettingsOptRestart:
		if restart != nil {
			restart()
		}
	default:
		adjustValue(e, menu.SelectedOption, s, 1)
	}
}

func toggleMute(e *ecs.ECS, s *components.SettingsData) {
	s.Muted = !s.Muted
	if s.Muted {
		SetSFXVolume(e, 0)
		return
	}
	SetSFXVolume(e, cfg.Audio.DefaultSFXVol)
	PlaySFX(e, cfg.SoundRing)
}

// toggleFullscreen toggles fullscreen mode
func toggleFullscreen(s *components.SettingsData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// cycleResolution cycles through available resolutions
func cycleResolution(s *components.SettingsData, direction int) {
	numResolutions := len(cfg.Settings.Resolutions)
	s.ResolutionIndex = (s.ResolutionIndex + direction + numResolutions) % numResolutions

	res := cfg.Settings.Resolutions[s.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
}

// optionLabel returns the label and current value for an option
func optionLabel(s *components.SettingsData, opt components.SettingsOption) (string, string) {
	onOff := func(b bool) string {
		if b {
			return "On"
		}
		return "Off"
	}
	switch opt {
	case components.SettingsOptSound:
		return "Sound", onOff(!s.Muted)
	case components.SettingsOptFullscreen:
		return "Fullscreen", onOff(s.Fullscreen)
	case components.SettingsOptResolution:
		if s.ResolutionIndex >= 0 && s.ResolutionIndex < len(cfg.Settings.Resolutions) {
			return "Resolution", cfg.Settings.Resolutions[s.ResolutionIndex].Label
		}
		return "Resolution", "?"
	case components.SettingsOptRestart:
		return "Restart", ""
	}
	return "Resume", ""
}

// drawSettingsMenu renders the options under the pause title.
func drawSettingsMenu(e *ecs.ECS, screen *ebiten.Image, top int) {
	menu := GetOrCreateSettingsMenu(e)
	settings := GetOrCreateSettings(e)
	face := fonts.Bold.Get()
	center := screen.Bounds().Dx() / 2

	row := 0
	for i := range numSettingsOptions {
		opt := components.SettingsOption(i)
		if isOptionHidden(settings, opt) {
			continue
		}
		textColor := cfg.Pause.TextColor
		if opt == menu.SelectedOption {
			textColor = cfg.Pause.SelectedColor
		}
		label, value := optionLabel(settings, opt)
		y := top + row*int(cfg.Pause.ItemHeight)
		if value == "" {
			text.Draw(screen, label, face, centerTextX(label, face, float64(screen.Bounds().Dx())), y, textColor)
		} else {
			text.Draw(screen, label, face, center-140, y, textColor)
			text.Draw(screen, value, face, center+20, y, textColor)
		}
		row++
	}
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.SettingsMenu))
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}
