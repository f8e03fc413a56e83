package components

import "github.com/yohamta/donburi"

// SettingsOption is an entry of the pause menu
type SettingsOption int

const (
	SettingsOptResume SettingsOption = iota
	SettingsOptSound
	SettingsOptFullscreen
	SettingsOptResolution
	SettingsOptRestart
)

// SettingsMenuData stores the pause menu cursor
type SettingsMenuData struct {
	SelectedOption SettingsOption
}

var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
