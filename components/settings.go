package components

import "github.com/yohamta/donburi"

// SettingsData holds user toggles that survive restarts.
type SettingsData struct {
	Muted      bool
	Fullscreen bool
	Debug      bool
	Dirty      bool // changed since last save
}

var Settings = donburi.NewComponentType[SettingsData]()
