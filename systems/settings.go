package systems

import (
	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ErrQuit is returned from the game's Update when the player quits.
var ErrQuit = ebiten.Termination

// windowFullscreen is swapped in tests.
var windowFullscreen = ebiten.SetFullscreen

// UpdateSettings handles the mute, fullscreen and debug toggles and saves
// them when they change.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	s := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionMute).JustPressed {
		s.Muted = !s.Muted
		SetMuted(s.Muted)
		s.Dirty = true
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		s.Fullscreen = !s.Fullscreen
		windowFullscreen(s.Fullscreen)
		s.Dirty = true
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		s.Debug = !s.Debug
		s.Dirty = true
	}

	if s.Dirty {
		SaveCurrentSettings(s)
	}
}

// QuitRequested reports whether the quit key was pressed this tick.
func QuitRequested(e *ecs.ECS) bool {
	return GetAction(getOrCreateInput(e), cfg.ActionQuit).JustPressed
}

// ApplySavedSettings copies loaded settings into the world and applies the
// global ones.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	s := GetOrCreateSettings(e)
	if saved == nil {
		s.Debug = cfg.Debug.Enabled
		return
	}
	s.Muted = saved.Muted
	s.Fullscreen = saved.Fullscreen
	s.Debug = saved.Debug || cfg.Debug.Enabled
	SetMuted(s.Muted)
	windowFullscreen(s.Fullscreen)
}

// GetOrCreateSettings returns the singleton Settings component, creating it if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
	}
	return components.Settings.Get(entry)
}
