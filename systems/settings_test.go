package systems

import (
	"errors"
	"testing"

	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type memoryStore struct {
	items   map[string][]byte
	saveErr error
}

func (m *memoryStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memoryStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

// useStore swaps the settings store and the window hook for a test.
func useStore(t *testing.T) (*memoryStore, *[]bool) {
	t.Helper()
	mem := &memoryStore{items: map[string][]byte{}}
	var fullscreen []bool
	prevStore, prevWindow := store, windowFullscreen
	store = mem
	windowFullscreen = func(on bool) { fullscreen = append(fullscreen, on) }
	t.Cleanup(func() {
		store, windowFullscreen = prevStore, prevWindow
		SetMuted(false)
	})
	return mem, &fullscreen
}

func TestSettingsRoundTrip(t *testing.T) {
	useStore(t)

	loaded, err := LoadSettings()
	if err != nil || loaded != nil {
		t.Fatalf("empty store: %v, %v", loaded, err)
	}

	want := SavedSettings{Muted: true, Debug: true}
	if err := SaveSettings(&want); err != nil {
		t.Fatal(err)
	}
	loaded, err = LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != want {
		t.Errorf("loaded %+v, want %+v", *loaded, want)
	}
}

func TestLoadSettingsRejectsGarbage(t *testing.T) {
	mem, _ := useStore(t)
	mem.items[cfg.Settings.ItemKey] = []byte("{not json")
	if _, err := LoadSettings(); err == nil {
		t.Error("corrupt settings loaded without error")
	}
}

func TestSettingsWithoutStore(t *testing.T) {
	useStore(t)
	store = nil
	if err := SaveSettings(&SavedSettings{Muted: true}); err != nil {
		t.Errorf("save without store: %v", err)
	}
	if s, err := LoadSettings(); s != nil || err != nil {
		t.Errorf("load without store: %v, %v", s, err)
	}
}

func TestSettingsToggles(t *testing.T) {
	mem, fullscreen := useStore(t)
	e := ecs.NewECS(donburi.NewWorld())
	input := GetInput(e)

	PressKey(input, ebiten.KeyF)
	PressKey(input, ebiten.KeyM)
	RefreshActions(input)
	UpdateSettings(e)

	s := GetOrCreateSettings(e)
	if !s.Fullscreen || !s.Muted || s.Debug {
		t.Fatalf("settings = %+v", s)
	}
	if len(*fullscreen) != 1 || !(*fullscreen)[0] {
		t.Errorf("window calls = %v", *fullscreen)
	}
	if s.Dirty {
		t.Error("settings not saved")
	}
	saved, err := LoadSettings()
	if err != nil || saved == nil || !saved.Muted || !saved.Fullscreen {
		t.Errorf("stored %+v, %v", saved, err)
	}

	// held keys do not toggle again
	RefreshActions(input)
	UpdateSettings(e)
	if !s.Fullscreen || !s.Muted {
		t.Error("held keys toggled the settings back")
	}

	mem.saveErr = errors.New("disk full")
	ReleaseKey(input, ebiten.KeyF)
	ReleaseKey(input, ebiten.KeyM)
	PressKey(input, ebiten.KeyF3)
	RefreshActions(input)
	UpdateSettings(e)
	if !s.Debug || !s.Dirty {
		t.Errorf("failed save should leave settings dirty: %+v", s)
	}
}

func TestApplySavedSettings(t *testing.T) {
	_, fullscreen := useStore(t)
	e := ecs.NewECS(donburi.NewWorld())

	ApplySavedSettings(e, nil)
	if s := GetOrCreateSettings(e); s.Muted || s.Debug {
		t.Errorf("defaults = %+v", s)
	}

	ApplySavedSettings(e, &SavedSettings{Muted: true, Fullscreen: true})
	s := GetOrCreateSettings(e)
	if !s.Muted || !s.Fullscreen {
		t.Errorf("applied = %+v", s)
	}
	if len(*fullscreen) != 1 || !(*fullscreen)[0] {
		t.Errorf("window calls = %v", *fullscreen)
	}
}

func TestQuitRequested(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	if QuitRequested(e) {
		t.Fatal("quit without a key")
	}
	PressKey(GetInput(e), ebiten.KeyEscape)
	RefreshActions(GetInput(e))
	if !QuitRequested(e) {
		t.Error("escape does not quit")
	}
}

func TestRunLoopFollowsRunning(t *testing.T) {
	useStore(t)
	e, player := newRun(t, cfg.VariantPickup)
	anim := components.Animation.Get(player)

	if WantsRunLoop(e) {
		t.Fatal("run loop while idle")
	}
	anim.Mode = cfg.AnimRunning
	if !WantsRunLoop(e) {
		t.Fatal("no run loop while running")
	}
	SetMuted(true)
	if WantsRunLoop(e) {
		t.Error("run loop while muted")
	}
	SetMuted(false)
	EndRun(e, cfg.OutcomeSuccess)
	if WantsRunLoop(e) {
		t.Error("run loop after the run ended")
	}
}
