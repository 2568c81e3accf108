package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted      bool `json:"muted"`
	Fullscreen bool `json:"fullscreen"`
	Debug      bool `json:"debug"`
}

// settingsStore is the subset of gdata.Manager used for settings.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// InitPersistence opens the gdata store for settings.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without error when
// nothing has been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(cfg.Settings.ItemKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := store.SaveItem(cfg.Settings.ItemKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings writes the settings component to disk, logging
// failures.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Muted:      s.Muted,
		Fullscreen: s.Fullscreen,
		Debug:      s.Debug,
	}
	if err := SaveSettings(saved); err != nil {
		log.Warn("could not save settings", "err", err)
		return
	}
	s.Dirty = false
}
