package config

// SettingsConfig describes where user settings are persisted
type SettingsConfig struct {
	AppName string
	ItemKey string
}

// Settings is the global settings storage configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "lab-escape",
		ItemKey: "settings",
	}
}
