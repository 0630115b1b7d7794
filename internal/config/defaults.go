package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Storage: StorageSettings{
			Path: "~/.memory/memory.db",
		},
		Log: LogSettings{
			Path:  "~/.memory/memory.log",
			Level: "info",
		},
		Audio: AudioSettings{
			Muted: false,
			Bell:  true,
			Cues:  []string{"match", "wrong", "win"},
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
