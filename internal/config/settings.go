// Package config provides the fixed difficulty table and YAML-based
// settings loading for the memory game.
package config

// Settings contains the user-tunable application settings.
type Settings struct {
	Storage StorageSettings `yaml:"storage"`
	Log     LogSettings     `yaml:"log"`
	Audio   AudioSettings   `yaml:"audio"`
}

// StorageSettings locates the SQLite database.
type StorageSettings struct {
	Path string `yaml:"path"`
}

// LogSettings configures the log file.
type LogSettings struct {
	Path  string `yaml:"path"`  // Empty disables logging
	Level string `yaml:"level"` // debug, info, warn, error
}

// AudioSettings configures sound cues.
type AudioSettings struct {
	Muted bool     `yaml:"muted"` // Initial mute state
	Bell  bool     `yaml:"bell"`  // Ring the terminal bell for cues
	Cues  []string `yaml:"cues"`  // Cues that ring; empty means all
}
