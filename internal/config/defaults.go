package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/spacebattle.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// Kept in sync with defaults/spacebattle.yaml.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Starfield: true,
			Style:     StyleBlocks,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Achievement: AchievementConfig{
			Enabled: false,
			URL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		Storage: StorageConfig{
			DBPath: "~/.spacebattle/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.spacebattle/spacebattle.log",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
