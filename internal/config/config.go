// Package config provides YAML-based configuration loading for Space Battle.
// Gameplay rules are fixed constants in the game package; the config only
// covers presentation, input, storage, logging and serving.
package config

import "time"

// Config contains all user-tunable settings.
type Config struct {
	Display     DisplayConfig     `yaml:"display"`
	Input       InputConfig       `yaml:"input"`
	Achievement AchievementConfig `yaml:"achievement"`
	Storage     StorageConfig     `yaml:"storage"`
	Log         LogConfig         `yaml:"log"`
	SSH         SSHConfig         `yaml:"ssh"`
}

// DisplayConfig controls how the playfield is drawn.
type DisplayConfig struct {
	Starfield bool   `yaml:"starfield"`
	Style     string `yaml:"style"` // "blocks" or "ascii"
}

// Glyph styles.
const (
	StyleBlocks = "blocks"
	StyleASCII  = "ascii"
)

// InputConfig tunes terminal key handling.
type InputConfig struct {
	// HoldTicks is how long a single key press keeps a held action active.
	HoldTicks int `yaml:"hold_ticks"`
}

// AchievementConfig controls the score-threshold achievement action.
type AchievementConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

// StorageConfig locates the high score database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig controls the log output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Normalize replaces out-of-range values with their defaults.
func (c *Config) Normalize() {
	def := Default()

	if c.Display.Style != StyleBlocks && c.Display.Style != StyleASCII {
		c.Display.Style = def.Display.Style
	}
	if c.Input.HoldTicks < 1 {
		c.Input.HoldTicks = def.Input.HoldTicks
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = def.Log.File
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = def.Storage.DBPath
	}
	if c.SSH.Address == "" {
		c.SSH.Address = def.SSH.Address
	}
	if c.SSH.IdleTimeout <= 0 {
		c.SSH.IdleTimeout = def.SSH.IdleTimeout
	}
}
