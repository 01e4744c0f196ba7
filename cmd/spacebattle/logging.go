package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacebattle/internal/config"
)

// newLogger creates a logger writing to w at the configured level.
// An unknown level falls back to info.
func newLogger(w io.Writer, cfg config.LogConfig, prefix string) *log.Logger {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          prefix,
	})
}

// openLogFile opens the log file for appending, creating its directory.
// The terminal owns stdout during play, so play logs never go there.
func openLogFile(path string) (*os.File, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// fileLogger returns a logger writing to the configured log file, or a
// discarding logger if the file cannot be opened. The returned func closes
// the file.
func fileLogger(cfg config.LogConfig) (*log.Logger, func()) {
	f, err := openLogFile(cfg.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return newLogger(io.Discard, cfg, ""), func() {}
	}
	return newLogger(f, cfg, ""), func() { _ = f.Close() }
}
