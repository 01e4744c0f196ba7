package main

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacebattle/internal/config"
	"github.com/vovakirdan/spacebattle/internal/games/spacebattle"
)

// browserCommand returns the command that opens url on the given OS.
func browserCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// openURL starts the system browser without waiting for it.
func openURL(url string) error {
	name, args := browserCommand(runtime.GOOS, url)
	cmd := exec.Command(name, args...) //#nosec G204 -- url comes from the user's own config
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// eventHook logs game events and opens the achievement link when enabled.
func eventHook(cfg config.AchievementConfig, logger *log.Logger, open func(string) error) spacebattle.EventHook {
	return func(ev spacebattle.Event) {
		switch ev.Kind {
		case spacebattle.EventAchievement:
			logger.Info("achievement unlocked", "score", ev.Score)
			if !cfg.Enabled || cfg.URL == "" || open == nil {
				return
			}
			if err := open(cfg.URL); err != nil {
				logger.Warn("cannot open achievement link", "error", err)
			}
		case spacebattle.EventLevelUp:
			logger.Info("level up", "level", ev.Level, "score", ev.Score)
		default:
			logger.Debug(ev.Kind.String(), "score", ev.Score, "level", ev.Level, "lives", ev.Lives)
		}
	}
}
