package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacebattle/internal/config"
	"github.com/vovakirdan/spacebattle/internal/games/spacebattle"
	"github.com/vovakirdan/spacebattle/internal/platform/tui"
	"github.com/vovakirdan/spacebattle/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Space Battle SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game sized to the client's terminal.
Scores are stored per-server (all users share the same leaderboard)
under their SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.spacebattle/host_key

Examples:
  spacebattle serve                           # Listen on :23234 with auto-generated key
  spacebattle serve --ssh :2222               # Listen on port 2222
  spacebattle serve --host-key ./my_host_key  # Use specific host key
  spacebattle serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg.Log, "spacebattle-ssh")

	serverCfg := tui.SSHServerConfigFrom(cfg, spacebattle.GameID)
	if flagSSHAddr != "" {
		serverCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		serverCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagFPS > 0 {
		serverCfg.TickRate = flagFPS
	}
	serverCfg.Seed = flagSeed
	serverCfg.Setup = sessionSetup

	// The server owns the store from here on
	store := openStore(cfg.Storage.DBPath, logger)

	server, err := tui.NewSSHServer(serverCfg, store, logger)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Space Battle SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// sessionSetup logs the events of an SSH session's game. The achievement
// link is never opened on the server.
func sessionSetup(game registry.Game, logger *log.Logger) {
	sb, ok := game.(*spacebattle.Game)
	if !ok {
		return
	}
	sb.SetHook(eventHook(config.AchievementConfig{}, logger, nil))
}
