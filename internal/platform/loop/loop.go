// Package loop drives a game session for any frontend: it turns wall-clock
// ticks into elapsed time, honors restart only after game over, and stores
// the final score once per session.
package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacebattle/internal/core"
	"github.com/vovakirdan/spacebattle/internal/registry"
	"github.com/vovakirdan/spacebattle/internal/storage"
)

// Options configures a Loop.
type Options struct {
	// Store receives the final score of every session. Nil disables saving.
	Store *storage.Store

	// Player is recorded with saved scores.
	Player string

	// Logger receives session events. Nil discards them.
	Logger *log.Logger
}

// Loop owns a game and everything that happens between its ticks.
// It is not safe for concurrent use; the frontend's update goroutine owns it.
type Loop struct {
	game       registry.Game
	config     core.RuntimeConfig
	fixedSeed  bool
	opts       Options
	logger     *log.Logger
	clock      core.Clock
	state      core.GameState
	scoreSaved bool
	best       int
}

// New creates a loop for the game. A zero seed picks a fresh time-based
// seed for every session.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) *Loop {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Loop{
		game:      game,
		config:    cfg,
		fixedSeed: fixedSeed,
		opts:      opts,
		logger:    logger,
	}
}

// Start resets the game for the first session.
func (l *Loop) Start() {
	l.game.Reset(l.config)
	l.state = l.game.State()
	l.clock.Reset()
	l.loadBest()
	l.logger.Info("session started", "game", l.game.ID(), "player", l.opts.Player, "seed", l.config.Seed)
}

// Tick runs one loop iteration at wall time now with the polled input.
// Returns true if the tick restarted the session instead of stepping it.
func (l *Loop) Tick(now time.Time, in core.InputFrame) bool {
	in.Elapsed = l.clock.Tick(now)

	if in.Has(core.ActionRestart) && l.state.GameOver {
		l.restart()
		return true
	}

	wasOver := l.state.GameOver
	l.state = l.game.Step(in).State

	if l.state.GameOver && !wasOver {
		l.logger.Info("game over", "score", l.state.Score, "level", l.state.Level)
	}

	// Save score on game over (once)
	if l.state.GameOver && !l.scoreSaved {
		l.saveScore()
		l.scoreSaved = true
	}

	return false
}

// restart starts a new session after game over.
func (l *Loop) restart() {
	if !l.fixedSeed {
		l.config.Seed = time.Now().UnixNano()
	}
	l.game.Reset(l.config)
	l.state = l.game.State()
	l.scoreSaved = false
	l.logger.Info("restart", "seed", l.config.Seed)
}

// loadBest reads the stored high score.
func (l *Loop) loadBest() {
	if l.opts.Store == nil {
		return
	}
	best, err := l.opts.Store.HighScore(l.game.ID())
	if err != nil {
		l.logger.Warn("could not read high score", "error", err)
		return
	}
	l.best = best
}

// saveScore stores the final score. Failures are logged and play continues.
func (l *Loop) saveScore() {
	if l.opts.Store == nil || l.state.Score <= 0 {
		return
	}
	if _, err := l.opts.Store.SaveScore(l.game.ID(), l.opts.Player, l.state.Score, l.state.Level); err != nil {
		l.logger.Warn("could not save score", "error", err)
		return
	}
	if l.state.Score > l.best {
		l.logger.Info("new high score", "score", l.state.Score, "previous", l.best)
		l.best = l.state.Score
	}
}

// Stop logs the end of the session.
func (l *Loop) Stop() {
	l.logger.Info("session ended", "score", l.state.Score, "level", l.state.Level)
}

// Resize records a new surface size. The session is not reset.
func (l *Loop) Resize(width, height int) {
	l.config.ScreenW = width
	l.config.ScreenH = height
}

// State returns the game state seen at the last tick.
func (l *Loop) State() core.GameState {
	return l.state
}

// Best returns the stored high score, including the sessions played so far.
// Zero without a store.
func (l *Loop) Best() int {
	return l.best
}

// Config returns the runtime config the next reset will use.
func (l *Loop) Config() core.RuntimeConfig {
	return l.config
}

// Game returns the driven game.
func (l *Loop) Game() registry.Game {
	return l.game
}

// Logger returns the session logger.
func (l *Loop) Logger() *log.Logger {
	return l.logger
}
