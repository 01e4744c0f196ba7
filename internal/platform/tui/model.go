package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacebattle/internal/core"
	"github.com/vovakirdan/spacebattle/internal/platform/loop"
	"github.com/vovakirdan/spacebattle/internal/registry"
	"github.com/vovakirdan/spacebattle/internal/storage"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Options configures a game model.
type Options struct {
	// Store receives the final score of every session. Nil disables saving.
	Store *storage.Store

	// Player is recorded with saved scores.
	Player string

	// HoldTicks is how long a key press keeps a held action active.
	HoldTicks int

	// ScreenshotDir receives ctrl+s captures. Empty disables them.
	ScreenshotDir string

	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// Renderer detects the client's color support. Nil uses stdout.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model that drives one game session.
type Model struct {
	loop      *loop.Loop
	screen    *core.Screen
	opts      Options
	hold      *core.HoldTracker
	keys      KeyMap
	help      help.Model
	palette   Palette
	helpStyle lipgloss.Style
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A zero seed picks a fresh time-based seed for every session.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		loop: loop.New(game, cfg, loop.Options{
			Store:  opts.Store,
			Player: opts.Player,
			Logger: opts.Logger,
		}),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		opts:      opts,
		hold:      core.NewHoldTracker(opts.HoldTicks),
		keys:      DefaultKeyMap(),
		help:      h,
		palette:   NewPalette(renderer),
		helpStyle: renderer.NewStyle().PaddingLeft(1),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.loop.Start()
	return tickCmd(m.loop.Config().TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records key presses. Unknown keys are ignored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.loop.Stop()
		return m, tea.Quit
	}
	m.hold.Press(action)

	return m, nil
}

// handleResize adapts the screen. The simulation keeps running at its own
// resolution, so the session is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.loop.Resize(msg.Width, msg.Height)
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick feeds the held keys to the loop and schedules the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.loop.Tick(now, m.hold.Frame()) {
		m.hold.Reset()
	}
	m.keys.Restart.SetEnabled(m.loop.State().GameOver)

	return m, tickCmd(m.loop.Config().TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	game := m.loop.Game()
	game.Render(m.screen)

	logger := m.loop.Logger()
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("could not save screenshot", "error", err)
		return
	}
	logger.Info("screenshot saved", "path", path)
}

// State returns the game state seen at the last tick.
func (m Model) State() core.GameState {
	return m.loop.State()
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the playfield and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.loop.Game().Render(m.screen)

	footer := m.help.View(m.keys)
	if best := m.loop.Best(); best > 0 {
		footer += fmt.Sprintf("  best: %d", best)
	}
	return m.palette.Render(m.screen) + "\n" + m.helpStyle.Render(footer)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
