//go:build !nowindow

// Package window runs the game in a native window through Ebiten, with
// real held-key polling and the playfield drawn at its logical 800x600 size.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/spacebattle/internal/core"
	"github.com/vovakirdan/spacebattle/internal/games/spacebattle"
	"github.com/vovakirdan/spacebattle/internal/platform/loop"
	"github.com/vovakirdan/spacebattle/internal/storage"
)

// Options configures the window frontend.
type Options struct {
	// Store receives the final score of every session. Nil disables saving.
	Store *storage.Store

	// Player is recorded with saved scores.
	Player string

	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// Scale multiplies the initial window size. Zero means 1.
	Scale float64
}

// Window implements ebiten.Game for a Space Battle session.
type Window struct {
	game  *spacebattle.Game
	loop  *loop.Loop
	art   *art // built on the first frame, once the graphics driver is up
	scale float64
}

// New creates a window frontend for the game.
func New(game *spacebattle.Game, cfg core.RuntimeConfig, opts Options) *Window {
	cfg.ScreenW = spacebattle.PlayfieldW
	cfg.ScreenH = spacebattle.PlayfieldH

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	return &Window{
		game: game,
		loop: loop.New(game, cfg, loop.Options{
			Store:  opts.Store,
			Player: opts.Player,
			Logger: opts.Logger,
		}),
		scale: scale,
	}
}

// Update polls the keyboard and advances the loop by one tick.
func (w *Window) Update() error {
	in := pollInput()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	w.loop.Tick(time.Now(), in)
	return nil
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.art == nil {
		w.art = newArt()
	}
	w.art.draw(screen, w.game, w.loop.Best())
}

// Layout keeps the logical playfield size whatever the window size is.
func (w *Window) Layout(_, _ int) (int, int) {
	return spacebattle.PlayfieldW, spacebattle.PlayfieldH
}

// Run opens the window and blocks until the player quits or closes it.
func Run(game *spacebattle.Game, cfg core.RuntimeConfig, opts Options) error {
	w := New(game, cfg, opts)

	ebiten.SetWindowSize(int(spacebattle.PlayfieldW*w.scale), int(spacebattle.PlayfieldH*w.scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.loop.Config().TickRate)

	w.loop.Start()
	err := ebiten.RunGame(w)
	w.loop.Stop()

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Key bindings
var (
	leftKeys    = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys   = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	fireKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

// pollInput reads held keys as levels and restart/quit as edges.
func pollInput() core.InputFrame {
	in := core.NewInputFrame()
	if anyPressed(leftKeys) {
		in.Set(core.ActionLeft)
	}
	if anyPressed(rightKeys) {
		in.Set(core.ActionRight)
	}
	if anyPressed(fireKeys) {
		in.Set(core.ActionFire)
	}
	if anyJustPressed(restartKeys) {
		in.Set(core.ActionRestart)
	}
	if anyJustPressed(quitKeys) {
		in.Set(core.ActionQuit)
	}
	return in
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
