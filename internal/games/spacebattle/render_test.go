package spacebattle

import (
	"strings"
	"testing"

	"github.com/vovakirdan/spacebattle/internal/config"
	"github.com/vovakirdan/spacebattle/internal/core"
)

func TestRenderHUD(t *testing.T) {
	g := newTestGame(1)
	g.session.Score = 40
	g.session.Lives = 2

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	wants := []string{"Score: 40", "Level: 1", "Lives: 2"}
	for row, want := range wants {
		if !strings.Contains(rowText(screen, row), want) {
			t.Errorf("row %d = %q, want %q", row, rowText(screen, row), want)
		}
	}
	if strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay shown while playing")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(1)
	g.session.Lives = 1
	g.loseLife()

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"GAME OVER", "Press R to restart or Q/Esc to quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

func TestRenderPlayerASCII(t *testing.T) {
	g := newTestGame(1)
	g.display = config.DisplayConfig{Starfield: false, Style: config.StyleASCII}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// 800x600 onto 80x24: the ship spans cells 37..41 on row 21.
	if got := runeAt(screen, 37, 21); got != '/' {
		t.Errorf("ship left = %q, want '/'", got)
	}
	if got := runeAt(screen, 41, 21); got != '\\' {
		t.Errorf("ship right = %q, want '\\'", got)
	}
	if got := runeAt(screen, 39, 21); got != '^' {
		t.Errorf("ship nose = %q, want '^'", got)
	}
	if c := screen.GetCell(38, 21); c.Color != core.ColorBrightGreen {
		t.Errorf("ship color = %v, want bright green", c.Color)
	}
}

func TestRenderEnemyHP(t *testing.T) {
	g := newTestGame(1)
	g.display = config.DisplayConfig{Style: config.StyleASCII}
	g.enemies = append(g.enemies, &Enemy{
		Body:  core.RectF{X: 100, Y: 300, W: EnemyW, H: EnemyH},
		HP:    2,
		Color: core.ColorYellow,
	})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Enemy body starts at cell (10, 12); pips sit on the row above.
	if c := screen.GetCell(10, 12); c.Rune != '#' || c.Color != core.ColorYellow {
		t.Errorf("enemy cell = %+v", c)
	}
	if got := runeAt(screen, 10, 11); got != '*' {
		t.Errorf("first hp pip = %q, want '*'", got)
	}
	if got := runeAt(screen, 11, 11); got != '*' {
		t.Errorf("second hp pip = %q, want '*'", got)
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(1)
	g.bullets = append(g.bullets, &Bullet{Rect: core.NewRect(400, 300, BulletW, BulletH)})

	// Must not panic on degenerate sizes.
	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 3}} {
		g.Render(core.NewScreen(size[0], size[1]))
	}

	// Bullets are narrower than a cell but still visible.
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if got := screen.GetCell(40, 12); got.Color != core.ColorBrightYellow {
		t.Errorf("bullet cell = %+v, want bright yellow", got)
	}
}

func TestRenderUnknownStyleFallsBack(t *testing.T) {
	g := newTestGame(1)
	g.display = config.DisplayConfig{Style: "neon"}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if got := runeAt(screen, 38, 21); got != glyphStyles[config.StyleBlocks].shipBody {
		t.Errorf("ship body = %q, want block glyph", got)
	}
}

func runeAt(s *core.Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func rowText(s *core.Screen, y int) string {
	rows := strings.Split(s.String(), "\n")
	if y < 0 || y >= len(rows) {
		return ""
	}
	return rows[y]
}
