package spacebattle

import (
	"fmt"

	"github.com/vovakirdan/spacebattle/internal/config"
	"github.com/vovakirdan/spacebattle/internal/core"
)

// Starfield
const (
	starCount     = 60
	starDriftMs   = 50 // session milliseconds per unit of drift
	starStrideX   = 37
	starStrideY   = 67
	brightStarNth = 5
)

// glyphSet holds the runes for one display style.
type glyphSet struct {
	shipLeft   rune
	shipBody   rune
	shipRight  rune
	shipNose   rune
	enemy      rune
	bullet     rune
	hpFull     rune
	hpEmpty    rune
	star       rune
	brightStar rune
}

var glyphStyles = map[string]glyphSet{
	config.StyleBlocks: {
		shipLeft: '◢', shipBody: '█', shipRight: '◣', shipNose: '▲',
		enemy: '█', bullet: '┃', hpFull: '■', hpEmpty: '□',
		star: '·', brightStar: '∙',
	},
	config.StyleASCII: {
		shipLeft: '/', shipBody: '=', shipRight: '\\', shipNose: '^',
		enemy: '#', bullet: '|', hpFull: '*', hpEmpty: '.',
		star: '.', brightStar: '+',
	},
}

// Render draws the current game state to the screen.
// The 800x600 playfield is stretched over the whole screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	glyphs, ok := glyphStyles[g.display.Style]
	if !ok {
		glyphs = glyphStyles[config.StyleBlocks]
	}

	if g.display.Starfield {
		g.drawStars(dst, glyphs)
	}

	g.drawPlayer(dst, glyphs)

	for _, b := range g.bullets {
		dst.DrawRectColor(toCells(b.Rect, dst), glyphs.bullet, core.ColorBrightYellow)
	}

	for _, e := range g.enemies {
		g.drawEnemy(dst, e, glyphs)
	}

	// HUD
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.session.Score), core.ColorBrightWhite)
	dst.DrawTextColor(1, 1, fmt.Sprintf("Level: %d", g.session.Level), core.ColorBrightWhite)
	dst.DrawTextColor(1, 2, fmt.Sprintf("Lives: %d", g.session.Lives), core.ColorBrightWhite)

	if g.session.GameOver() {
		g.drawCenteredMessage(dst, "GAME OVER", "Press R to restart or Q/Esc to quit")
	}
}

// toCells maps a playfield rectangle onto screen cells.
// Anything on screen is at least one cell in each direction.
func toCells(r core.Rect, dst *core.Screen) core.Rect {
	x0 := core.ScaleTo(r.X, PlayfieldW, dst.Width())
	y0 := core.ScaleTo(r.Y, PlayfieldH, dst.Height())
	x1 := core.ScaleTo(r.Right(), PlayfieldW, dst.Width())
	y1 := core.ScaleTo(r.Bottom(), PlayfieldH, dst.Height())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// drawStars draws the drifting background.
func (g *Game) drawStars(dst *core.Screen, glyphs glyphSet) {
	drift := int(g.now.Milliseconds() / starDriftMs)
	for i := 0; i < starCount; i++ {
		sx := (i*starStrideX + drift) % PlayfieldW
		sy := (i * starStrideY) % PlayfieldH
		x := core.ScaleTo(sx, PlayfieldW, dst.Width())
		y := core.ScaleTo(sy, PlayfieldH, dst.Height())
		if i%brightStarNth == 0 {
			dst.SetColor(x, y, glyphs.brightStar, core.ColorWhite)
		} else {
			dst.SetColor(x, y, glyphs.star, core.ColorGray)
		}
	}
}

// drawPlayer renders the ship with a cockpit at its nose.
func (g *Game) drawPlayer(dst *core.Screen, glyphs glyphSet) {
	r := toCells(g.player, dst)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			ch := glyphs.shipBody
			switch {
			case r.W > 2 && x == r.X:
				ch = glyphs.shipLeft
			case r.W > 2 && x == r.Right()-1:
				ch = glyphs.shipRight
			}
			dst.SetColor(x, y, ch, core.ColorBrightGreen)
		}
	}
	dst.SetColor(r.CenterX(), r.Y, glyphs.shipNose, core.ColorBrightBlue)
}

// drawEnemy renders an enemy and, for tough ones, its remaining hit points.
func (g *Game) drawEnemy(dst *core.Screen, e *Enemy, glyphs glyphSet) {
	r := toCells(e.Rect(), dst)
	dst.DrawRectColor(r, glyphs.enemy, e.Color)

	if e.HP <= 1 || r.Y <= 0 {
		return
	}
	maxHP := EnemyHP(g.session.Level)
	for i := 0; i < core.Max(maxHP, e.HP) && i < r.W; i++ {
		if i < e.HP {
			dst.SetColor(r.X+i, r.Y-1, glyphs.hpFull, core.ColorRed)
		} else {
			dst.SetColor(r.X+i, r.Y-1, glyphs.hpEmpty, core.ColorGray)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightRed)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
