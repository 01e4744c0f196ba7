//go:build !nowindow

package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/spacebattle/internal/core"
	"github.com/vovakirdan/spacebattle/internal/games/spacebattle"
)

var (
	backgroundColor = color.RGBA{8, 8, 20, 255}
	starColor       = color.RGBA{40, 40, 60, 255}
	brightStarColor = color.RGBA{80, 80, 100, 255}
	hudColor        = core.ColorDefault.RGBA()
	shipColor       = core.ColorGreen.RGBA()
	cockpitColor    = core.ColorBlue.RGBA()
	bulletColor     = core.ColorYellow.RGBA()
	hpColor         = core.ColorRed.RGBA()
	hpSpentColor    = core.ColorGray.RGBA()
	headlineColor   = core.ColorRed.RGBA()
)

// Layout in playfield units
const (
	hudX            = 10
	hudLineHeight   = 26
	enemyRadius     = 6
	hpBarOffset     = 6
	hpBarHeight     = 4
	headlineScale   = 4
	headlineOffsetY = -60
	subtitleOffsetY = 10
	bestOffsetY     = 36
)

// art holds the drawing resources.
type art struct {
	face     font.Face
	white    *ebiten.Image
	headline *ebiten.Image
}

func newArt() *art {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	a := &art{
		face:  basicfont.Face7x13,
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
	a.headline = a.renderText("GAME OVER", headlineColor)
	return a
}

// draw renders a full frame. best is the stored high score, zero if unknown.
func (a *art) draw(screen *ebiten.Image, g *spacebattle.Game, best int) {
	screen.Fill(backgroundColor)

	if g.Display().Starfield {
		a.drawStars(screen, g)
	}

	a.drawPlayer(screen, g.Player())

	for _, b := range g.Bullets() {
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bulletColor, false)
	}

	for _, e := range g.Enemies() {
		a.drawEnemy(screen, e)
	}

	s := g.Session()
	a.drawText(screen, fmt.Sprintf("Score: %d", s.Score), hudX, hudX, hudColor)
	a.drawText(screen, fmt.Sprintf("Level: %d", s.Level), hudX, hudX+hudLineHeight, hudColor)
	a.drawText(screen, fmt.Sprintf("Lives: %d", s.Lives), hudX, hudX+2*hudLineHeight, hudColor)

	if s.GameOver() {
		a.drawGameOver(screen, best)
	}
}

// drawStars draws the drifting background, one pixel per star.
func (a *art) drawStars(screen *ebiten.Image, g *spacebattle.Game) {
	drift := int(g.Now().Milliseconds() / 50)
	for i := 0; i < 60; i++ {
		sx := (i*37 + drift) % spacebattle.PlayfieldW
		sy := (i * 67) % spacebattle.PlayfieldH
		if i%5 == 0 {
			screen.Set(sx, sy, brightStarColor)
		} else {
			screen.Set(sx, sy, starColor)
		}
	}
}

// drawPlayer draws the ship as a triangle with a cockpit near its nose.
func (a *art) drawPlayer(screen *ebiten.Image, r core.Rect) {
	cx := float32(r.CenterX())
	top := float32(r.Y)
	a.fillTriangle(screen,
		cx, top,
		float32(r.X), float32(r.Bottom()),
		float32(r.Right()), float32(r.Bottom()),
		shipColor)
	a.fillTriangle(screen,
		cx, top+6,
		cx-6, top+18,
		cx+6, top+18,
		cockpitColor)
}

// drawEnemy draws a rounded body with one bar per hit point above it.
func (a *art) drawEnemy(screen *ebiten.Image, e spacebattle.Enemy) {
	r := e.Rect()
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)
	c := e.Color.RGBA()

	const rad = enemyRadius
	vector.DrawFilledRect(screen, x+rad, y, w-2*rad, h, c, true)
	vector.DrawFilledRect(screen, x, y+rad, w, h-2*rad, c, true)
	vector.DrawFilledCircle(screen, x+rad, y+rad, rad, c, true)
	vector.DrawFilledCircle(screen, x+w-rad, y+rad, rad, c, true)
	vector.DrawFilledCircle(screen, x+rad, y+h-rad, rad, c, true)
	vector.DrawFilledCircle(screen, x+w-rad, y+h-rad, rad, c, true)

	if e.HP <= 0 {
		return
	}
	barW := (w - 6) / float32(e.HP)
	for i := 0; i < e.HP; i++ {
		bc := hpSpentColor
		if i == 0 {
			bc = hpColor
		}
		bx := x + 3 + float32(i)*barW
		vector.DrawFilledRect(screen, bx, y-hpBarOffset, barW-2, hpBarHeight, bc, false)
	}
}

// drawGameOver draws the headline, the restart hint and the best score.
func (a *art) drawGameOver(screen *ebiten.Image, best int) {
	hb := a.headline.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(headlineScale, headlineScale)
	op.GeoM.Translate(
		float64(spacebattle.PlayfieldW/2-hb.Dx()*headlineScale/2),
		float64(spacebattle.PlayfieldH/2+headlineOffsetY),
	)
	screen.DrawImage(a.headline, op)

	sub := "Press R to restart or Q/Esc to quit"
	sb := text.BoundString(a.face, sub)
	a.drawText(screen, sub, spacebattle.PlayfieldW/2-sb.Dx()/2, spacebattle.PlayfieldH/2+subtitleOffsetY, hudColor)

	if best > 0 {
		line := fmt.Sprintf("Best: %d", best)
		lb := text.BoundString(a.face, line)
		a.drawText(screen, line, spacebattle.PlayfieldW/2-lb.Dx()/2, spacebattle.PlayfieldH/2+bestOffsetY, hudColor)
	}
}

// drawText draws s with its top-left corner at (x, y).
func (a *art) drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, a.face, x, y+a.face.Metrics().Ascent.Ceil(), clr)
}

// renderText draws s into its own image for scaling.
func (a *art) renderText(s string, clr color.Color) *ebiten.Image {
	b := text.BoundString(a.face, s)
	img := ebiten.NewImage(b.Dx(), b.Dy())
	text.Draw(img, s, a.face, -b.Min.X, -b.Min.Y, clr)
	return img
}

// fillTriangle fills the triangle (x0,y0) (x1,y1) (x2,y2).
func (a *art) fillTriangle(screen *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, clr color.RGBA) {
	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	al := float32(clr.A) / 0xff

	vs := []ebiten.Vertex{
		{DstX: x0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: al},
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: al},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: al},
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, []uint16{0, 1, 2}, a.white, op)
}
