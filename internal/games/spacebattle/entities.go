package spacebattle

import (
	"time"

	"github.com/vovakirdan/spacebattle/internal/core"
)

// Playfield dimensions in logical units. The simulation always runs at this
// size; renderers scale it to their surface.
const (
	PlayfieldW = 800
	PlayfieldH = 600
)

// Player ship
const (
	PlayerW      = 48
	PlayerH      = 28
	PlayerSpeed  = 6 // units per tick
	PlayerY      = PlayfieldH - 60
	PlayerMargin = 8 // closest the ship may get to either side
)

// Bullets
const (
	BulletW       = 4
	BulletH       = 10
	BulletSpeed   = 9 // units per tick, upward
	ShootCooldown = 300 * time.Millisecond
)

// Enemies
const (
	EnemyW           = 44
	EnemyH           = 26
	EnemySpawnMargin = 20
	EnemySpeedMin    = 1.2
	EnemySpeedMax    = 3.0
	EnemySpeedMinInc = 0.2 // added to the minimum per level
	EnemySpeedMaxInc = 0.3 // added to the maximum per level
)

// Scoring
const (
	KillPoints    = 10
	PointsToLevel = 100
)

// EnemyPalette holds the cosmetic enemy colors.
var EnemyPalette = []core.Color{core.ColorRed, core.ColorYellow, core.ColorBlue, core.ColorGreen}

// Bullet is a projectile travelling straight up.
type Bullet struct {
	Rect core.Rect
	dead bool
}

// Enemy is a descending target.
type Enemy struct {
	Body  core.RectF // position accumulates fractional fall speed
	Speed float64    // units per tick
	HP    int
	Color core.Color
	dead  bool
}

// Rect returns the enemy's collision rectangle.
func (e *Enemy) Rect() core.Rect {
	return e.Body.Rect()
}

// playerStart returns the ship's centered starting rectangle.
func playerStart() core.Rect {
	return core.NewRect(PlayfieldW/2-PlayerW/2, PlayerY, PlayerW, PlayerH)
}

// clampPlayerX keeps the ship inside the side margins.
func clampPlayerX(x int) int {
	return core.Clamp(x, PlayerMargin, PlayfieldW-PlayerW-PlayerMargin)
}

// removeBullet marks a bullet as gone. Removing it twice is a no-op.
func removeBullet(b *Bullet) bool {
	if b.dead {
		return false
	}
	b.dead = true
	return true
}

// removeEnemy marks an enemy as gone. Removing it twice is a no-op.
func removeEnemy(e *Enemy) bool {
	if e.dead {
		return false
	}
	e.dead = true
	return true
}

// compactBullets drops removed bullets, reusing the backing array.
func compactBullets(bullets []*Bullet) []*Bullet {
	alive := bullets[:0]
	for _, b := range bullets {
		if !b.dead {
			alive = append(alive, b)
		}
	}
	clear(bullets[len(alive):])
	return alive
}

// compactEnemies drops removed enemies, reusing the backing array.
func compactEnemies(enemies []*Enemy) []*Enemy {
	alive := enemies[:0]
	for _, e := range enemies {
		if !e.dead {
			alive = append(alive, e)
		}
	}
	clear(enemies[len(alive):])
	return alive
}
