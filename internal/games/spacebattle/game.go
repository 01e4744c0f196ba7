// Package spacebattle implements a vertical arcade shooter.
// The ship slides along the bottom of the playfield and shoots down enemies
// that fall faster, tougher and more often as the score grows.
package spacebattle

import (
	"time"

	"github.com/vovakirdan/spacebattle/internal/config"
	"github.com/vovakirdan/spacebattle/internal/core"
	"github.com/vovakirdan/spacebattle/internal/registry"
)

// Score threshold that unlocks the achievement and its bonus.
const (
	AchievementScore = 170
	AchievementBonus = 10
)

// GameID is the registry and score storage identifier.
const GameID = "spacebattle"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Space Battle game logic.
type Game struct {
	session Session
	player  core.Rect
	bullets []*Bullet
	enemies []*Enemy
	spawner *Spawner
	hook    EventHook

	runtime   core.RuntimeConfig
	display   config.DisplayConfig
	now       time.Duration // session clock, never rewinds
	tickCount int
}

// New creates a new Space Battle game instance.
func New() *Game {
	return &Game{
		session: NewSession(),
		player:  playerStart(),
		spawner: NewSpawner(0),
		display: config.Default().Display,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Battle"
}

// SetHook installs an event observer. Nil disables it.
func (g *Game) SetHook(h EventHook) {
	g.hook = h
}

// Reset initializes or restarts the game.
// The session clock keeps running across resets, so cooldowns restart
// from timestamp zero the way a fresh process would see them.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	// Load presentation config
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.display = cfg.Display

	g.session.Reset()
	g.player.X = playerStart().X
	g.bullets = g.bullets[:0]
	g.enemies = g.enemies[:0]
	g.tickCount = 0
	g.spawner.Reset(runtime.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.GameOver() {
		return core.StepResult{State: g.State()}
	}

	elapsed := in.Elapsed
	if elapsed <= 0 {
		elapsed = core.TickInterval(g.runtime.TickRate)
	}
	g.now += elapsed
	g.tickCount++

	g.movePlayer(in)
	g.fire(in)
	g.spawn()
	g.updateBullets()
	g.updateEnemies()
	g.checkAchievement()

	return core.StepResult{State: g.State()}
}

// movePlayer applies held direction keys. Motion is per tick, not per millisecond.
func (g *Game) movePlayer(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.player.X -= PlayerSpeed
	}
	if in.Has(core.ActionRight) {
		g.player.X += PlayerSpeed
	}
	g.player.X = clampPlayerX(g.player.X)
}

// fire launches a bullet from the nose of the ship once the cooldown has passed.
func (g *Game) fire(in core.InputFrame) {
	if !in.Has(core.ActionFire) || g.session.GameOver() {
		return
	}
	if g.now-g.session.LastShot < ShootCooldown {
		return
	}

	bx := g.player.CenterX() - BulletW/2
	by := g.player.Y - BulletH
	g.bullets = append(g.bullets, &Bullet{Rect: core.NewRect(bx, by, BulletW, BulletH)})
	g.session.LastShot = g.now
}

// spawn adds an enemy when the level's spawn interval has passed.
func (g *Game) spawn() {
	if g.session.GameOver() {
		return
	}
	if g.now-g.session.LastSpawn < SpawnInterval(g.session.Level) {
		return
	}
	g.enemies = append(g.enemies, g.spawner.Enemy(g.session.Level))
	g.session.LastSpawn = g.now
}

// updateBullets moves bullets up and drops the ones past the top edge.
func (g *Game) updateBullets() {
	for _, b := range g.bullets {
		b.Rect.Y -= BulletSpeed
		if b.Rect.Bottom() < 0 {
			removeBullet(b)
		}
	}
	g.bullets = compactBullets(g.bullets)
}

// updateEnemies moves every enemy and resolves its collisions.
// Removals only mark entities; both slices are compacted after the pass.
func (g *Game) updateEnemies() {
	for _, e := range g.enemies {
		if e.dead {
			continue
		}
		e.Body.Y += e.Speed

		// Off the bottom edge: the enemy got through.
		if e.Rect().Y > PlayfieldH {
			removeEnemy(e)
			g.loseLife()
			continue
		}

		if g.resolveBulletHit(e) && e.dead {
			continue
		}

		if e.Rect().Intersects(g.player) && !g.session.GameOver() {
			if removeEnemy(e) {
				g.loseLife()
			}
		}
	}

	g.enemies = compactEnemies(g.enemies)
	g.bullets = compactBullets(g.bullets)
}

// resolveBulletHit applies the first bullet overlapping e.
// At most one bullet is consumed per enemy per tick.
func (g *Game) resolveBulletHit(e *Enemy) bool {
	rect := e.Rect()
	for _, b := range g.bullets {
		if b.dead || !rect.Intersects(b.Rect) {
			continue
		}

		removeBullet(b)
		e.HP--
		if e.HP <= 0 {
			e.HP = 0
			if removeEnemy(e) {
				g.addScore(KillPoints)
				g.emit(EventEnemyKilled)
			}
		}
		return true
	}
	return false
}

// checkAchievement awards the one-time bonus at the threshold score.
// The bonus moves the score past the threshold, so it cannot fire twice.
func (g *Game) checkAchievement() {
	if g.session.Score != AchievementScore {
		return
	}
	g.emit(EventAchievement)
	g.addScore(AchievementBonus)
}

func (g *Game) addScore(points int) {
	if g.session.AddScore(points) {
		g.emit(EventLevelUp)
	}
}

func (g *Game) loseLife() {
	if g.session.Lives == 0 {
		return
	}
	ended := g.session.LoseLife()
	g.emit(EventLifeLost)
	if ended {
		g.emit(EventGameOver)
	}
}

func (g *Game) emit(kind EventKind) {
	if g.hook == nil {
		return
	}
	g.hook(Event{
		Kind:  kind,
		Score: g.session.Score,
		Level: g.session.Level,
		Lives: g.session.Lives,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Level:    g.session.Level,
		Lives:    g.session.Lives,
		GameOver: g.session.GameOver(),
	}
}

// Session returns a copy of the session state.
func (g *Game) Session() Session {
	return g.session
}

// Player returns the ship's rectangle.
func (g *Game) Player() core.Rect {
	return g.player
}

// Bullets returns the rectangles of all live bullets.
func (g *Game) Bullets() []core.Rect {
	rects := make([]core.Rect, 0, len(g.bullets))
	for _, b := range g.bullets {
		rects = append(rects, b.Rect)
	}
	return rects
}

// Enemies returns copies of all live enemies.
func (g *Game) Enemies() []Enemy {
	out := make([]Enemy, 0, len(g.enemies))
	for _, e := range g.enemies {
		out = append(out, *e)
	}
	return out
}

// Now returns the session clock.
func (g *Game) Now() time.Duration {
	return g.now
}

// Display returns the presentation settings loaded at the last reset.
func (g *Game) Display() config.DisplayConfig {
	return g.display
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
