package spacebattle

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization; fractional enemy
// values are stored in thousandths of a unit.
type Snapshot struct {
	Tick        uint64
	NowMs       int64
	Score       int
	Lives       int
	Level       int
	State       string
	PlayerX     int
	LastShotMs  int64
	LastSpawnMs int64

	// Bullets, 2 ints each: X, Y
	BulletCount int
	BulletData  []int

	// Enemies, 5 ints each: X, Y (milli), Speed (milli), HP, Color
	EnemyCount int
	EnemyData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bulletData := make([]int, 0, len(g.bullets)*2)
	for _, b := range g.bullets {
		bulletData = append(bulletData, b.Rect.X, b.Rect.Y)
	}

	enemyData := make([]int, 0, len(g.enemies)*5)
	for _, e := range g.enemies {
		enemyData = append(enemyData,
			int(e.Body.X),
			toMilli(e.Body.Y),
			toMilli(e.Speed),
			e.HP,
			int(e.Color),
		)
	}

	return Snapshot{
		Tick:        uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		NowMs:       g.now.Milliseconds(),
		Score:       g.session.Score,
		Lives:       g.session.Lives,
		Level:       g.session.Level,
		State:       g.session.State.String(),
		PlayerX:     g.player.X,
		LastShotMs:  g.session.LastShot.Milliseconds(),
		LastSpawnMs: g.session.LastSpawn.Milliseconds(),
		BulletCount: len(g.bullets),
		BulletData:  bulletData,
		EnemyCount:  len(g.enemies),
		EnemyData:   enemyData,
	}
}

func toMilli(v float64) int {
	return int(math.Round(v * 1000))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.NowMs)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastShotMs)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastSpawnMs) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)  //#nosec G115 -- hash computation

	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
