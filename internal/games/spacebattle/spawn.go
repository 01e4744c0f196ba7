package spacebattle

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/spacebattle/internal/core"
)

// Spawn timing
const (
	BaseSpawnInterval = 900 * time.Millisecond
	MinSpawnInterval  = 250 * time.Millisecond
	SpawnIntervalStep = 60 * time.Millisecond // removed per level
)

// SpawnInterval returns the delay between enemy spawns at a level.
func SpawnInterval(level int) time.Duration {
	interval := BaseSpawnInterval - time.Duration(level-1)*SpawnIntervalStep
	if interval < MinSpawnInterval {
		return MinSpawnInterval
	}
	return interval
}

// EnemyHP returns the hit points of enemies spawned at a level.
func EnemyHP(level int) int {
	return 1 + level/3
}

// EnemySpeedRange returns the fall speed bounds at a level.
func EnemySpeedRange(level int) (float64, float64) {
	lvl := float64(level - 1)
	return EnemySpeedMin + lvl*EnemySpeedMinInc, EnemySpeedMax + lvl*EnemySpeedMaxInc
}

// Spawner creates enemies from a seeded RNG so runs are reproducible.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner with the given seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// Reset reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Enemy creates an enemy just above the top edge for the given level.
func (s *Spawner) Enemy(level int) *Enemy {
	minX := EnemySpawnMargin
	maxX := PlayfieldW - EnemyW - EnemySpawnMargin
	x := minX + s.rng.Intn(maxX-minX+1)

	lo, hi := EnemySpeedRange(level)
	speed := lo + s.rng.Float64()*(hi-lo)

	return &Enemy{
		Body:  core.RectF{X: float64(x), Y: -EnemyH, W: EnemyW, H: EnemyH},
		Speed: speed,
		HP:    EnemyHP(level),
		Color: EnemyPalette[s.rng.Intn(len(EnemyPalette))],
	}
}
