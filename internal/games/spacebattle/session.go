package spacebattle

import "time"

// State is the session state machine.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// InitialLives is the number of lives a fresh session starts with.
const InitialLives = 3

// Session holds score, lives, level and cooldown timestamps.
// Timestamps are read against the game's session clock.
type Session struct {
	Score     int
	Lives     int
	Level     int
	State     State
	LastShot  time.Duration
	LastSpawn time.Duration
}

// NewSession returns a session ready to play.
func NewSession() Session {
	var s Session
	s.Reset()
	return s
}

// Reset starts a new session.
func (s *Session) Reset() {
	*s = Session{
		Lives: InitialLives,
		Level: 1,
		State: StatePlaying,
	}
}

// GameOver reports whether the session has ended.
func (s Session) GameOver() bool {
	return s.State == StateGameOver
}

// LoseLife takes a life and ends the session when none are left.
// Returns true if this call ended the session.
func (s *Session) LoseLife() bool {
	if s.Lives > 0 {
		s.Lives--
	}
	if s.Lives == 0 && s.State != StateGameOver {
		s.State = StateGameOver
		return true
	}
	return false
}

// AddScore adds points and raises the level to match.
// Returns true if the level went up.
func (s *Session) AddScore(points int) bool {
	s.Score += points
	level := LevelForScore(s.Score)
	if level > s.Level {
		s.Level = level
		return true
	}
	return false
}

// LevelForScore is the difficulty tier reached at a score.
func LevelForScore(score int) int {
	return score/PointsToLevel + 1
}
