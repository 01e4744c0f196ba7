package spacebattle

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventEnemyKilled EventKind = iota
	EventLevelUp
	EventLifeLost
	EventGameOver
	EventAchievement
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventEnemyKilled:
		return "enemy_killed"
	case EventLevelUp:
		return "level_up"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventAchievement:
		return "achievement"
	default:
		return "unknown"
	}
}

// Event is delivered to the hook with the session state after the change.
type Event struct {
	Kind  EventKind
	Score int
	Level int
	Lives int
}

// EventHook observes game events. Hooks run synchronously inside Step and
// must not call back into the game.
type EventHook func(Event)
