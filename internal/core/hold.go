package core

// HoldTracker turns a stream of key presses into held-key state.
// Terminals report presses and auto-repeats but never releases, so a held
// action stays active for a fixed number of ticks after its last press.
type HoldTracker struct {
	holdTicks int
	remaining map[Action]int
	edges     map[Action]bool
}

// DefaultHoldTicks covers the usual gap between terminal auto-repeat events.
const DefaultHoldTicks = 8

// NewHoldTracker creates a tracker that keeps held actions alive for holdTicks ticks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks < 1 {
		holdTicks = DefaultHoldTicks
	}
	return &HoldTracker{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
		edges:     make(map[Action]bool),
	}
}

// Press records a key press for an action.
func (h *HoldTracker) Press(a Action) {
	if a == ActionNone {
		return
	}
	if !a.Held() {
		h.edges[a] = true
		return
	}

	// Reversing direction releases the other one immediately.
	switch a {
	case ActionLeft:
		delete(h.remaining, ActionRight)
	case ActionRight:
		delete(h.remaining, ActionLeft)
	}
	h.remaining[a] = h.holdTicks
}

// Frame builds the input frame for the current tick and ages held actions.
// Edge actions appear in exactly one frame.
func (h *HoldTracker) Frame() InputFrame {
	frame := NewInputFrame()
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	for a := range h.edges {
		frame.Set(a)
		delete(h.edges, a)
	}
	return frame
}

// Reset forgets all pending presses.
func (h *HoldTracker) Reset() {
	clear(h.remaining)
	clear(h.edges)
}
