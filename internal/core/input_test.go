package core

import (
	"testing"
	"time"
)

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.Elapsed = 16 * time.Millisecond

	if !f.Has(ActionFire) {
		t.Error("Has(Fire) should be true after Set")
	}
	if f.Has(ActionLeft) {
		t.Error("Has(Left) should be false")
	}
	if f.Elapsed != 16*time.Millisecond {
		t.Errorf("Elapsed = %v, want 16ms", f.Elapsed)
	}

	var zero InputFrame
	if zero.Has(ActionFire) {
		t.Error("zero-value frame should have no actions")
	}
}

func TestActionHeld(t *testing.T) {
	tests := []struct {
		action Action
		held   bool
	}{
		{ActionLeft, true},
		{ActionRight, true},
		{ActionFire, true},
		{ActionRestart, false},
		{ActionQuit, false},
		{ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if tc.action.Held() != tc.held {
				t.Errorf("%s.Held() = %v, expected %v", tc.action, tc.action.Held(), tc.held)
			}
		})
	}
}

func TestHoldTrackerKeepsActionForHoldTicks(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(ActionFire)

	for tick := 0; tick < 3; tick++ {
		if !h.Frame().Has(ActionFire) {
			t.Fatalf("tick %d: fire should still be held", tick)
		}
	}
	if h.Frame().Has(ActionFire) {
		t.Error("fire should be released after hold window")
	}
}

func TestHoldTrackerRepeatRefreshes(t *testing.T) {
	h := NewHoldTracker(2)
	h.Press(ActionLeft)
	h.Frame()
	h.Press(ActionLeft) // auto-repeat
	h.Frame()
	if !h.Frame().Has(ActionLeft) {
		t.Error("repeat press should extend the hold window")
	}
}

func TestHoldTrackerOppositeDirectionCancels(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(ActionLeft)
	h.Press(ActionRight)

	f := h.Frame()
	if f.Has(ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Has(ActionRight) {
		t.Error("right should be held")
	}
}

func TestHoldTrackerEdgeActionsLastOneFrame(t *testing.T) {
	h := NewHoldTracker(5)
	h.Press(ActionRestart)
	h.Press(ActionNone)

	if !h.Frame().Has(ActionRestart) {
		t.Error("restart should appear in the next frame")
	}
	if h.Frame().Has(ActionRestart) {
		t.Error("restart should appear only once")
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(0) // falls back to default
	h.Press(ActionFire)
	h.Press(ActionRestart)
	h.Reset()

	f := h.Frame()
	if f.Has(ActionFire) || f.Has(ActionRestart) {
		t.Error("Reset should drop pending presses")
	}
}

func TestClockTick(t *testing.T) {
	var c Clock
	start := time.Unix(1000, 0)

	if got := c.Tick(start); got != 0 {
		t.Errorf("first tick should report 0, got %v", got)
	}
	if got := c.Tick(start.Add(16 * time.Millisecond)); got != 16*time.Millisecond {
		t.Errorf("second tick = %v, expected 16ms", got)
	}
	if got := c.Tick(start.Add(5 * time.Second)); got != MaxElapsed {
		t.Errorf("long stall should be capped at %v, got %v", MaxElapsed, got)
	}
	if got := c.Tick(start); got != 0 {
		t.Errorf("time going backwards should report 0, got %v", got)
	}

	c.Reset()
	if got := c.Tick(start); got != 0 {
		t.Errorf("tick after Reset should report 0, got %v", got)
	}
}

func TestTickInterval(t *testing.T) {
	if got := TickInterval(60); got != time.Second/60 {
		t.Errorf("TickInterval(60) = %v", got)
	}
	if got := TickInterval(0); got != time.Second/60 {
		t.Errorf("TickInterval(0) should fall back to 60Hz, got %v", got)
	}
}
