package ui

import (
	"testing"
	"time"
)

// fakeClock provides a controllable time source for the tracker.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTracker(clock *fakeClock) *tracker {
	return &tracker{now: clock.now}
}

func TestTracker_StartElapsed(t *testing.T) {
	clock := newFakeClock()
	tr := newTestTracker(clock)

	tr.Start(3 * time.Minute)
	if !tr.Playing() {
		t.Fatal("tracker should be playing after Start")
	}

	clock.advance(42 * time.Second)
	if got := tr.Elapsed(); got != 42*time.Second {
		t.Errorf("Elapsed = %v, want 42s", got)
	}
}

func TestTracker_ElapsedClampedToTotal(t *testing.T) {
	clock := newFakeClock()
	tr := newTestTracker(clock)

	tr.Start(10 * time.Second)
	clock.advance(25 * time.Second)

	if got := tr.Elapsed(); got != 10*time.Second {
		t.Errorf("Elapsed = %v, want clamp to 10s", got)
	}
}

func TestTracker_PauseResumeContinuity(t *testing.T) {
	clock := newFakeClock()
	tr := newTestTracker(clock)

	tr.Start(5 * time.Minute)
	clock.advance(90 * time.Second)

	before := tr.Elapsed()
	tr.Pause()
	if !tr.Paused() {
		t.Fatal("tracker should be paused")
	}

	// The pause can last any amount of time without affecting elapsed.
	clock.advance(47 * time.Minute)
	if got := tr.Elapsed(); got != before {
		t.Errorf("Elapsed while paused = %v, want %v", got, before)
	}

	tr.Resume()
	if got := tr.Elapsed(); got != before {
		t.Errorf("Elapsed immediately after resume = %v, want %v", got, before)
	}

	// And the clock keeps running from where it left off.
	clock.advance(10 * time.Second)
	if got := tr.Elapsed(); got != before+10*time.Second {
		t.Errorf("Elapsed after resume+10s = %v, want %v", got, before+10*time.Second)
	}
}

func TestTracker_PauseWhenNotPlaying(t *testing.T) {
	clock := newFakeClock()
	tr := newTestTracker(clock)

	tr.Pause()
	if tr.Paused() {
		t.Error("Pause from stopped should be a no-op")
	}

	tr.Resume()
	if tr.Playing() {
		t.Error("Resume from stopped should be a no-op")
	}
}

func TestTracker_PendingAdvanceGrace(t *testing.T) {
	clock := newFakeClock()
	tr := newTestTracker(clock)

	tr.Start(30 * time.Second)
	clock.advance(30 * time.Second)
	tr.MarkFinished()

	if !tr.Pending() {
		t.Fatal("tracker should be pending after MarkFinished")
	}
	if got := tr.Elapsed(); got != 30*time.Second {
		t.Errorf("Elapsed during pending = %v, want snap to total 30s", got)
	}
	if tr.AdvanceDue() {
		t.Error("advance should not be due immediately")
	}

	clock.advance(advanceGrace - time.Millisecond)
	if tr.AdvanceDue() {
		t.Error("advance should not be due before the grace window")
	}

	clock.advance(time.Millisecond)
	if !tr.AdvanceDue() {
		t.Error("advance should be due after the grace window")
	}
}

func TestTracker_MarkFinishedOnlyWhilePlaying(t *testing.T) {
	clock := newFakeClock()
	tr := newTestTracker(clock)

	tr.MarkFinished()
	if tr.Pending() {
		t.Error("MarkFinished from stopped should be a no-op")
	}

	tr.Start(time.Minute)
	tr.Pause()
	tr.MarkFinished()
	if tr.Pending() {
		t.Error("MarkFinished while paused should be a no-op")
	}
}

func TestTracker_MarkFinishedIdempotent(t *testing.T) {
	clock := newFakeClock()
	tr := newTestTracker(clock)

	tr.Start(time.Minute)
	tr.MarkFinished()
	first := tr.pendingSince

	clock.advance(time.Second)
	tr.MarkFinished()
	if tr.pendingSince != first {
		t.Error("second MarkFinished must not restart the grace window")
	}
}

func TestTracker_StopResets(t *testing.T) {
	clock := newFakeClock()
	tr := newTestTracker(clock)

	tr.Start(time.Minute)
	clock.advance(30 * time.Second)
	tr.MarkFinished()
	tr.Stop()

	if tr.Playing() || tr.Paused() || tr.Pending() {
		t.Error("Stop should clear all state flags")
	}
	if got := tr.Elapsed(); got != 0 {
		t.Errorf("Elapsed after Stop = %v, want 0", got)
	}
	if got := tr.Total(); got != 0 {
		t.Errorf("Total after Stop = %v, want 0", got)
	}
}

func TestTracker_StartClearsPending(t *testing.T) {
	clock := newFakeClock()
	tr := newTestTracker(clock)

	tr.Start(time.Minute)
	tr.MarkFinished()
	tr.Start(2 * time.Minute)

	if tr.Pending() {
		t.Error("Start should clear the pending advance")
	}
	if got := tr.Total(); got != 2*time.Minute {
		t.Errorf("Total = %v, want 2m", got)
	}
}
