package ui

import "time"

// advanceGrace is the delay between detecting a finished track and
// switching to the next one. It masks jitter in end-of-stream detection
// so a single completion never fires the advance twice.
const advanceGrace = 2 * time.Second

// tracker keeps the wall-clock bookkeeping for the track on screen:
// a start-timestamp anchor while playing, a snapshot of elapsed time
// while paused, and the pending-advance window after completion.
//
// States: stopped -> playing <-> paused, playing -> pending -> (next|stopped).
type tracker struct {
	now func() time.Time

	startedAt    time.Time
	pausedAt     time.Duration
	total        time.Duration
	playing      bool
	paused       bool
	pending      bool
	pendingSince time.Time
}

func newTracker() *tracker {
	return &tracker{now: time.Now}
}

// Start enters the playing state for a new track, clearing any paused
// snapshot or pending advance.
func (t *tracker) Start(total time.Duration) {
	t.startedAt = t.now()
	t.pausedAt = 0
	t.total = total
	t.playing = true
	t.paused = false
	t.pending = false
	t.pendingSince = time.Time{}
}

// Pause captures elapsed-since-start as the paused snapshot.
func (t *tracker) Pause() {
	if !t.playing || t.pending {
		return
	}
	t.pausedAt = t.now().Sub(t.startedAt)
	t.playing = false
	t.paused = true
}

// Resume recomputes the start anchor as now minus the paused snapshot so
// elapsed time continues seamlessly.
func (t *tracker) Resume() {
	if !t.paused {
		return
	}
	t.startedAt = t.now().Add(-t.pausedAt)
	t.pausedAt = 0
	t.playing = true
	t.paused = false
}

// Stop resets everything to the stopped baseline.
func (t *tracker) Stop() {
	*t = tracker{now: t.now}
}

// MarkFinished enters the pending-advance state, snapping elapsed time
// to the total. No-op unless currently playing.
func (t *tracker) MarkFinished() {
	if !t.playing || t.pending {
		return
	}
	t.pending = true
	t.pendingSince = t.now()
}

// AdvanceDue reports whether the pending grace window has elapsed.
func (t *tracker) AdvanceDue() bool {
	return t.pending && t.now().Sub(t.pendingSince) >= advanceGrace
}

// Elapsed returns the display position for the current track.
func (t *tracker) Elapsed() time.Duration {
	switch {
	case t.pending:
		return t.total
	case t.playing:
		elapsed := t.now().Sub(t.startedAt)
		if t.total > 0 && elapsed > t.total {
			return t.total
		}
		return elapsed
	case t.paused:
		return t.pausedAt
	default:
		return 0
	}
}

// Total returns the track's total duration, zero when unknown.
func (t *tracker) Total() time.Duration { return t.total }

// Playing reports whether the tracker is in the playing state.
func (t *tracker) Playing() bool { return t.playing }

// Paused reports whether the tracker is in the paused state.
func (t *tracker) Paused() bool { return t.paused }

// Pending reports whether a track completion is waiting out its grace.
func (t *tracker) Pending() bool { return t.pending }
