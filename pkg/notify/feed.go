package notify

import (
	"fmt"
	"sync"
	"time"
)

// Level classifies a notice for display purposes.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// Notice is a single operator-visible message.
type Notice struct {
	Level   Level
	Message string
	Time    time.Time
}

// Feed is a bounded buffer of notices. Publishing never blocks: when the
// buffer is full the oldest notice is dropped. The UI drains the feed on
// its render tick.
type Feed struct {
	notices []Notice
	max     int
	mu      sync.Mutex
}

// NewFeed creates a feed holding at most max notices.
func NewFeed(max int) *Feed {
	if max <= 0 {
		max = 32
	}
	return &Feed{
		notices: make([]Notice, 0, max),
		max:     max,
	}
}

// Publish appends a notice, evicting the oldest when the feed is full.
func (f *Feed) Publish(level Level, format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.notices) >= f.max {
		f.notices = f.notices[1:]
	}
	f.notices = append(f.notices, Notice{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
		Time:    time.Now(),
	})
}

// Infof publishes an informational notice.
func (f *Feed) Infof(format string, args ...any) {
	f.Publish(LevelInfo, format, args...)
}

// Warnf publishes a warning notice.
func (f *Feed) Warnf(format string, args ...any) {
	f.Publish(LevelWarn, format, args...)
}

// Errorf publishes an error notice.
func (f *Feed) Errorf(format string, args ...any) {
	f.Publish(LevelError, format, args...)
}

// Drain returns all pending notices and empties the feed.
func (f *Feed) Drain() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.notices) == 0 {
		return nil
	}
	out := make([]Notice, len(f.notices))
	copy(out, f.notices)
	f.notices = f.notices[:0]
	return out
}

// Len returns the number of pending notices.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notices)
}
