package components

import (
	"strings"
	"testing"
	"time"

	"github.com/ksarabia/melodeon/api"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{time.Minute, "01:00"},
		{3*time.Minute + 33*time.Second, "03:33"},
		{61 * time.Minute, "61:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestProgressBar_TimeSuffix(t *testing.T) {
	p := NewProgressBar(40)
	p.SetProgress(30*time.Second, 2*time.Minute)

	view := p.View()
	if !strings.Contains(view, "00:30/02:00") {
		t.Errorf("progress view missing time suffix: %q", view)
	}
}

func TestProgressBar_ZeroTotal(t *testing.T) {
	p := NewProgressBar(40)
	p.SetProgress(10*time.Second, 0)

	// Must not divide by zero or render a filled bar.
	view := p.View()
	if strings.Contains(view, p.BarChar) {
		t.Errorf("bar should be empty with unknown total: %q", view)
	}
}

func TestSongList_Empty(t *testing.T) {
	l := NewSongList(10, 60)
	if got := l.View(); !strings.Contains(got, "No songs") {
		t.Errorf("empty list view = %q", got)
	}
}

func TestSongList_EnsureVisible(t *testing.T) {
	l := NewSongList(5, 60) // 3 visible rows
	songs := make([]api.Song, 10)
	for i := range songs {
		songs[i] = api.Song{Title: "t", Artist: "a"}
	}
	l.SetItems(songs)

	l.Selected = 7
	l.EnsureVisible()
	if l.Offset != 5 {
		t.Errorf("Offset = %d, want 5", l.Offset)
	}

	l.Selected = 1
	l.EnsureVisible()
	if l.Offset != 1 {
		t.Errorf("Offset = %d, want 1", l.Offset)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("a very long song title", 10); got != "a very ..." {
		t.Errorf("truncate = %q", got)
	}
}
