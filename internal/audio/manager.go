package audio

import (
	"log/slog"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	playerrors "github.com/ksarabia/melodeon/pkg/errors"
)

// Manager owns at most one active output sink over a single loaded file.
//
// It carries no locks of its own: callers serialize access externally
// (the UI guards it with a mutex shared with the render tick). The only
// internal synchronization is speaker.Lock around fields the speaker's
// mixer goroutine reads concurrently.
type Manager struct {
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	format   beep.Format

	current string
	total   time.Duration
	playing bool
	paused  bool
}

// NewManager creates a stopped audio manager.
func NewManager() *Manager {
	return &Manager{}
}

// PlayFile stops any current playback, decodes the file and starts the
// sink. On failure the manager is left stopped and the error carries the
// failing operation and path.
func (m *Manager) PlayFile(path string) error {
	m.Stop()

	file, err := os.Open(path)
	if err != nil {
		return playerrors.NewPlayerError("open", path, err)
	}

	streamer, format, err := DecodeAudio(file, path)
	if err != nil {
		file.Close()
		return playerrors.NewPlayerError("decode", path, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		return playerrors.NewPlayerError("speaker", path, err)
	}

	ctrl := &beep.Ctrl{Streamer: streamer}
	volume := &effects.Volume{Streamer: ctrl, Base: 2}

	m.streamer = streamer
	m.ctrl = ctrl
	m.volume = volume
	m.format = format
	m.current = path
	m.total = format.SampleRate.D(streamer.Len())
	m.playing = true
	m.paused = false

	speaker.Play(volume)

	slog.Info("playing file", "path", path, "duration", m.total)
	return nil
}

// Pause pauses the sink. No-op when nothing is loaded.
func (m *Manager) Pause() {
	if m.ctrl == nil {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()
	m.paused = true
	m.playing = false
	slog.Info("audio paused", "path", m.current)
}

// Resume resumes a paused sink. No-op when nothing is loaded.
func (m *Manager) Resume() {
	if m.ctrl == nil {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = false
	speaker.Unlock()
	m.playing = true
	m.paused = false
	slog.Info("audio resumed", "path", m.current)
}

// Stop releases the sink and clears all per-track state. Idempotent.
func (m *Manager) Stop() {
	speaker.Clear()
	if m.streamer != nil {
		m.streamer.Close()
		slog.Info("audio stopped", "path", m.current)
	}
	m.streamer = nil
	m.ctrl = nil
	m.volume = nil
	m.current = ""
	m.total = 0
	m.playing = false
	m.paused = false
}

// SetVolume applies gain to the active sink only; no-op when nothing is
// loaded. Level is expected in 0.0-1.0 but is not clamped here, that is
// the caller's job.
func (m *Manager) SetVolume(level float64) {
	if m.volume == nil {
		return
	}
	speaker.Lock()
	// Map the linear 0-1 range onto the exponential gain scale.
	m.volume.Volume = level*2 - 1
	m.volume.Silent = level <= 0
	speaker.Unlock()
}

// IsFinished reports whether the loaded stream has been fully consumed
// and playback is not paused. The position comes from the decoder's own
// timeline, so this does not misfire on short decode latencies.
func (m *Manager) IsFinished() bool {
	if m.streamer == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return m.streamer.Position() >= m.streamer.Len() && !m.ctrl.Paused
}

// Position returns the decoder-reported elapsed time, zero when stopped.
func (m *Manager) Position() time.Duration {
	if m.streamer == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return m.format.SampleRate.D(m.streamer.Position())
}

// TotalDuration returns the probed total duration of the loaded file,
// zero when stopped.
func (m *Manager) TotalDuration() time.Duration {
	return m.total
}

// CurrentFile returns the loaded file path, empty when stopped.
func (m *Manager) CurrentFile() string {
	return m.current
}

// IsPlaying reports whether a sink is loaded and not paused.
func (m *Manager) IsPlaying() bool {
	return m.playing
}

// IsPaused reports whether a sink is loaded and paused.
func (m *Manager) IsPaused() bool {
	return m.paused
}
