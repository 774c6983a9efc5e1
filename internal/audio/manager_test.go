package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	playerrors "github.com/ksarabia/melodeon/pkg/errors"
)

func TestNewManager_StoppedState(t *testing.T) {
	m := NewManager()

	if m.IsPlaying() || m.IsPaused() {
		t.Error("new manager should be stopped")
	}
	if m.CurrentFile() != "" {
		t.Errorf("CurrentFile = %q, want empty", m.CurrentFile())
	}
	if m.TotalDuration() != 0 {
		t.Errorf("TotalDuration = %v, want 0", m.TotalDuration())
	}
	if m.Position() != 0 {
		t.Errorf("Position = %v, want 0", m.Position())
	}
	if m.IsFinished() {
		t.Error("IsFinished should be false with no sink loaded")
	}
}

func TestPlayFile_MissingFile(t *testing.T) {
	m := NewManager()

	err := m.PlayFile("/nonexistent/song.mp3")
	if err == nil {
		t.Fatal("PlayFile should fail for a missing file")
	}

	var playerErr *playerrors.PlayerError
	if !errors.As(err, &playerErr) {
		t.Fatalf("error = %T, want *PlayerError", err)
	}
	if playerErr.Op != "open" {
		t.Errorf("Op = %q, want open", playerErr.Op)
	}

	if m.IsPlaying() || m.CurrentFile() != "" {
		t.Error("state must stay stopped after a failed play")
	}
}

func TestPlayFile_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	err := m.PlayFile(path)
	if !errors.Is(err, playerrors.ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}
	if m.IsPlaying() || m.CurrentFile() != "" {
		t.Error("state must stay stopped after a failed decode")
	}
}

func TestPauseResume_NoSink(t *testing.T) {
	m := NewManager()

	m.Pause()
	if m.IsPaused() {
		t.Error("Pause without a sink should be a no-op")
	}

	m.Resume()
	if m.IsPlaying() {
		t.Error("Resume without a sink should be a no-op")
	}
}

func TestStop_Idempotent(t *testing.T) {
	m := NewManager()

	m.Stop()
	m.Stop()

	if m.IsPlaying() || m.IsPaused() || m.CurrentFile() != "" {
		t.Error("Stop on a stopped manager should leave it stopped")
	}
}

func TestSetVolume_NoSink(t *testing.T) {
	m := NewManager()
	// Must not panic or change state when nothing is loaded.
	m.SetVolume(0.8)
	if m.IsPlaying() {
		t.Error("SetVolume must not start playback")
	}
}

func TestCanDecode(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/music/song.mp3", true},
		{"/music/song.MP3", true},
		{"/music/song.wav", true},
		{"/music/song.flac", true},
		{"/music/song.ogg", true},
		{"/music/song.m4a", false}, // scanned but not decodable
		{"/music/song.aac", false},
		{"/music/song.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := CanDecode(tt.path); got != tt.expected {
				t.Errorf("CanDecode(%s) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestDecodeAudio_UnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.xyz")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	_, _, err = DecodeAudio(f, path)
	if !errors.Is(err, playerrors.ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}
}

func TestDecodeAudio_WAV(t *testing.T) {
	path := writeTestWAV(t)

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}

	streamer, format, err := DecodeAudio(f, path)
	if err != nil {
		t.Fatalf("DecodeAudio failed: %v", err)
	}
	defer streamer.Close()

	if int(format.SampleRate) != 8000 {
		t.Errorf("sample rate = %d, want 8000", format.SampleRate)
	}
	if streamer.Len() != 4 {
		t.Errorf("length = %d samples, want 4", streamer.Len())
	}
}

// writeTestWAV writes a minimal PCM WAV file: 16-bit mono, 8 kHz, 4 samples.
func writeTestWAV(t *testing.T) string {
	t.Helper()

	var data []byte
	appendU32 := func(v uint32) {
		data = append(data, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	appendU16 := func(v uint16) {
		data = append(data, byte(v), byte(v>>8))
	}

	samples := []int16{0, 1000, -1000, 0}
	dataLen := uint32(len(samples) * 2)

	data = append(data, "RIFF"...)
	appendU32(36 + dataLen)
	data = append(data, "WAVE"...)
	data = append(data, "fmt "...)
	appendU32(16)      // PCM header size
	appendU16(1)       // PCM format
	appendU16(1)       // mono
	appendU32(8000)    // sample rate
	appendU32(16000)   // byte rate
	appendU16(2)       // block align
	appendU16(16)      // bits per sample
	data = append(data, "data"...)
	appendU32(dataLen)
	for _, s := range samples {
		appendU16(uint16(s))
	}

	path := filepath.Join(t.TempDir(), "test.wav")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
