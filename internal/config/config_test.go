package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DefaultVolume != 0.5 {
		t.Errorf("DefaultVolume = %v, want 0.5", cfg.DefaultVolume)
	}
	if cfg.KeyBindings.PlayPause != " " {
		t.Errorf("PlayPause binding = %q, want space", cfg.KeyBindings.PlayPause)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir should have a default")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultVolume != 0.5 {
		t.Errorf("DefaultVolume = %v, want defaults", cfg.DefaultVolume)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should fail on malformed JSON")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.MusicDirectories = []string{"/music", "/more/music"}
	cfg.DefaultVolume = 0.8
	cfg.KeyBindings.Next = "l"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded.MusicDirectories) != 2 || loaded.MusicDirectories[0] != "/music" {
		t.Errorf("MusicDirectories = %v", loaded.MusicDirectories)
	}
	if loaded.DefaultVolume != 0.8 {
		t.Errorf("DefaultVolume = %v, want 0.8", loaded.DefaultVolume)
	}
	if loaded.KeyBindings.Next != "l" {
		t.Errorf("Next binding = %q, want l", loaded.KeyBindings.Next)
	}
}

func TestLoadOrCreate_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	if _, err := LoadOrCreate(path); err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv("MELODEON_CONFIG", "/custom/config.json")
	if got := Path(); got != "/custom/config.json" {
		t.Errorf("Path = %q, want env override", got)
	}
}

func TestPath_XDGFallback(t *testing.T) {
	t.Setenv("MELODEON_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	want := filepath.Join("/xdg", "melodeon", "config.json")
	if got := Path(); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}
