package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds application configuration
type Config struct {
	MusicDirectories []string `json:"music_directories"`
	DefaultVolume    float64  `json:"default_volume"`
	DataDir          string   `json:"data_dir"`
	KeyBindings      KeyMap   `json:"key_bindings"`
}

// KeyMap defines keyboard shortcuts
type KeyMap struct {
	PlayPause    string `json:"play_pause"`
	Stop         string `json:"stop"`
	Next         string `json:"next"`
	Previous     string `json:"previous"`
	VolumeUp     string `json:"volume_up"`
	VolumeDown   string `json:"volume_down"`
	ToggleMark   string `json:"toggle_mark"`
	RemoveMarked string `json:"remove_marked"`
	NewPlaylist  string `json:"new_playlist"`
	AddDirectory string `json:"add_directory"`
	Rescan       string `json:"rescan"`
	SwitchView   string `json:"switch_view"`
	Quit         string `json:"quit"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		MusicDirectories: []string{},
		DefaultVolume:    0.5,
		DataDir:          "./data",
		KeyBindings: KeyMap{
			PlayPause:    " ",
			Stop:         "s",
			Next:         "n",
			Previous:     "p",
			VolumeUp:     "+",
			VolumeDown:   "-",
			ToggleMark:   "x",
			RemoveMarked: "d",
			NewPlaylist:  "c",
			AddDirectory: "a",
			Rescan:       "r",
			SwitchView:   "tab",
			Quit:         "q",
		},
	}
}

// Load reads and unmarshals configuration from file, returning defaults
// when the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &config, nil
}

// Save marshals and writes configuration to file
func Save(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// LoadOrCreate loads config from path, writing the defaults first when
// the file does not exist yet.
func LoadOrCreate(path string) (*Config, error) {
	config, err := Load(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(config, path); err != nil {
			return nil, fmt.Errorf("save default config: %w", err)
		}
	}

	return config, nil
}

// Path returns the config file path, honoring MELODEON_CONFIG and XDG
// conventions before falling back to the home directory.
func Path() string {
	if path := os.Getenv("MELODEON_CONFIG"); path != "" {
		return path
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "melodeon", "config.json")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "melodeon", "config.json")
}
