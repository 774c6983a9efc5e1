package playlist

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/ksarabia/melodeon/api"
	"github.com/ksarabia/melodeon/internal/library"
	playerrors "github.com/ksarabia/melodeon/pkg/errors"
)

// Manager owns the named playlists and tracks which one is current.
// The current pointer, when set, always names an existing entry.
type Manager struct {
	playlists map[string]*api.Playlist
	current   string // empty when no playlist is current
	scanner   *library.Scanner
	mu        sync.RWMutex
}

// NewManager creates an empty playlist manager
func NewManager() *Manager {
	return &Manager{
		playlists: make(map[string]*api.Playlist),
		scanner:   library.NewScanner(),
	}
}

// Create creates an empty playlist and makes it current. Fails if the
// name is already taken.
func (m *Manager) Create(name string) (*api.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.playlists[name]; exists {
		return nil, fmt.Errorf("%w: %q", playerrors.ErrPlaylistExists, name)
	}

	playlist := &api.Playlist{
		Name:      name,
		Songs:     []api.Song{},
		CreatedAt: time.Now().UTC(),
	}
	m.playlists[name] = playlist
	m.current = name

	slog.Info("created playlist", "name", name)
	return playlist, nil
}

// SetCurrent marks an existing playlist as current.
func (m *Manager) SetCurrent(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.playlists[name]; !exists {
		return fmt.Errorf("%w: %q", playerrors.ErrPlaylistNotFound, name)
	}
	m.current = name
	slog.Info("set current playlist", "name", name)
	return nil
}

// Current returns the current playlist, or nil when none is set.
func (m *Manager) Current() *api.Playlist {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == "" {
		return nil
	}
	return m.playlists[m.current]
}

// CurrentName returns the current playlist name, empty when none is set.
func (m *Manager) CurrentName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Get returns a playlist by name.
func (m *Manager) Get(name string) (*api.Playlist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	playlist, exists := m.playlists[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", playerrors.ErrPlaylistNotFound, name)
	}
	return playlist, nil
}

// Names returns all playlist names in sorted order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := lo.Keys(m.playlists)
	sort.Strings(names)
	return names
}

// AddSongToCurrent appends a song to the current playlist.
func (m *Manager) AddSongToCurrent(song api.Song) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	playlist, err := m.currentLocked()
	if err != nil {
		return err
	}
	playlist.Songs = append(playlist.Songs, song)
	slog.Info("added song", "playlist", playlist.Name, "title", song.Title)
	return nil
}

// AddSongsToCurrent appends songs to the current playlist in order.
func (m *Manager) AddSongsToCurrent(songs []api.Song) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	playlist, err := m.currentLocked()
	if err != nil {
		return err
	}
	playlist.Songs = append(playlist.Songs, songs...)
	slog.Info("added songs", "playlist", playlist.Name, "count", len(songs))
	return nil
}

// RemoveSongFromCurrent removes and returns the song at index from the
// current playlist.
func (m *Manager) RemoveSongFromCurrent(index int) (api.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	playlist, err := m.currentLocked()
	if err != nil {
		return api.Song{}, err
	}
	if index < 0 || index >= len(playlist.Songs) {
		return api.Song{}, fmt.Errorf("%w: %d", playerrors.ErrIndexOutOfRange, index)
	}

	song := playlist.Songs[index]
	playlist.Songs = append(playlist.Songs[:index], playlist.Songs[index+1:]...)
	slog.Info("removed song", "playlist", playlist.Name, "title", song.Title)
	return song, nil
}

// UpdateSongInCurrent replaces the song at index, used after the audio
// layer probes a duration or tags fill in metadata.
func (m *Manager) UpdateSongInCurrent(index int, song api.Song) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	playlist, err := m.currentLocked()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(playlist.Songs) {
		return fmt.Errorf("%w: %d", playerrors.ErrIndexOutOfRange, index)
	}
	playlist.Songs[index] = song
	return nil
}

func (m *Manager) currentLocked() (*api.Playlist, error) {
	if m.current == "" {
		return nil, playerrors.ErrNoCurrentPlaylist
	}
	return m.playlists[m.current], nil
}

// ScanMusicDirectory walks dir and returns the collected songs without
// touching the stored playlists.
func (m *Manager) ScanMusicDirectory(dir string) ([]api.Song, error) {
	return m.scanner.Scan(dir)
}

// SavePlaylist serializes one playlist as JSON to path.
func (m *Manager) SavePlaylist(name, path string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	playlist, exists := m.playlists[name]
	if !exists {
		return fmt.Errorf("%w: %q", playerrors.ErrPlaylistNotFound, name)
	}

	data, err := json.MarshalIndent(playlist, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal playlist: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write playlist file: %w", err)
	}

	slog.Info("saved playlist", "name", name, "path", path)
	return nil
}

// LoadPlaylist reads a playlist JSON file and inserts it keyed by the
// embedded name, overwriting any existing entry with that name. The key
// can therefore diverge from the file name on disk.
func (m *Manager) LoadPlaylist(path string) (*api.Playlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playlist file: %w", err)
	}

	var playlist api.Playlist
	if err := json.Unmarshal(data, &playlist); err != nil {
		return nil, fmt.Errorf("unmarshal playlist: %w", err)
	}

	m.mu.Lock()
	m.playlists[playlist.Name] = &playlist
	m.mu.Unlock()

	slog.Info("loaded playlist", "name", playlist.Name, "path", path)
	return &playlist, nil
}

// LoadDir loads every *.json playlist under dir, skipping files that
// cannot be read or parsed.
func (m *Manager) LoadDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create playlist directory: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read playlist directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if _, err := m.LoadPlaylist(path); err != nil {
			slog.Warn("skipping playlist file", "path", path, "error", err)
		}
	}
	return nil
}

// SaveAll persists every playlist to dir as <name>.json.
func (m *Manager) SaveAll(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create playlist directory: %w", err)
	}

	for _, name := range m.Names() {
		path := filepath.Join(dir, name+".json")
		if err := m.SavePlaylist(name, path); err != nil {
			return err
		}
	}
	return nil
}
