package ui

import (
	"context"
	"log/slog"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/ksarabia/melodeon/api"
	"github.com/ksarabia/melodeon/internal/audio"
	"github.com/ksarabia/melodeon/internal/config"
	"github.com/ksarabia/melodeon/internal/library"
	"github.com/ksarabia/melodeon/internal/playlist"
	"github.com/ksarabia/melodeon/internal/ui/views"
	"github.com/ksarabia/melodeon/pkg/notify"
)

const tickInterval = 200 * time.Millisecond

// Model is the main bubbletea model. It owns the transient playback
// state (tracker, selection, volume) and drives the audio manager in
// response to key presses and render ticks.
type Model struct {
	width  int
	height int

	cfg       *config.Config
	audio     *audio.Manager
	audioMu   *sync.Mutex
	playlists *playlist.Manager
	meta      *library.MetadataReader
	feed      *notify.Feed

	track  *tracker
	sel    *selection
	cursor int
	volume float64

	playerView   views.PlayerView
	playlistView views.PlaylistView

	prompt promptKind
	input  string
	status statusLine

	headerStyle lipgloss.Style
	errorStyle  lipgloss.Style
	dimStyle    lipgloss.Style
}

type statusLine struct {
	text  string
	level notify.Level
}

// promptKind selects what the text input collects.
type promptKind int

const (
	promptNone promptKind = iota
	promptPlaylistName
	promptScanDir
)

// tickMsg drives the render-tick playback refresh.
type tickMsg time.Time

// NewModel creates the application model.
func NewModel(cfg *config.Config, mgr *audio.Manager, playlists *playlist.Manager, feed *notify.Feed) Model {
	m := Model{
		width:     80,
		height:    24,
		cfg:       cfg,
		audio:     mgr,
		audioMu:   &sync.Mutex{},
		playlists: playlists,
		meta:      library.NewMetadataReader(),
		feed:      feed,
		track:     newTracker(),
		sel:       newSelection(),
		volume:    cfg.DefaultVolume,
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1),
		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}

	if m.volume < 0 {
		m.volume = 0
	}
	if m.volume > 1 {
		m.volume = 1
	}

	m.playerView = views.NewPlayerView(m.width, 10)
	m.playlistView = views.NewPlaylistView(m.width, m.height-12)
	m.playlistView.SongList.Marked = m.sel.IsMarked

	m.syncPlaylistView()
	if m.playlists.CurrentName() == "" {
		m.playlistView.ShowingList = true
	}

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.playerView.Width = m.width
		m.playlistView.Width = m.width
		m.playlistView.Height = m.height - 12
		m.playlistView.SongList.Height = m.height - 20

	case tickMsg:
		m.refreshPlayback()
		m.drainNotices()
		m.syncPlayerView()
		return m, tickCmd()

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updateTyping(msg), nil
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateTyping(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter":
		kind := m.prompt
		value := m.input
		m.prompt = promptNone
		m.input = ""
		if value == "" {
			return m
		}
		switch kind {
		case promptPlaylistName:
			m.createPlaylist(value)
		case promptScanDir:
			m.scanInto(value)
		}
	case "esc":
		m.prompt = promptNone
		m.input = ""
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		if len(msg.Runes) > 0 {
			m.input += string(msg.Runes)
		}
	}
	return m
}

func (m *Model) createPlaylist(name string) {
	if _, err := m.playlists.Create(name); err != nil {
		m.feed.Errorf("create playlist: %v", err)
		return
	}
	m.feed.Infof("created playlist %q", name)
	m.sel.Reset()
	m.cursor = 0
	m.playlistView.ShowingList = false
	m.syncPlaylistView()
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.cfg.KeyBindings
	songs := m.currentSongs()

	switch msg.String() {
	case keys.Quit, "ctrl+c":
		m.withAudio(func() {
			m.audio.Stop()
		})
		return m, tea.Quit

	case keys.SwitchView:
		m.playlistView.ShowingList = !m.playlistView.ShowingList

	case keys.PlayPause:
		m.togglePlayPause()

	case keys.Stop:
		m.withAudio(func() {
			m.audio.Stop()
		})
		m.track.Stop()

	case keys.Next:
		if len(songs) > 0 {
			next := m.sel.Next(len(songs))
			m.cursor = next
			if m.track.Playing() || m.track.Pending() {
				m.playIndex(next)
			}
		}

	case keys.Previous:
		if len(songs) > 0 {
			prev := m.sel.Previous(len(songs))
			m.cursor = prev
			if m.track.Playing() || m.track.Pending() {
				m.playIndex(prev)
			}
		}

	case keys.VolumeUp, "=":
		m.setVolume(m.volume + 0.1)

	case keys.VolumeDown:
		m.setVolume(m.volume - 0.1)

	case keys.ToggleMark:
		if !m.playlistView.ShowingList && m.cursor >= 0 && m.cursor < len(songs) {
			m.sel.ToggleMark(m.cursor)
		}

	case keys.RemoveMarked:
		m.removeMarked()

	case keys.NewPlaylist:
		m.prompt = promptPlaylistName
		m.input = ""

	case keys.AddDirectory:
		m.prompt = promptScanDir
		m.input = ""

	case keys.Rescan:
		m.rescan()

	case "enter":
		if m.playlistView.ShowingList {
			if name, ok := m.playlistView.SwitcherChoice(); ok {
				if err := m.playlists.SetCurrent(name); err != nil {
					m.feed.Errorf("open playlist: %v", err)
					break
				}
				m.sel.Reset()
				m.cursor = 0
				m.playlistView.ShowingList = false
				m.syncPlaylistView()
			}
		} else if m.cursor >= 0 && m.cursor < len(songs) {
			m.sel.Select(m.cursor)
			m.playIndex(m.cursor)
		}

	case "up", "k":
		if m.playlistView.ShowingList {
			m.playlistView.SwitcherUp()
		} else if m.cursor > 0 {
			m.cursor--
			m.syncCursor()
		}

	case "down", "j":
		if m.playlistView.ShowingList {
			m.playlistView.SwitcherDown()
		} else if m.cursor < len(songs)-1 {
			m.cursor++
			m.syncCursor()
		}

	case "esc", "backspace":
		if !m.playlistView.ShowingList {
			m.playlistView.ShowingList = true
		}
	}

	return m, nil
}

// refreshPlayback is the per-tick state poll: it detects completion,
// waits out the pending grace, then advances. The audio lock is taken
// non-blocking; a held lock skips this frame instead of stalling it.
func (m *Model) refreshPlayback() {
	if m.track.AdvanceDue() {
		m.autoAdvance()
		return
	}
	if m.track.Pending() {
		return
	}
	if !m.audioMu.TryLock() {
		return
	}
	finished := m.track.Playing() && m.audio.IsFinished()
	m.audioMu.Unlock()

	if finished {
		m.track.MarkFinished()
		slog.Info("track finished, pending advance")
	}
}

// autoAdvance moves to the next song after the grace window, or stops
// at the end of the list instead of wrapping.
func (m *Model) autoAdvance() {
	songs := m.currentSongs()
	if next, ok := m.sel.AdvanceOrStop(len(songs)); ok {
		m.cursor = next
		m.playIndex(next)
		return
	}
	m.withAudio(func() {
		m.audio.Stop()
	})
	m.track.Stop()
}

// playIndex loads and plays the song at index in the current playlist.
// Failures go to the notification feed and leave playback stopped.
func (m *Model) playIndex(i int) {
	songs := m.currentSongs()
	if i < 0 || i >= len(songs) {
		return
	}
	song := songs[i]

	var playErr error
	var total time.Duration
	m.withAudio(func() {
		playErr = m.audio.PlayFile(song.FilePath)
		if playErr == nil {
			m.audio.SetVolume(m.volume)
			total = m.audio.TotalDuration()
		}
	})

	if playErr != nil {
		m.feed.Errorf("play %q: %v", song.Title, playErr)
		m.track.Stop()
		return
	}

	// Backfill what the scanner left as placeholders.
	if song.Artist == "Unknown" {
		if err := m.meta.Enrich(&song); err != nil {
			slog.Warn("metadata probe failed", "path", song.FilePath, "error", err)
		}
	}
	if song.Duration == nil && total > 0 {
		secs := total.Seconds()
		song.Duration = &secs
	}
	if err := m.playlists.UpdateSongInCurrent(i, song); err != nil {
		slog.Warn("update song", "index", i, "error", err)
	}

	m.track.Start(total)
	m.syncPlaylistView()
}

func (m *Model) togglePlayPause() {
	switch {
	case m.track.Playing():
		m.withAudio(func() {
			m.audio.Pause()
		})
		m.track.Pause()
	case m.track.Paused():
		m.withAudio(func() {
			m.audio.Resume()
		})
		m.track.Resume()
	default:
		songs := m.currentSongs()
		idx := m.sel.Index()
		if idx < 0 && m.cursor >= 0 && m.cursor < len(songs) {
			m.sel.Select(m.cursor)
			idx = m.cursor
		}
		m.playIndex(idx)
	}
}

func (m *Model) setVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	m.volume = v
	m.withAudio(func() {
		m.audio.SetVolume(v)
	})
}

// removeMarked deletes the marked songs from the current playlist in
// descending index order so earlier removals do not shift later ones.
func (m *Model) removeMarked() {
	marked := m.sel.Marked()
	if len(marked) == 0 {
		return
	}
	for i := len(marked) - 1; i >= 0; i-- {
		if _, err := m.playlists.RemoveSongFromCurrent(marked[i]); err != nil {
			m.feed.Errorf("remove song: %v", err)
		}
	}
	m.sel.Reset()
	m.cursor = 0
	m.syncPlaylistView()
	m.feed.Infof("removed %d songs", len(marked))
}

// rescan walks the configured music directories and appends the results
// to the current playlist, creating a default one when none exists.
func (m *Model) rescan() {
	if len(m.cfg.MusicDirectories) == 0 {
		m.feed.Warnf("no music directories configured")
		return
	}
	if !m.ensureCurrentPlaylist() {
		return
	}

	added := 0
	for _, dir := range m.cfg.MusicDirectories {
		added += m.scanDir(dir)
	}
	m.sel.Clamp(len(m.currentSongs()))
	m.syncPlaylistView()
	m.feed.Infof("scanned %d songs", added)
}

// scanInto scans one directory entered at the prompt, appends the songs
// to the current playlist and remembers the directory for later rescans.
func (m *Model) scanInto(dir string) {
	if !m.ensureCurrentPlaylist() {
		return
	}

	added := m.scanDir(dir)
	if added > 0 && !lo.Contains(m.cfg.MusicDirectories, dir) {
		m.cfg.MusicDirectories = append(m.cfg.MusicDirectories, dir)
	}
	m.sel.Clamp(len(m.currentSongs()))
	m.syncPlaylistView()
	m.feed.Infof("scanned %d songs from %s", added, dir)
}

func (m *Model) ensureCurrentPlaylist() bool {
	if m.playlists.CurrentName() != "" {
		return true
	}
	if _, err := m.playlists.Create("Library"); err != nil {
		m.feed.Errorf("create playlist: %v", err)
		return false
	}
	return true
}

func (m *Model) scanDir(dir string) int {
	songs, err := m.playlists.ScanMusicDirectory(dir)
	if err != nil {
		m.feed.Errorf("scan %s: %v", dir, err)
		return 0
	}
	if err := m.playlists.AddSongsToCurrent(songs); err != nil {
		m.feed.Errorf("add songs: %v", err)
		return 0
	}
	return len(songs)
}

func (m *Model) currentSongs() []api.Song {
	current := m.playlists.Current()
	if current == nil {
		return nil
	}
	return current.Songs
}

func (m *Model) drainNotices() {
	for _, notice := range m.feed.Drain() {
		m.status = statusLine{text: notice.Message, level: notice.Level}
	}
}

func (m *Model) syncPlayerView() {
	var song *api.Song
	songs := m.currentSongs()
	if idx := m.sel.Index(); idx >= 0 && idx < len(songs) {
		song = &songs[idx]
	}
	m.playerView.SetInfo(views.PlaybackInfo{
		Song:    song,
		Playing: m.track.Playing() && !m.track.Pending(),
		Paused:  m.track.Paused(),
		Pending: m.track.Pending(),
		Elapsed: m.track.Elapsed(),
		Total:   m.track.Total(),
		Volume:  m.volume,
	})
}

func (m *Model) syncPlaylistView() {
	m.playlistView.SetNames(m.playlists.Names())
	m.playlistView.SetCurrent(m.playlists.Current())
	m.syncCursor()
}

func (m *Model) syncCursor() {
	m.playlistView.SongList.Selected = m.cursor
	m.playlistView.SongList.Playing = m.sel.Index()
	m.playlistView.SongList.EnsureVisible()
}

// withAudio runs fn with the shared audio lock held. User actions block
// briefly; only the render tick uses TryLock.
func (m *Model) withAudio(fn func()) {
	m.audioMu.Lock()
	defer m.audioMu.Unlock()
	fn()
}

// View renders the UI
func (m Model) View() string {
	var sb string

	sb += m.headerStyle.Render("🎵 Melodeon") + "\n"

	m.syncCursor()
	sb += m.playerView.View() + "\n"
	sb += m.playlistView.View()

	switch m.prompt {
	case promptPlaylistName:
		sb += "\n" + m.dimStyle.Render("New playlist name: ") + m.input + "█"
	case promptScanDir:
		sb += "\n" + m.dimStyle.Render("Scan directory: ") + m.input + "█"
	}

	if m.status.text != "" {
		sb += "\n"
		if m.status.level == notify.LevelError {
			sb += m.errorStyle.Render(m.status.text)
		} else {
			sb += m.dimStyle.Render(m.status.text)
		}
	}

	return sb
}

// Run starts the bubbletea program. The context cancels the program on
// process signals.
func Run(ctx context.Context, cfg *config.Config, mgr *audio.Manager, playlists *playlist.Manager, feed *notify.Feed) error {
	model := NewModel(cfg, mgr, playlists, feed)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
