package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/ksarabia/melodeon/api"
	"github.com/ksarabia/melodeon/internal/ui/components"
)

// PlaybackInfo is the snapshot the controller hands the player view
// each frame.
type PlaybackInfo struct {
	Song    *api.Song
	Playing bool
	Paused  bool
	Pending bool
	Elapsed time.Duration
	Total   time.Duration
	Volume  float64
}

// PlayerView displays the current playback state
type PlayerView struct {
	Width       int
	Height      int
	Info        PlaybackInfo
	ProgressBar components.ProgressBar

	TitleStyle    lipgloss.Style
	ArtistStyle   lipgloss.Style
	StatusStyle   lipgloss.Style
	ControlsStyle lipgloss.Style
	BorderStyle   lipgloss.Style
}

// NewPlayerView creates a new player view
func NewPlayerView(width, height int) PlayerView {
	return PlayerView{
		Width:       width,
		Height:      height,
		ProgressBar: components.NewProgressBar(width - 4),
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		ArtistStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")),
		StatusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true),
		ControlsStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1),
		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
	}
}

// SetInfo updates the playback snapshot.
func (v *PlayerView) SetInfo(info PlaybackInfo) {
	v.Info = info
	v.ProgressBar.SetProgress(info.Elapsed, info.Total)
}

// View renders the player view
func (v PlayerView) View() string {
	var sb strings.Builder

	if v.Info.Song == nil {
		sb.WriteString(v.TitleStyle.Render("♪ No song selected"))
		sb.WriteString("\n\n")
		sb.WriteString(v.ControlsStyle.Render("Press Enter on a song to play"))
	} else {
		sb.WriteString(v.StatusStyle.Render(v.statusIcon() + " "))
		sb.WriteString(v.TitleStyle.Render(v.Info.Song.Title))
		sb.WriteString("\n")
		sb.WriteString(v.ArtistStyle.Render(v.Info.Song.Artist))
		sb.WriteString("\n\n")

		sb.WriteString(v.ProgressBar.View())
		sb.WriteString("\n\n")

		sb.WriteString(fmt.Sprintf("Volume: %s %d%%",
			renderVolumeBar(v.Info.Volume), int(v.Info.Volume*100)))
		sb.WriteString("\n")
		sb.WriteString(v.StatusStyle.Render("Status: " + v.statusText()))
	}

	sb.WriteString("\n\n")
	sb.WriteString(v.ControlsStyle.Render(
		"[Space] Play/Pause  [s] Stop  [n] Next  [p] Prev  [+/-] Volume  [q] Quit",
	))

	return v.BorderStyle.Width(v.Width - 4).Render(sb.String())
}

func (v PlayerView) statusIcon() string {
	switch {
	case v.Info.Pending:
		return "⏳"
	case v.Info.Playing:
		return "▶"
	case v.Info.Paused:
		return "⏸"
	default:
		return "⏹"
	}
}

func (v PlayerView) statusText() string {
	switch {
	case v.Info.Pending:
		return "Waiting..."
	case v.Info.Playing:
		return "Playing"
	case v.Info.Paused:
		return "Paused"
	default:
		return "Stopped"
	}
}

// renderVolumeBar renders a volume bar
func renderVolumeBar(volume float64) string {
	filled := int(volume * 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	empty := 10 - filled

	filledStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	return filledStyle.Render(strings.Repeat("●", filled)) + emptyStyle.Render(strings.Repeat("○", empty))
}
