package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ksarabia/melodeon/api"
	"github.com/ksarabia/melodeon/internal/ui/components"
)

// PlaylistView shows either the playlist switcher or the songs of the
// current playlist.
type PlaylistView struct {
	Width  int
	Height int

	SongList    components.SongList
	Names       []string
	CurrentName string
	ShowingList bool // true = switching playlists, false = browsing songs
	Selected    int  // cursor in the switcher

	BorderStyle lipgloss.Style
	TitleStyle  lipgloss.Style
	DimStyle    lipgloss.Style
}

// NewPlaylistView creates a new playlist view
func NewPlaylistView(width, height int) PlaylistView {
	songList := components.NewSongList(height-8, width-6)

	return PlaylistView{
		Width:    width,
		Height:   height,
		SongList: songList,
		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		DimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// SetNames sets the playlist names shown by the switcher.
func (v *PlaylistView) SetNames(names []string) {
	v.Names = names
	if v.Selected >= len(names) {
		v.Selected = len(names) - 1
	}
	if v.Selected < 0 {
		v.Selected = 0
	}
}

// SetCurrent sets the playlist whose songs are browsed.
func (v *PlaylistView) SetCurrent(playlist *api.Playlist) {
	if playlist == nil {
		v.CurrentName = ""
		v.SongList.SetItems(nil)
		v.SongList.Title = "📋 No playlist"
		return
	}
	v.CurrentName = playlist.Name
	v.SongList.Items = playlist.Songs
	v.SongList.Title = "📋 " + playlist.Name
}

// SwitcherUp moves the switcher cursor up.
func (v *PlaylistView) SwitcherUp() {
	if v.Selected > 0 {
		v.Selected--
	}
}

// SwitcherDown moves the switcher cursor down.
func (v *PlaylistView) SwitcherDown() {
	if v.Selected < len(v.Names)-1 {
		v.Selected++
	}
}

// SwitcherChoice returns the highlighted playlist name.
func (v *PlaylistView) SwitcherChoice() (string, bool) {
	if v.Selected < 0 || v.Selected >= len(v.Names) {
		return "", false
	}
	return v.Names[v.Selected], true
}

// View renders the playlist view
func (v PlaylistView) View() string {
	var sb strings.Builder

	if v.ShowingList {
		sb.WriteString(v.TitleStyle.Render("📋 Playlists"))
		sb.WriteString("\n\n")

		if len(v.Names) == 0 {
			sb.WriteString(v.DimStyle.Render("No playlists yet"))
		} else {
			selectedStyle := lipgloss.NewStyle().
				Background(lipgloss.Color("62")).
				Foreground(lipgloss.Color("230")).
				Bold(true).
				Padding(0, 1)
			normalStyle := lipgloss.NewStyle().Padding(0, 1)

			for i, name := range v.Names {
				line := name
				if name == v.CurrentName {
					line += " " + v.DimStyle.Render("(current)")
				}
				if i == v.Selected {
					sb.WriteString(selectedStyle.Render(line))
				} else {
					sb.WriteString(normalStyle.Render(line))
				}
				sb.WriteString("\n")
			}
		}

		sb.WriteString("\n")
		sb.WriteString(v.DimStyle.Render("[Enter] Open  [↑↓] Navigate  [c] New playlist"))
	} else {
		sb.WriteString(v.SongList.View())

		if marked := v.markedCount(); marked > 0 {
			sb.WriteString("\n")
			sb.WriteString(v.DimStyle.Render(fmt.Sprintf("Marked: %d songs", marked)))
		}

		sb.WriteString("\n\n")
		sb.WriteString(v.DimStyle.Render(
			"[Enter] Play  [x] Mark  [d] Remove marked  [a] Add dir  [r] Rescan  [↑↓] Navigate"))
	}

	return v.BorderStyle.Width(v.Width - 4).Render(sb.String())
}

func (v PlaylistView) markedCount() int {
	if v.SongList.Marked == nil {
		return 0
	}
	count := 0
	for i := range v.SongList.Items {
		if v.SongList.Marked(i) {
			count++
		}
	}
	return count
}
