package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ksarabia/melodeon/api"
)

// SongList is a scrollable song listing with a highlight cursor and a
// marked set for bulk operations.
type SongList struct {
	Items    []api.Song
	Selected int // -1 when nothing is selected
	Marked   func(i int) bool
	Playing  int // index of the song now playing, -1 for none
	Height   int
	Width    int
	Offset   int
	Title    string

	SelectedStyle lipgloss.Style
	MarkedStyle   lipgloss.Style
	NormalStyle   lipgloss.Style
	TitleStyle    lipgloss.Style
	DimStyle      lipgloss.Style
}

// NewSongList creates a new song list
func NewSongList(height, width int) SongList {
	return SongList{
		Selected: -1,
		Playing:  -1,
		Height:   height,
		Width:    width,
		SelectedStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Bold(true).
			Padding(0, 1),
		MarkedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")).
			Padding(0, 1),
		NormalStyle: lipgloss.NewStyle().
			Padding(0, 1),
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1),
		DimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// SetItems replaces the listing and rewinds scrolling.
func (l *SongList) SetItems(items []api.Song) {
	l.Items = items
	l.Offset = 0
}

// EnsureVisible scrolls so the selected row stays on screen.
func (l *SongList) EnsureVisible() {
	visible := l.visibleHeight()
	if l.Selected < 0 {
		return
	}
	if l.Selected < l.Offset {
		l.Offset = l.Selected
	} else if l.Selected >= l.Offset+visible {
		l.Offset = l.Selected - visible + 1
	}
}

func (l *SongList) visibleHeight() int {
	visible := l.Height - 2
	if visible < 1 {
		visible = 1
	}
	return visible
}

// View renders the song list
func (l SongList) View() string {
	var sb strings.Builder

	if l.Title != "" {
		sb.WriteString(l.TitleStyle.Render(l.Title))
		sb.WriteString("\n")
	}

	if len(l.Items) == 0 {
		sb.WriteString(l.DimStyle.Render("No songs"))
		return sb.String()
	}

	visible := l.visibleHeight()
	end := l.Offset + visible
	if end > len(l.Items) {
		end = len(l.Items)
	}

	for i := l.Offset; i < end; i++ {
		song := l.Items[i]

		mark := " "
		if l.Marked != nil && l.Marked(i) {
			mark = "✓"
		}
		note := " "
		if i == l.Playing {
			note = "♪"
		}

		line := fmt.Sprintf("%s%s %3d. %s - %s",
			note, mark, i+1, truncate(song.Title, 30), truncate(song.Artist, 20))
		if song.Duration != nil {
			line += " " + l.DimStyle.Render("("+FormatDuration(song.DurationTime())+")")
		}

		switch {
		case i == l.Selected:
			sb.WriteString(l.SelectedStyle.Render(line))
		case l.Marked != nil && l.Marked(i):
			sb.WriteString(l.MarkedStyle.Render(line))
		default:
			sb.WriteString(l.NormalStyle.Render(line))
		}

		if i < end-1 {
			sb.WriteString("\n")
		}
	}

	if len(l.Items) > visible {
		sb.WriteString("\n")
		sb.WriteString(l.DimStyle.Render(fmt.Sprintf("  [%d/%d]", l.Selected+1, len(l.Items))))
	}

	return sb.String()
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
