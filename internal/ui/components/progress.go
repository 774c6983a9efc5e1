package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders elapsed/total playback time as a bar.
type ProgressBar struct {
	Width       int
	Current     time.Duration
	Total       time.Duration
	BarChar     string
	EmptyChar   string
	ShowTime    bool
	FilledStyle lipgloss.Style
	EmptyStyle  lipgloss.Style
}

// NewProgressBar creates a new progress bar
func NewProgressBar(width int) ProgressBar {
	return ProgressBar{
		Width:       width,
		BarChar:     "█",
		EmptyChar:   "░",
		ShowTime:    true,
		FilledStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		EmptyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// SetProgress sets the current position and total duration.
func (p *ProgressBar) SetProgress(current, total time.Duration) {
	p.Current = current
	p.Total = total
}

// View renders the progress bar
func (p ProgressBar) View() string {
	var sb strings.Builder

	var percent float64
	if p.Total > 0 {
		percent = float64(p.Current) / float64(p.Total)
	}
	if percent > 1 {
		percent = 1
	}

	barWidth := p.Width - 14 // room for the MM:SS / MM:SS suffix
	if barWidth < 10 {
		barWidth = 10
	}

	filled := int(float64(barWidth) * percent)
	empty := barWidth - filled

	sb.WriteString(p.FilledStyle.Render(strings.Repeat(p.BarChar, filled)))
	sb.WriteString(p.EmptyStyle.Render(strings.Repeat(p.EmptyChar, empty)))

	if p.ShowTime {
		sb.WriteString(" ")
		sb.WriteString(FormatDuration(p.Current))
		sb.WriteString("/")
		sb.WriteString(FormatDuration(p.Total))
	}

	return sb.String()
}

// FormatDuration formats a duration as MM:SS.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := d / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d", m, s)
}
