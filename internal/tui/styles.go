package tui

import (
	"github.com/MKhiriev/go-birthday-keeper/internal/birthday"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pastStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	upcomingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// categoryStyle colours a list row: green today, red past, blue upcoming.
func categoryStyle(c birthday.Category) lipgloss.Style {
	switch c {
	case birthday.Today:
		return todayStyle
	case birthday.Past:
		return pastStyle
	default:
		return upcomingStyle
	}
}
