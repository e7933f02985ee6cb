package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	strengthStyles = map[int]lipgloss.Style{
		models.StrengthVeryWeak:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		models.StrengthWeak:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		models.StrengthModerate:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		models.StrengthStrong:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		models.StrengthVeryStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
)

var strengthLabels = map[int]string{
	models.StrengthVeryWeak:   "very weak",
	models.StrengthWeak:       "weak",
	models.StrengthModerate:       "moderate",
	models.StrengthStrong:     "strong",
	models.StrengthVeryStrong: "very strong",
}

// renderStrengthMeter renders a colored 0..4 meter like "[###--] moderate".
func renderStrengthMeter(report models.StrengthReport) string {
	style, ok := strengthStyles[report.Score]
	if !ok {
		style = lipgloss.NewStyle()
	}

	bar := ""
	for i := 0; i <= models.StrengthVeryStrong; i++ {
		if i <= report.Score {
			bar += "#"
		} else {
			bar += "-"
		}
	}

	return style.Render("[" + bar + "] " + strengthLabels[report.Score])
}
