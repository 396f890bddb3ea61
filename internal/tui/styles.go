package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-journal-vault/internal/validators"
)

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	strengthStyles = map[validators.StrengthLevel]lipgloss.Style{
		validators.StrengthWeak:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		validators.StrengthFair:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		validators.StrengthGood:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		validators.StrengthStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	}
)
