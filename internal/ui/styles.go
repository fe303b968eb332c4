// internal/ui/styles.go

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	errColor  = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF0000"}

	// Zebra backgrounds for the host list, slate like the original.
	normalRowBg   = lipgloss.AdaptiveColor{Light: "#F8FAFC", Dark: "#020617"}
	altRowBg      = lipgloss.AdaptiveColor{Light: "#F1F5F9", Dark: "#0F172A"}
	selectedRowBg = lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#1E293B"}

	// Title
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			MarginLeft(1)

	// Host list rows
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Background(selectedRowBg).
				Bold(true)

	HostIDStyle = lipgloss.NewStyle().
			Bold(true)

	DetailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// Footer
	FooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(subtle)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true)
)

// rowBackground returns the stripe background for a visible row index.
func rowBackground(index int) lipgloss.AdaptiveColor {
	if index%2 == 0 {
		return normalRowBg
	}
	return altRowBg
}
