package term

import "github.com/charmbracelet/lipgloss"

type styles struct {
	banner   lipgloss.Style
	title    lipgloss.Style
	subtitle lipgloss.Style
	spinner  lipgloss.Style
}

func newStyles() styles {
	return styles{
		banner: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2).
			Foreground(lipgloss.Color("220")),
		title:    lipgloss.NewStyle().Bold(true),
		subtitle: lipgloss.NewStyle().Faint(true),
		spinner:  lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
	}
}

// SpinnerStyle is the accent style shared with the warm-up spinner.
func SpinnerStyle() lipgloss.Style {
	return newStyles().spinner
}
