package term

import "github.com/charmbracelet/lipgloss"

// FibBanner renders the double-border box heading the Fibonacci stream.
func FibBanner() string {
	s := newStyles()

	body := lipgloss.JoinVertical(lipgloss.Center,
		s.title.Render("🌀 FIBONACCI GENERATOR 🌀"),
		"",
		s.subtitle.Render("Generating beautiful number"),
		s.subtitle.Render("sequences since 1202!"),
	)

	return s.banner.Render(body)
}
