package tui

import "github.com/charmbracelet/lipgloss"

var (
	ArenaStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("44"))

	ScoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("197"))

	HintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
)
