package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	heartStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	priceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("12"))

	skeletonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	skeletonDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 1)
)

// Glyphs used inside cards
const (
	heartFilled  = "♥"
	heartOutline = "♡"
	starGlyph    = "★"
	blockGlyph   = "░"
	staticRating = "4.5"
)
