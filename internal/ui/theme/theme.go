package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, warm and readable for long review sessions
var (
	Primary = lipgloss.Color("#E9724C") // Terracotta
	Accent  = lipgloss.Color("#FFC857") // Amber
	Success = lipgloss.Color("#4CB963") // Green
	Error   = lipgloss.Color("#E4572E") // Burnt Orange
	Text    = lipgloss.Color("#FAF3E0") // Cream
	TextDim = lipgloss.Color("#9A8F97") // Warm Gray
	BgCard  = lipgloss.Color("#2B2118") // Dark Coffee
	Border  = lipgloss.Color("#4A3F35") // Umber
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(Accent).
		Italic(true)

	Annotation = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)
