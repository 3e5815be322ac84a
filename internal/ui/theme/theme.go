package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, bright and friendly on a dark terminal.
var (
	Primary   = lipgloss.Color("#9B59B6") // Purple
	Secondary = lipgloss.Color("#4ECDC4") // Teal
	Accent    = lipgloss.Color("#FF9F43") // Orange
	Gold      = lipgloss.Color("#FFD93D") // Star yellow
	Success   = lipgloss.Color("#7CB342") // Green
	Error     = lipgloss.Color("#FF6B6B") // Coral
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	XP = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true)

	Streak = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	LevelUp = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 2)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)

// Topic returns a bold style in the topic's color. Empty hex falls back
// to Primary.
func Topic(hex string) lipgloss.Style {
	var c color.Color = Primary
	if hex != "" {
		c = lipgloss.Color(hex)
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
