package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/shirai91/mathfun/internal/progression"
	"github.com/shirai91/mathfun/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     int // 0-100
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent int, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// NewLevelBar creates a bar showing progress toward the next level.
func NewLevelBar(data progression.LevelData, width int) ProgressBar {
	cfg := progression.LevelConfigFor(data.Level)
	label := fmt.Sprintf("Lv %d %s", cfg.Level, cfg.Title)
	return NewProgressBar(label, progression.LevelProgress(data), true, width)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Body.Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := max(p.Width-labelWidth-percentWidth, 4)
	filled := min(max(barWidth*p.Percent/100, 0), barWidth)
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += theme.Subtitle.Render(fmt.Sprintf("  %d%%", p.Percent))
	}

	return result
}
