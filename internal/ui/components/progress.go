package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// CountdownBar displays remaining session time as a shrinking bar.
type CountdownBar struct {
	Remaining int
	Limit     int
	Width     int
}

// NewCountdownBar creates a countdown bar for the given time budget.
func NewCountdownBar(remaining, limit, width int) CountdownBar {
	return CountdownBar{
		Remaining: remaining,
		Limit:     limit,
		Width:     width,
	}
}

// View renders the countdown bar with the seconds left alongside it.
func (c CountdownBar) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("%3ds", c.Remaining))

	barWidth := c.Width - lipgloss.Width(label) - 2
	if barWidth < 4 {
		barWidth = 4
	}

	frac := 0.0
	if c.Limit > 0 {
		frac = float64(c.Remaining) / float64(c.Limit)
	}
	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fill := theme.Secondary
	switch {
	case c.Remaining <= 5:
		fill = theme.Error
	case c.Remaining <= 15:
		fill = theme.Accent
	}

	filledStr := lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	return label + "  " + filledStr + emptyStr
}
