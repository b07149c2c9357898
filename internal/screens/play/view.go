package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/ui/components"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	if p.showingQuitConfirm {
		return p.renderQuitConfirm(width)
	}
	if p.showingFeedback {
		return p.renderFeedback(width)
	}
	return p.renderQuestion(width)
}

func (p *PlayScreen) renderQuestion(width int) string {
	var b strings.Builder

	b.WriteString(p.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	bar := components.NewCountdownBar(p.sess.TimeRemaining, p.sess.TimeLimit, min(width-8, 48))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n\n")

	if p.sess.Current != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(p.sess.Current.Prompt()))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + p.input.View()))

	return b.String()
}

func (p *PlayScreen) renderStatusLine(width int) string {
	bound := problem.BoundFor(p.sess.GameType, p.sess.Score)

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", p.sess.GameType.DisplayName()))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score %d   Misses %d   %s",
			p.sess.Score,
			p.sess.Mistakes,
			problem.Label(p.sess.GameType, bound),
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (p *PlayScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if p.lastOutcome.Correct {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).
			Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d %s %d = %d, you said %d",
				p.lastProblem.OperandA,
				p.lastProblem.Op.Symbol(),
				p.lastProblem.OperandB,
				p.lastProblem.Answer,
				p.lastOutcome.Answer)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("Next one coming up..."))

	return b.String()
}

func (p *PlayScreen) renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("Leave this game?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("The session will not be saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("[Y]es    [N]o"))
	return b.String()
}
