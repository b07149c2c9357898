package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsprint/internal/router"
	"github.com/abhisek/mathsprint/internal/screen"
	"github.com/abhisek/mathsprint/internal/session"
	"github.com/abhisek/mathsprint/internal/ui/layout"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// ResultSavedMsg reports the outcome of persisting a finished session.
// Sent by the play screen's save command once the write completes.
type ResultSavedMsg struct {
	Err error
}

// SummaryScreen displays the result of a completed session.
type SummaryScreen struct {
	result  *session.Result
	saveErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result *session.Result) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultSavedMsg:
		s.saveErr = msg.Err
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			// The play screen underneath is finished; unwind past it.
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result
	if res == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Time's up!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %ds", res.GameType.DisplayName(), res.TimeSpentSeconds)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d        Mistakes: %d        Accuracy: %.0f%%",
		res.Score, res.Mistakes, res.Accuracy()*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(fmt.Sprintf("Difficulty reached: %s", res.DifficultyReached)))
	b.WriteString("\n\n")

	if len(res.Attempts) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 48)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
		b.WriteString(s.renderAttempts(width, height))
	}

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Could not save this session to history."))
	}

	return b.String()
}

func (s *SummaryScreen) renderAttempts(width, height int) string {
	attempts := s.result.Attempts

	// Leave room for the stats block above.
	maxRows := height - 12
	if maxRows < 3 {
		maxRows = 3
	}
	if len(attempts) > maxRows {
		attempts = attempts[len(attempts)-maxRows:]
	}

	var b strings.Builder
	for _, a := range attempts {
		mark := theme.Correct.Render("✓")
		detail := ""
		if !a.Correct {
			mark = theme.Incorrect.Render("✗")
			detail = fmt.Sprintf("  (you said %d)", a.UserAnswer)
		}
		line := fmt.Sprintf("%s  %d %s %d = %d%s",
			mark, a.Problem.OperandA, a.Problem.Op.Symbol(),
			a.Problem.OperandB, a.Problem.Answer, detail)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
