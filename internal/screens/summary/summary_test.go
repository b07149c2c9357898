package summary

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/session"
)

func testResult() *session.Result {
	started := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	return &session.Result{
		SessionID:         "test-session",
		GameType:          problem.GameAddition,
		Score:             7,
		TimeSpentSeconds:  60,
		Mistakes:          2,
		CorrectAnswers:    7,
		TotalQuestions:    9,
		DifficultyReached: "medium",
		StartedAt:         started,
		CompletedAt:       started.Add(time.Minute),
		Attempts: []session.Attempt{
			{
				Problem:         problem.Problem{OperandA: 3, OperandB: 4, Op: problem.OpAdd, Answer: 7},
				UserAnswer:      7,
				Correct:         true,
				DifficultyLabel: "easy",
			},
			{
				Problem:         problem.Problem{OperandA: 5, OperandB: 6, Op: problem.OpAdd, Answer: 11},
				UserAnswer:      12,
				Correct:         false,
				DifficultyLabel: "easy",
			},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Score: 7", "Mistakes: 2", "medium"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_ShowsSaveFailure(t *testing.T) {
	s := New(testResult())
	s.Update(ResultSavedMsg{Err: errors.New("disk full")})
	view := s.View(80, 24)
	if !strings.Contains(view, "Could not save") {
		t.Error("expected save failure notice")
	}
}

func TestSummaryScreen_SaveSuccessShowsNoNotice(t *testing.T) {
	s := New(testResult())
	s.Update(ResultSavedMsg{})
	view := s.View(80, 24)
	if strings.Contains(view, "Could not save") {
		t.Error("unexpected save failure notice")
	}
}

func TestSummaryScreen_EnterPopsToRoot(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
}
