package session

import (
	"time"

	"github.com/abhisek/mathsprint/internal/problem"
)

// Result is the immutable snapshot handed to the persistence collaborator
// when a session completes. Score counts correct answers, so Score and
// CorrectAnswers carry the same value; both are kept because the history
// surface exposes them independently.
type Result struct {
	SessionID         string
	GameType          problem.GameType
	Score             int
	TimeSpentSeconds  int
	Mistakes          int
	CorrectAnswers    int
	TotalQuestions    int
	DifficultyReached string
	StartedAt         time.Time
	CompletedAt       time.Time
	Attempts          []Attempt
}

// Accuracy returns the fraction of questions answered correctly, 0 if none
// were answered.
func (r *Result) Accuracy() float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.CorrectAnswers) / float64(r.TotalQuestions)
}
