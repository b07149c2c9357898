package store

import "time"

// SessionRecord is a persisted session result as fetched from history.
type SessionRecord struct {
	ID                int64
	SessionID         string
	GameType          string
	Score             int
	Mistakes          int
	CorrectAnswers    int
	TotalQuestions    int
	TimeSpentSeconds  int
	DifficultyReached string
	StartedAt         time.Time
	CompletedAt       time.Time
}

// AttemptRecord is a persisted question attempt.
type AttemptRecord struct {
	ID               int64
	SessionID        string
	Position         int
	OperandA         int
	OperandB         int
	Operator         string
	CorrectAnswer    int
	UserAnswer       int
	Correct          bool
	TimeTakenSeconds float64
	DifficultyLabel  string
}

// HistoryFilter narrows ListSessions. Zero values disable each predicate:
// empty GameType (or "all") matches every type, zero From/To disable the
// time bounds, zero Limit means no page cap.
type HistoryFilter struct {
	GameType string
	From     time.Time
	To       time.Time
	Limit    int
	Offset   int
}
