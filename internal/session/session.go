package session

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathsprint/internal/problem"
)

// Status is the lifecycle state of a session.
type Status int

const (
	StatusNotStarted Status = iota
	StatusActive
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusActive:
		return "active"
	case StatusOver:
		return "over"
	}
	return "unknown"
}

var (
	// ErrNotActive is returned by operations that require an active session.
	ErrNotActive = errors.New("session is not active")

	// ErrAlreadyStarted is returned by Start on an active session.
	ErrAlreadyStarted = errors.New("session already active")

	// ErrOver is returned by Exit once the session has ended.
	ErrOver = errors.New("session is over")
)

// Attempt records one answered question. Appended to the session log at
// submission time and never mutated afterward.
type Attempt struct {
	Problem          problem.Problem
	UserAnswer       int
	Correct          bool
	TimeTakenSeconds float64
	DifficultyLabel  string
}

// Session is one timed play-through of a single game type. All mutation
// goes through its methods, and no field changes once Status is StatusOver;
// stale timer continuations are rejected by the status guards.
type Session struct {
	ID             string
	GameType       problem.GameType
	Status         Status
	TimeLimit      int // seconds
	TimeRemaining  int // seconds
	Score          int
	Mistakes       int
	TotalQuestions int
	StartedAt      time.Time
	Attempts       []Attempt

	// Current is the problem awaiting an answer; nil before Start and
	// after the session ends.
	Current *problem.Problem

	gen           *problem.Generator
	questionStart time.Time
	result        *Result
	now           func() time.Time
}

// New creates a session in StatusNotStarted. The generator is owned by the
// session for its lifetime.
func New(gt problem.GameType, timeLimitSeconds int, gen *problem.Generator) *Session {
	if gen == nil {
		gen = problem.NewGenerator()
	}
	return &Session{
		ID:        uuid.New().String(),
		GameType:  gt,
		Status:    StatusNotStarted,
		TimeLimit: timeLimitSeconds,
		gen:       gen,
		now:       time.Now,
	}
}

// Start begins (or restarts) the session: counters reset, the clock is
// armed, and the first problem is generated. Valid from StatusNotStarted
// or StatusOver.
func (s *Session) Start() error {
	if s.Status == StatusActive {
		return ErrAlreadyStarted
	}
	s.Score = 0
	s.Mistakes = 0
	s.TotalQuestions = 0
	s.Attempts = nil
	s.result = nil
	s.TimeRemaining = s.TimeLimit
	s.StartedAt = s.now()
	s.Status = StatusActive
	s.nextProblem()
	return nil
}

// Tick advances the countdown by one second. When the clock reaches zero
// the session transitions to StatusOver and the finalized Result is
// returned exactly once; the caller hands it to the persistence
// collaborator. Ticks outside StatusActive are no-ops.
func (s *Session) Tick() (*Result, error) {
	if s.Status != StatusActive {
		return nil, ErrNotActive
	}
	s.TimeRemaining--
	if s.TimeRemaining > 0 {
		return nil, nil
	}
	s.TimeRemaining = 0
	s.finish()
	return s.result, nil
}

// Outcome describes what SubmitAnswer did with the input.
type Outcome struct {
	// Recorded is false when the input was blank or not an integer;
	// such submissions consume nothing.
	Recorded bool
	Correct  bool
	Answer   int // the parsed user answer, valid only when Recorded
}

// SubmitAnswer parses raw as an integer and grades it against the current
// problem. Blank or non-numeric input (including fractional and exponent
// notation) is ignored entirely. A graded answer updates score or
// mistakes, increments the question count, and appends an Attempt. The
// caller is expected to show feedback and then call AdvanceProblem.
func (s *Session) SubmitAnswer(raw string) (Outcome, error) {
	if s.Status != StatusActive {
		return Outcome{}, ErrNotActive
	}
	if s.Current == nil {
		return Outcome{}, nil
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Outcome{}, nil
	}
	answer, err := strconv.Atoi(raw)
	if err != nil {
		return Outcome{}, nil
	}

	correct := answer == s.Current.Answer
	if correct {
		s.Score++
	} else {
		s.Mistakes++
	}
	s.TotalQuestions++

	bound := problem.BoundFor(s.GameType, s.Score)
	s.Attempts = append(s.Attempts, Attempt{
		Problem:          *s.Current,
		UserAnswer:       answer,
		Correct:          correct,
		TimeTakenSeconds: s.now().Sub(s.questionStart).Seconds(),
		DifficultyLabel:  problem.Label(s.GameType, bound),
	})

	return Outcome{Recorded: true, Correct: correct, Answer: answer}, nil
}

// AdvanceProblem generates the next problem at the current difficulty
// bound. It is the continuation scheduled after the feedback window; if
// the session ended while the feedback was showing it does nothing.
func (s *Session) AdvanceProblem() error {
	if s.Status != StatusActive {
		return ErrNotActive
	}
	s.nextProblem()
	return nil
}

// Exit abandons the session: it transitions to StatusOver without
// producing a Result. Abandoned sessions are not submitted to history.
func (s *Session) Exit() error {
	if s.Status == StatusOver {
		return ErrOver
	}
	s.Status = StatusOver
	s.Current = nil
	return nil
}

// Result returns the finalized result, or nil if the session has not
// completed via timer expiry.
func (s *Session) Result() *Result {
	return s.result
}

func (s *Session) nextProblem() {
	bound := problem.BoundFor(s.GameType, s.Score)
	p := s.gen.Generate(s.GameType, bound)
	s.Current = &p
	s.questionStart = s.now()
}

func (s *Session) finish() {
	s.Status = StatusOver
	s.Current = nil
	attempts := make([]Attempt, len(s.Attempts))
	copy(attempts, s.Attempts)
	s.result = &Result{
		SessionID:         s.ID,
		GameType:          s.GameType,
		Score:             s.Score,
		TimeSpentSeconds:  s.TimeLimit,
		Mistakes:          s.Mistakes,
		CorrectAnswers:    s.Score,
		TotalQuestions:    s.TotalQuestions,
		DifficultyReached: problem.Label(s.GameType, problem.BoundFor(s.GameType, s.Score)),
		StartedAt:         s.StartedAt,
		CompletedAt:       s.now(),
		Attempts:          attempts,
	}
}
