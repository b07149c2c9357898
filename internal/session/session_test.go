package session

import (
	"strconv"
	"testing"

	"github.com/abhisek/mathsprint/internal/problem"
)

func testSession(gt problem.GameType, limit int) *Session {
	return New(gt, limit, problem.NewGeneratorWithSeed(42))
}

func TestStart_ResetsAndActivates(t *testing.T) {
	s := testSession(problem.GameAddition, 60)

	if s.Status != StatusNotStarted {
		t.Fatalf("Status = %v, want StatusNotStarted", s.Status)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if s.Status != StatusActive {
		t.Errorf("Status = %v, want StatusActive", s.Status)
	}
	if s.TimeRemaining != 60 {
		t.Errorf("TimeRemaining = %d, want 60", s.TimeRemaining)
	}
	if s.Current == nil {
		t.Error("expected a first problem after Start")
	}
	if err := s.Start(); err != ErrAlreadyStarted {
		t.Errorf("second Start() error = %v, want ErrAlreadyStarted", err)
	}
}

func TestSubmitAnswer_CorrectAndWrong(t *testing.T) {
	s := testSession(problem.GameAddition, 60)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}

	out, err := s.SubmitAnswer(strconv.Itoa(s.Current.Answer))
	if err != nil {
		t.Fatalf("SubmitAnswer error: %v", err)
	}
	if !out.Recorded || !out.Correct {
		t.Errorf("outcome = %+v, want recorded correct", out)
	}
	if s.Score != 1 || s.Mistakes != 0 || s.TotalQuestions != 1 {
		t.Errorf("score/mistakes/total = %d/%d/%d, want 1/0/1", s.Score, s.Mistakes, s.TotalQuestions)
	}

	if err := s.AdvanceProblem(); err != nil {
		t.Fatal(err)
	}
	out, err = s.SubmitAnswer(strconv.Itoa(s.Current.Answer + 1))
	if err != nil {
		t.Fatal(err)
	}
	if !out.Recorded || out.Correct {
		t.Errorf("outcome = %+v, want recorded wrong", out)
	}
	if s.Score != 1 || s.Mistakes != 1 || s.TotalQuestions != 2 {
		t.Errorf("score/mistakes/total = %d/%d/%d, want 1/1/2", s.Score, s.Mistakes, s.TotalQuestions)
	}
	if len(s.Attempts) != 2 {
		t.Fatalf("len(Attempts) = %d, want 2", len(s.Attempts))
	}
	if s.Attempts[1].UserAnswer != out.Answer {
		t.Errorf("Attempts[1].UserAnswer = %d, want %d", s.Attempts[1].UserAnswer, out.Answer)
	}
}

func TestSubmitAnswer_InvalidInputIsNoOp(t *testing.T) {
	s := testSession(problem.GameMultiplication, 60)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}

	for _, raw := range []string{"", "   ", "abc", "3.5", "1e2", "2/3", "-"} {
		out, err := s.SubmitAnswer(raw)
		if err != nil {
			t.Fatalf("SubmitAnswer(%q) error: %v", raw, err)
		}
		if out.Recorded {
			t.Errorf("SubmitAnswer(%q) recorded an attempt", raw)
		}
	}
	if s.TotalQuestions != 0 || len(s.Attempts) != 0 {
		t.Errorf("invalid input mutated session: total=%d attempts=%d", s.TotalQuestions, len(s.Attempts))
	}
}

func TestTick_ExpiryFinalizesOnce(t *testing.T) {
	s := testSession(problem.GameAddition, 3)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}

	// Answer 3 questions correctly, then run out the clock.
	for i := 0; i < 3; i++ {
		if _, err := s.SubmitAnswer(strconv.Itoa(s.Current.Answer)); err != nil {
			t.Fatal(err)
		}
		if err := s.AdvanceProblem(); err != nil {
			t.Fatal(err)
		}
	}

	var res *Result
	for i := 0; i < 3; i++ {
		r, err := s.Tick()
		if err != nil {
			t.Fatalf("Tick %d error: %v", i, err)
		}
		res = r
	}
	if res == nil {
		t.Fatal("expected Result on final tick")
	}
	if s.Status != StatusOver {
		t.Errorf("Status = %v, want StatusOver", s.Status)
	}
	if res.Score != 3 || res.Mistakes != 0 || res.TotalQuestions != 3 || res.CorrectAnswers != 3 {
		t.Errorf("result = %+v, want score=3 mistakes=0 total=3 correct=3", res)
	}
	if res.TimeSpentSeconds != 3 {
		t.Errorf("TimeSpentSeconds = %d, want 3", res.TimeSpentSeconds)
	}
	if len(res.Attempts) != 3 {
		t.Errorf("len(Attempts) = %d, want 3", len(res.Attempts))
	}

	// Further ticks are rejected and do not produce a second result.
	if _, err := s.Tick(); err != ErrNotActive {
		t.Errorf("Tick after Over error = %v, want ErrNotActive", err)
	}
}

func TestNoMutationAfterOver(t *testing.T) {
	s := testSession(problem.GameDivision, 1)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if s.Status != StatusOver {
		t.Fatalf("Status = %v, want StatusOver", s.Status)
	}

	score, mistakes, attempts := s.Score, s.Mistakes, len(s.Attempts)
	if _, err := s.SubmitAnswer("7"); err != ErrNotActive {
		t.Errorf("SubmitAnswer after Over error = %v, want ErrNotActive", err)
	}
	if err := s.AdvanceProblem(); err != ErrNotActive {
		t.Errorf("AdvanceProblem after Over error = %v, want ErrNotActive", err)
	}
	if s.Score != score || s.Mistakes != mistakes || len(s.Attempts) != attempts {
		t.Error("session mutated after Over")
	}
}

func TestExit_AbandonsWithoutResult(t *testing.T) {
	s := testSession(problem.GameMixed, 60)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if err := s.Exit(); err != nil {
		t.Fatalf("Exit error: %v", err)
	}
	if s.Status != StatusOver {
		t.Errorf("Status = %v, want StatusOver", s.Status)
	}
	if s.Result() != nil {
		t.Error("abandoned session should not produce a Result")
	}
	if err := s.Exit(); err != ErrOver {
		t.Errorf("second Exit error = %v, want ErrOver", err)
	}
}

func TestRestartFromOver(t *testing.T) {
	s := testSession(problem.GameSubtraction, 2)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitAnswer(strconv.Itoa(s.Current.Answer)); err != nil {
		t.Fatal(err)
	}
	if err := s.Exit(); err != nil {
		t.Fatal(err)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("restart error: %v", err)
	}
	if s.Score != 0 || s.TotalQuestions != 0 || len(s.Attempts) != 0 {
		t.Errorf("restart did not reset: score=%d total=%d attempts=%d", s.Score, s.TotalQuestions, len(s.Attempts))
	}
	if s.TimeRemaining != 2 {
		t.Errorf("TimeRemaining = %d, want 2", s.TimeRemaining)
	}
	if s.Current == nil {
		t.Error("expected a problem after restart")
	}
}

func TestDifficultyLabelOnAttempts(t *testing.T) {
	s := testSession(problem.GameAddition, 60)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitAnswer(strconv.Itoa(s.Current.Answer)); err != nil {
		t.Fatal(err)
	}
	if s.Attempts[0].DifficultyLabel == "" {
		t.Error("attempt missing difficulty label")
	}
}
