package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathsprint/internal/problem"
	"github.com/abhisek/mathsprint/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testResult(id string, gt problem.GameType, score int, completed time.Time) *session.Result {
	return &session.Result{
		SessionID:         id,
		GameType:          gt,
		Score:             score,
		TimeSpentSeconds:  60,
		Mistakes:          1,
		CorrectAnswers:    score,
		TotalQuestions:    score + 1,
		DifficultyReached: "medium",
		StartedAt:         completed.Add(-time.Minute),
		CompletedAt:       completed,
		Attempts: []session.Attempt{
			{
				Problem:          problem.Problem{OperandA: 12, OperandB: 4, Op: problem.OpDivide, Answer: 3},
				UserAnswer:       3,
				Correct:          true,
				TimeTakenSeconds: 2.5,
				DifficultyLabel:  "easy",
			},
			{
				Problem:          problem.Problem{OperandA: 7, OperandB: 5, Op: problem.OpAdd, Answer: 12},
				UserAnswer:       13,
				Correct:          false,
				TimeTakenSeconds: 4.1,
				DifficultyLabel:  "easy",
			},
		},
	}
}

func TestSaveAndListRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	res := testResult("sess-1", problem.GameDivision, 5, now)
	require.NoError(t, repo.SaveResult(ctx, res))

	records, err := repo.ListSessions(ctx, HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "sess-1", rec.SessionID)
	assert.Equal(t, "division", rec.GameType)
	assert.Equal(t, 5, rec.Score)
	assert.Equal(t, 1, rec.Mistakes)
	assert.Equal(t, 5, rec.CorrectAnswers)
	assert.Equal(t, 6, rec.TotalQuestions)
	assert.Equal(t, 60, rec.TimeSpentSeconds)
	assert.Equal(t, "medium", rec.DifficultyReached)

	attempts, err := repo.ListAttempts(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, 0, attempts[0].Position)
	assert.Equal(t, 12, attempts[0].OperandA)
	assert.Equal(t, "divide", attempts[0].Operator)
	assert.True(t, attempts[0].Correct)
	assert.InDelta(t, 2.5, attempts[0].TimeTakenSeconds, 1e-9)
	assert.Equal(t, 13, attempts[1].UserAnswer)
	assert.False(t, attempts[1].Correct)
	assert.Equal(t, "easy", attempts[1].DifficultyLabel)
}

func TestListSessions_FilterByGameType(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.SaveResult(ctx, testResult("a", problem.GameAddition, 3, now.Add(-time.Hour))))
	require.NoError(t, repo.SaveResult(ctx, testResult("b", problem.GameDivision, 7, now)))

	records, err := repo.ListSessions(ctx, HistoryFilter{GameType: "division"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "b", records[0].SessionID)

	// "all" disables the type predicate.
	records, err = repo.ListSessions(ctx, HistoryFilter{GameType: "all"})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListSessions_FilterByTimeRange(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.SaveResult(ctx, testResult("old", problem.GameMixed, 1, now.Add(-48*time.Hour))))
	require.NoError(t, repo.SaveResult(ctx, testResult("new", problem.GameMixed, 2, now)))

	records, err := repo.ListSessions(ctx, HistoryFilter{From: now.Add(-24 * time.Hour)})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "new", records[0].SessionID)
}

func TestListSessions_OrderAndPagination(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		res := testResult(string(rune('a'+i)), problem.GameAddition, i, now.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.SaveResult(ctx, res))
	}

	records, err := repo.ListSessions(ctx, HistoryFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Newest first.
	assert.Equal(t, "e", records[0].SessionID)
	assert.Equal(t, "d", records[1].SessionID)

	records, err = repo.ListSessions(ctx, HistoryFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "c", records[0].SessionID)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	s1, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}
