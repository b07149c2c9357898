package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/mathsprint/internal/session"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// SessionRepo persists completed session results and serves history queries.
type SessionRepo interface {
	// SaveResult stores a result and its attempt log in one transaction.
	// At most one call per completed session; retries are the caller's
	// concern.
	SaveResult(ctx context.Context, r *session.Result) error

	// ListSessions returns persisted sessions matching the filter,
	// newest first.
	ListSessions(ctx context.Context, f HistoryFilter) ([]SessionRecord, error)

	// ListAttempts returns a session's attempts in question order.
	ListAttempts(ctx context.Context, sessionID string) ([]AttemptRecord, error)
}

type sessionRepo struct {
	db  *sql.DB
	log *logrus.Logger
}

func (r *sessionRepo) SaveResult(ctx context.Context, res *session.Result) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO sessions (
    session_id, game_type, score, mistakes, correct_answers,
    total_questions, time_spent_seconds, difficulty_reached,
    started_at, completed_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, res.SessionID, string(res.GameType), res.Score, res.Mistakes, res.CorrectAnswers,
		res.TotalQuestions, res.TimeSpentSeconds, res.DifficultyReached,
		res.StartedAt.UTC(), res.CompletedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO attempts (
    session_id, position, operand_a, operand_b, operator,
    correct_answer, user_answer, correct, time_taken_seconds, difficulty_label
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return fmt.Errorf("prepare attempts: %w", err)
	}
	defer stmt.Close()

	for i, a := range res.Attempts {
		_, err = stmt.ExecContext(ctx, res.SessionID, i,
			a.Problem.OperandA, a.Problem.OperandB, string(a.Problem.Op),
			a.Problem.Answer, a.UserAnswer, a.Correct, a.TimeTakenSeconds, a.DifficultyLabel)
		if err != nil {
			return fmt.Errorf("insert attempt %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	r.log.WithFields(logrus.Fields{
		"session_id": res.SessionID,
		"game_type":  res.GameType,
		"score":      res.Score,
	}).Debug("session result saved")
	return nil
}

func (r *sessionRepo) ListSessions(ctx context.Context, f HistoryFilter) ([]SessionRecord, error) {
	query := sqlBuilder.Select(
		"id", "session_id", "game_type", "score", "mistakes", "correct_answers",
		"total_questions", "time_spent_seconds", "difficulty_reached",
		"started_at", "completed_at",
	).From("sessions")

	if f.GameType != "" && f.GameType != "all" {
		query = query.Where(squirrel.Eq{"game_type": f.GameType})
	}
	if !f.From.IsZero() {
		query = query.Where(squirrel.GtOrEq{"completed_at": f.From.UTC()})
	}
	if !f.To.IsZero() {
		query = query.Where(squirrel.LtOrEq{"completed_at": f.To.UTC()})
	}

	query = query.OrderBy("completed_at DESC")
	if f.Limit > 0 {
		query = query.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		query = query.Offset(uint64(f.Offset))
	}

	q, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.GameType, &rec.Score,
			&rec.Mistakes, &rec.CorrectAnswers, &rec.TotalQuestions,
			&rec.TimeSpentSeconds, &rec.DifficultyReached,
			&rec.StartedAt, &rec.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *sessionRepo) ListAttempts(ctx context.Context, sessionID string) ([]AttemptRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, session_id, position, operand_a, operand_b, operator,
       correct_answer, user_answer, correct, time_taken_seconds, difficulty_label
FROM attempts
WHERE session_id = ?
ORDER BY position
`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []AttemptRecord
	for rows.Next() {
		var a AttemptRecord
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Position, &a.OperandA, &a.OperandB,
			&a.Operator, &a.CorrectAnswer, &a.UserAnswer, &a.Correct,
			&a.TimeTakenSeconds, &a.DifficultyLabel); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
