package repository

import (
	"context"
	"database/sql"
	"fmt"

	"quizhub/internal/entity"
	"quizhub/internal/ranking"
)

type ResultRepository struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Save persists one attempt. The timestamp is set by the store.
func (r *ResultRepository) Save(ctx context.Context, attempt entity.QuizAttempt) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quiz_results (user_id, correct_count, wrong_count, total_questions, category)
		VALUES ($1, $2, $3, $4, $5)
	`, attempt.UserID, attempt.CorrectCount, attempt.WrongCount, attempt.TotalQuestions, attempt.Category)

	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

// ListByUser returns a user's attempts, newest first.
func (r *ResultRepository) ListByUser(ctx context.Context, userID int) ([]entity.QuizAttempt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, correct_count, wrong_count, total_questions, category, attempted_at
		FROM quiz_results
		WHERE user_id = $1
		ORDER BY attempted_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var attempts []entity.QuizAttempt
	for rows.Next() {
		var a entity.QuizAttempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.CorrectCount, &a.WrongCount, &a.TotalQuestions, &a.Category, &a.AttemptedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return attempts, nil
}

// ListAll returns every attempt joined with its owner's username, as input
// for the ranking aggregation. Grouping and ordering happen in Go, not SQL.
func (r *ResultRepository) ListAll(ctx context.Context) ([]ranking.Attempt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.user_id, u.username, r.category, r.correct_count, r.total_questions, r.attempted_at
		FROM quiz_results r
		JOIN users u ON u.id = r.user_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list all results: %w", err)
	}
	defer rows.Close()

	var attempts []ranking.Attempt
	for rows.Next() {
		var a ranking.Attempt
		if err := rows.Scan(&a.UserID, &a.Username, &a.Category, &a.CorrectCount, &a.TotalQuestions, &a.AttemptedAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list all results: %w", err)
	}
	return attempts, nil
}
