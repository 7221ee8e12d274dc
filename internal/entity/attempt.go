package entity

import "time"

// QuizAttempt is one submitted quiz result. Rows are immutable once written.
type QuizAttempt struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	CorrectCount   int       `json:"correct_count"`
	WrongCount     int       `json:"wrong_count"`
	TotalQuestions int       `json:"total_questions"`
	Category       string    `json:"category"`
	AttemptedAt    time.Time `json:"attempted_at"`
}

func NewQuizAttempt(userID, correct, wrong, total int, category string) QuizAttempt {
	return QuizAttempt{
		UserID:         userID,
		CorrectCount:   correct,
		WrongCount:     wrong,
		TotalQuestions: total,
		Category:       category,
	}
}
