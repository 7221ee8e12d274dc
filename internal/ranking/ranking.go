// Package ranking reduces quiz attempts to a per-user, per-category
// leaderboard: each (user, category) pair is represented by its single best
// attempt, and rows are ordered best score first.
package ranking

import (
	"sort"
	"time"
)

// Attempt is the slice of a stored quiz result the aggregation needs.
type Attempt struct {
	UserID         int
	Username       string
	Category       string
	CorrectCount   int
	TotalQuestions int
	AttemptedAt    time.Time
}

// Row is one leaderboard entry: a user's best attempt in one category.
type Row struct {
	Username       string
	Category       string
	TotalQuestions int
	BestScore      int
	BestAt         time.Time
}

// Compute groups attempts by (user, category), keeps each group's
// max-scoring attempt (score ties go to the most recent attempt), and sorts
// rows by best score descending, then by the winning attempt's timestamp
// ascending. The ascending secondary key means that of two users tied on
// score, the one who got there first ranks higher.
func Compute(attempts []Attempt) []Row {
	type key struct {
		userID   int
		category string
	}

	best := make(map[key]Attempt)
	for _, attempt := range attempts {
		k := key{attempt.UserID, attempt.Category}
		current, ok := best[k]
		if !ok ||
			attempt.CorrectCount > current.CorrectCount ||
			(attempt.CorrectCount == current.CorrectCount && attempt.AttemptedAt.After(current.AttemptedAt)) {
			best[k] = attempt
		}
	}

	rows := make([]Row, 0, len(best))
	for _, attempt := range best {
		rows = append(rows, Row{
			Username:       attempt.Username,
			Category:       attempt.Category,
			TotalQuestions: attempt.TotalQuestions,
			BestScore:      attempt.CorrectCount,
			BestAt:         attempt.AttemptedAt,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].BestScore != rows[j].BestScore {
			return rows[i].BestScore > rows[j].BestScore
		}
		return rows[i].BestAt.Before(rows[j].BestAt)
	})
	return rows
}
