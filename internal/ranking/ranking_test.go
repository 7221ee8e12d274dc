package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 1, hour, minute, 0, 0, time.UTC)
}

func TestComputeEmpty(t *testing.T) {
	assert.Empty(t, Compute(nil))
}

func TestComputeEarlierBestWinsScoreTie(t *testing.T) {
	attempts := []Attempt{
		{UserID: 1, Username: "A", Category: "catX", CorrectCount: 5, TotalQuestions: 10, AttemptedAt: at(10, 0)},
		{UserID: 1, Username: "A", Category: "catX", CorrectCount: 9, TotalQuestions: 10, AttemptedAt: at(11, 0)},
		{UserID: 2, Username: "B", Category: "catX", CorrectCount: 9, TotalQuestions: 10, AttemptedAt: at(9, 0)},
	}

	rows := Compute(attempts)
	require.Len(t, rows, 2)

	// Both best at 9, but B got there at 09:00, before A's 11:00.
	assert.Equal(t, "B", rows[0].Username)
	assert.Equal(t, 9, rows[0].BestScore)
	assert.Equal(t, at(9, 0), rows[0].BestAt)

	assert.Equal(t, "A", rows[1].Username)
	assert.Equal(t, 9, rows[1].BestScore)
	assert.Equal(t, at(11, 0), rows[1].BestAt)
}

func TestComputeWithinGroupTieTakesMostRecent(t *testing.T) {
	attempts := []Attempt{
		{UserID: 1, Username: "A", Category: "catX", CorrectCount: 7, TotalQuestions: 10, AttemptedAt: at(8, 0)},
		{UserID: 1, Username: "A", Category: "catX", CorrectCount: 7, TotalQuestions: 10, AttemptedAt: at(12, 0)},
	}

	rows := Compute(attempts)
	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].BestScore)
	assert.Equal(t, at(12, 0), rows[0].BestAt, "among equal best scores the latest attempt represents the group")
}

func TestComputeHigherScoreFirst(t *testing.T) {
	attempts := []Attempt{
		{UserID: 1, Username: "A", Category: "catX", CorrectCount: 3, TotalQuestions: 10, AttemptedAt: at(9, 0)},
		{UserID: 2, Username: "B", Category: "catX", CorrectCount: 10, TotalQuestions: 10, AttemptedAt: at(10, 0)},
		{UserID: 3, Username: "C", Category: "catX", CorrectCount: 6, TotalQuestions: 10, AttemptedAt: at(8, 0)},
	}

	rows := Compute(attempts)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"B", "C", "A"}, []string{rows[0].Username, rows[1].Username, rows[2].Username})
}

func TestComputeGroupsPerCategory(t *testing.T) {
	attempts := []Attempt{
		{UserID: 1, Username: "A", Category: "catX", CorrectCount: 4, TotalQuestions: 10, AttemptedAt: at(9, 0)},
		{UserID: 1, Username: "A", Category: "catY", CorrectCount: 8, TotalQuestions: 12, AttemptedAt: at(10, 0)},
	}

	rows := Compute(attempts)
	require.Len(t, rows, 2, "one row per (user, category) pair")
	assert.Equal(t, "catY", rows[0].Category)
	assert.Equal(t, 12, rows[0].TotalQuestions)
	assert.Equal(t, "catX", rows[1].Category)
	assert.Equal(t, 10, rows[1].TotalQuestions)
}
