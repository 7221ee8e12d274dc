package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"quizhub/internal/ranking"
	"quizhub/internal/session"
)

type fakeAttemptLister struct {
	attempts []ranking.Attempt
}

func (f *fakeAttemptLister) ListAll(ctx context.Context) ([]ranking.Attempt, error) {
	return f.attempts, nil
}

func TestRankingRendersRowsInOrder(t *testing.T) {
	t9 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	t11 := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	lister := &fakeAttemptLister{attempts: []ranking.Attempt{
		{UserID: 1, Username: "A", Category: "catX", CorrectCount: 9, TotalQuestions: 10, AttemptedAt: t11},
		{UserID: 2, Username: "B", Category: "catX", CorrectCount: 9, TotalQuestions: 10, AttemptedAt: t9},
	}}
	h := NewRankingHandler(lister, session.NewManager([]byte("test")))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ranking", nil)
	req = req.WithContext(session.WithPrincipal(req.Context(), session.Principal{UserID: 99, Username: "root", IsAdmin: true}))
	h.Ranking(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "A")
	assert.Contains(t, body, "B")
	assert.Less(t, strings.Index(body, ">B<"), strings.Index(body, ">A<"), "earlier best attempt ranks first on a score tie")
}
