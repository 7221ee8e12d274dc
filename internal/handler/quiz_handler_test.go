package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizhub/internal/quiz"
	"quizhub/internal/session"
)

func testBank(t *testing.T) *quiz.Bank {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	content := `{"history": [{"pergunta": "Q1", "opcoes": ["a", "b"], "resposta": "a"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	bank, err := quiz.LoadBank(path)
	require.NoError(t, err)
	return bank
}

func quizRequest(category string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/quiz/"+category, nil)
	req.SetPathValue("category", category)
	return req.WithContext(session.WithPrincipal(req.Context(), session.Principal{UserID: 1, Username: "alice"}))
}

func TestQuizRendersKnownCategory(t *testing.T) {
	h := NewQuizHandler(testBank(t), session.NewManager([]byte("test")))

	rec := httptest.NewRecorder()
	h.Quiz(rec, quizRequest("history"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Q1")
}

func TestQuizUnknownCategoryRedirects(t *testing.T) {
	h := NewQuizHandler(testBank(t), session.NewManager([]byte("test")))

	rec := httptest.NewRecorder()
	h.Quiz(rec, quizRequest("geography"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/quizzes", rec.Header().Get("Location"))
}
