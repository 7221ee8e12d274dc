package handler

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"quizhub/internal/quiz"
	"quizhub/internal/session"
)

type QuizHandler struct {
	bank     *quiz.Bank
	sessions *session.Manager
	tmpl     *template.Template
}

func NewQuizHandler(bank *quiz.Bank, sessions *session.Manager) *QuizHandler {
	return &QuizHandler{
		bank:     bank,
		sessions: sessions,
		tmpl:     mustTemplate("quiz.html"),
	}
}

// Quiz renders a category's questions in a fresh random order. An unknown
// category bounces back to the chooser with a flash instead of a bare 404.
func (h *QuizHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	questions, err := h.bank.Questions(category)
	if err != nil {
		if errors.Is(err, quiz.ErrCategoryNotFound) {
			h.sessions.Flash(w, r, session.FlashDanger, fmt.Sprintf("Category %q was not found.", category))
		} else {
			slog.Error("quiz load failed", "category", category, "error", err)
			h.sessions.Flash(w, r, session.FlashDanger, "An error occurred while loading the quiz.")
		}
		http.Redirect(w, r, "/quizzes", http.StatusSeeOther)
		return
	}

	principal, _ := session.PrincipalFromContext(r.Context())
	data := map[string]interface{}{
		"Title":     "Quiz: " + category,
		"Principal": principal,
		"Category":  category,
		"Questions": questions,
	}
	h.tmpl.Execute(w, data)
}
