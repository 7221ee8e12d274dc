package handler

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"quizhub/internal/entity"
	"quizhub/internal/session"
)

// ResultStore is the slice of the result repository the handler needs.
type ResultStore interface {
	Save(ctx context.Context, attempt entity.QuizAttempt) error
	ListByUser(ctx context.Context, userID int) ([]entity.QuizAttempt, error)
}

type ResultHandler struct {
	results  ResultStore
	sessions *session.Manager
	tmpl     *template.Template
}

func NewResultHandler(results ResultStore, sessions *session.Manager) *ResultHandler {
	return &ResultHandler{
		results:  results,
		sessions: sessions,
		tmpl:     mustTemplate("my_results.html"),
	}
}

// resultPayload uses pointers so a missing key is distinguishable from a
// zero value. The wire keys match the submitting client.
type resultPayload struct {
	CorrectCount   *int    `json:"acertos"`
	WrongCount     *int    `json:"erros"`
	TotalQuestions *int    `json:"total_perguntas"`
	Category       *string `json:"categoria"`
}

func (p resultPayload) complete() bool {
	return p.CorrectCount != nil && p.WrongCount != nil && p.TotalQuestions != nil && p.Category != nil
}

func writeJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// Submit persists one quiz attempt for the signed-in user. All four payload
// fields are required; score bounds are deliberately not checked.
func (h *ResultHandler) Submit(w http.ResponseWriter, r *http.Request) {
	principal, ok := session.PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "Not signed in.")
		return
	}

	var payload resultPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, "Malformed result payload.")
		return
	}
	if !payload.complete() {
		writeJSON(w, http.StatusBadRequest, "Incomplete result payload.")
		return
	}

	attempt := entity.NewQuizAttempt(
		principal.UserID,
		*payload.CorrectCount,
		*payload.WrongCount,
		*payload.TotalQuestions,
		*payload.Category,
	)
	if err := h.results.Save(r.Context(), attempt); err != nil {
		slog.Error("save result failed", "user_id", principal.UserID, "error", err)
		writeJSON(w, http.StatusInternalServerError, "Could not save the result.")
		return
	}

	writeJSON(w, http.StatusOK, "Result saved.")
}

// MyResults lists the signed-in user's attempts, newest first.
func (h *ResultHandler) MyResults(w http.ResponseWriter, r *http.Request) {
	principal, _ := session.PrincipalFromContext(r.Context())

	attempts, err := h.results.ListByUser(r.Context(), principal.UserID)
	if err != nil {
		slog.Error("list results failed", "user_id", principal.UserID, "error", err)
		h.sessions.Flash(w, r, session.FlashDanger, "Could not load your result history.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := map[string]interface{}{
		"Title":     "My results",
		"Principal": principal,
		"Attempts":  attempts,
		"Flashes":   h.sessions.Flashes(w, r),
	}
	h.tmpl.Execute(w, data)
}
