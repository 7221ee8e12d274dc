package handler

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"

	"quizhub/internal/ranking"
	"quizhub/internal/session"
)

// AttemptLister provides the raw attempts the ranking is computed from.
type AttemptLister interface {
	ListAll(ctx context.Context) ([]ranking.Attempt, error)
}

type RankingHandler struct {
	attempts AttemptLister
	sessions *session.Manager
	tmpl     *template.Template
}

func NewRankingHandler(attempts AttemptLister, sessions *session.Manager) *RankingHandler {
	return &RankingHandler{
		attempts: attempts,
		sessions: sessions,
		tmpl:     mustTemplate("ranking.html"),
	}
}

// Ranking renders the per-user, per-category best-score leaderboard.
// Admin-only; the gate is applied at route wiring.
func (h *RankingHandler) Ranking(w http.ResponseWriter, r *http.Request) {
	principal, _ := session.PrincipalFromContext(r.Context())

	attempts, err := h.attempts.ListAll(r.Context())
	if err != nil {
		slog.Error("ranking load failed", "error", err)
		h.sessions.Flash(w, r, session.FlashDanger, "Could not load the ranking.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := map[string]interface{}{
		"Title":     "Overall ranking",
		"Principal": principal,
		"Rows":      ranking.Compute(attempts),
		"Flashes":   h.sessions.Flashes(w, r),
	}
	h.tmpl.Execute(w, data)
}
