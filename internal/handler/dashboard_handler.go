package handler

import (
	"html/template"
	"net/http"

	"quizhub/internal/quiz"
	"quizhub/internal/session"
)

type DashboardHandler struct {
	bank       *quiz.Bank
	sessions   *session.Manager
	tmpl       *template.Template
	chooseTmpl *template.Template
}

func NewDashboardHandler(bank *quiz.Bank, sessions *session.Manager) *DashboardHandler {
	return &DashboardHandler{
		bank:       bank,
		sessions:   sessions,
		tmpl:       mustTemplate("dashboard.html"),
		chooseTmpl: mustTemplate("choose_quiz.html"),
	}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	principal, _ := session.PrincipalFromContext(r.Context())

	data := map[string]interface{}{
		"Title":     "Dashboard",
		"Principal": principal,
		"Flashes":   h.sessions.Flashes(w, r),
	}
	h.tmpl.Execute(w, data)
}

func (h *DashboardHandler) ChooseQuiz(w http.ResponseWriter, r *http.Request) {
	principal, _ := session.PrincipalFromContext(r.Context())

	data := map[string]interface{}{
		"Title":      "Choose a quiz",
		"Principal":  principal,
		"Categories": h.bank.Categories(),
		"Flashes":    h.sessions.Flashes(w, r),
	}
	h.chooseTmpl.Execute(w, data)
}
