package handler

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"quizhub/internal/auth"
	"quizhub/internal/session"
)

type AuthHandler struct {
	authService *auth.Service
	sessions    *session.Manager
	tmpl        *template.Template
}

func NewAuthHandler(authService *auth.Service, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		tmpl:        mustTemplate("login.html"),
	}
}

// LoginPage renders the login form. Signed-in users go straight to the
// dashboard.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Principal(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := map[string]interface{}{
		"Title":   "Sign in",
		"Flashes": h.sessions.Flashes(w, r),
	}
	h.tmpl.Execute(w, data)
}

// Login runs the combined login-or-register flow: an unknown username
// becomes a new account with the supplied password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	result, err := h.authService.AuthenticateOrRegister(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmptyCredentials):
			h.sessions.Flash(w, r, session.FlashWarning, "Username and password are required.")
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.sessions.Flash(w, r, session.FlashDanger, "Invalid credentials.")
		default:
			slog.Error("login failed", "username", username, "error", err)
			h.sessions.Flash(w, r, session.FlashDanger, "An unexpected error occurred. Please try again.")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	principal := session.Principal{
		UserID:   result.User.ID,
		Username: result.User.Username,
		IsAdmin:  result.User.IsAdmin,
	}
	if err := h.sessions.SignIn(w, r, principal); err != nil {
		slog.Error("session save failed", "username", username, "error", err)
		h.sessions.Flash(w, r, session.FlashDanger, "An unexpected error occurred. Please try again.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if result.New {
		h.sessions.Flash(w, r, session.FlashSuccess, fmt.Sprintf("Welcome, %s! Your account has been created.", result.User.Username))
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		slog.Error("sign out failed", "error", err)
	}
	h.sessions.Flash(w, r, session.FlashInfo, "You have signed out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
