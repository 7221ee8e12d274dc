package middleware

import (
	"net/http"

	"quizhub/internal/session"
)

type Middleware struct {
	sessions *session.Manager
}

func New(sessions *session.Manager) *Middleware {
	return &Middleware{sessions: sessions}
}

// RequireAuth admits only requests carrying a signed-in principal. Anyone
// else is flashed a warning and sent to the login page. On success the
// principal rides the request context for downstream handlers.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := m.sessions.Principal(r)
		if !ok {
			m.sessions.Flash(w, r, session.FlashWarning, "You need to sign in to access this page.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		ctx := session.WithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin admits only admin principals. It expects RequireAuth to have
// run first; a request without a principal is treated as unauthenticated,
// not merely forbidden. Non-admins land back on the dashboard since they
// are already signed in.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := session.PrincipalFromContext(r.Context())
		if !ok {
			m.sessions.Flash(w, r, session.FlashWarning, "You need to sign in to access this page.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		if !principal.IsAdmin {
			m.sessions.Flash(w, r, session.FlashDanger, "Access denied. This area is restricted to administrators.")
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
