package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "quizhub-session"

// Flash categories, rendered as alert styles by the templates.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// Principal is the authenticated identity attached to a browser session.
type Principal struct {
	UserID   int
	Username string
	IsAdmin  bool
}

// Manager wraps the cookie store. All session reads and writes go through it
// so handlers never touch gorilla keys directly.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret []byte) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// SignIn stores the principal in the session cookie.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, p Principal) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values["user_id"] = p.UserID
	session.Values["username"] = p.Username
	session.Values["is_admin"] = p.IsAdmin
	return session.Save(r, w)
}

// SignOut drops the principal but keeps the session cookie alive so a
// logout flash queued right after still reaches the login page.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	delete(session.Values, "user_id")
	delete(session.Values, "username")
	delete(session.Values, "is_admin")
	return session.Save(r, w)
}

// Principal reads the signed-in identity from the session cookie.
func (m *Manager) Principal(r *http.Request) (Principal, bool) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return Principal{}, false
	}

	userID, ok := session.Values["user_id"].(int)
	if !ok || userID == 0 {
		return Principal{}, false
	}
	username, _ := session.Values["username"].(string)
	isAdmin, _ := session.Values["is_admin"].(bool)

	return Principal{UserID: userID, Username: username, IsAdmin: isAdmin}, true
}

// Flash queues a one-shot message for the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, category, message string) {
	session, _ := m.store.Get(r, sessionName)
	session.AddFlash(Flash{Category: category, Message: message})
	session.Save(r, w)
}

// Flashes drains queued messages. Draining saves the session so each message
// is shown exactly once.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	session, _ := m.store.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		session.Save(r, w)
	}

	flashes := make([]Flash, 0, len(raw))
	for _, value := range raw {
		if f, ok := value.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
