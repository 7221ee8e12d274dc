package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carryCookies copies Set-Cookie output of a response into a fresh request,
// standing in for the browser between two calls.
func carryCookies(t *testing.T, rec *httptest.ResponseRecorder, target string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestSignInRoundTrip(t *testing.T) {
	m := NewManager([]byte("test-secret"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	err := m.SignIn(rec, req, Principal{UserID: 7, Username: "alice", IsAdmin: true})
	require.NoError(t, err)

	next := carryCookies(t, rec, "/dashboard")
	p, ok := m.Principal(next)
	require.True(t, ok)
	assert.Equal(t, 7, p.UserID)
	assert.Equal(t, "alice", p.Username)
	assert.True(t, p.IsAdmin)
}

func TestPrincipalMissingWithoutCookie(t *testing.T) {
	m := NewManager([]byte("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	_, ok := m.Principal(req)
	assert.False(t, ok)
}

func TestSignOutClearsPrincipal(t *testing.T) {
	m := NewManager([]byte("test-secret"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.SignIn(rec, req, Principal{UserID: 1, Username: "bob"}))

	signedIn := carryCookies(t, rec, "/logout")
	outRec := httptest.NewRecorder()
	require.NoError(t, m.SignOut(outRec, signedIn))

	after := carryCookies(t, outRec, "/dashboard")
	_, ok := m.Principal(after)
	assert.False(t, ok)
}

func TestFlashesDrainOnce(t *testing.T) {
	m := NewManager([]byte("test-secret"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	m.Flash(rec, req, FlashWarning, "sign in first")

	next := carryCookies(t, rec, "/")
	nextRec := httptest.NewRecorder()
	flashes := m.Flashes(nextRec, next)
	require.Len(t, flashes, 1)
	assert.Equal(t, FlashWarning, flashes[0].Category)
	assert.Equal(t, "sign in first", flashes[0].Message)

	again := carryCookies(t, nextRec, "/")
	assert.Empty(t, m.Flashes(httptest.NewRecorder(), again))
}
