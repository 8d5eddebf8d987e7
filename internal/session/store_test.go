package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zyberian-site/internal/database"
	"zyberian-site/internal/logger"

	"github.com/gin-contrib/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookieName = "sid"

func newTestStore(t *testing.T) (*Store, *database.MemoryStorage) {
	t.Helper()
	repo := database.NewMemoryStorage()
	return NewStore(repo, time.Hour, []byte("0123456789abcdef0123456789abcdef")), repo
}

// roundTrip saves values into a fresh session and returns the issued cookie.
func roundTrip(t *testing.T, s *Store, values map[interface{}]interface{}) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	sess, err := s.New(req, cookieName)
	require.NoError(t, err)
	require.True(t, sess.IsNew)

	for k, v := range values {
		sess.Values[k] = v
	}

	rec := httptest.NewRecorder()
	require.NoError(t, s.Save(req, rec, sess))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestStore_SaveAndLoad(t *testing.T) {
	s, repo := newTestStore(t)

	cookie := roundTrip(t, s, map[interface{}]interface{}{KeyUserID: "u1", KeyIsAdmin: true})
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 1, repo.Sessions())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)

	sess, err := s.New(req, cookieName)
	require.NoError(t, err)
	assert.False(t, sess.IsNew)
	assert.Equal(t, "u1", sess.Values[KeyUserID])
	assert.Equal(t, true, sess.Values[KeyIsAdmin])
}

func TestStore_ExpiredSessionIsAnonymous(t *testing.T) {
	s, _ := newTestStore(t)

	cookie := roundTrip(t, s, map[interface{}]interface{}{KeyUserID: "u1", KeyIsAdmin: true})

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	req := httptest.NewRequest(http.MethodGet, "/api/admin/jobs", nil)
	req.AddCookie(cookie)

	sess, err := s.New(req, cookieName)
	require.NoError(t, err)
	assert.True(t, sess.IsNew)
	assert.Empty(t, sess.Values)
}

func TestStore_ForgedCookieIsAnonymous(t *testing.T) {
	s, _ := newTestStore(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "not-a-signed-value"})

	sess, err := s.New(req, cookieName)
	require.NoError(t, err)
	assert.True(t, sess.IsNew)
}

func TestStore_NegativeMaxAgeDeletes(t *testing.T) {
	s, repo := newTestStore(t)

	cookie := roundTrip(t, s, map[interface{}]interface{}{KeyUserID: "u1"})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	sess, err := s.New(req, cookieName)
	require.NoError(t, err)

	sess.Options.MaxAge = -1
	rec := httptest.NewRecorder()
	require.NoError(t, s.Save(req, rec, sess))

	assert.Equal(t, 0, repo.Sessions())
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, "", cleared[0].Value)
}

func TestStore_Options(t *testing.T) {
	s, _ := newTestStore(t)
	s.Options(sessions.Options{Path: "/", MaxAge: 60, Secure: true, HttpOnly: true})

	cookie := roundTrip(t, s, map[interface{}]interface{}{KeyUserID: "u1"})
	assert.True(t, cookie.Secure)
	assert.Equal(t, 60, cookie.MaxAge)
}

func TestStore_Prune(t *testing.T) {
	s, repo := newTestStore(t)

	roundTrip(t, s, map[interface{}]interface{}{KeyUserID: "u1"})
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Prune(ctx, 5*time.Millisecond, logger.Nop())
		close(done)
	}()

	assert.Eventually(t, func() bool { return repo.Sessions() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
