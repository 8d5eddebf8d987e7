// Package session keeps admin sessions server-side: the cookie carries only
// a signed session id, the payload lives in the session table.
package session

import (
	"context"
	"encoding/base32"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"zyberian-site/internal/database"
	"zyberian-site/internal/logger"
	"zyberian-site/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gorilla/securecookie"
	gsessions "github.com/gorilla/sessions"
)

// Keys stored in the session payload.
const (
	KeyUserID  = "user_id"
	KeyIsAdmin = "is_admin"
)

type Store struct {
	repo    database.SessionRepository
	codecs  []securecookie.Codec
	options *gsessions.Options
	now     func() time.Time
}

var _ sessions.Store = (*Store)(nil)

// NewStore signs session ids with keyPairs (see securecookie.CodecsFromPairs).
func NewStore(repo database.SessionRepository, maxAge time.Duration, keyPairs ...[]byte) *Store {
	codecs := securecookie.CodecsFromPairs(keyPairs...)
	for _, c := range codecs {
		if sc, ok := c.(*securecookie.SecureCookie); ok {
			sc.MaxAge(int(maxAge.Seconds()))
		}
	}

	return &Store{
		repo:   repo,
		codecs: codecs,
		options: &gsessions.Options{
			Path:     "/",
			MaxAge:   int(maxAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
		now: time.Now,
	}
}

func (s *Store) Options(o sessions.Options) {
	s.options = &gsessions.Options{
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   o.MaxAge,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	}
}

func (s *Store) Get(r *http.Request, name string) (*gsessions.Session, error) {
	return gsessions.GetRegistry(r).Get(s, name)
}

// New loads the session named by the request cookie. A missing, forged or
// expired cookie yields a fresh empty session, never an error.
func (s *Store) New(r *http.Request, name string) (*gsessions.Session, error) {
	sess := gsessions.NewSession(s, name)
	opts := *s.options
	sess.Options = &opts
	sess.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return sess, nil
	}

	var sid string
	if err := securecookie.DecodeMulti(name, c.Value, &sid, s.codecs...); err != nil {
		return sess, nil
	}

	rec, err := s.repo.FindSession(r.Context(), sid, s.now())
	if errors.Is(err, database.ErrSessionNotFound) {
		return sess, nil
	}
	if err != nil {
		return sess, fmt.Errorf("failed to load session: %w", err)
	}

	values, err := decodeValues(rec.Sess)
	if err != nil {
		return sess, err
	}

	sess.ID = sid
	sess.Values = values
	sess.IsNew = false
	return sess, nil
}

// Save persists the session, or deletes it when MaxAge < 0 (logout).
func (s *Store) Save(r *http.Request, w http.ResponseWriter, sess *gsessions.Session) error {
	ctx := r.Context()

	if sess.Options.MaxAge < 0 {
		if sess.ID != "" {
			if err := s.repo.DeleteSession(ctx, sess.ID); err != nil {
				return fmt.Errorf("failed to delete session: %w", err)
			}
		}
		http.SetCookie(w, gsessions.NewCookie(sess.Name(), "", sess.Options))
		return nil
	}

	if sess.ID == "" {
		sess.ID = newSessionID()
	}

	if err := s.persist(ctx, sess); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(sess.Name(), sess.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("failed to encode session cookie: %w", err)
	}
	http.SetCookie(w, gsessions.NewCookie(sess.Name(), encoded, sess.Options))
	return nil
}

func (s *Store) persist(ctx context.Context, sess *gsessions.Session) error {
	data, err := encodeValues(sess.Values)
	if err != nil {
		return err
	}

	maxAge := sess.Options.MaxAge
	if maxAge == 0 {
		maxAge = s.options.MaxAge
	}

	err = s.repo.SaveSession(ctx, models.Session{
		SID:    sess.ID,
		Sess:   data,
		Expire: s.now().Add(time.Duration(maxAge) * time.Second),
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Prune removes expired rows every interval until ctx is done.
func (s *Store) Prune(ctx context.Context, interval time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.repo.DeleteExpiredSessions(ctx, s.now())
			if err != nil {
				log.Err(err).Msg("failed to prune expired sessions")
				continue
			}
			if n > 0 {
				log.Debug().Int64("removed", n).Msg("pruned expired sessions")
			}
		}
	}
}

func newSessionID() string {
	return strings.TrimRight(
		base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
}

func encodeValues(values map[interface{}]interface{}) ([]byte, error) {
	flat := make(map[string]any, len(values))
	for k, v := range values {
		flat[fmt.Sprint(k)] = v
	}
	data, err := json.Marshal(flat)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session values: %w", err)
	}
	return data, nil
}

func decodeValues(data []byte) (map[interface{}]interface{}, error) {
	flat := map[string]any{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &flat); err != nil {
			return nil, fmt.Errorf("failed to decode session values: %w", err)
		}
	}
	values := make(map[interface{}]interface{}, len(flat))
	for k, v := range flat {
		values[k] = v
	}
	return values, nil
}
