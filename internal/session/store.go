// internal/session/store.go
package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"
)

const cookieName = "session"

// Store is the durable client-side storage behind the session: written on
// every successful login/register/update, read at the start of each
// request, erased on logout or forced sign-out.
type Store interface {
	Save(w http.ResponseWriter, r *http.Request, s *Session) error
	Load(r *http.Request) *Session
	Clear(w http.ResponseWriter, r *http.Request)
}

// CookieStore keeps the whole session encoded in an HttpOnly cookie.
// Fits a single-instance deployment; use RedisStore when the app runs
// behind a load balancer.
type CookieStore struct{}

func NewCookieStore() *CookieStore {
	return &CookieStore{}
}

func (cs *CookieStore) Save(w http.ResponseWriter, _ *http.Request, s *Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.RawStdEncoding.EncodeToString(b),
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		Expires:  s.Expiry,
	})
	return nil
}

// Load returns nil for a missing, malformed or expired cookie.
func (cs *CookieStore) Load(r *http.Request) *Session {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}
	b, err := base64.RawStdEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var s Session
	if json.Unmarshal(b, &s) != nil {
		return nil
	}
	if s.Expiry.Before(time.Now()) {
		return nil
	}
	return &s
}

func (cs *CookieStore) Clear(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
