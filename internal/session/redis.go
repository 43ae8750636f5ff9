// internal/session/redis.go
package session

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	idCookieName = "session_id"
	keyPrefix    = "session:"
)

// RedisStore keeps session blobs server-side under an opaque ID; the
// cookie carries only the ID. Sessions survive restarts and are shared
// across instances.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (rs *RedisStore) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	id := rs.sessionID(r)
	if id == "" {
		id = uuid.NewString()
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := rs.rdb.Set(r.Context(), keyPrefix+id, b, rs.ttl).Err(); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     idCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(rs.ttl),
	})
	return nil
}

// Load returns nil when the cookie is missing or the record is gone
// (expired TTL counts as logged out).
func (rs *RedisStore) Load(r *http.Request) *Session {
	id := rs.sessionID(r)
	if id == "" {
		return nil
	}
	b, err := rs.rdb.Get(r.Context(), keyPrefix+id).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.ErrorContext(r.Context(), "session load failed", "err", err)
		}
		return nil
	}
	var s Session
	if json.Unmarshal(b, &s) != nil {
		return nil
	}
	if !s.Expiry.IsZero() && s.Expiry.Before(time.Now()) {
		return nil
	}
	return &s
}

func (rs *RedisStore) Clear(w http.ResponseWriter, r *http.Request) {
	if id := rs.sessionID(r); id != "" {
		if err := rs.rdb.Del(r.Context(), keyPrefix+id).Err(); err != nil {
			slog.ErrorContext(r.Context(), "session delete failed", "err", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     idCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (rs *RedisStore) sessionID(r *http.Request) string {
	c, err := r.Cookie(idCookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}
