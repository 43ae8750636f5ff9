package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Eng-Denzel/NaTourCam/internal/models"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisStore(rdb, ttl), mr
}

func TestRedisStore_Roundtrip(t *testing.T) {
	rs, mr := newRedisStore(t, time.Hour)

	rec := httptest.NewRecorder()
	in := &Session{
		Token:  "tok-123",
		User:   &models.User{ID: 7, Username: "denzel"},
		Expiry: time.Now().Add(time.Hour),
	}
	require.NoError(t, rs.Save(rec, httptest.NewRequest(http.MethodPost, "/login", nil), in))

	cookie := rec.Result().Cookies()[0]
	require.Equal(t, "session_id", cookie.Name)
	require.True(t, cookie.HttpOnly)
	// The cookie holds only an opaque ID; the blob lives server-side.
	require.NotContains(t, cookie.Value, "tok-123")
	require.True(t, mr.Exists("session:"+cookie.Value))

	out := rs.Load(requestWith(t, rec))
	require.NotNil(t, out)
	require.Equal(t, "tok-123", out.Token)
	require.Equal(t, "denzel", out.User.Username)
}

func TestRedisStore_SaveReusesExistingID(t *testing.T) {
	rs, _ := newRedisStore(t, time.Hour)

	rec := httptest.NewRecorder()
	require.NoError(t, rs.Save(rec, httptest.NewRequest(http.MethodPost, "/", nil), &Session{Token: "a"}))
	first := rec.Result().Cookies()[0].Value

	r := requestWith(t, rec)
	rec2 := httptest.NewRecorder()
	require.NoError(t, rs.Save(rec2, r, &Session{Token: "b"}))
	require.Equal(t, first, rec2.Result().Cookies()[0].Value)

	out := rs.Load(requestWith(t, rec2))
	require.NotNil(t, out)
	require.Equal(t, "b", out.Token)
}

func TestRedisStore_LoadAfterTTLExpiry(t *testing.T) {
	rs, mr := newRedisStore(t, time.Minute)

	rec := httptest.NewRecorder()
	require.NoError(t, rs.Save(rec, httptest.NewRequest(http.MethodPost, "/", nil), &Session{Token: "tok"}))

	mr.FastForward(2 * time.Minute)
	require.Nil(t, rs.Load(requestWith(t, rec)))
}

func TestRedisStore_IgnoresForgedCookie(t *testing.T) {
	rs, _ := newRedisStore(t, time.Hour)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "session_id", Value: "not-a-uuid"})
	require.Nil(t, rs.Load(r))
}

func TestRedisStore_ClearDeletesRecord(t *testing.T) {
	rs, mr := newRedisStore(t, time.Hour)

	rec := httptest.NewRecorder()
	require.NoError(t, rs.Save(rec, httptest.NewRequest(http.MethodPost, "/", nil), &Session{Token: "tok"}))
	id := rec.Result().Cookies()[0].Value

	rec2 := httptest.NewRecorder()
	rs.Clear(rec2, requestWith(t, rec))

	require.False(t, mr.Exists("session:"+id))
	require.Negative(t, rec2.Result().Cookies()[0].MaxAge)
}
