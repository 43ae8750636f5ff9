package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Eng-Denzel/NaTourCam/internal/models"
)

// requestWith carries the cookies a previous response set into a fresh
// request, the way a browser would.
func requestWith(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			r.AddCookie(c)
		}
	}
	return r
}

func TestCookieStore_Roundtrip(t *testing.T) {
	t.Parallel()

	cs := NewCookieStore()
	rec := httptest.NewRecorder()
	in := &Session{
		Token:  "tok-123",
		User:   &models.User{ID: 7, Email: "tourist@example.cm"},
		Expiry: time.Now().Add(time.Hour),
	}
	require.NoError(t, cs.Save(rec, nil, in))

	cookie := rec.Result().Cookies()[0]
	require.Equal(t, "session", cookie.Name)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	out := cs.Load(requestWith(t, rec))
	require.NotNil(t, out)
	require.Equal(t, "tok-123", out.Token)
	require.Equal(t, int64(7), out.User.ID)
	require.True(t, out.IsAuthenticated())
}

func TestCookieStore_MissingCookie(t *testing.T) {
	t.Parallel()

	cs := NewCookieStore()
	require.Nil(t, cs.Load(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestCookieStore_MalformedCookie(t *testing.T) {
	t.Parallel()

	cs := NewCookieStore()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: "%%%not-base64%%%"})
	require.Nil(t, cs.Load(r))
}

func TestCookieStore_ExpiredSession(t *testing.T) {
	t.Parallel()

	cs := NewCookieStore()
	rec := httptest.NewRecorder()
	require.NoError(t, cs.Save(rec, nil, &Session{
		Token:  "tok",
		Expiry: time.Now().Add(-time.Minute),
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	require.Nil(t, cs.Load(r))
}

func TestCookieStore_ClearDeletesCookie(t *testing.T) {
	t.Parallel()

	cs := NewCookieStore()
	rec := httptest.NewRecorder()
	cs.Clear(rec, nil)

	cookie := rec.Result().Cookies()[0]
	require.Equal(t, "session", cookie.Name)
	require.Negative(t, cookie.MaxAge)
	require.Empty(t, cookie.Value)
}
