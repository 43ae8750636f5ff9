package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Eng-Denzel/NaTourCam/internal/api"
	"github.com/Eng-Denzel/NaTourCam/internal/models"
	"github.com/Eng-Denzel/NaTourCam/internal/session"
)

type stubBackend struct {
	user    *models.User
	userErr error
}

func (s *stubBackend) Login(context.Context, api.Credentials) (*api.AuthResult, error) {
	return nil, nil
}

func (s *stubBackend) Register(context.Context, api.Registration) (*api.AuthResult, error) {
	return nil, nil
}

func (s *stubBackend) Logout(context.Context, string) error { return nil }

func (s *stubBackend) CurrentUser(context.Context, string) (*models.User, error) {
	return s.user, s.userErr
}

func (s *stubBackend) UpdateCurrentUser(context.Context, string, api.ProfileUpdate) (*models.User, error) {
	return s.user, s.userErr
}

// authedRequest builds a request carrying a valid session cookie.
func authedRequest(t *testing.T, m *session.Manager, token string, user *models.User) *http.Request {
	t.Helper()
	store := session.NewCookieStore()
	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, nil, &session.Session{
		Token:  token,
		User:   user,
		Expiry: time.Now().Add(time.Hour),
	}))
	r := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestRequireAuth_RedirectsAnonymousToLogin(t *testing.T) {
	t.Parallel()

	m := session.NewManager(&stubBackend{}, session.NewCookieStore(), time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for anonymous visitors")
	})

	rec := httptest.NewRecorder()
	RequireAuth(m)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuth_InjectsFreshUser(t *testing.T) {
	t.Parallel()

	backend := &stubBackend{user: &models.User{ID: 7, FirstName: "Fresh"}}
	m := session.NewManager(backend, session.NewCookieStore(), time.Hour)

	var got *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = session.UserFromContext(r.Context())
	})

	r := authedRequest(t, m, "tok", &models.User{ID: 7, FirstName: "Stale"})
	rec := httptest.NewRecorder()
	RequireAuth(m)(next).ServeHTTP(rec, r)

	require.NotNil(t, got)
	require.Equal(t, "Fresh", got.FirstName)
}

func TestRequireAuth_PurgesOnBackendRejection(t *testing.T) {
	t.Parallel()

	backend := &stubBackend{userErr: api.NewRequestError(http.StatusUnauthorized, nil)}
	m := session.NewManager(backend, session.NewCookieStore(), time.Hour)

	r := authedRequest(t, m, "stale", &models.User{ID: 7})
	rec := httptest.NewRecorder()
	RequireAuth(m)(http.NotFoundHandler()).ServeHTTP(rec, r)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
	require.Negative(t, rec.Result().Cookies()[0].MaxAge)
}

func TestLoadSession_InjectsWithoutValidation(t *testing.T) {
	t.Parallel()

	// The backend would reject this token, but LoadSession never asks.
	backend := &stubBackend{userErr: api.NewRequestError(http.StatusUnauthorized, nil)}
	m := session.NewManager(backend, session.NewCookieStore(), time.Hour)

	var got *session.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = session.FromContext(r.Context())
	})

	r := authedRequest(t, m, "tok", &models.User{ID: 7})
	LoadSession(m)(next).ServeHTTP(httptest.NewRecorder(), r)

	require.NotNil(t, got)
	require.Equal(t, "tok", got.Token)
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name string
		user *models.User
		want int
	}{
		{"staff", &models.User{ID: 1, IsStaff: true}, http.StatusOK},
		{"superuser", &models.User{ID: 2, IsSuperuser: true}, http.StatusOK},
		{"tourist", &models.User{ID: 3}, http.StatusForbidden},
		{"no session", nil, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.user != nil {
				s := &session.Session{Token: "tok", User: tc.user}
				r = r.WithContext(session.WithSession(r.Context(), s))
			}
			rec := httptest.NewRecorder()
			RequireAdmin(next).ServeHTTP(rec, r)
			require.Equal(t, tc.want, rec.Code)
		})
	}
}
