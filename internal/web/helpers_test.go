package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Eng-Denzel/NaTourCam/internal/api"
	"github.com/Eng-Denzel/NaTourCam/internal/models"
	"github.com/Eng-Denzel/NaTourCam/internal/session"
)

type noopBackend struct{}

func (noopBackend) Login(context.Context, api.Credentials) (*api.AuthResult, error) {
	return nil, nil
}

func (noopBackend) Register(context.Context, api.Registration) (*api.AuthResult, error) {
	return nil, nil
}

func (noopBackend) Logout(context.Context, string) error { return nil }

func (noopBackend) CurrentUser(context.Context, string) (*models.User, error) {
	return nil, nil
}

func (noopBackend) UpdateCurrentUser(context.Context, string, api.ProfileUpdate) (*models.User, error) {
	return nil, nil
}

func TestToken(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, Token(r))

	s := &session.Session{Token: "tok-123"}
	r = r.WithContext(session.WithSession(r.Context(), s))
	require.Equal(t, "tok-123", Token(r))
}

func TestAPIError_UnauthorizedForcesLogout(t *testing.T) {
	t.Parallel()

	sessions := session.NewManager(noopBackend{}, session.NewCookieStore(), time.Hour)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/bookings", nil)

	err := api.NewRequestError(http.StatusUnauthorized, nil)
	msg, handled := APIError(rec, r, sessions, err)
	require.True(t, handled)
	require.Empty(t, msg)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
	require.Negative(t, rec.Result().Cookies()[0].MaxAge)
}

func TestAPIError_OtherFailuresBecomeMessages(t *testing.T) {
	t.Parallel()

	sessions := session.NewManager(noopBackend{}, session.NewCookieStore(), time.Hour)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/bookings", nil)

	msg, handled := APIError(rec, r, sessions, api.NewRequestError(http.StatusNotFound, nil))
	require.False(t, handled)
	require.Equal(t, "Not found - the requested resource was not found", msg)

	msg, handled = APIError(rec, r, sessions, errors.New("boom"))
	require.False(t, handled)
	require.Equal(t, "Boom", msg)
}

func TestURLID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		id    int64
		ok    bool
	}{
		{"7", 7, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("siteID", tc.value)
		r := httptest.NewRequest(http.MethodGet, "/sites/"+tc.value, nil)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

		id, ok := URLID(r, "siteID")
		require.Equal(t, tc.ok, ok, "value %q", tc.value)
		if tc.ok {
			require.Equal(t, tc.id, id)
		}
	}
}
