// internal/session/manager.go
package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Eng-Denzel/NaTourCam/internal/api"
	"github.com/Eng-Denzel/NaTourCam/internal/errfmt"
	"github.com/Eng-Denzel/NaTourCam/internal/models"
)

// Backend is the slice of the API client the manager needs. *api.Client
// satisfies it; tests substitute a fake.
type Backend interface {
	Login(ctx context.Context, creds api.Credentials) (*api.AuthResult, error)
	Register(ctx context.Context, reg api.Registration) (*api.AuthResult, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	UpdateCurrentUser(ctx context.Context, token string, upd api.ProfileUpdate) (*models.User, error)
}

// Manager is the single source of truth for "who is logged in". Every
// session mutation goes through its operations; none of them panic or
// leak raw errors to the caller, failures come back as display strings.
type Manager struct {
	backend Backend
	store   Store
	ttl     time.Duration
}

func NewManager(backend Backend, store Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{backend: backend, store: store, ttl: ttl}
}

// Current returns the stored session for this request, which may be nil.
func (m *Manager) Current(r *http.Request) *Session {
	return m.store.Load(r)
}

// Login authenticates against the backend. On success the token and user
// are stored; on failure the formatted message is recorded on the session
// and returned with ok=false.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, creds api.Credentials) (string, bool) {
	res, err := m.backend.Login(r.Context(), creds)
	if err != nil {
		return m.fail(w, r, "login", err)
	}
	m.adopt(w, r, res.Token, &res.User)
	return "", true
}

// Register creates a new account. When the backend returns a token the
// visitor is logged in immediately.
func (m *Manager) Register(w http.ResponseWriter, r *http.Request, reg api.Registration) (string, bool) {
	res, err := m.backend.Register(r.Context(), reg)
	if err != nil {
		return m.fail(w, r, "register", err)
	}
	if res.Token != "" {
		m.adopt(w, r, res.Token, &res.User)
	}
	return "", true
}

// Logout performs best-effort remote invalidation (a backend failure is
// logged and swallowed) and unconditionally clears the local session.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	if s := m.store.Load(r); s != nil && s.Token != "" {
		if err := m.backend.Logout(r.Context(), s.Token); err != nil {
			slog.ErrorContext(r.Context(), "remote logout failed", "err", err)
		}
	}
	m.store.Clear(w, r)
}

// ErrNoSession is returned when an operation needs a stored token and
// none exists.
var ErrNoSession = errors.New("no active session")

// UpdateProfile submits profile changes. On success the stored user is
// replaced wholesale with the server's response; a field the server
// omits is gone from local state too. Failures come back raw so the
// caller's shared error path can apply the forced-logout rule.
func (m *Manager) UpdateProfile(w http.ResponseWriter, r *http.Request, upd api.ProfileUpdate) error {
	s := m.store.Load(r)
	if s == nil || s.Token == "" {
		return ErrNoSession
	}
	user, err := m.backend.UpdateCurrentUser(r.Context(), s.Token, upd)
	if err != nil {
		return err
	}
	m.adopt(w, r, s.Token, user)
	return nil
}

// Refresh re-validates the stored token against the backend and replaces
// the stored user with the fresh document. Any failure wipes the session
// entirely and returns nil, so auth fails closed.
func (m *Manager) Refresh(w http.ResponseWriter, r *http.Request) *Session {
	s := m.store.Load(r)
	if s == nil || s.Token == "" {
		return nil
	}
	user, err := m.backend.CurrentUser(r.Context(), s.Token)
	if err != nil {
		slog.WarnContext(r.Context(), "session re-validation failed", "err", err)
		m.Purge(w, r)
		return nil
	}
	s.User = user
	m.save(w, r, s)
	return s
}

// Purge is the forced logout: token and user are erased without touching
// the backend. Triggered by any 401/403 anywhere in the app.
func (m *Manager) Purge(w http.ResponseWriter, r *http.Request) {
	m.store.Clear(w, r)
}

// ClearError resets the pending error message. Safe to call repeatedly.
func (m *Manager) ClearError(w http.ResponseWriter, r *http.Request) {
	s := m.store.Load(r)
	if s == nil || s.Error == "" {
		return
	}
	s.Error = ""
	m.save(w, r, s)
}

// Error returns the pending error message, if any.
func (m *Manager) Error(r *http.Request) string {
	if s := m.store.Load(r); s != nil {
		return s.Error
	}
	return ""
}

func (m *Manager) adopt(w http.ResponseWriter, r *http.Request, token string, user *models.User) {
	m.save(w, r, &Session{Token: token, User: user})
}

// fail records the formatted failure on the session (without disturbing
// an existing identity) and returns it.
func (m *Manager) fail(w http.ResponseWriter, r *http.Request, op string, err error) (string, bool) {
	msg := errfmt.Format(err)
	slog.WarnContext(r.Context(), op+" failed", "err", err)
	s := m.store.Load(r)
	if s == nil {
		s = &Session{}
	}
	s.Error = msg
	m.save(w, r, s)
	return msg, false
}

func (m *Manager) save(w http.ResponseWriter, r *http.Request, s *Session) {
	s.Expiry = time.Now().Add(m.ttl)
	if err := m.store.Save(w, r, s); err != nil {
		slog.ErrorContext(r.Context(), "session save failed", "err", err)
	}
}

