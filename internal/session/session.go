// internal/session/session.go
package session

import (
	"context"
	"time"

	"github.com/Eng-Denzel/NaTourCam/internal/models"
)

// Session is the client-side record of the current identity: the backend
// token, the last user document fetched for it, and a pending error
// message for the next render. Token present means an authenticated
// request can be attempted; User present means the UI treats the visitor
// as logged in.
type Session struct {
	Token  string       `json:"token"`
	User   *models.User `json:"user,omitempty"`
	Error  string       `json:"error,omitempty"`
	Expiry time.Time    `json:"expiry"`
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.User != nil
}

type ctxKeySession struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKeySession{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKeySession{}).(*Session)
	return s, ok
}

// UserFromContext returns the session user, if any.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	s, ok := FromContext(ctx)
	if !ok || s.User == nil {
		return nil, false
	}
	return s.User, true
}
