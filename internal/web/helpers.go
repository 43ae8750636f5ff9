// internal/web/helpers.go
package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Eng-Denzel/NaTourCam/internal/api"
	"github.com/Eng-Denzel/NaTourCam/internal/errfmt"
	"github.com/Eng-Denzel/NaTourCam/internal/session"
)

// Token returns the backend token for this request, or "" for anonymous
// visitors. Public catalogue pages work either way.
func Token(r *http.Request) string {
	if s, ok := session.FromContext(r.Context()); ok {
		return s.Token
	}
	return ""
}

// APIError is the shared failure path for backend calls. A 401/403 from
// any endpoint forces a session purge and a redirect to the login page
// (handled=true); every other failure comes back as a display string for
// the caller to render.
func APIError(w http.ResponseWriter, r *http.Request, sessions *session.Manager, err error) (string, bool) {
	if api.IsUnauthorized(err) {
		sessions.Purge(w, r)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return "", true
	}
	return errfmt.Format(err), false
}

// URLID parses a numeric chi URL parameter.
func URLID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}
