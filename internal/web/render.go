// internal/web/render.go
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"

	"github.com/Eng-Denzel/NaTourCam/internal/forms"
	"github.com/Eng-Denzel/NaTourCam/internal/models"
	"github.com/Eng-Denzel/NaTourCam/internal/session"
)

//go:embed templates
var templateFS embed.FS

// Page is the view model every template receives. User and Flash are
// filled from the session automatically.
type Page struct {
	Title  string
	User   *models.User
	Flash  string
	Error  string
	Form   *forms.Form
	Data   any
	Unread int
}

// Renderer executes embedded templates: one parsed set per page, each
// sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}
	pages := make(map[string]*template.Template, len(names))
	for _, p := range names {
		t, err := template.ParseFS(templateFS, "templates/layout.html", p)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		pages[path.Base(p)] = t
	}
	return &Renderer{pages: pages}, nil
}

// HTML renders one page. A missing template or an execution failure is a
// programming error and renders a plain 500.
func (re *Renderer) HTML(w http.ResponseWriter, r *http.Request, status int, page string, data *Page) {
	t, ok := re.pages[page]
	if !ok {
		slog.ErrorContext(r.Context(), "unknown template", "page", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = &Page{}
	}
	if data.User == nil {
		if u, ok := session.UserFromContext(r.Context()); ok {
			data.User = u
		}
	}
	if data.Form == nil {
		data.Form = forms.New()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		slog.ErrorContext(r.Context(), "template execute failed", "page", page, "err", err)
	}
}
