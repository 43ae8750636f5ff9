// internal/handlers/account/account.go
package account

import (
	"net/http"

	"github.com/Eng-Denzel/NaTourCam/internal/api"
	"github.com/Eng-Denzel/NaTourCam/internal/forms"
	"github.com/Eng-Denzel/NaTourCam/internal/models"
	"github.com/Eng-Denzel/NaTourCam/internal/session"
	"github.com/Eng-Denzel/NaTourCam/internal/validation"
	"github.com/Eng-Denzel/NaTourCam/internal/web"
)

type Handler struct {
	client   *api.Client
	sessions *session.Manager
	render   *web.Renderer
}

func New(client *api.Client, sessions *session.Manager, render *web.Renderer) *Handler {
	return &Handler{client: client, sessions: sessions, render: render}
}

var loginRules = validation.RuleSet{
	"email": {
		{Kind: validation.Required, Message: "Email is required"},
		{Kind: validation.Email},
	},
	"password": {
		{Kind: validation.Required, Message: "Password is required"},
	},
}

var registerRules = validation.RuleSet{
	"email": {
		{Kind: validation.Required, Message: "Email is required"},
		{Kind: validation.Email},
	},
	"username": {
		{Kind: validation.Required, Message: "Username is required"},
		{Kind: validation.MinLength, Param: 3},
		{Kind: validation.MaxLength, Param: 30},
	},
	"first_name":    {{Kind: validation.Required, Message: "First name is required"}},
	"last_name":     {{Kind: validation.Required, Message: "Last name is required"}},
	"phone_number":  {{Kind: validation.Phone}},
	"date_of_birth": {{Kind: validation.Date}},
	"password": {
		{Kind: validation.Required, Message: "Password is required"},
		{Kind: validation.Password},
	},
	"password_confirm": {
		{Kind: validation.Required, Message: "Please confirm your password"},
	},
}

var profileRules = validation.RuleSet{
	"email": {
		{Kind: validation.Required, Message: "Email is required"},
		{Kind: validation.Email},
	},
	"first_name":    {{Kind: validation.Required, Message: "First name is required"}},
	"last_name":     {{Kind: validation.Required, Message: "Last name is required"}},
	"phone_number":  {{Kind: validation.Phone}},
	"date_of_birth": {{Kind: validation.Date}},
}

// LoginPage shows the login form. Authenticated visitors are sent home.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if s, ok := session.FromContext(r.Context()); ok && s.IsAuthenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render.HTML(w, r, http.StatusOK, "login.html", &web.Page{Title: "Log in"})
}

// Login handles the login form submission.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	f, err := forms.Parse(r, "email", "password")
	if err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	if !f.Validate(loginRules) {
		h.render.HTML(w, r, http.StatusUnprocessableEntity, "login.html", &web.Page{Title: "Log in", Form: f})
		return
	}
	msg, ok := h.sessions.Login(w, r, api.Credentials{
		Email:    f.Get("email"),
		Password: f.Get("password"),
	})
	if !ok {
		h.render.HTML(w, r, http.StatusUnauthorized, "login.html", &web.Page{Title: "Log in", Form: f, Error: msg})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RegisterPage shows the signup form.
func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if s, ok := session.FromContext(r.Context()); ok && s.IsAuthenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render.HTML(w, r, http.StatusOK, "register.html", &web.Page{Title: "Create account"})
}

// Register handles the signup form submission.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	f, err := forms.Parse(r,
		"email", "username", "first_name", "last_name",
		"phone_number", "language", "date_of_birth",
		"password", "password_confirm")
	if err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	valid := f.Validate(registerRules)
	if f.Error("password_confirm") == "" && f.Get("password") != f.Get("password_confirm") {
		f.Errors["password_confirm"] = "Passwords do not match"
		valid = false
	}
	if !valid {
		h.render.HTML(w, r, http.StatusUnprocessableEntity, "register.html", &web.Page{Title: "Create account", Form: f})
		return
	}
	msg, ok := h.sessions.Register(w, r, api.Registration{
		Email:           f.Get("email"),
		Username:        f.Get("username"),
		FirstName:       f.Get("first_name"),
		LastName:        f.Get("last_name"),
		PhoneNumber:     f.Get("phone_number"),
		Language:        f.Get("language"),
		DateOfBirth:     f.Get("date_of_birth"),
		Password:        f.Get("password"),
		PasswordConfirm: f.Get("password_confirm"),
	})
	if !ok {
		h.render.HTML(w, r, http.StatusUnprocessableEntity, "register.html", &web.Page{Title: "Create account", Form: f, Error: msg})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout tears the session down and goes home. Remote failures never
// block the local teardown.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ProfilePage shows the current user's profile form.
func (h *Handler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	user, _ := session.UserFromContext(r.Context())
	f := forms.New()
	if user != nil {
		f.Values["email"] = user.Email
		f.Values["username"] = user.Username
		f.Values["first_name"] = user.FirstName
		f.Values["last_name"] = user.LastName
		f.Values["phone_number"] = user.PhoneNumber
		f.Values["language"] = user.Language
		f.Values["date_of_birth"] = user.DateOfBirth
	}
	h.render.HTML(w, r, http.StatusOK, "profile.html", &web.Page{Title: "My profile", Form: f})
}

// UpdateProfile submits profile edits; the stored user is replaced with
// whatever the backend returns.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	f, err := forms.Parse(r,
		"email", "username", "first_name", "last_name",
		"phone_number", "language", "date_of_birth")
	if err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	if !f.Validate(profileRules) {
		h.render.HTML(w, r, http.StatusUnprocessableEntity, "profile.html", &web.Page{Title: "My profile", Form: f})
		return
	}
	err = h.sessions.UpdateProfile(w, r, api.ProfileUpdate{
		Email:       f.Get("email"),
		Username:    f.Get("username"),
		FirstName:   f.Get("first_name"),
		LastName:    f.Get("last_name"),
		PhoneNumber: f.Get("phone_number"),
		Language:    f.Get("language"),
		DateOfBirth: f.Get("date_of_birth"),
	})
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusUnprocessableEntity, "profile.html", &web.Page{Title: "My profile", Form: f, Error: msg})
		return
	}
	h.render.HTML(w, r, http.StatusOK, "profile.html", &web.Page{Title: "My profile", Form: f, Flash: "Profile updated"})
}

// DashboardData feeds the personal dashboard template.
type DashboardData struct {
	Analytics *models.UserAnalytics
	Summary   *models.BookingSummary
}

// Dashboard shows the visitor's activity report and booking summary.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	token := web.Token(r)
	analytics, err := h.client.UserAnalytics(r.Context(), token)
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusOK, "dashboard.html", &web.Page{Title: "My dashboard", Error: msg})
		return
	}
	data := DashboardData{Analytics: analytics}
	if summary, err := h.client.BookingsSummary(r.Context(), token); err == nil {
		data.Summary = summary
	}
	h.render.HTML(w, r, http.StatusOK, "dashboard.html", &web.Page{Title: "My dashboard", Data: data})
}
