// internal/handlers/notifications/notifications.go
package notifications

import (
	"net/http"

	"github.com/Eng-Denzel/NaTourCam/internal/api"
	"github.com/Eng-Denzel/NaTourCam/internal/forms"
	"github.com/Eng-Denzel/NaTourCam/internal/models"
	"github.com/Eng-Denzel/NaTourCam/internal/session"
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

// ListData feeds the notifications template.
type ListData struct {
	Notifications []models.Notification
	Unread        int
}

// List shows the visitor's notifications with the unread badge count.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	token := web.Token(r)
	ns, err := h.client.ListNotifications(r.Context(), token)
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusOK, "notifications.html", &web.Page{Title: "Notifications", Error: msg})
		return
	}
	data := ListData{Notifications: ns}
	if n, err := h.client.UnreadCount(r.Context(), token); err == nil {
		data.Unread = n
	}
	h.render.HTML(w, r, http.StatusOK, "notifications.html", &web.Page{Title: "Notifications", Data: data, Unread: data.Unread})
}

// MarkAllRead clears the unread flag on everything, then reloads.
func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.client.MarkAllRead(r.Context(), web.Token(r)); err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusOK, "notifications.html", &web.Page{Title: "Notifications", Error: msg})
		return
	}
	http.Redirect(w, r, "/notifications", http.StatusSeeOther)
}

// PreferencesPage shows the notification preference toggles.
func (h *Handler) PreferencesPage(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.client.GetPreferences(r.Context(), web.Token(r))
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusOK, "notification_prefs.html", &web.Page{Title: "Notification preferences", Error: msg})
		return
	}
	h.render.HTML(w, r, http.StatusOK, "notification_prefs.html", &web.Page{Title: "Notification preferences", Data: prefs})
}

// UpdatePreferences saves the toggles. Unchecked boxes simply don't
// appear in the POST body.
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	f, err := forms.Parse(r, "email_enabled", "booking_updates", "promotions")
	if err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	prefs := models.NotificationPreferences{
		EmailEnabled:   f.Get("email_enabled") == "on",
		BookingUpdates: f.Get("booking_updates") == "on",
		Promotions:     f.Get("promotions") == "on",
	}
	if _, err := h.client.UpdatePreferences(r.Context(), web.Token(r), prefs); err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusUnprocessableEntity, "notification_prefs.html", &web.Page{Title: "Notification preferences", Error: msg, Data: &prefs})
		return
	}
	http.Redirect(w, r, "/notifications/preferences", http.StatusSeeOther)
}
