// internal/handlers/tours/tours.go
package tours

import (
	"net/http"

	"github.com/Eng-Denzel/NaTourCam/internal/api"
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

// List renders the tour catalogue.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := api.TourFilter{Search: r.URL.Query().Get("search")}
	tours, err := h.client.ListTours(r.Context(), web.Token(r), filter)
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusOK, "tours.html", &web.Page{Title: "Tours", Error: msg})
		return
	}
	h.render.HTML(w, r, http.StatusOK, "tours.html", &web.Page{Title: "Tours", Data: tours})
}

// Detail renders one tour.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := web.URLID(r, "tourID")
	if !ok {
		http.NotFound(w, r)
		return
	}
	tour, err := h.client.GetTour(r.Context(), web.Token(r), id)
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusNotFound, "tour_detail.html", &web.Page{Title: "Tour", Error: msg})
		return
	}
	h.render.HTML(w, r, http.StatusOK, "tour_detail.html", &web.Page{Title: tour.Name, Data: tour})
}
