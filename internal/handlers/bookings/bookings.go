// internal/handlers/bookings/bookings.go
package bookings

import (
	"net/http"
	"strconv"

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

var bookingRules = validation.RuleSet{
	"tourist_site": {
		{Kind: validation.Required, Message: "Please choose an attraction"},
		{Kind: validation.Number, Message: "Please choose an attraction"},
	},
	"booking_date": {
		{Kind: validation.Required, Message: "Booking date is required"},
		{Kind: validation.Date},
	},
	"number_of_visitors": {
		{Kind: validation.Required, Message: "Number of visitors is required"},
		{Kind: validation.Number, Message: "Number of visitors must be greater than zero"},
	},
	"special_requests": {
		{Kind: validation.MaxLength, Param: 500},
	},
}

// ListData feeds the bookings listing template.
type ListData struct {
	Bookings []models.Booking
	Summary  *models.BookingSummary
}

// FormData feeds the booking form template.
type FormData struct {
	Sites   []models.Site
	Booking *models.Booking
}

// List shows the visitor's bookings plus the status summary widget.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	token := web.Token(r)
	bookings, err := h.client.ListBookings(r.Context(), token)
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusOK, "bookings.html", &web.Page{Title: "My bookings", Error: msg})
		return
	}
	data := ListData{Bookings: bookings}
	if summary, err := h.client.BookingsSummary(r.Context(), token); err == nil {
		data.Summary = summary
	}
	h.render.HTML(w, r, http.StatusOK, "bookings.html", &web.Page{Title: "My bookings", Data: data})
}

// Detail shows one booking.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := web.URLID(r, "bookingID")
	if !ok {
		http.NotFound(w, r)
		return
	}
	booking, err := h.client.GetBooking(r.Context(), web.Token(r), id)
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusNotFound, "booking_detail.html", &web.Page{Title: "Booking", Error: msg})
		return
	}
	h.render.HTML(w, r, http.StatusOK, "booking_detail.html", &web.Page{Title: "Booking", Data: booking})
}

// NewPage shows the booking form, optionally preselecting ?site=.
func (h *Handler) NewPage(w http.ResponseWriter, r *http.Request) {
	f := forms.New()
	f.Values["tourist_site"] = r.URL.Query().Get("site")
	f.Values["number_of_visitors"] = "1"
	h.renderForm(w, r, http.StatusOK, f, nil, "")
}

// Create submits a new booking.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	f, err := forms.Parse(r, "tourist_site", "booking_date", "number_of_visitors", "special_requests")
	if err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	if !f.Validate(bookingRules) {
		h.renderForm(w, r, http.StatusUnprocessableEntity, f, nil, "")
		return
	}
	booking, err := h.client.CreateBooking(r.Context(), web.Token(r), h.payload(f))
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.renderForm(w, r, http.StatusUnprocessableEntity, f, nil, msg)
		return
	}
	http.Redirect(w, r, "/bookings/"+strconv.FormatInt(booking.ID, 10), http.StatusSeeOther)
}

// EditPage shows the form prefilled from an existing booking.
func (h *Handler) EditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := web.URLID(r, "bookingID")
	if !ok {
		http.NotFound(w, r)
		return
	}
	booking, err := h.client.GetBooking(r.Context(), web.Token(r), id)
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusNotFound, "booking_form.html", &web.Page{Title: "Edit booking", Error: msg})
		return
	}
	f := forms.New()
	f.Values["tourist_site"] = strconv.FormatInt(booking.Site.ID, 10)
	f.Values["booking_date"] = booking.BookingDate
	f.Values["number_of_visitors"] = strconv.Itoa(booking.NumberOfVisitors)
	f.Values["special_requests"] = booking.SpecialRequests
	h.renderForm(w, r, http.StatusOK, f, booking, "")
}

// Update submits booking edits.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := web.URLID(r, "bookingID")
	if !ok {
		http.NotFound(w, r)
		return
	}
	f, err := forms.Parse(r, "tourist_site", "booking_date", "number_of_visitors", "special_requests")
	if err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	// Keep the form posting back to the edit URL on re-render.
	current := &models.Booking{ID: id}
	if !f.Validate(bookingRules) {
		h.renderForm(w, r, http.StatusUnprocessableEntity, f, current, "")
		return
	}
	if _, err := h.client.UpdateBooking(r.Context(), web.Token(r), id, h.payload(f)); err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.renderForm(w, r, http.StatusUnprocessableEntity, f, current, msg)
		return
	}
	http.Redirect(w, r, "/bookings/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

// Delete cancels a booking.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := web.URLID(r, "bookingID")
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.client.DeleteBooking(r.Context(), web.Token(r), id); err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusOK, "bookings.html", &web.Page{Title: "My bookings", Error: msg})
		return
	}
	http.Redirect(w, r, "/bookings", http.StatusSeeOther)
}

func (h *Handler) payload(f *forms.Form) api.BookingPayload {
	siteID, _ := strconv.ParseInt(f.Get("tourist_site"), 10, 64)
	visitors, _ := strconv.Atoi(f.Get("number_of_visitors"))
	return api.BookingPayload{
		TouristSite:      siteID,
		BookingDate:      f.Get("booking_date"),
		NumberOfVisitors: visitors,
		SpecialRequests:  f.Get("special_requests"),
	}
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, f *forms.Form, booking *models.Booking, msg string) {
	data := FormData{Booking: booking}
	if sites, err := h.client.ListSites(r.Context(), web.Token(r), api.SiteFilter{}); err == nil {
		data.Sites = sites
	}
	title := "New booking"
	if booking != nil {
		title = "Edit booking"
	}
	h.render.HTML(w, r, status, "booking_form.html", &web.Page{Title: title, Form: f, Error: msg, Data: data})
}
