// internal/handlers/admin/admin.go
package admin

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

var siteRules = validation.RuleSet{
	"name": {
		{Kind: validation.Required, Message: "Site name is required"},
		{Kind: validation.MaxLength, Param: 200},
	},
	"description": {
		{Kind: validation.Required, Message: "Description is required"},
	},
	"region": {
		{Kind: validation.Required, Message: "Region is required"},
		{Kind: validation.Number, Message: "Region is required"},
	},
	"entrance_fee": {{Kind: validation.Number, Message: "Entrance fee must be a positive amount"}},
}

// Dashboard shows the aggregate platform report.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	report, err := h.client.AdminDashboard(r.Context(), web.Token(r))
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusOK, "admin_dashboard.html", &web.Page{Title: "Admin dashboard", Error: msg})
		return
	}
	h.render.HTML(w, r, http.StatusOK, "admin_dashboard.html", &web.Page{Title: "Admin dashboard", Data: report})
}

// Users lists every account.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.client.ListUsers(r.Context(), web.Token(r))
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusOK, "admin_users.html", &web.Page{Title: "Users", Error: msg})
		return
	}
	h.render.HTML(w, r, http.StatusOK, "admin_users.html", &web.Page{Title: "Users", Data: users})
}

// UpdateUser toggles staff/verified flags on one account.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := web.URLID(r, "userID")
	if !ok {
		http.NotFound(w, r)
		return
	}
	f, err := forms.Parse(r, "is_staff", "is_verified")
	if err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	patch := map[string]any{
		"is_staff":    f.Get("is_staff") == "on",
		"is_verified": f.Get("is_verified") == "on",
	}
	if _, err := h.client.AdminUpdateUser(r.Context(), web.Token(r), id, patch); err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusUnprocessableEntity, "admin_users.html", &web.Page{Title: "Users", Error: msg})
		return
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// SiteFormData feeds the site create/edit template.
type SiteFormData struct {
	Site    *models.Site
	Regions []models.Region
}

// NewSitePage shows an empty site form.
func (h *Handler) NewSitePage(w http.ResponseWriter, r *http.Request) {
	h.renderSiteForm(w, r, http.StatusOK, forms.New(), nil, "")
}

// CreateSite submits a new site.
func (h *Handler) CreateSite(w http.ResponseWriter, r *http.Request) {
	f, ok := h.parseSiteForm(w, r)
	if !ok {
		return
	}
	if !f.Validate(siteRules) {
		h.renderSiteForm(w, r, http.StatusUnprocessableEntity, f, nil, "")
		return
	}
	site, err := h.client.CreateSite(r.Context(), web.Token(r), h.sitePayload(f))
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.renderSiteForm(w, r, http.StatusUnprocessableEntity, f, nil, msg)
		return
	}
	http.Redirect(w, r, "/admin/sites/"+strconv.FormatInt(site.ID, 10)+"/edit", http.StatusSeeOther)
}

// EditSitePage shows the form prefilled from an existing site, including
// its image manager.
func (h *Handler) EditSitePage(w http.ResponseWriter, r *http.Request) {
	id, ok := web.URLID(r, "siteID")
	if !ok {
		http.NotFound(w, r)
		return
	}
	site, err := h.client.GetSite(r.Context(), web.Token(r), id)
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusNotFound, "admin_site_form.html", &web.Page{Title: "Edit site", Error: msg})
		return
	}
	f := forms.New()
	f.Values["name"] = site.Name
	f.Values["description"] = site.Description
	f.Values["region"] = strconv.FormatInt(site.Region.ID, 10)
	f.Values["category"] = site.Category
	f.Values["address"] = site.Address
	f.Values["entrance_fee"] = site.EntranceFee
	f.Values["opening_time"] = site.OpeningTime
	f.Values["closing_time"] = site.ClosingTime
	if site.IsActive {
		f.Values["is_active"] = "on"
	}
	h.renderSiteForm(w, r, http.StatusOK, f, site, "")
}

// UpdateSite submits site edits.
func (h *Handler) UpdateSite(w http.ResponseWriter, r *http.Request) {
	id, ok := web.URLID(r, "siteID")
	if !ok {
		http.NotFound(w, r)
		return
	}
	f, ok := h.parseSiteForm(w, r)
	if !ok {
		return
	}
	if !f.Validate(siteRules) {
		h.renderSiteForm(w, r, http.StatusUnprocessableEntity, f, nil, "")
		return
	}
	if _, err := h.client.UpdateSite(r.Context(), web.Token(r), id, h.sitePayload(f)); err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.renderSiteForm(w, r, http.StatusUnprocessableEntity, f, nil, msg)
		return
	}
	http.Redirect(w, r, "/admin/sites/"+strconv.FormatInt(id, 10)+"/edit", http.StatusSeeOther)
}

const maxUploadSize = 10 << 20 // 10MB

// UploadImage attaches one image to a site.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := web.URLID(r, "siteID")
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	caption := r.FormValue("caption")
	if _, err := h.client.UploadSiteImage(r.Context(), web.Token(r), id, header.Filename, file, caption); err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusUnprocessableEntity, "admin_site_form.html", &web.Page{Title: "Edit site", Error: msg})
		return
	}
	http.Redirect(w, r, "/admin/sites/"+strconv.FormatInt(id, 10)+"/edit", http.StatusSeeOther)
}

// DeleteImage removes one site image.
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := web.URLID(r, "imageID")
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.client.DeleteSiteImage(r.Context(), web.Token(r), id); err != nil {
		if _, handled := web.APIError(w, r, h.sessions, err); handled {
			return
		}
	}
	h.redirectBack(w, r)
}

// SetPrimaryImage marks one image as the site's primary.
func (h *Handler) SetPrimaryImage(w http.ResponseWriter, r *http.Request) {
	id, ok := web.URLID(r, "imageID")
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.client.SetPrimaryImage(r.Context(), web.Token(r), id); err != nil {
		if _, handled := web.APIError(w, r, h.sessions, err); handled {
			return
		}
	}
	h.redirectBack(w, r)
}

// SiteAnalytics shows the per-attraction report.
func (h *Handler) SiteAnalytics(w http.ResponseWriter, r *http.Request) {
	id, ok := web.URLID(r, "siteID")
	if !ok {
		http.NotFound(w, r)
		return
	}
	report, err := h.client.AttractionAnalytics(r.Context(), web.Token(r), id)
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusOK, "admin_site_analytics.html", &web.Page{Title: "Attraction analytics", Error: msg})
		return
	}
	h.render.HTML(w, r, http.StatusOK, "admin_site_analytics.html", &web.Page{Title: "Attraction analytics", Data: report})
}

// TourAnalytics shows the per-tour report.
func (h *Handler) TourAnalytics(w http.ResponseWriter, r *http.Request) {
	id, ok := web.URLID(r, "tourID")
	if !ok {
		http.NotFound(w, r)
		return
	}
	report, err := h.client.TourAnalytics(r.Context(), web.Token(r), id)
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusOK, "admin_tour_analytics.html", &web.Page{Title: "Tour analytics", Error: msg})
		return
	}
	h.render.HTML(w, r, http.StatusOK, "admin_tour_analytics.html", &web.Page{Title: "Tour analytics", Data: report})
}

func (h *Handler) parseSiteForm(w http.ResponseWriter, r *http.Request) (*forms.Form, bool) {
	f, err := forms.Parse(r,
		"name", "description", "region", "category", "address",
		"entrance_fee", "opening_time", "closing_time", "is_active")
	if err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return nil, false
	}
	return f, true
}

func (h *Handler) sitePayload(f *forms.Form) api.SitePayload {
	regionID, _ := strconv.ParseInt(f.Get("region"), 10, 64)
	return api.SitePayload{
		Name:        f.Get("name"),
		Description: f.Get("description"),
		Region:      regionID,
		Category:    f.Get("category"),
		Address:     f.Get("address"),
		EntranceFee: f.Get("entrance_fee"),
		OpeningTime: f.Get("opening_time"),
		ClosingTime: f.Get("closing_time"),
		IsActive:    f.Get("is_active") == "on",
	}
}

func (h *Handler) renderSiteForm(w http.ResponseWriter, r *http.Request, status int, f *forms.Form, site *models.Site, msg string) {
	data := SiteFormData{Site: site}
	if regions, err := h.client.ListRegions(r.Context(), web.Token(r)); err == nil {
		data.Regions = regions
	}
	title := "New site"
	if site != nil {
		title = "Edit site"
	}
	h.render.HTML(w, r, status, "admin_site_form.html", &web.Page{Title: title, Form: f, Error: msg, Data: data})
}

func (h *Handler) redirectBack(w http.ResponseWriter, r *http.Request) {
	if ref := r.Referer(); ref != "" {
		http.Redirect(w, r, ref, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
