// internal/handlers/sites/sites.go
package sites

import (
	"net/http"
	"strconv"

	"github.com/Eng-Denzel/NaTourCam/internal/api"
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

// ListData feeds the sites listing template.
type ListData struct {
	Sites      []models.Site
	Regions    []models.Region
	Categories []models.Category
	Search     string
	Region     string
	Category   string
}

// Home renders the landing page with a short selection of sites.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	sites, err := h.client.ListSites(r.Context(), web.Token(r), api.SiteFilter{})
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusOK, "home.html", &web.Page{Title: "NaTourCam", Error: msg})
		return
	}
	if len(sites) > 6 {
		sites = sites[:6]
	}
	h.render.HTML(w, r, http.StatusOK, "home.html", &web.Page{Title: "NaTourCam", Data: sites})
}

// List renders the site catalogue with search/region/category filters
// taken from the query string.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := api.SiteFilter{
		Search:   q.Get("search"),
		Region:   q.Get("region"),
		Category: q.Get("category"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 1 {
		filter.Page = page
	}

	data := ListData{Search: filter.Search, Region: filter.Region, Category: filter.Category}
	token := web.Token(r)

	sites, err := h.client.ListSites(r.Context(), token, filter)
	if err != nil {
		msg, handled := web.APIError(w, r, h.sessions, err)
		if handled {
			return
		}
		h.render.HTML(w, r, http.StatusOK, "sites.html", &web.Page{Title: "Attractions", Error: msg, Data: data})
		return
	}
	data.Sites = sites

	// Filter sources are best-effort; an empty dropdown beats a dead page.
	if regions, err := h.client.ListRegions(r.Context(), token); err == nil {
		data.Regions = regions
	}
	if cats, err := h.client.ListCategories(r.Context(), token); err == nil {
		data.Categories = cats
	}
	h.render.HTML(w, r, http.StatusOK, "sites.html", &web.Page{Title: "Attractions", Data: data})
}

// Detail renders one site.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
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
		h.render.HTML(w, r, http.StatusNotFound, "site_detail.html", &web.Page{Title: "Attraction", Error: msg})
		return
	}
	h.render.HTML(w, r, http.StatusOK, "site_detail.html", &web.Page{Title: site.Name, Data: site})
}
