// internal/handlers/router.go
package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/Eng-Denzel/NaTourCam/internal/api"
	"github.com/Eng-Denzel/NaTourCam/internal/handlers/account"
	"github.com/Eng-Denzel/NaTourCam/internal/handlers/admin"
	"github.com/Eng-Denzel/NaTourCam/internal/handlers/bookings"
	"github.com/Eng-Denzel/NaTourCam/internal/handlers/notifications"
	"github.com/Eng-Denzel/NaTourCam/internal/handlers/sites"
	"github.com/Eng-Denzel/NaTourCam/internal/handlers/tours"
	"github.com/Eng-Denzel/NaTourCam/internal/middleware"
	"github.com/Eng-Denzel/NaTourCam/internal/session"
	"github.com/Eng-Denzel/NaTourCam/internal/web"
)

// Deps carries everything the page handlers need.
type Deps struct {
	Client   *api.Client
	Sessions *session.Manager
	Render   *web.Renderer
}

// RegisterRoutes wires every page onto the router. Public pages get an
// optimistic session; everything under the protected groups re-validates
// the token per request.
func RegisterRoutes(mux *chi.Mux, d Deps) {
	ah := account.New(d.Client, d.Sessions, d.Render)
	sh := sites.New(d.Client, d.Sessions, d.Render)
	th := tours.New(d.Client, d.Sessions, d.Render)
	bh := bookings.New(d.Client, d.Sessions, d.Render)
	nh := notifications.New(d.Client, d.Sessions, d.Render)
	adh := admin.New(d.Client, d.Sessions, d.Render)

	// Public pages
	mux.Group(func(r chi.Router) {
		r.Use(middleware.LoadSession(d.Sessions))

		r.Get("/", sh.Home)
		r.Get("/login", ah.LoginPage)
		r.Post("/login", ah.Login)
		r.Get("/register", ah.RegisterPage)
		r.Post("/register", ah.Register)
		r.Post("/logout", ah.Logout)

		r.Get("/sites", sh.List)
		r.Get("/sites/{siteID}", sh.Detail)
		r.Get("/tours", th.List)
		r.Get("/tours/{tourID}", th.Detail)
	})

	// Authenticated pages
	mux.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(d.Sessions))

		r.Get("/profile", ah.ProfilePage)
		r.Post("/profile", ah.UpdateProfile)
		r.Get("/dashboard", ah.Dashboard)

		r.Get("/bookings", bh.List)
		r.Get("/bookings/new", bh.NewPage)
		r.Post("/bookings", bh.Create)
		r.Get("/bookings/{bookingID}", bh.Detail)
		r.Get("/bookings/{bookingID}/edit", bh.EditPage)
		r.Post("/bookings/{bookingID}", bh.Update)
		r.Post("/bookings/{bookingID}/delete", bh.Delete)

		r.Get("/notifications", nh.List)
		r.Post("/notifications/mark-all-read", nh.MarkAllRead)
		r.Get("/notifications/preferences", nh.PreferencesPage)
		r.Post("/notifications/preferences", nh.UpdatePreferences)
	})

	// Admin pages
	mux.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAuth(d.Sessions))
		r.Use(middleware.RequireAdmin)

		r.Get("/", adh.Dashboard)
		r.Get("/users", adh.Users)
		r.Post("/users/{userID}", adh.UpdateUser)
		r.Get("/sites/new", adh.NewSitePage)
		r.Post("/sites", adh.CreateSite)
		r.Get("/sites/{siteID}/edit", adh.EditSitePage)
		r.Post("/sites/{siteID}", adh.UpdateSite)
		r.Post("/sites/{siteID}/images", adh.UploadImage)
		r.Get("/sites/{siteID}/analytics", adh.SiteAnalytics)
		r.Post("/images/{imageID}/delete", adh.DeleteImage)
		r.Post("/images/{imageID}/primary", adh.SetPrimaryImage)
		r.Get("/tours/{tourID}/analytics", adh.TourAnalytics)
	})
}
