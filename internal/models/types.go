// internal/models/types.go
package models

import "time"

// User mirrors the backend's user document. The record is always replaced
// wholesale from a server response, never merged field by field.
type User struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Language    string `json:"language"`
	DateOfBirth string `json:"date_of_birth"`
	IsVerified  bool   `json:"is_verified"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// IsAdmin reports whether the user may reach the admin dashboard.
// Value receiver so templates can call it on list elements.
func (u User) IsAdmin() bool {
	return u.IsStaff || u.IsSuperuser
}

// DisplayName prefers the real name, then username, then email.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return u.Username
	}
	return u.Email
}

type Region struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SiteImage struct {
	ID        int64  `json:"id"`
	Image     string `json:"image"`
	Caption   string `json:"caption"`
	IsPrimary bool   `json:"is_primary"`
}

// Site is a tourist site/attraction as served by the backend catalogue.
type Site struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Region      Region      `json:"region"`
	Category    string      `json:"category"`
	Address     string      `json:"address"`
	Latitude    string      `json:"latitude"`
	Longitude   string      `json:"longitude"`
	EntranceFee string      `json:"entrance_fee"`
	OpeningTime string      `json:"opening_time"`
	ClosingTime string      `json:"closing_time"`
	IsActive    bool        `json:"is_active"`
	Images      []SiteImage `json:"images"`
}

// PrimaryImage returns the primary image URL, or the first image, or "".
func (s *Site) PrimaryImage() string {
	for _, img := range s.Images {
		if img.IsPrimary {
			return img.Image
		}
	}
	if len(s.Images) > 0 {
		return s.Images[0].Image
	}
	return ""
}

type Tour struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	MaxGroup    int    `json:"max_group_size"`
	Site        Site   `json:"site"`
}

type Booking struct {
	ID               int64     `json:"id"`
	Site             Site      `json:"tourist_site"`
	BookingDate      string    `json:"booking_date"`
	NumberOfVisitors int       `json:"number_of_visitors"`
	TotalPrice       string    `json:"total_price"`
	Status           string    `json:"status"`
	SpecialRequests  string    `json:"special_requests"`
	CreatedAt        time.Time `json:"created_at"`
}

type BookingSummary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Completed int `json:"completed"`
}

type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationPreferences struct {
	EmailEnabled   bool `json:"email_enabled"`
	BookingUpdates bool `json:"booking_updates"`
	Promotions     bool `json:"promotions"`
}

// UserAnalytics is the per-user activity report.
type UserAnalytics struct {
	TotalBookings   int            `json:"total_bookings"`
	TotalSpent      string         `json:"total_spent"`
	SitesVisited    int            `json:"sites_visited"`
	AverageRating   float64        `json:"average_rating"`
	BookingsByMonth map[string]int `json:"bookings_by_month"`
}

// AttractionAnalytics is the per-site report shown to admins.
type AttractionAnalytics struct {
	Views         int     `json:"views"`
	Bookings      int     `json:"bookings"`
	Revenue       string  `json:"revenue"`
	AverageRating float64 `json:"average_rating"`
}

// TourAnalytics is the per-tour report shown to admins.
type TourAnalytics struct {
	Bookings      int    `json:"bookings"`
	Revenue       string `json:"revenue"`
	OccupancyRate string `json:"occupancy_rate"`
}

// AdminDashboard is the aggregate report behind the admin landing page.
type AdminDashboard struct {
	TotalUsers       int            `json:"total_users"`
	TotalSites       int            `json:"total_sites"`
	TotalBookings    int            `json:"total_bookings"`
	TotalRevenue     string         `json:"total_revenue"`
	RecentBookings   []Booking      `json:"recent_bookings"`
	BookingsByStatus map[string]int `json:"bookings_by_status"`
}
