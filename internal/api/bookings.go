// internal/api/bookings.go
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Eng-Denzel/NaTourCam/internal/models"
)

type BookingPayload struct {
	TouristSite      int64  `json:"tourist_site"`
	BookingDate      string `json:"booking_date"`
	NumberOfVisitors int    `json:"number_of_visitors"`
	SpecialRequests  string `json:"special_requests,omitempty"`
}

func (c *Client) ListBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, token, http.MethodGet, "/bookings/bookings/", nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) GetBooking(ctx context.Context, token string, id int64) (*models.Booking, error) {
	var b models.Booking
	path := fmt.Sprintf("/bookings/bookings/%d/", id)
	if err := c.do(ctx, token, http.MethodGet, path, nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) CreateBooking(ctx context.Context, token string, p BookingPayload) (*models.Booking, error) {
	var b models.Booking
	if err := c.do(ctx, token, http.MethodPost, "/bookings/bookings/", nil, p, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) UpdateBooking(ctx context.Context, token string, id int64, p BookingPayload) (*models.Booking, error) {
	var b models.Booking
	path := fmt.Sprintf("/bookings/bookings/%d/", id)
	if err := c.do(ctx, token, http.MethodPatch, path, nil, p, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) DeleteBooking(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/bookings/bookings/%d/", id)
	return c.do(ctx, token, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) BookingsSummary(ctx context.Context, token string) (*models.BookingSummary, error) {
	var s models.BookingSummary
	if err := c.do(ctx, token, http.MethodGet, "/bookings/summary/", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
