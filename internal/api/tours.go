// internal/api/tours.go
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"

	"github.com/Eng-Denzel/NaTourCam/internal/models"
)

type TourFilter struct {
	Search string `url:"search,omitempty"`
	Site   int64  `url:"site,omitempty"`
	Page   int    `url:"page,omitempty"`
}

func (c *Client) ListTours(ctx context.Context, token string, filter TourFilter) ([]models.Tour, error) {
	q, err := query.Values(filter)
	if err != nil {
		return nil, fmt.Errorf("encode filter: %w", err)
	}
	var tours []models.Tour
	if err := c.do(ctx, token, http.MethodGet, "/tours/", q, nil, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

func (c *Client) GetTour(ctx context.Context, token string, id int64) (*models.Tour, error) {
	var t models.Tour
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/tours/%d/", id), nil, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
