// internal/api/analytics.go
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Eng-Denzel/NaTourCam/internal/models"
)

func (c *Client) UserAnalytics(ctx context.Context, token string) (*models.UserAnalytics, error) {
	var a models.UserAnalytics
	if err := c.do(ctx, token, http.MethodGet, "/analytics/user/", nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) AttractionAnalytics(ctx context.Context, token string, siteID int64) (*models.AttractionAnalytics, error) {
	var a models.AttractionAnalytics
	path := fmt.Sprintf("/analytics/attraction/%d/", siteID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) TourAnalytics(ctx context.Context, token string, tourID int64) (*models.TourAnalytics, error) {
	var a models.TourAnalytics
	path := fmt.Sprintf("/analytics/tour/%d/", tourID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) AdminDashboard(ctx context.Context, token string) (*models.AdminDashboard, error) {
	var a models.AdminDashboard
	if err := c.do(ctx, token, http.MethodGet, "/analytics/admin/dashboard/", nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
