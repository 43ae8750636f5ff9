// internal/api/notifications.go
package api

import (
	"context"
	"net/http"

	"github.com/Eng-Denzel/NaTourCam/internal/models"
)

func (c *Client) ListNotifications(ctx context.Context, token string) ([]models.Notification, error) {
	var ns []models.Notification
	if err := c.do(ctx, token, http.MethodGet, "/notifications/", nil, nil, &ns); err != nil {
		return nil, err
	}
	return ns, nil
}

func (c *Client) UnreadCount(ctx context.Context, token string) (int, error) {
	var res struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/notifications/unread-count/", nil, nil, &res); err != nil {
		return 0, err
	}
	return res.Count, nil
}

func (c *Client) MarkAllRead(ctx context.Context, token string) error {
	return c.do(ctx, token, http.MethodPost, "/notifications/mark-all-read/", nil, nil, nil)
}

func (c *Client) GetPreferences(ctx context.Context, token string) (*models.NotificationPreferences, error) {
	var p models.NotificationPreferences
	if err := c.do(ctx, token, http.MethodGet, "/notifications/preferences/", nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdatePreferences(ctx context.Context, token string, p models.NotificationPreferences) (*models.NotificationPreferences, error) {
	var out models.NotificationPreferences
	if err := c.do(ctx, token, http.MethodPut, "/notifications/preferences/", nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
