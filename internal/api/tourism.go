// internal/api/tourism.go
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/go-querystring/query"

	"github.com/Eng-Denzel/NaTourCam/internal/models"
)

// SiteFilter narrows the sites listing. Zero values are omitted from the
// query string.
type SiteFilter struct {
	Search   string `url:"search,omitempty"`
	Region   string `url:"region,omitempty"`
	Category string `url:"category,omitempty"`
	Page     int    `url:"page,omitempty"`
}

type SitePayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Region      int64  `json:"region"`
	Category    string `json:"category,omitempty"`
	Address     string `json:"address,omitempty"`
	EntranceFee string `json:"entrance_fee,omitempty"`
	OpeningTime string `json:"opening_time,omitempty"`
	ClosingTime string `json:"closing_time,omitempty"`
	IsActive    bool   `json:"is_active"`
}

func (c *Client) ListSites(ctx context.Context, token string, filter SiteFilter) ([]models.Site, error) {
	q, err := query.Values(filter)
	if err != nil {
		return nil, fmt.Errorf("encode filter: %w", err)
	}
	var sites []models.Site
	if err := c.do(ctx, token, http.MethodGet, "/tourism/sites/", q, nil, &sites); err != nil {
		return nil, err
	}
	return sites, nil
}

func (c *Client) GetSite(ctx context.Context, token string, id int64) (*models.Site, error) {
	var s models.Site
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/tourism/sites/%d/", id), nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) ListRegions(ctx context.Context, token string) ([]models.Region, error) {
	var regions []models.Region
	if err := c.do(ctx, token, http.MethodGet, "/tourism/regions/", nil, nil, &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

func (c *Client) ListCategories(ctx context.Context, token string) ([]models.Category, error) {
	var cats []models.Category
	if err := c.do(ctx, token, http.MethodGet, "/tourism/categories/", nil, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// CreateSite is admin-only.
func (c *Client) CreateSite(ctx context.Context, token string, p SitePayload) (*models.Site, error) {
	var s models.Site
	if err := c.do(ctx, token, http.MethodPost, "/tourism/sites/create/", nil, p, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSite is admin-only.
func (c *Client) UpdateSite(ctx context.Context, token string, id int64, p SitePayload) (*models.Site, error) {
	var s models.Site
	path := fmt.Sprintf("/tourism/sites/%d/update/", id)
	if err := c.do(ctx, token, http.MethodPatch, path, nil, p, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UploadSiteImage posts one image for a site, admin-only.
func (c *Client) UploadSiteImage(ctx context.Context, token string, siteID int64, fileName string, file io.Reader, caption string) (*models.SiteImage, error) {
	var img models.SiteImage
	path := fmt.Sprintf("/tourism/sites/%d/images/upload/", siteID)
	fields := map[string]string{}
	if caption != "" {
		fields["caption"] = caption
	}
	if err := c.doMultipart(ctx, token, http.MethodPost, path, fields, "image", fileName, file, &img); err != nil {
		return nil, err
	}
	return &img, nil
}

// DeleteSiteImage is admin-only.
func (c *Client) DeleteSiteImage(ctx context.Context, token string, imageID int64) error {
	path := fmt.Sprintf("/tourism/images/%d/delete/", imageID)
	return c.do(ctx, token, http.MethodDelete, path, nil, nil, nil)
}

// SetPrimaryImage is admin-only.
func (c *Client) SetPrimaryImage(ctx context.Context, token string, imageID int64) error {
	path := fmt.Sprintf("/tourism/images/%d/set-primary/", imageID)
	return c.do(ctx, token, http.MethodPatch, path, nil, nil, nil)
}
