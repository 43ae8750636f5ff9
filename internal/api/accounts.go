// internal/api/accounts.go
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Eng-Denzel/NaTourCam/internal/models"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number,omitempty"`
	Language        string `json:"language,omitempty"`
	DateOfBirth     string `json:"date_of_birth,omitempty"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

type ProfileUpdate struct {
	Email       string `json:"email,omitempty"`
	Username    string `json:"username,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Language    string `json:"language,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

// AuthResult is what the backend hands back on login/register.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, "", http.MethodPost, "/auth/login/", nil, creds, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, "", http.MethodPost, "/auth/register/", nil, reg, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, token, http.MethodPost, "/auth/logout/", nil, nil, nil)
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, token, http.MethodGet, "/auth/users/me/", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateCurrentUser(ctx context.Context, token string, upd ProfileUpdate) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, token, http.MethodPut, "/auth/users/me/", nil, upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers is admin-only.
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, token, http.MethodGet, "/auth/users/", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminUpdateUser patches another user's record, admin-only.
func (c *Client) AdminUpdateUser(ctx context.Context, token string, userID int64, patch map[string]any) (*models.User, error) {
	var u models.User
	path := fmt.Sprintf("/auth/users/%d/update/", userID)
	if err := c.do(ctx, token, http.MethodPatch, path, nil, patch, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
