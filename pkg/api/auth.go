package api

import (
	"context"
	"net/http"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/models"
)

// LoginRequest is the POST /auth/login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the POST /auth/register payload. OrganizationName names
// the tenant to create or join; the server is the sole arbiter of uniqueness.
type RegisterRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"confirm_password"`
	FullName         string `json:"full_name,omitempty"`
	OrganizationName string `json:"organization_name"`
}

// AuthResponse is returned by login and register: a fresh token pair plus the
// authenticated user.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type,omitempty"`
	User         *models.User `json:"user,omitempty"`
}

// Login exchanges credentials for a token pair. No bearer header is needed.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and tenant and returns the same shape as Login.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh exchanges a refresh token for a new pair. No bearer header is needed.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": refreshToken}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the user the current bearer token belongs to.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword rotates the current user's password.
func (c *Client) ChangePassword(ctx context.Context, current, next, confirm string) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/change-password", map[string]string{
		"current_password": current,
		"new_password":     next,
		"confirm_password": confirm,
	}, nil)
}
