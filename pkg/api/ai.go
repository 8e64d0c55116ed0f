package api

import (
	"context"
	"net/http"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/models"
)

// ListProviders returns which AI providers the current user has configured.
func (c *Client) ListProviders(ctx context.Context) (*models.ProviderStatus, error) {
	var out models.ProviderStatus
	err := c.doJSON(ctx, http.MethodGet, "/ai/providers", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfigureProvider stores a provider configuration for the current user.
func (c *Client) ConfigureProvider(ctx context.Context, cfg models.ProviderConfig) error {
	return c.doJSON(ctx, http.MethodPost, "/ai/configure", cfg, nil)
}

// TestProviderConnection verifies a provider configuration without storing it.
func (c *Client) TestProviderConnection(ctx context.Context, cfg models.ProviderConfig) (*models.ConnectionTestResult, error) {
	var out models.ConnectionTestResult
	err := c.doJSON(ctx, http.MethodPost, "/ai/test-connection", cfg, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
