package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/models"
)

// FeatureRequest is the create/update payload for a feature.
type FeatureRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	JiraType    string `json:"jira_type,omitempty"`
}

// ListFeatures returns the features of a project in fetch order.
func (c *Client) ListFeatures(ctx context.Context, projectID string) ([]models.Feature, error) {
	var out []models.Feature
	err := c.doJSON(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID)+"/features", nil, &out)
	return out, err
}

// CreateFeature creates a feature in a project and returns it.
func (c *Client) CreateFeature(ctx context.Context, projectID string, req FeatureRequest) (*models.Feature, error) {
	var out models.Feature
	err := c.doJSON(ctx, http.MethodPost, "/projects/"+url.PathEscape(projectID)+"/features", req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFeature updates a feature's details.
func (c *Client) UpdateFeature(ctx context.Context, id string, req FeatureRequest) (*models.Feature, error) {
	var out models.Feature
	err := c.doJSON(ctx, http.MethodPut, "/features/"+url.PathEscape(id), req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFeature deletes a feature and its test cases.
func (c *Client) DeleteFeature(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/features/"+url.PathEscape(id), nil, nil)
}

// GetStory fetches one issue. When the issue is an epic the response includes
// its child stories in fetch order.
func (c *Client) GetStory(ctx context.Context, id string) (*models.Feature, error) {
	var out models.Feature
	err := c.doJSON(ctx, http.MethodGet, "/stories/"+url.PathEscape(id), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
