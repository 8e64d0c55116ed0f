package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/models"
)

// ProjectRequest is the create/update payload for a project.
type ProjectRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	JiraProjectKey string `json:"jira_project_key,omitempty"`
}

// ListProjects returns all projects visible to the current user.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	err := c.doJSON(ctx, http.MethodGet, "/projects", nil, &out)
	return out, err
}

// GetProject returns one project by ID.
func (c *Client) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var out models.Project
	err := c.doJSON(ctx, http.MethodGet, "/projects/"+url.PathEscape(id), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProject creates a project and returns it.
func (c *Client) CreateProject(ctx context.Context, req ProjectRequest) (*models.Project, error) {
	var out models.Project
	err := c.doJSON(ctx, http.MethodPost, "/projects", req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject updates a project and returns the stored version.
func (c *Client) UpdateProject(ctx context.Context, id string, req ProjectRequest) (*models.Project, error) {
	var out models.Project
	err := c.doJSON(ctx, http.MethodPut, "/projects/"+url.PathEscape(id), req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject deletes a project by ID.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/projects/"+url.PathEscape(id), nil, nil)
}
