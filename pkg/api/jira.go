package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/models"
)

// JiraStatus reads the current Jira connection state. Safe to poll.
func (c *Client) JiraStatus(ctx context.Context) (*models.JiraStatus, error) {
	var out models.JiraStatus
	err := c.doJSON(ctx, http.MethodGet, "/jira/status", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// JiraConnectURL returns the OAuth URL the user must open to connect a Jira
// site. The redirect completes out-of-band; poll JiraStatus afterwards.
func (c *Client) JiraConnectURL(ctx context.Context) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	err := c.doJSON(ctx, http.MethodGet, "/jira/connect", nil, &out)
	return out.URL, err
}

// SyncJira triggers a server-side re-sync of a project's imported issues.
func (c *Client) SyncJira(ctx context.Context, projectID string) error {
	return c.doJSON(ctx, http.MethodPost, "/jira/sync/"+url.PathEscape(projectID), nil, nil)
}

// ImportByKey imports one Jira issue (and, for epics, its children) into a
// project. The server fans out internally; the client treats it as atomic.
func (c *Client) ImportByKey(ctx context.Context, projectID, jiraKey string) (*models.ImportResult, error) {
	var out models.ImportResult
	path := "/jira/import/" + url.PathEscape(projectID) + "?jiraKey=" + url.QueryEscape(jiraKey)
	err := c.doJSON(ctx, http.MethodPost, path, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
