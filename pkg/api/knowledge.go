package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/models"
)

// UploadKnowledgeBatch uploads a historical test-case file (csv, xlsx) as a
// multipart form and returns the created batch. File validation (extension,
// size limit) is the server's call; the client just streams the bytes.
func (c *Client) UploadKnowledgeBatch(ctx context.Context, projectID, filename string, r io.Reader) (*models.KnowledgeBatch, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	path := "/projects/" + url.PathEscape(projectID) + "/knowledge-batches"
	req, err := c.newRequest(ctx, http.MethodPost, path, &buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}
	resp, err := c.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", http.MethodPost, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var out models.KnowledgeBatch
	if err := c.decode(http.MethodPost, path, resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListKnowledgeBatches returns a project's uploaded batches.
func (c *Client) ListKnowledgeBatches(ctx context.Context, projectID string) ([]models.KnowledgeBatch, error) {
	var out []models.KnowledgeBatch
	err := c.doJSON(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID)+"/knowledge-batches", nil, &out)
	return out, err
}

// GetKnowledgeBatch returns one batch by ID, for polling its processing
// progress after an upload.
func (c *Client) GetKnowledgeBatch(ctx context.Context, id string) (*models.KnowledgeBatch, error) {
	var out models.KnowledgeBatch
	err := c.doJSON(ctx, http.MethodGet, "/knowledge-batches/"+url.PathEscape(id), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// KnowledgeEntryFilter narrows a knowledge-entry listing. Zero values mean no
// filter; the server caps Limit.
type KnowledgeEntryFilter struct {
	JiraKey string
	Limit   int
}

// ListKnowledgeEntries returns a project's extracted entries, optionally
// filtered by Jira key.
func (c *Client) ListKnowledgeEntries(ctx context.Context, projectID string, f KnowledgeEntryFilter) ([]models.KnowledgeEntry, error) {
	path := "/projects/" + url.PathEscape(projectID) + "/knowledge-entries"
	q := url.Values{}
	if f.JiraKey != "" {
		q.Set("jira_key", f.JiraKey)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []models.KnowledgeEntry
	err := c.doJSON(ctx, http.MethodGet, path, nil, &out)
	return out, err
}
