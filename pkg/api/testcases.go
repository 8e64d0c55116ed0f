package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ShankarTarento/AI-Powered-Test-Case-Generator/pkg/models"
)

// ListTestCases returns the test cases attached to a feature.
func (c *Client) ListTestCases(ctx context.Context, featureID string) ([]models.TestCase, error) {
	var out []models.TestCase
	err := c.doJSON(ctx, http.MethodGet, "/features/"+url.PathEscape(featureID)+"/test-cases", nil, &out)
	return out, err
}

// GenerateTestCases invokes remote generation for one feature and returns the
// newly created cases. The call is additive: it always generates, even when
// the feature already has test cases.
func (c *Client) GenerateTestCases(ctx context.Context, featureID string) ([]models.TestCase, error) {
	var out []models.TestCase
	err := c.doJSON(ctx, http.MethodPost, "/features/"+url.PathEscape(featureID)+"/generate-test-cases", nil, &out)
	return out, err
}

// BulkGenerateTestCases runs the server-side bulk generation over an epic's
// children and returns the aggregate report. The client-side equivalent with
// per-story failure isolation lives in internal/generate.
func (c *Client) BulkGenerateTestCases(ctx context.Context, epicID string) (*models.BulkGenerationReport, error) {
	var out models.BulkGenerationReport
	err := c.doJSON(ctx, http.MethodPost, "/epics/"+url.PathEscape(epicID)+"/bulk-generate-test-cases", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveTestCase marks a generated test case as reviewed and active.
func (c *Client) ApproveTestCase(ctx context.Context, id string) (*models.TestCase, error) {
	var out models.TestCase
	err := c.doJSON(ctx, http.MethodPost, "/test-cases/"+url.PathEscape(id)+"/approve", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTestCase removes a test case.
func (c *Client) DeleteTestCase(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/test-cases/"+url.PathEscape(id), nil, nil)
}
